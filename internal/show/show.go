// Package show holds the configuration being edited and the one being output.
package show

import (
	"errors"
	"fmt"

	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/address"
	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/fixture"
	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/universe"
)

// ErrUnpatched is returned for channels no device occupies.
var ErrUnpatched = errors.New("channel is not patched")

// Show is everything that is shared with the output stage: the patched
// devices, the manual overrides and the master level.
type Show struct {
	Devices          *universe.Universes[universe.Devices]
	Overrides        *universe.Universes[universe.Overrides]
	GlobalMultiplier uint8
}

func New() *Show {
	return &Show{
		Devices:          universe.NewUniverses[universe.Devices](nil),
		Overrides:        universe.NewUniverses(universe.NewOverrides),
		GlobalMultiplier: universe.FullMultiplier,
	}
}

// Clone copies the show. Fixtures stay shared.
func (s *Show) Clone() *Show {
	return &Show{
		Devices:          s.Devices.Clone(func(d *universe.Devices) universe.Devices { return d.Clone() }),
		Overrides:        s.Overrides.Clone(func(o *universe.Overrides) universe.Overrides { return *o }),
		GlobalMultiplier: s.GlobalMultiplier,
	}
}

func (s *Show) Equal(o *Show) bool {
	return s.GlobalMultiplier == o.GlobalMultiplier &&
		s.Devices.Equal(o.Devices, func(a, b *universe.Devices) bool { return a.Equal(b) }) &&
		s.Overrides.Equal(o.Overrides, func(a, b *universe.Overrides) bool { return *a == *b })
}

// Place inserts d into universe u.
func (s *Show) Place(u address.UniverseID, d fixture.Device) error {
	return s.Devices.CreateOrGet(u).TryInsert(d)
}

// Remove deletes the device at index of universe u.
func (s *Show) Remove(u address.UniverseID, index int) (fixture.Device, error) {
	devices, ok := s.Devices.Get(u.Int())
	if !ok {
		return fixture.Device{}, fmt.Errorf("%w: universe %s is empty", universe.ErrNoSuchDevice, u)
	}
	return devices.Remove(index)
}

func (s *Show) SetOverride(a address.ChannelAddress, v uint8) {
	s.Overrides.CreateOrGet(a.Universe).Set(a.Channel, v)
}

func (s *Show) ClearOverride(a address.ChannelAddress) {
	if o, ok := s.Overrides.Get(a.Universe.Int()); ok {
		o.Clear(a.Channel)
	}
}

// Describe scales value as the device patched at a would interpret it.
func (s *Show) Describe(a address.ChannelAddress, value uint8) (fixture.Device, fixture.Output, error) {
	devices, ok := s.Devices.Get(a.Universe.Int())
	if !ok {
		return fixture.Device{}, fixture.Output{}, fmt.Errorf("%w: %s", ErrUnpatched, a)
	}
	d, offset, ok := devices.Owner(a.Channel)
	if !ok {
		return fixture.Device{}, fixture.Output{}, fmt.Errorf("%w: %s", ErrUnpatched, a)
	}
	out, err := d.Scale(offset, value)
	if err != nil {
		return d, fixture.Output{}, err
	}
	return d, out, nil
}
