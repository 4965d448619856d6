package universe

import (
	"errors"
	"fmt"
	"slices"

	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/address"
	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/fixture"
	"github.com/google/uuid"
)

var (
	ErrStartTooHigh           = errors.New("start channel is too high")
	ErrEndTooHigh             = errors.New("end channel is too high")
	ErrChannelAlreadyAssigned = errors.New("at least one channel is already assigned in the requested range")
	ErrNoFixture              = errors.New("device has no fixture")
	ErrNoSuchDevice           = errors.New("no such device")
)

// PlacementError is returned when a device cannot be placed. Reason is one of
// ErrStartTooHigh, ErrEndTooHigh or ErrChannelAlreadyAssigned.
type PlacementError struct {
	Reason error
	Start  int
	End    int
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("placing channels %d..%d: %v", e.Start, e.End, e.Reason)
}

func (e *PlacementError) Unwrap() error {
	return e.Reason
}

// Devices is the device list of one universe. It is kept sorted by start
// channel and no two devices share a channel.
type Devices struct {
	devices []fixture.Device
}

// Place validates a raw start channel and inserts a new device for f using
// the given variant. A negative start yields an *address.RangeError, a start
// past the last channel ErrStartTooHigh.
func (u *Devices) Place(name string, start int, f *fixture.Fixture, variant int) (fixture.Device, error) {
	ch, err := address.NewChannelID(start)
	if err != nil {
		if start < 0 {
			return fixture.Device{}, err
		}
		end := start
		if f != nil {
			end += f.ChannelCount()
		}
		return fixture.Device{}, &PlacementError{Reason: ErrStartTooHigh, Start: start, End: end}
	}
	d := fixture.NewDevice(name, ch, f).WithVariant(variant)
	if err := u.TryInsert(d); err != nil {
		return fixture.Device{}, err
	}
	return d, nil
}

// TryInsert places d if its channels [Start, End) are inside the universe and
// free. Because the list is sorted and non-overlapping, only the neighbours of
// the insertion point can collide.
func (u *Devices) TryInsert(d fixture.Device) error {
	if d.Fixture == nil {
		return ErrNoFixture
	}
	start, end := d.Start.Int(), d.End()
	if start > address.MaxChannel {
		return &PlacementError{Reason: ErrStartTooHigh, Start: start, End: end}
	}
	if end > address.ChannelsPerUniverse {
		return &PlacementError{Reason: ErrEndTooHigh, Start: start, End: end}
	}

	pos, found := slices.BinarySearchFunc(u.devices, d.Start, func(e fixture.Device, t address.ChannelID) int {
		return e.Start.Compare(t)
	})
	if found {
		return &PlacementError{Reason: ErrChannelAlreadyAssigned, Start: start, End: end}
	}
	if pos > 0 && u.devices[pos-1].End() > start {
		return &PlacementError{Reason: ErrChannelAlreadyAssigned, Start: start, End: end}
	}
	if pos < len(u.devices) && end > u.devices[pos].Start.Int() {
		return &PlacementError{Reason: ErrChannelAlreadyAssigned, Start: start, End: end}
	}

	u.devices = slices.Insert(u.devices, pos, d)
	return nil
}

// Remove deletes the device at index.
func (u *Devices) Remove(index int) (fixture.Device, error) {
	if index < 0 || index >= len(u.devices) {
		return fixture.Device{}, fmt.Errorf("%w: index %d", ErrNoSuchDevice, index)
	}
	d := u.devices[index]
	u.devices = slices.Delete(u.devices, index, index+1)
	return d, nil
}

// RemoveByID deletes the device with the given id.
func (u *Devices) RemoveByID(id uuid.UUID) (fixture.Device, error) {
	i, ok := u.Find(id)
	if !ok {
		return fixture.Device{}, fmt.Errorf("%w: %s", ErrNoSuchDevice, id)
	}
	return u.Remove(i)
}

// Replace swaps the device at index for d. On failure the old device stays.
func (u *Devices) Replace(index int, d fixture.Device) error {
	old, err := u.Remove(index)
	if err != nil {
		return err
	}
	if err := u.TryInsert(d); err != nil {
		// the old device fit before, so it fits again
		_ = u.TryInsert(old)
		return err
	}
	return nil
}

func (u *Devices) Find(id uuid.UUID) (int, bool) {
	for i, d := range u.devices {
		if d.ID == id {
			return i, true
		}
	}
	return 0, false
}

// Owner returns the device occupying ch and the channel's offset inside it.
func (u *Devices) Owner(ch address.ChannelID) (fixture.Device, int, bool) {
	pos, found := slices.BinarySearchFunc(u.devices, ch, func(e fixture.Device, t address.ChannelID) int {
		return e.Start.Compare(t)
	})
	if found {
		d := u.devices[pos]
		return d, 0, d.End() > ch.Int()
	}
	if pos == 0 {
		return fixture.Device{}, 0, false
	}
	d := u.devices[pos-1]
	if d.End() <= ch.Int() {
		return fixture.Device{}, 0, false
	}
	return d, ch.Int() - d.Start.Int(), true
}

func (u *Devices) At(index int) (fixture.Device, bool) {
	if index < 0 || index >= len(u.devices) {
		return fixture.Device{}, false
	}
	return u.devices[index], true
}

// All returns the devices in start channel order.
func (u *Devices) All() []fixture.Device {
	return slices.Clone(u.devices)
}

func (u *Devices) Len() int { return len(u.devices) }

func (u *Devices) IsEmpty() bool { return len(u.devices) == 0 }

// Clone copies the list. Fixtures stay shared.
func (u *Devices) Clone() Devices {
	return Devices{devices: slices.Clone(u.devices)}
}

func (u *Devices) Equal(o *Devices) bool {
	return slices.EqualFunc(u.devices, o.devices, func(a, b fixture.Device) bool {
		return a.ID == b.ID &&
			a.Name == b.Name &&
			a.Start == b.Start &&
			a.Variant == b.Variant &&
			a.Fixture.Equal(b.Fixture)
	})
}
