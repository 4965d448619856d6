package fixture

import (
	"errors"
	"fmt"

	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/address"
	"github.com/google/uuid"
)

// ErrNoSuchChannel is returned for channel offsets outside a device's fixture.
var ErrNoSuchChannel = errors.New("no such channel")

// Device is a Fixture placed at a start channel. Devices are values: edits
// produce a new Device that replaces the old one.
type Device struct {
	ID      uuid.UUID
	Name    string
	Start   address.ChannelID
	Fixture *Fixture
	// Variant selects the Variable options of the fixture's parametric channels.
	Variant int
}

// NewDevice creates a device with a fresh id and default variant.
func NewDevice(name string, start address.ChannelID, f *Fixture) Device {
	return Device{
		ID:      uuid.New(),
		Name:    name,
		Start:   start,
		Fixture: f,
		Variant: NoSelection,
	}
}

// WithVariant returns a copy of d using variant.
func (d Device) WithVariant(variant int) Device {
	d.Variant = variant
	return d
}

// End is the first channel after the device. The device occupies [Start, End).
func (d Device) End() int {
	return d.Start.Int() + d.Fixture.ChannelCount()
}

// Scale scales the byte of the channel at offset from the device start.
func (d Device) Scale(offset int, value uint8) (Output, error) {
	c, ok := d.Fixture.Channel(offset)
	if !ok {
		return Output{}, fmt.Errorf("%w: offset %d of %q", ErrNoSuchChannel, offset, d.Name)
	}
	return c.Scale(value, d.Variant)
}

func (d Device) String() string {
	return fmt.Sprintf("%s (%s) @%s..%d", d.Name, d.Fixture.Model(), d.Start, d.End())
}
