package universe

import (
	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/address"
)

// FullMultiplier leaves values unchanged.
const FullMultiplier = 255

// Overrides are the manual values of one universe: a universe master
// multiplier and an optional fixed value per channel.
type Overrides struct {
	multiplier uint8
	values     [address.ChannelsPerUniverse]uint8
	set        [address.ChannelsPerUniverse]bool
}

// NewOverrides returns a table without overrides at full multiplier.
func NewOverrides() Overrides {
	return Overrides{multiplier: FullMultiplier}
}

func (o *Overrides) Multiplier() uint8 { return o.multiplier }

func (o *Overrides) SetMultiplier(m uint8) { o.multiplier = m }

func (o *Overrides) Set(ch address.ChannelID, v uint8) {
	o.values[ch.Int()] = v
	o.set[ch.Int()] = true
}

func (o *Overrides) Clear(ch address.ChannelID) {
	o.values[ch.Int()] = 0
	o.set[ch.Int()] = false
}

func (o *Overrides) ClearAll() {
	m := o.multiplier
	*o = Overrides{multiplier: m}
}

// Get returns the override of ch, if any.
func (o *Overrides) Get(ch address.ChannelID) (uint8, bool) {
	return o.values[ch.Int()], o.set[ch.Int()]
}

// Count is the number of overridden channels.
func (o *Overrides) Count() int {
	n := 0
	for _, s := range o.set {
		if s {
			n++
		}
	}
	return n
}
