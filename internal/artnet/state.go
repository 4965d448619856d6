package artnet

import (
	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/address"
	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/show"
	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/universe"
)

const fullLevel = universe.FullMultiplier

// Render builds the frame of universe u. Overridden channels are scaled by the
// universe and global multipliers; all other channels are 0.
func Render(s *show.Show, u address.UniverseID) Frame {
	var f Frame
	o, ok := s.Overrides.Get(u.Int())
	if !ok {
		return f
	}
	scale := uint32(o.Multiplier()) * uint32(s.GlobalMultiplier)
	for ch := 0; ch < address.ChannelsPerUniverse; ch++ {
		v, set := o.Get(address.MustChannelID(ch))
		if !set {
			continue
		}
		f[ch] = byte(uint32(v) * scale / (fullLevel * fullLevel))
	}
	return f
}

// RenderAll renders every universe that has overrides or devices.
func RenderAll(s *show.Show) FrameMap {
	frames := FrameMap{}
	add := func(id address.UniverseID) {
		if _, ok := frames[id]; !ok {
			frames[id] = Render(s, id)
		}
	}
	s.Overrides.Each(func(id address.UniverseID, o *universe.Overrides) bool {
		if o.Count() > 0 {
			add(id)
		}
		return true
	})
	s.Devices.Each(func(id address.UniverseID, d *universe.Devices) bool {
		if !d.IsEmpty() {
			add(id)
		}
		return true
	})
	return frames
}
