package fixture

import "fmt"

// Range is one distinct byte interval of a Selection. Both bounds are inclusive.
//
// Going from start to end strengthens the action. start may be greater than end:
// the lower value is still the low DMX bound, but the action gets stronger
// toward it.
type Range struct {
	continuous bool
	start      uint8
	end        uint8
	action     SimpleAction
}

// NewRange derives continuity from the action.
func NewRange(start, end uint8, action SimpleAction) Range {
	return NewRangeContinuous(action.IsContinuous(), start, end, action)
}

// NewRangeContinuous sets continuity explicitly. continuous is true if different
// values in the range have a different effect.
func NewRangeContinuous(continuous bool, start, end uint8, action SimpleAction) Range {
	return Range{continuous: continuous, start: start, end: end, action: action}
}

// Start is the lower DMX bound.
func (r Range) Start() uint8 {
	if r.start > r.end {
		return r.end
	}
	return r.start
}

// End is the upper DMX bound.
func (r Range) End() uint8 {
	if r.start > r.end {
		return r.start
	}
	return r.end
}

func (r Range) IsInverted() bool { return r.start > r.end }

// Len is the number of byte values in the range, 1..256.
func (r Range) Len() int {
	return int(r.End()) - int(r.Start()) + 1
}

func (r Range) Contains(v uint8) bool {
	return v >= r.Start() && v <= r.End()
}

func (r Range) IsContinuous() bool { return r.continuous }

func (r Range) Action() SimpleAction { return r.action }

// Scale maps a level in 0..255 onto the range's DMX values.
//
// Continuous ranges are scaled linearly, reversed when inverted. A discrete range
// always yields one value kept away from its edges: Start when it touches 0, End
// when it touches 255, the midpoint otherwise.
func (r Range) Scale(input uint8) uint8 {
	if !r.continuous {
		switch {
		case r.Start() == 0:
			return 0
		case r.End() == 255:
			return 255
		default:
			return r.Start() + uint8(r.Len()/2)
		}
	}
	offset := uint8(scaleByte(input, uint64(r.Len())))
	if r.IsInverted() {
		return r.End() - offset
	}
	return r.Start() + offset
}

// Equal compares the raw bounds, so an inverted range differs from its
// non-inverted twin.
func (r Range) Equal(o Range) bool {
	return r.continuous == o.continuous && r.start == o.start && r.end == o.end && r.action.Equal(o.action)
}

func (r Range) String() string {
	mode := "discrete"
	if r.continuous {
		mode = "continuous"
	}
	return fmt.Sprintf("[%d..%d %s %s]", r.start, r.end, mode, r.action)
}

// Channel is one slot of a fixture layout.
type Channel struct {
	action Action
}

func NewChannel(a Action) Channel {
	return Channel{action: a}
}

// SimpleChannel is a channel with a single SimpleAction.
func SimpleChannel(a SimpleAction) Channel {
	return Channel{action: Single(a)}
}

func (c Channel) Action() Action { return c.action }

func (c Channel) Equal(o Channel) bool { return c.action.Equal(o.action) }

// Scale scales a raw channel byte. See Action.Scale.
func (c Channel) Scale(input uint8, selection int) (Output, error) {
	return c.action.Scale(input, selection)
}

func (c Channel) String() string { return c.action.String() }
