package fixture

import (
	"errors"
	"fmt"
)

// ErrUnmappedValue is returned when no Range of a Selection contains the input.
var ErrUnmappedValue = errors.New("value is not covered by any range")

// Output is the semantic effect of a channel byte.
type Output struct {
	Action SimpleAction
	// Value is microarcseconds for position actions and a DMX level otherwise.
	Value uint64
	// Active is false for NoOp, in which case Value is the unused raw input.
	Active bool
}

// Scale converts a raw channel byte into the Output it drives. selection picks
// the variant of parametric actions, NoSelection uses their defaults.
//
// Position actions resolve their travel and scale the input linearly onto it.
// A Selection first locates the Range containing input, then scales within it.
func (a Action) Scale(input uint8, selection int) (Output, error) {
	if !a.IsSelection() {
		return scaleSimple(a.simple, input, selection), nil
	}
	r, ok := a.Locate(input)
	if !ok {
		return Output{}, fmt.Errorf("%w: %d", ErrUnmappedValue, input)
	}
	if r.action.AutoConverts() {
		return scaleSimple(r.action, input, selection), nil
	}
	return Output{
		Action: r.action,
		Value:  uint64(r.Scale(input)),
		Active: r.action.kind != NoOp,
	}, nil
}

func scaleSimple(a SimpleAction, input uint8, selection int) Output {
	switch {
	case a.kind == NoOp:
		return Output{Action: a, Value: uint64(input)}
	case a.AutoConverts():
		return Output{Action: a, Value: scaleByte(input, a.span.Select(selection)), Active: true}
	default:
		return Output{Action: a, Value: uint64(input), Active: true}
	}
}
