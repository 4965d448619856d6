package fixture

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
)

// ErrOverlappingRanges is returned when two Ranges of a Selection share a byte value.
var ErrOverlappingRanges = errors.New("ranges overlap")

// ActionKind is what a channel controls. A higher byte value is assumed to mean
// more of the action; use a Selection with an inverted Range otherwise.
type ActionKind uint8

const (
	NoOp ActionKind = iota
	PositionPan
	PositionPanFine
	PositionTilt
	PositionTiltFine
	Speed
	Strobo
	SpinRight
	SpinLeft
	GOBOSelection
	BeamZoom
	IntensityMasterDimmer
	IntensityColor
)

var kindNames = [...]string{
	NoOp:                  "noop",
	PositionPan:           "pan",
	PositionPanFine:       "pan-fine",
	PositionTilt:          "tilt",
	PositionTiltFine:      "tilt-fine",
	Speed:                 "speed",
	Strobo:                "strobo",
	SpinRight:             "spin-right",
	SpinLeft:              "spin-left",
	GOBOSelection:         "gobo",
	BeamZoom:              "zoom",
	IntensityMasterDimmer: "dimmer",
	IntensityColor:        "color",
}

func (k ActionKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("action(%d)", uint8(k))
}

// IsVariable reports whether the kind carries a Variable travel range.
func (k ActionKind) IsVariable() bool {
	return k >= PositionPan && k <= PositionTiltFine
}

// SimpleAction is one atomic meaning of a byte value.
type SimpleAction struct {
	kind ActionKind
	// span is the total travel in microarcseconds of a position action.
	span  Variable[uint64]
	color Color
}

// Simple returns an action without parameters. Position kinds get a zero travel.
// Use Positional and ColorIntensity for parametric kinds.
func Simple(kind ActionKind) SimpleAction {
	return SimpleAction{kind: kind}
}

// Positional returns a position action whose total travel is span, in microarcseconds.
func Positional(kind ActionKind, span Variable[uint64]) SimpleAction {
	return SimpleAction{kind: kind, span: span}
}

func Pan(span Variable[uint64]) SimpleAction      { return Positional(PositionPan, span) }
func PanFine(span Variable[uint64]) SimpleAction  { return Positional(PositionPanFine, span) }
func Tilt(span Variable[uint64]) SimpleAction     { return Positional(PositionTilt, span) }
func TiltFine(span Variable[uint64]) SimpleAction { return Positional(PositionTiltFine, span) }

// ColorIntensity drives one colour component.
func ColorIntensity(c Color) SimpleAction {
	return SimpleAction{kind: IntensityColor, color: c}
}

func (a SimpleAction) Kind() ActionKind { return a.kind }

func (a SimpleAction) Equal(o SimpleAction) bool {
	return a.kind == o.kind && a.color == o.color &&
		a.span.EqualFunc(o.span, func(x, y uint64) bool { return x == y })
}

// Span returns the travel variable of a position action.
func (a SimpleAction) Span() (Variable[uint64], bool) {
	return a.span, a.kind.IsVariable()
}

func (a SimpleAction) Color() (Color, bool) {
	return a.color, a.kind == IntensityColor
}

// AutoConverts reports whether scaling resolves a Variable for this action.
func (a SimpleAction) AutoConverts() bool {
	return a.kind.IsVariable()
}

// IsContinuous is false for actions where every value of a range has the same effect.
func (a SimpleAction) IsContinuous() bool {
	return a.kind != NoOp && a.kind != GOBOSelection
}

func (a SimpleAction) String() string {
	switch {
	case a.kind.IsVariable():
		return fmt.Sprintf("%s[%s]", a.kind, a.span)
	case a.kind == IntensityColor:
		return fmt.Sprintf("%s[%s]", a.kind, a.color)
	default:
		return a.kind.String()
	}
}

// Action is the meaning of a channel: one SimpleAction, or a Selection of Ranges.
type Action struct {
	simple SimpleAction
	ranges []Range
}

// Single wraps a SimpleAction covering the whole byte.
func Single(a SimpleAction) Action {
	return Action{simple: a}
}

// Selection builds a piecewise action. Ranges are kept ordered by their low
// bound and must not overlap. Gaps are allowed; scaling a value inside a gap fails.
func Selection(ranges ...Range) (Action, error) {
	if len(ranges) == 0 {
		return Action{}, errors.New("selection without ranges")
	}
	sorted := append([]Range(nil), ranges...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start() < sorted[j].Start() })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Start() <= sorted[i-1].End() {
			return Action{}, fmt.Errorf("%w: %s and %s", ErrOverlappingRanges, sorted[i-1], sorted[i])
		}
	}
	return Action{ranges: sorted}, nil
}

// MustSelection is Selection for built-in definitions.
func MustSelection(ranges ...Range) Action {
	a, err := Selection(ranges...)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Action) Equal(o Action) bool {
	return a.simple.Equal(o.simple) && slices.EqualFunc(a.ranges, o.ranges, Range.Equal)
}

func (a Action) IsSelection() bool { return len(a.ranges) > 0 }

// Simple returns the wrapped SimpleAction. Meaningless for selections.
func (a Action) Simple() SimpleAction { return a.simple }

// Ranges returns a copy of the selection ranges in ascending order.
func (a Action) Ranges() []Range {
	return append([]Range(nil), a.ranges...)
}

// Locate finds the Range containing v.
func (a Action) Locate(v uint8) (Range, bool) {
	i := sort.Search(len(a.ranges), func(i int) bool { return a.ranges[i].End() >= v })
	if i < len(a.ranges) && a.ranges[i].Contains(v) {
		return a.ranges[i], true
	}
	return Range{}, false
}

func (a Action) String() string {
	if !a.IsSelection() {
		return a.simple.String()
	}
	parts := make([]string, len(a.ranges))
	for i, r := range a.ranges {
		parts[i] = r.String()
	}
	return "selection{" + strings.Join(parts, " ") + "}"
}
