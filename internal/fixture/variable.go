package fixture

import (
	"fmt"
	"slices"
)

// NoSelection selects the default of a Variable.
const NoSelection = -1

// Variable is a fixture parameter that is either fixed or picked from a list of
// variants. The zero value is Fixed of T's zero value.
type Variable[T any] struct {
	choice  bool
	value   T
	options []T
}

// Fixed returns a Variable that always resolves to v.
func Fixed[T any](v T) Variable[T] {
	return Variable[T]{value: v}
}

// Choice returns a Variable picking from options, falling back to def.
func Choice[T any](options []T, def T) Variable[T] {
	return Variable[T]{
		choice:  true,
		value:   def,
		options: append([]T(nil), options...),
	}
}

// Select resolves the variable. Indices outside the option list, NoSelection
// included, resolve to the default. Select never fails.
func (v Variable[T]) Select(index int) T {
	if !v.choice || index < 0 || index >= len(v.options) {
		return v.value
	}
	return v.options[index]
}

func (v Variable[T]) IsFixed() bool { return !v.choice }

// Default is the value of a fixed variable, or the fallback of a choice.
func (v Variable[T]) Default() T { return v.value }

// Options returns a copy of the selectable variants. Nil for fixed variables.
func (v Variable[T]) Options() []T {
	if !v.choice {
		return nil
	}
	return append([]T(nil), v.options...)
}

// EqualFunc reports whether v and o are the same kind of variable with equal
// values, compared with eq.
func (v Variable[T]) EqualFunc(o Variable[T], eq func(a, b T) bool) bool {
	return v.choice == o.choice && eq(v.value, o.value) && slices.EqualFunc(v.options, o.options, eq)
}

func (v Variable[T]) String() string {
	if !v.choice {
		return fmt.Sprintf("set(%v)", v.value)
	}
	return fmt.Sprintf("choice(%v default %v)", v.options, v.value)
}
