package universe

import (
	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/address"
)

// Universes is a list of per-universe values indexed by universe id. It grows on
// demand and never shrinks. Every slot is a distinct value.
type Universes[T any] struct {
	slots []*T
	newFn func() T
}

// NewUniverses returns an empty container. newFn creates the value of a new
// slot; nil means the zero value of T.
func NewUniverses[T any](newFn func() T) *Universes[T] {
	return &Universes[T]{newFn: newFn}
}

func (u *Universes[T]) newSlot() *T {
	var v T
	if u.newFn != nil {
		v = u.newFn()
	}
	return &v
}

// CreateOrGet returns the slot of id, growing the list to id+1 first if needed.
func (u *Universes[T]) CreateOrGet(id address.UniverseID) *T {
	for len(u.slots) <= id.Int() {
		u.slots = append(u.slots, u.newSlot())
	}
	return u.slots[id.Int()]
}

// Get returns an existing slot without growing the list.
func (u *Universes[T]) Get(index int) (*T, bool) {
	if index < 0 || index >= len(u.slots) {
		return nil, false
	}
	return u.slots[index], true
}

func (u *Universes[T]) Len() int { return len(u.slots) }

func (u *Universes[T]) IsEmpty() bool { return len(u.slots) == 0 }

// Each calls fn for every slot in ascending id order until fn returns false.
func (u *Universes[T]) Each(fn func(id address.UniverseID, v *T) bool) {
	for i, v := range u.slots {
		if !fn(address.MustUniverseID(i), v) {
			return
		}
	}
}

// Clone copies the container, using cloneFn to copy each slot.
func (u *Universes[T]) Clone(cloneFn func(*T) T) *Universes[T] {
	c := &Universes[T]{
		slots: make([]*T, len(u.slots)),
		newFn: u.newFn,
	}
	for i, v := range u.slots {
		nv := cloneFn(v)
		c.slots[i] = &nv
	}
	return c
}

// Equal compares slot by slot. A missing slot equals a fresh one, so
// containers that only differ by untouched growth are equal.
func (u *Universes[T]) Equal(o *Universes[T], eq func(a, b *T) bool) bool {
	n := len(u.slots)
	if len(o.slots) > n {
		n = len(o.slots)
	}
	for i := 0; i < n; i++ {
		a, ok := u.Get(i)
		if !ok {
			a = u.newSlot()
		}
		b, ok := o.Get(i)
		if !ok {
			b = o.newSlot()
		}
		if !eq(a, b) {
			return false
		}
	}
	return true
}
