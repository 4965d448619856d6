// Package address holds the validated identifiers used to address a DMX channel:
// a 15 bit universe id and a 9 bit channel id.
package address

import (
	"errors"
	"fmt"
)

const (
	// MaxUniverse is the highest legal universe id (15 bits).
	MaxUniverse = 1<<15 - 1
	// MaxChannel is the highest legal channel id (9 bits).
	MaxChannel = 1<<9 - 1
	// ChannelsPerUniverse is the number of addressable channels in one universe.
	ChannelsPerUniverse = MaxChannel + 1
)

// ErrOutOfRange is returned when a raw integer does not fit the identifier width.
var ErrOutOfRange = errors.New("value out of range")

// Kind names the identifier a RangeError was raised for.
type Kind string

const (
	KindUniverse Kind = "universe"
	KindChannel  Kind = "channel"
)

// RangeError describes a rejected conversion.
type RangeError struct {
	Kind  Kind
	Value int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s id %d is outside 0..%d", e.Kind, e.Value, e.Max)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// UniverseID identifies a universe. The zero value is universe 0.
type UniverseID struct {
	v uint16
}

// NewUniverseID validates v against the 15 bit universe space.
func NewUniverseID(v int) (UniverseID, error) {
	if v < 0 || v > MaxUniverse {
		return UniverseID{}, &RangeError{Kind: KindUniverse, Value: v, Max: MaxUniverse}
	}
	return UniverseID{v: uint16(v)}, nil
}

// MustUniverseID is NewUniverseID for constants. It panics on invalid input.
func MustUniverseID(v int) UniverseID {
	u, err := NewUniverseID(v)
	if err != nil {
		panic(err)
	}
	return u
}

func (u UniverseID) Int() int { return int(u.v) }

func (u UniverseID) Uint16() uint16 { return u.v }

func (u UniverseID) String() string { return fmt.Sprintf("%d", u.v) }

// Compare returns -1, 0 or +1.
func (u UniverseID) Compare(o UniverseID) int {
	return compare(u.v, o.v)
}

func (u UniverseID) Less(o UniverseID) bool { return u.v < o.v }

// ChannelID identifies a channel inside a universe. The zero value is channel 0.
type ChannelID struct {
	v uint16
}

// NewChannelID validates v against the 9 bit channel space.
func NewChannelID(v int) (ChannelID, error) {
	if v < 0 || v > MaxChannel {
		return ChannelID{}, &RangeError{Kind: KindChannel, Value: v, Max: MaxChannel}
	}
	return ChannelID{v: uint16(v)}, nil
}

// MustChannelID is NewChannelID for constants. It panics on invalid input.
func MustChannelID(v int) ChannelID {
	c, err := NewChannelID(v)
	if err != nil {
		panic(err)
	}
	return c
}

// ChannelFromByte widens a byte. Every byte value is a legal channel.
func ChannelFromByte(b uint8) ChannelID {
	return ChannelID{v: uint16(b)}
}

func (c ChannelID) Int() int { return int(c.v) }

func (c ChannelID) Uint16() uint16 { return c.v }

func (c ChannelID) String() string { return fmt.Sprintf("%d", c.v) }

// Compare returns -1, 0 or +1.
func (c ChannelID) Compare(o ChannelID) int {
	return compare(c.v, o.v)
}

func (c ChannelID) Less(o ChannelID) bool { return c.v < o.v }

// ChannelAddress is a fully qualified channel. Ordered by universe, then channel.
type ChannelAddress struct {
	Universe UniverseID
	Channel  ChannelID
}

// NewChannelAddress validates both parts of a raw address.
func NewChannelAddress(universe, channel int) (ChannelAddress, error) {
	u, err := NewUniverseID(universe)
	if err != nil {
		return ChannelAddress{}, err
	}
	c, err := NewChannelID(channel)
	if err != nil {
		return ChannelAddress{}, err
	}
	return ChannelAddress{Universe: u, Channel: c}, nil
}

func (a ChannelAddress) Compare(o ChannelAddress) int {
	if r := a.Universe.Compare(o.Universe); r != 0 {
		return r
	}
	return a.Channel.Compare(o.Channel)
}

func (a ChannelAddress) String() string {
	return fmt.Sprintf("%s.%s", a.Universe, a.Channel)
}

func compare(a, b uint16) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
