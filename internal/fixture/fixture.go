package fixture

import (
	"slices"
	"strings"
)

// Fixture is an immutable template of a physical instrument's channel layout.
// Devices share a *Fixture; nothing mutates it after New.
type Fixture struct {
	manufacturer string
	path         []string
	model        string
	fixtureType  string
	channels     []Channel
}

// New builds a fixture. path holds optional catalog segments below the manufacturer.
// Channel i is at offset i from a device's start channel.
func New(manufacturer, model, fixtureType string, channels []Channel, path ...string) *Fixture {
	return &Fixture{
		manufacturer: manufacturer,
		path:         append([]string(nil), path...),
		model:        model,
		fixtureType:  fixtureType,
		channels:     append([]Channel(nil), channels...),
	}
}

func (f *Fixture) Manufacturer() string { return f.manufacturer }

func (f *Fixture) Model() string { return f.model }

func (f *Fixture) Type() string { return f.fixtureType }

// Path is the catalog location of the fixture: the manufacturer followed by
// the extra segments. The model is not part of it.
func (f *Fixture) Path() []string {
	p := make([]string, 0, len(f.path)+1)
	p = append(p, f.manufacturer)
	return append(p, f.path...)
}

func (f *Fixture) ChannelCount() int { return len(f.channels) }

func (f *Fixture) Channel(offset int) (Channel, bool) {
	if offset < 0 || offset >= len(f.channels) {
		return Channel{}, false
	}
	return f.channels[offset], true
}

func (f *Fixture) Channels() []Channel {
	return append([]Channel(nil), f.channels...)
}

// Equal reports whether f and o have the same manufacturer, path, model, type
// and channels.
func (f *Fixture) Equal(o *Fixture) bool {
	if f == nil || o == nil {
		return f == o
	}
	if f == o {
		return true
	}
	return f.manufacturer == o.manufacturer &&
		f.model == o.model &&
		f.fixtureType == o.fixtureType &&
		slices.Equal(f.path, o.path) &&
		slices.EqualFunc(f.channels, o.channels, Channel.Equal)
}

func (f *Fixture) String() string {
	return strings.Join(append(f.Path(), f.model), "/")
}
