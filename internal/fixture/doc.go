// Package fixture describes what the channels of a lighting fixture mean.
//
// A Fixture is an immutable template: an ordered list of Channels, each carrying
// an Action. An Action is either a single SimpleAction or a Selection of byte
// Ranges with one SimpleAction each. Scale turns a raw channel byte into the
// semantic Output it drives. Position actions are parametric: their total travel
// is a Variable resolved against the variant chosen for a Device.
package fixture
