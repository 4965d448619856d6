package fixturestore

import (
	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/fixture"
)

// Item is a selectable fixture of a Menu.
type Item struct {
	// Path is the full catalog path, ending with the model.
	Path     []string         `json:"path"`
	Model    string           `json:"model"`
	Type     string           `json:"type"`
	Channels int              `json:"channels"`
	Fixture  *fixture.Fixture `json:"-"`
}

// Menu is one level of the catalog as presented to a user.
type Menu struct {
	Name     string  `json:"name"`
	Items    []Item  `json:"items,omitempty"`
	Children []*Menu `json:"children,omitempty"`
}

// Walk visits every fixture depth first: the fixtures of a node ordered by
// model, then its non-empty children ordered by segment name. path ends with
// the model.
func (s *Store) Walk(fn func(path []string, f *fixture.Fixture)) {
	s.walk(nil, fn)
}

func (s *Store) walk(path []string, fn func(path []string, f *fixture.Fixture)) {
	// full slice so every append below copies
	path = path[:len(path):len(path)]
	for _, f := range s.sortedFixtures() {
		fn(append(path, f.Model()), f)
	}
	for _, c := range s.sortedChildren() {
		if c.node.IsEmpty() {
			continue
		}
		c.node.walk(append(path, c.name), fn)
	}
}

// Menu builds the catalog tree in Walk order. Empty subtrees are left out.
func (s *Store) Menu() *Menu {
	return s.menu("", nil)
}

func (s *Store) menu(name string, path []string) *Menu {
	m := &Menu{Name: name}
	for _, f := range s.sortedFixtures() {
		itemPath := make([]string, 0, len(path)+1)
		itemPath = append(append(itemPath, path...), f.Model())
		m.Items = append(m.Items, Item{
			Path:     itemPath,
			Model:    f.Model(),
			Type:     f.Type(),
			Channels: f.ChannelCount(),
			Fixture:  f,
		})
	}
	for _, c := range s.sortedChildren() {
		if c.node.IsEmpty() {
			continue
		}
		childPath := make([]string, 0, len(path)+1)
		childPath = append(append(childPath, path...), c.name)
		m.Children = append(m.Children, c.node.menu(c.name, childPath))
	}
	return m
}
