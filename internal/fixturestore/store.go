// Package fixturestore is the catalog of fixture templates: a trie keyed by path
// segments, safe for concurrent inserts and traversal.
package fixturestore

import (
	"sort"
	"sync"

	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/fixture"
)

// Store is one trie node. Each node has its own lock, so inserts under
// unrelated paths do not contend. Traversal sees inserts that race with it
// eventually, it is not a snapshot.
type Store struct {
	mu       sync.RWMutex
	fixtures map[string][]*fixture.Fixture // by model, in insertion order
	children map[string]*Store
}

func New() *Store {
	return &Store{
		fixtures: map[string][]*fixture.Fixture{},
		children: map[string]*Store{},
	}
}

// child returns the node below s named name, creating it if missing.
func (s *Store) child(name string) *Store {
	s.mu.RLock()
	c, ok := s.children[name]
	s.mu.RUnlock()
	if ok {
		return c
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok = s.children[name]; !ok {
		c = New()
		s.children[name] = c
	}
	return c
}

func (s *Store) lookupChild(name string) (*Store, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.children[name]
	return c, ok
}

// PutPath inserts f into the node at path, creating missing nodes. It reports
// false if a structurally equal fixture was already there.
func (s *Store) PutPath(path []string, f *fixture.Fixture) bool {
	n := s
	for _, seg := range path {
		n = n.child(seg)
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	same := n.fixtures[f.Model()]
	for _, e := range same {
		if e.Equal(f) {
			return false
		}
	}
	n.fixtures[f.Model()] = append(same, f)
	return true
}

// Put inserts f at its own catalog path.
func (s *Store) Put(f *fixture.Fixture) bool {
	return s.PutPath(f.Path(), f)
}

// Lookup resolves a full catalog path, node segments followed by the model name.
func (s *Store) Lookup(path []string) (*fixture.Fixture, bool) {
	if len(path) == 0 {
		return nil, false
	}
	n := s
	for _, seg := range path[:len(path)-1] {
		var ok bool
		if n, ok = n.lookupChild(seg); !ok {
			return nil, false
		}
	}
	n.mu.RLock()
	defer n.mu.RUnlock()
	if same := n.fixtures[path[len(path)-1]]; len(same) > 0 {
		return same[0], true
	}
	return nil, false
}

// IsEmpty reports whether no fixture exists in the subtree of s.
func (s *Store) IsEmpty() bool {
	s.mu.RLock()
	if len(s.fixtures) > 0 {
		s.mu.RUnlock()
		return false
	}
	children := make([]*Store, 0, len(s.children))
	for _, c := range s.children {
		children = append(children, c)
	}
	s.mu.RUnlock()

	for _, c := range children {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

// sortedFixtures copies the fixtures of the node, ordered by model. Fixtures
// sharing a model keep their insertion order.
func (s *Store) sortedFixtures() []*fixture.Fixture {
	s.mu.RLock()
	models := make([]string, 0, len(s.fixtures))
	for m := range s.fixtures {
		models = append(models, m)
	}
	sort.Strings(models)
	var items []*fixture.Fixture
	for _, m := range models {
		items = append(items, s.fixtures[m]...)
	}
	s.mu.RUnlock()
	return items
}

type namedChild struct {
	name string
	node *Store
}

// sortedChildren copies the children of the node, ordered by segment name.
func (s *Store) sortedChildren() []namedChild {
	s.mu.RLock()
	items := make([]namedChild, 0, len(s.children))
	for name, c := range s.children {
		items = append(items, namedChild{name: name, node: c})
	}
	s.mu.RUnlock()

	sort.Slice(items, func(i, j int) bool { return items[i].name < items[j].name })
	return items
}
