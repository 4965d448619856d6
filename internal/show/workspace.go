package show

import (
	"sync"

	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/logger"
)

// Workspace separates the show being edited from the applied show read by the
// output stage. Edits stay pending until Apply publishes a copy of them.
type Workspace struct {
	log logger.Logger

	editMu sync.Mutex
	edit   *Show

	mu      sync.RWMutex
	applied *Show
}

// NewWorkspace starts with initial as both the edited and the applied show.
func NewWorkspace(log logger.Logger, initial *Show) *Workspace {
	if initial == nil {
		initial = New()
	}
	return &Workspace{
		log:     log,
		edit:    initial,
		applied: initial.Clone(),
	}
}

// Edit runs fn on the edited show. fn must not keep the pointer.
func (w *Workspace) Edit(fn func(s *Show) error) error {
	w.editMu.Lock()
	defer w.editMu.Unlock()
	return fn(w.edit)
}

// Apply publishes the edited show to readers of the applied show.
func (w *Workspace) Apply() {
	w.editMu.Lock()
	next := w.edit.Clone()
	w.editMu.Unlock()

	w.mu.Lock()
	w.applied = next
	w.mu.Unlock()

	w.log.With(logger.Fields{"module": "workspace"}).Debug("pending changes applied")
}

// Pending reports whether the edited show differs from the applied one.
func (w *Workspace) Pending() bool {
	w.editMu.Lock()
	defer w.editMu.Unlock()
	w.mu.RLock()
	defer w.mu.RUnlock()
	return !w.edit.Equal(w.applied)
}

// Reset drops pending edits.
func (w *Workspace) Reset() {
	w.mu.RLock()
	current := w.applied.Clone()
	w.mu.RUnlock()

	w.editMu.Lock()
	w.edit = current
	w.editMu.Unlock()

	w.log.With(logger.Fields{"module": "workspace"}).Debug("pending changes discarded")
}

// Applied runs fn with the applied show under the read lock. fn must be short
// and must not modify the show.
func (w *Workspace) Applied(fn func(s *Show)) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	fn(w.applied)
}
