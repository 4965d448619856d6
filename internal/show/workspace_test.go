package show

import (
	"sync"
	"testing"

	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/address"
	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/fixture"
	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appliedDevices(w *Workspace, u int) int {
	n := 0
	w.Applied(func(s *Show) {
		if d, ok := s.Devices.Get(u); ok {
			n = d.Len()
		}
	})
	return n
}

func TestWorkspaceApply(t *testing.T) {
	w := NewWorkspace(logger.NewNop(), nil)
	assert.False(t, w.Pending())

	err := w.Edit(func(s *Show) error {
		return s.Place(address.MustUniverseID(0), fixture.NewDevice("a", address.MustChannelID(0), strobeFixture()))
	})
	require.NoError(t, err)
	assert.True(t, w.Pending())
	assert.Equal(t, 0, appliedDevices(w, 0))

	w.Apply()
	assert.False(t, w.Pending())
	assert.Equal(t, 1, appliedDevices(w, 0))

	// edits after apply do not leak into the applied copy
	require.NoError(t, w.Edit(func(s *Show) error {
		return s.Place(address.MustUniverseID(0), fixture.NewDevice("b", address.MustChannelID(10), strobeFixture()))
	}))
	assert.Equal(t, 1, appliedDevices(w, 0))
}

func TestWorkspaceReset(t *testing.T) {
	w := NewWorkspace(logger.NewNop(), New())
	require.NoError(t, w.Edit(func(s *Show) error {
		s.GlobalMultiplier = 0
		return nil
	}))
	require.True(t, w.Pending())

	w.Reset()
	assert.False(t, w.Pending())
	require.NoError(t, w.Edit(func(s *Show) error {
		assert.Equal(t, uint8(255), s.GlobalMultiplier)
		return nil
	}))
}

func TestWorkspaceConcurrentReaders(t *testing.T) {
	w := NewWorkspace(logger.NewNop(), nil)
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				w.Applied(func(s *Show) { _ = s.GlobalMultiplier })
			}
		}()
	}
	for j := 0; j < 100; j++ {
		_ = w.Edit(func(s *Show) error {
			s.SetOverride(address.ChannelAddress{Channel: address.MustChannelID(j)}, uint8(j))
			return nil
		})
		w.Apply()
	}
	wg.Wait()

	w.Applied(func(s *Show) {
		o, ok := s.Overrides.Get(0)
		require.True(t, ok)
		assert.Equal(t, 100, o.Count())
	})
}
