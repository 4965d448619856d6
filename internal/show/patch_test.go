package show

import (
	"testing"

	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/config"
	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/fixture"
	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/fixturestore"
	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/universe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func TestSplitPath(t *testing.T) {
	assert.Equal(t, []string{"VRSL", "Standard Par Light"}, SplitPath("/VRSL/ Standard Par Light/"))
	assert.Nil(t, SplitPath(""))
}

func TestApplyPatch(t *testing.T) {
	store := fixturestore.New()
	store.PopulateDefaults()
	s := New()

	err := ApplyPatch(store, s, []config.PatchConf{
		{Name: "par", Universe: 1, Channel: 0, Fixture: "VRSL/Standard Par Light"},
		{Name: "mover", Universe: 1, Channel: 13, Fixture: "VRSL/Standard Mover Spotlight", Variant: intp(2)},
	})
	require.NoError(t, err)

	devices, ok := s.Devices.Get(1)
	require.True(t, ok)
	all := devices.All()
	require.Len(t, all, 2)
	assert.Equal(t, 13, all[0].End())
	assert.Equal(t, fixture.NoSelection, all[0].Variant)
	assert.Equal(t, 2, all[1].Variant)
}

func TestApplyPatchErrors(t *testing.T) {
	store := fixturestore.New()
	store.PopulateDefaults()
	s := New()

	err := ApplyPatch(store, s, []config.PatchConf{
		{Name: "ok", Universe: 0, Channel: 0, Fixture: "VRSL/Standard Laser"},
		{Name: "overlap", Universe: 0, Channel: 5, Fixture: "VRSL/Standard Laser"},
		{Name: "unknown", Universe: 0, Channel: 100, Fixture: "VRSL/Nope"},
		{Name: "huge universe", Universe: 1 << 15, Channel: 0, Fixture: "VRSL/Standard Laser"},
		{Name: "late start", Universe: 0, Channel: 600, Fixture: "VRSL/Standard Laser"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, universe.ErrChannelAlreadyAssigned)
	assert.ErrorIs(t, err, ErrUnknownFixture)
	assert.ErrorIs(t, err, universe.ErrStartTooHigh)

	devices, _ := s.Devices.Get(0)
	assert.Equal(t, 1, devices.Len())
}
