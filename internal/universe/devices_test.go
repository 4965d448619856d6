package universe

import (
	"errors"
	"testing"

	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/address"
	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/fixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dimmerPack(n int) *fixture.Fixture {
	channels := make([]fixture.Channel, n)
	for i := range channels {
		channels[i] = fixture.SimpleChannel(fixture.Simple(fixture.IntensityMasterDimmer))
	}
	return fixture.New("Acme", "Pack", "Dimmer", channels)
}

func device(name string, start, width int) fixture.Device {
	return fixture.NewDevice(name, address.MustChannelID(start), dimmerPack(width))
}

func starts(u *Devices) []int {
	var s []int
	for _, d := range u.All() {
		s = append(s, d.Start.Int())
	}
	return s
}

func TestTryInsertNoOverlap(t *testing.T) {
	var u Devices
	d1 := device("d1", 0, 10)
	require.NoError(t, u.TryInsert(d1))
	require.NoError(t, u.TryInsert(device("d2", 10, 10)))

	err := u.TryInsert(device("d3", 5, 10))
	assert.ErrorIs(t, err, ErrChannelAlreadyAssigned)

	i, ok := u.Find(d1.ID)
	require.True(t, ok)
	removed, err := u.Remove(i)
	require.NoError(t, err)
	assert.Equal(t, d1.ID, removed.ID)

	// [5,15) still hits d2 at [10,20)
	assert.ErrorIs(t, u.TryInsert(device("d3", 5, 10)), ErrChannelAlreadyAssigned)
	require.NoError(t, u.TryInsert(device("d3", 0, 10)))
	assert.Equal(t, []int{0, 10}, starts(&u))
}

func TestTryInsertAfterRemovalOfOverlap(t *testing.T) {
	var u Devices
	require.NoError(t, u.TryInsert(device("d1", 0, 10)))
	require.ErrorIs(t, u.TryInsert(device("d3", 5, 10)), ErrChannelAlreadyAssigned)

	_, err := u.Remove(0)
	require.NoError(t, err)
	require.NoError(t, u.TryInsert(device("d3", 5, 10)))
	assert.Equal(t, []int{5}, starts(&u))
}

func TestTryInsertCollisions(t *testing.T) {
	tests := []struct {
		name  string
		start int
		width int
		want  error
	}{
		{"same start", 20, 1, ErrChannelAlreadyAssigned},
		{"tail of predecessor", 25, 2, ErrChannelAlreadyAssigned},
		{"into successor", 15, 6, ErrChannelAlreadyAssigned},
		{"spanning", 15, 20, ErrChannelAlreadyAssigned},
		{"gap before", 10, 10, nil},
		{"adjacent after", 30, 5, nil},
		{"fills the universe end", 500, 12, nil},
		{"past the universe end", 505, 8, ErrEndTooHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var u Devices
			require.NoError(t, u.TryInsert(device("base", 20, 10)))

			err := u.TryInsert(device(tt.name, tt.start, tt.width))
			if tt.want == nil {
				require.NoError(t, err)
				assert.Equal(t, 2, u.Len())
				return
			}
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, 1, u.Len())
		})
	}
}

func TestTryInsertKeepsOrder(t *testing.T) {
	var u Devices
	for _, s := range []int{300, 10, 200, 0, 100} {
		require.NoError(t, u.TryInsert(device("d", s, 5)))
	}
	assert.Equal(t, []int{0, 10, 100, 200, 300}, starts(&u))
}

func TestPlace(t *testing.T) {
	var u Devices
	d, err := u.Place("par", 12, dimmerPack(3), fixture.NoSelection)
	require.NoError(t, err)
	assert.Equal(t, 15, d.End())

	_, err = u.Place("par", 512, dimmerPack(3), fixture.NoSelection)
	var placement *PlacementError
	require.True(t, errors.As(err, &placement))
	assert.ErrorIs(t, err, ErrStartTooHigh)
	assert.Equal(t, 512, placement.Start)
	assert.Equal(t, 515, placement.End)

	_, err = u.Place("par", 510, dimmerPack(3), fixture.NoSelection)
	assert.ErrorIs(t, err, ErrEndTooHigh)

	_, err = u.Place("par", -1, dimmerPack(3), fixture.NoSelection)
	var rangeErr *address.RangeError
	require.True(t, errors.As(err, &rangeErr))
	assert.ErrorIs(t, err, address.ErrOutOfRange)
	assert.NotErrorIs(t, err, ErrStartTooHigh)
	assert.Equal(t, -1, rangeErr.Value)
	assert.Equal(t, 1, u.Len())

	assert.ErrorIs(t, u.TryInsert(fixture.Device{}), ErrNoFixture)
}

func TestRemove(t *testing.T) {
	var u Devices
	_, err := u.Remove(0)
	assert.ErrorIs(t, err, ErrNoSuchDevice)

	d := device("d", 0, 1)
	require.NoError(t, u.TryInsert(d))
	_, err = u.RemoveByID(d.ID)
	require.NoError(t, err)
	assert.True(t, u.IsEmpty())

	_, err = u.RemoveByID(d.ID)
	assert.ErrorIs(t, err, ErrNoSuchDevice)
}

func TestReplace(t *testing.T) {
	var u Devices
	require.NoError(t, u.TryInsert(device("a", 0, 10)))
	require.NoError(t, u.TryInsert(device("b", 10, 10)))

	wider := device("a", 0, 15)
	err := u.Replace(0, wider)
	assert.ErrorIs(t, err, ErrChannelAlreadyAssigned)
	got, _ := u.At(0)
	assert.Equal(t, "a", got.Name)
	assert.Equal(t, 10, got.End())

	moved := device("a", 20, 10)
	require.NoError(t, u.Replace(0, moved))
	assert.Equal(t, []int{10, 20}, starts(&u))
}

func TestOwner(t *testing.T) {
	var u Devices
	d := device("a", 10, 5)
	require.NoError(t, u.TryInsert(d))

	owner, offset, ok := u.Owner(address.MustChannelID(12))
	require.True(t, ok)
	assert.Equal(t, d.ID, owner.ID)
	assert.Equal(t, 2, offset)

	_, offset, ok = u.Owner(address.MustChannelID(10))
	assert.True(t, ok)
	assert.Equal(t, 0, offset)

	for _, ch := range []int{0, 9, 15, 511} {
		_, _, ok = u.Owner(address.MustChannelID(ch))
		assert.False(t, ok, "channel %d", ch)
	}
}

func TestDevicesCloneEqual(t *testing.T) {
	var u Devices
	require.NoError(t, u.TryInsert(device("a", 0, 4)))
	c := u.Clone()
	assert.True(t, u.Equal(&c))

	require.NoError(t, c.TryInsert(device("b", 4, 4)))
	assert.False(t, u.Equal(&c))
	assert.Equal(t, 1, u.Len())
}
