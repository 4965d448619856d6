package universe

import (
	"testing"

	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/address"
	"github.com/stretchr/testify/assert"
)

func TestOverrides(t *testing.T) {
	o := NewOverrides()
	ch := address.MustChannelID(511)

	_, ok := o.Get(ch)
	assert.False(t, ok)

	o.Set(ch, 0)
	v, ok := o.Get(ch)
	assert.True(t, ok)
	assert.Equal(t, uint8(0), v)
	assert.Equal(t, 1, o.Count())

	o.Clear(ch)
	assert.Equal(t, 0, o.Count())

	o.SetMultiplier(128)
	o.Set(address.MustChannelID(1), 9)
	o.ClearAll()
	assert.Equal(t, 0, o.Count())
	assert.Equal(t, uint8(128), o.Multiplier())
}
