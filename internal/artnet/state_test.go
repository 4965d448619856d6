package artnet

import (
	"testing"

	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/address"
	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/clientmqtt"
	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/fixture"
	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/show"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(u, c int) address.ChannelAddress {
	a, err := address.NewChannelAddress(u, c)
	if err != nil {
		panic(err)
	}
	return a
}

func TestRender(t *testing.T) {
	s := show.New()
	s.SetOverride(at(1, 0), 255)
	s.SetOverride(at(1, 511), 100)

	f := Render(s, address.MustUniverseID(1))
	assert.Equal(t, byte(255), f[0])
	assert.Equal(t, byte(100), f[511])
	assert.Equal(t, byte(0), f[1])

	o := s.Overrides.CreateOrGet(address.MustUniverseID(1))
	o.SetMultiplier(128)
	s.GlobalMultiplier = 255
	f = Render(s, address.MustUniverseID(1))
	assert.Equal(t, byte(128), f[0])

	s.GlobalMultiplier = 0
	f = Render(s, address.MustUniverseID(1))
	assert.Equal(t, byte(0), f[0])

	assert.Equal(t, Frame{}, Render(s, address.MustUniverseID(30)))
}

func TestRenderAll(t *testing.T) {
	s := show.New()
	s.SetOverride(at(2, 3), 10)
	f := fixture.New("Acme", "Dim", "Dimmer", []fixture.Channel{
		fixture.SimpleChannel(fixture.Simple(fixture.IntensityMasterDimmer)),
	})
	require.NoError(t, s.Place(address.MustUniverseID(5), fixture.NewDevice("d", address.MustChannelID(0), f)))
	s.Overrides.CreateOrGet(address.MustUniverseID(4))

	frames := RenderAll(s)
	require.Len(t, frames, 2)
	assert.Equal(t, byte(10), frames[address.MustUniverseID(2)][3])
	_, ok := frames[address.MustUniverseID(5)]
	assert.True(t, ok)
}

func TestApplyCommands(t *testing.T) {
	s := show.New()
	u := address.MustUniverseID(0)
	ApplyCommands(s, clientmqtt.DataCh{Universe: u, Commands: []clientmqtt.Command{
		{Channel: address.MustChannelID(1), Value: 50},
		{Channel: address.MustChannelID(2), Value: 60},
	}})
	ApplyCommands(s, clientmqtt.DataCh{Universe: u, Commands: []clientmqtt.Command{
		{Channel: address.MustChannelID(2), Clear: true},
	}})

	o, ok := s.Overrides.Get(0)
	require.True(t, ok)
	v, set := o.Get(address.MustChannelID(1))
	assert.True(t, set)
	assert.Equal(t, uint8(50), v)
	_, set = o.Get(address.MustChannelID(2))
	assert.False(t, set)
}

func TestUniverseToAddress(t *testing.T) {
	a := universeToAddress(address.MustUniverseID(0x0102))
	assert.Equal(t, uint8(0x01), a.Net)
	assert.Equal(t, uint8(0x02), a.SubUni)

	a = universeToAddress(address.MustUniverseID(address.MaxUniverse))
	assert.Equal(t, uint8(0x7f), a.Net)
	assert.Equal(t, uint8(0xff), a.SubUni)
}
