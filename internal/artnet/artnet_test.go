package artnet

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/address"
	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/clientmqtt"
	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/logger"
	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/show"
	"github.com/Haba1234/go-artnet"
	"github.com/stretchr/testify/assert"
)

func TestStopWithoutStart(t *testing.T) {
	c := &ArtNet{
		logger: logger.NewNop(),
		sender: artnet.NewController("test", net.IPv4(127, 0, 0, 1), artnet.NewDefaultLogger("info")),
		done:   make(chan struct{}),
	}

	assert.NotPanics(t, c.Stop)
	assert.NotPanics(t, c.Stop, "second Stop")
}

func appliedOverride(w *show.Workspace, a address.ChannelAddress) (v uint8, ok bool) {
	w.Applied(func(s *show.Show) {
		if o, found := s.Overrides.Get(a.Universe.Int()); found {
			v, ok = o.Get(a.Channel)
		}
	})
	return v, ok
}

func TestConsumeAppliesEdits(t *testing.T) {
	w := show.NewWorkspace(logger.NewNop(), show.New())
	ch := make(chan clientmqtt.DataCh, 2)
	ch <- clientmqtt.DataCh{
		Universe: address.MustUniverseID(1),
		Commands: []clientmqtt.Command{{Channel: address.MustChannelID(4), Value: 77}},
	}
	ch <- clientmqtt.DataCh{
		Universe: address.MustUniverseID(1),
		Commands: []clientmqtt.Command{{Channel: address.MustChannelID(4), Value: 99}},
	}
	close(ch)

	Consume(context.Background(), w, true, ch)

	v, ok := appliedOverride(w, at(1, 4))
	assert.True(t, ok)
	assert.Equal(t, uint8(99), v, "last write wins")
	assert.False(t, w.Pending())
}

func TestConsumeWithoutAutoApply(t *testing.T) {
	w := show.NewWorkspace(logger.NewNop(), show.New())
	ch := make(chan clientmqtt.DataCh, 1)
	ch <- clientmqtt.DataCh{
		Universe: address.MustUniverseID(0),
		Commands: []clientmqtt.Command{{Channel: address.MustChannelID(0), Value: 1}},
	}
	close(ch)

	Consume(context.Background(), w, false, ch)

	_, ok := appliedOverride(w, at(0, 0))
	assert.False(t, ok)
	assert.True(t, w.Pending())
}

func TestConsumeStopsOnCancel(t *testing.T) {
	w := show.NewWorkspace(logger.NewNop(), show.New())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		Consume(ctx, w, true, make(chan clientmqtt.DataCh))
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Consume did not return after cancel")
	}
}
