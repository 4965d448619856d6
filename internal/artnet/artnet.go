package artnet

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/address"
	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/clientmqtt"
	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/config"
	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/logger"
	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/show"
	"github.com/Haba1234/go-artnet"
)

const nodeReportInterval = 30 * time.Second

// ArtNet sends the applied show as Art-Net (DMX over UDP/IP).
type ArtNet struct {
	logger      logger.Logger
	workspace   *show.Workspace
	autoApply   bool
	sender      *artnet.Controller
	sendTrigger chan struct{}
	ctx         context.Context
	dmxDataCh   <-chan clientmqtt.DataCh
	done        chan struct{}
	started     bool
	stopOnce    sync.Once
}

// NewController returns the output stage for ws.
func NewController(log logger.Logger, ws *show.Workspace, cfg config.ArtNetConf, autoApply bool) (*ArtNet, error) {
	ip, err := FindArtNetIP(cfg.Network)
	if err != nil {
		return nil, fmt.Errorf("failed to find the art-net IP: %w", err)
	}

	if len(ip) == 0 {
		return nil, errors.New("failed to find the art-net IP: No interface found")
	}

	host, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve hostname: %w", err)
	}

	host = strings.ToLower(strings.Split(host, ".")[0])
	log.With(logger.Fields{"module": "art-net"}).Infof("Using ArtNet IP %s and hostname %s", ip.String(), host)

	senderLogger := artnet.NewDefaultLogger("info")

	control := &ArtNet{
		logger:      log,
		workspace:   ws,
		autoApply:   autoApply,
		sender:      artnet.NewController(host, ip, senderLogger, artnet.MaxFPS(cfg.MaxFPS)),
		sendTrigger: make(chan struct{}, 1),
		done:        make(chan struct{}),
	}

	return control, nil
}

// Start the ArtNet. Commands received on dmxDataCh edit the workspace.
func (c *ArtNet) Start(ctx context.Context, dmxDataCh <-chan clientmqtt.DataCh) error {
	if err := c.sender.Start(); err != nil {
		return fmt.Errorf("failed to start Controller: %w", err)
	}

	c.started = true
	c.ctx = ctx
	c.dmxDataCh = dmxDataCh
	go c.sendBackground()
	go c.debugDevices()
	go c.dataProcessing()
	c.Refresh()
	return nil
}

// Stop the ArtNet. It is safe to call more than once, and on a controller
// whose Start failed.
func (c *ArtNet) Stop() {
	c.stopOnce.Do(func() {
		close(c.done)
		if c.started {
			c.sender.Stop()
		}
	})
}

// Refresh schedules sending the applied show. Triggers coalesce.
func (c *ArtNet) Refresh() {
	select {
	case c.sendTrigger <- struct{}{}:
	default:
	}
}

func (c *ArtNet) sendBackground() {
	for {
		select {
		case <-c.ctx.Done():
			return
		case <-c.done:
			return
		case <-c.sendTrigger:
			var frames FrameMap
			c.workspace.Applied(func(s *show.Show) {
				frames = RenderAll(s)
			})
			for u, dmx := range frames {
				c.logger.With(logger.Fields{"module": "art-net"}).Debugf("DMX. sending universe %s", u)
				c.sender.SendDMXToAddress(dmx.toByteSlice(), universeToAddress(u))
			}
		}
	}
}

func (c *ArtNet) dataProcessing() {
	for {
		select {
		case <-c.ctx.Done():
			return
		case <-c.done:
			return
		case d, ok := <-c.dmxDataCh:
			if !ok {
				return
			}
			c.logger.With(logger.Fields{"module": "art-net"}).Debugf("DMX. %d commands for universe %s from MQTT", len(d.Commands), d.Universe)
			c.apply(d)
		}
	}
}

func (c *ArtNet) apply(d clientmqtt.DataCh) {
	if edit(c.workspace, c.autoApply, d) {
		c.Refresh()
	}
}

// Consume edits ws with every command batch read from ch until ctx ends or ch
// is closed. It takes the place of the output stage when Art-Net is disabled.
func Consume(ctx context.Context, ws *show.Workspace, autoApply bool, ch <-chan clientmqtt.DataCh) {
	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-ch:
			if !ok {
				return
			}
			edit(ws, autoApply, d)
		}
	}
}

// edit reports whether the batch was also applied.
func edit(ws *show.Workspace, autoApply bool, d clientmqtt.DataCh) bool {
	_ = ws.Edit(func(s *show.Show) error {
		ApplyCommands(s, d)
		return nil
	})
	if !autoApply {
		return false
	}
	ws.Apply()
	return true
}

// ApplyCommands writes the overrides of d into s.
func ApplyCommands(s *show.Show, d clientmqtt.DataCh) {
	for _, cmd := range d.Commands {
		a := address.ChannelAddress{Universe: d.Universe, Channel: cmd.Channel}
		if cmd.Clear {
			s.ClearOverride(a)
			continue
		}
		s.SetOverride(a, cmd.Value)
	}
}

// universeToAddress converts a universe id to an art-net address:
// the high byte is the Net, the low byte the SubUni.
func universeToAddress(universe address.UniverseID) artnet.Address {
	v := make([]uint8, 2)
	binary.BigEndian.PutUint16(v, universe.Uint16())

	return artnet.Address{
		Net:    v[0],
		SubUni: v[1],
	}
}

// NodeToString returns a string representation of the given Node.
func NodeToString(n *artnet.ControlledNode) (string, NodeTopic) {
	var inputs, outputs []string
	var out []uint16
	var outStr []string
	for _, p := range n.Node.InputPorts {
		inputs = append(inputs, fmt.Sprintf("%s: %s", p.Address.String(), p.Type.String()))
	}

	for _, p := range n.Node.OutputPorts {
		outputs = append(outputs, fmt.Sprintf("%s: %s", p.Address.String(), p.Type.String()))
		out = append(out, uint16(p.Address.Integer()))
		outStr = append(outStr, p.Address.String())
	}

	return fmt.Sprintf(
			" | IP=%s name=%q type=%q manufacturer=%q desc=%q inputs=%q outputs=%q",
			n.UDPAddress.String(), n.Node.Name, n.Node.Type,
			n.Node.Manufacturer, n.Node.Description,
			strings.Join(inputs, "; "), strings.Join(outputs, "; "),
		), NodeTopic{
			Name:      n.Node.Name,
			OutputStr: outStr,
			Output:    out,
		}
}

func ips(nodes []*artnet.ControlledNode) (ips IpsType) {
	ips = IpsType{}
	for _, n := range nodes {
		node, out := NodeToString(n)
		ips.Ips = append(ips.Ips, node)
		ips.Topics = append(ips.Topics, out)
	}
	return ips
}

// debugDevices periodically reports the discovered nodes and resends the
// applied show, so nodes that appeared late receive it.
func (c *ArtNet) debugDevices() {
	t := time.NewTicker(nodeReportInterval)
	defer t.Stop()
	for {
		select {
		case <-c.ctx.Done():
			return
		case <-c.done:
			return
		case <-t.C:
			dev := ips(c.sender.Nodes)
			c.logger.With(logger.Fields{"module": "art-net"}).Debugf("Currently %d devices are registered: %v", len(dev.Ips), dev.Ips)
			for _, top := range dev.Topics {
				c.logger.With(logger.Fields{"module": "art-net"}).Debugf("node %s outputs %v", top.Name, top.OutputStr)
			}
			c.Refresh()
		}
	}
}
