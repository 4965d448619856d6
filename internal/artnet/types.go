package artnet

import "github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/address"

// Frame is the 512 byte DMX payload of one universe.
type Frame [address.ChannelsPerUniverse]byte

func (f Frame) toByteSlice() [512]byte {
	return f
}

// FrameMap holds the frames of all universes that have output.
type FrameMap map[address.UniverseID]Frame

type NodeTopic struct {
	Name      string
	OutputStr []string
	Output    []uint16
}

type IpsType struct {
	Ips    []string
	Topics []NodeTopic
}
