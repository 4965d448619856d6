package clientmqtt

import "github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/address"

type MQTTConf struct {
	ClientID    string // ClientID is the unique client name at the broker.
	Schema      string // Schema is the connection type.
	Host        string // Host is the MQTT server address.
	Port        string // Port is the MQTT server port.
	User        string // User is the MQTT login.
	Password    string // Password is the MQTT password.
	Qos         byte   // Qos is used for subscriptions and publications.
	TopicPrefix string // TopicPrefix is prepended to all topics.
}

// DataCh carries validated override commands for one universe.
type DataCh struct {
	Universe address.UniverseID
	Commands []Command
}

// Command sets or clears the override of one channel.
type Command struct {
	Channel address.ChannelID
	Value   uint8
	Clear   bool
}

// DMXCommand is the wire form of a Command. A null Value clears the override.
type DMXCommand struct {
	Channel uint16 // Channel is the channel a command can talk to (0-511).
	Value   *uint8 // Value is the value a DMX channel can represent (0-255).
}

type Payload []DMXCommand
