package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the process configuration.
type Config struct {
	Logger LogConf     `toml:"logger"` // Logger is the logger configuration.
	MQTT   MQTTConf    `toml:"mqtt"`   // MQTT is the command input configuration.
	ArtNet ArtNetConf  `toml:"artnet"` // ArtNet is the output configuration.
	Show   ShowConf    `toml:"show"`   // Show holds the show-wide settings.
	Patch  []PatchConf `toml:"patch"`  // Patch lists devices placed at startup.
}

// LogConf configures logging.
type LogConf struct {
	Level string `toml:"log-level"` // Level is the logrus level name.
}

// MQTTConf configures the MQTT client.
type MQTTConf struct {
	Enabled     bool   `toml:"enabled"`      // Enabled turns the MQTT input on.
	ClientID    string `toml:"clientID"`     // ClientID is the client name at the broker.
	Host        string `toml:"server"`       // Host is the broker address.
	Port        string `toml:"port"`         // Port is the broker port.
	User        string `toml:"user"`         // User is the broker login.
	Password    string `toml:"password"`     // Password is the broker password.
	Qos         byte   `toml:"qos"`          // Qos is the quality of service for subscriptions and publications.
	TopicPrefix string `toml:"topic-prefix"` // TopicPrefix is prepended to every topic.
}

// ArtNetConf configures the Art-Net output.
type ArtNetConf struct {
	Enabled bool   `toml:"enabled"` // Enabled turns the output on.
	Network string `toml:"network"` // Network is the CIDR of the Art-Net interface.
	MaxFPS  int    `toml:"max-fps"` // MaxFPS limits the frame rate of the controller.
}

// ShowConf holds show-wide settings.
type ShowConf struct {
	GlobalMultiplier int  `toml:"global-multiplier"` // GlobalMultiplier is the master level, 0..255.
	AutoApply        bool `toml:"auto-apply"`        // AutoApply applies remote edits immediately.
}

// PatchConf places one device.
type PatchConf struct {
	Name     string `toml:"name"`     // Name of the device.
	Universe int    `toml:"universe"` // Universe id, 0..32767.
	Channel  int    `toml:"channel"`  // Channel is the start channel, 0..511.
	Fixture  string `toml:"fixture"`  // Fixture is the catalog path, e.g. "VRSL/Standard Par Light".
	Variant  *int   `toml:"variant"`  // Variant selects the fixture variable options.
}

// NewConfig reads the TOML file at path on top of the defaults.
func NewConfig(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Default returns the configuration used for missing keys.
func Default() *Config {
	return &Config{
		Logger: LogConf{Level: "info"},
		MQTT: MQTTConf{
			ClientID:    "artnet-orion",
			Host:        "localhost",
			Port:        "1883",
			TopicPrefix: "artnet",
		},
		ArtNet: ArtNetConf{
			Enabled: true,
			Network: "192.168.6.0/24",
			MaxFPS:  40,
		},
		Show: ShowConf{
			GlobalMultiplier: 255,
			AutoApply:        true,
		},
	}
}

// Validate checks values the TOML types cannot constrain.
func (c *Config) Validate() error {
	if c.Show.GlobalMultiplier < 0 || c.Show.GlobalMultiplier > 255 {
		return fmt.Errorf("show. global-multiplier %d is outside 0..255", c.Show.GlobalMultiplier)
	}
	if c.MQTT.Qos > 2 {
		return fmt.Errorf("mqtt. qos %d is outside 0..2", c.MQTT.Qos)
	}
	if c.ArtNet.MaxFPS <= 0 {
		return errors.New("artnet. max-fps must be positive")
	}
	for i, p := range c.Patch {
		if p.Fixture == "" {
			return fmt.Errorf("patch %d (%q). fixture is required", i, p.Name)
		}
	}
	return nil
}
