package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/artnet"
	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/clientmqtt"
	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/config"
	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/fixture"
	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/fixturestore"
	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/logger"
	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/show"
)

var configFile string

func init() {
	flag.StringVar(&configFile, "config", "configs/conf.toml", "Path to configuration file")
}

func main() {
	flag.Parse()
	cfg, err := config.NewConfig(configFile)
	if err != nil {
		fmt.Printf("configuration file read error: %v", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(cfg.Logger)
	if err != nil {
		fmt.Printf("failed to create a logger: %v", err)
		os.Exit(1)
	}

	log.With(logger.Fields{"module": "logger"}).Debug("newLogger created ok")

	store := fixturestore.New()
	store.PopulateDefaults()
	store.Walk(func(path []string, f *fixture.Fixture) {
		log.With(logger.Fields{"module": "catalog"}).Debugf("fixture %v with %d channels", path, f.ChannelCount())
	})

	initial := show.New()
	initial.GlobalMultiplier = uint8(cfg.Show.GlobalMultiplier)
	if err := show.ApplyPatch(store, initial, cfg.Patch); err != nil {
		log.With(logger.Fields{"module": "patch"}).Errorf("some devices were not patched: %v", err)
	}
	ws := show.NewWorkspace(log, initial)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer cancel()

	// Override commands from MQTT to the output stage.
	dmxDataCh := make(chan clientmqtt.DataCh, 10)

	var output *artnet.ArtNet
	if cfg.ArtNet.Enabled {
		output, err = artnet.NewController(log, ws, cfg.ArtNet, cfg.Show.AutoApply)
		if err != nil {
			log.With(logger.Fields{"module": "art-net"}).Errorf("error while creating a new controller art-net. %v", err)
			os.Exit(1)
		}
		log.With(logger.Fields{"module": "art-net"}).Debug("NewController created ok")

		if err = output.Start(ctx, dmxDataCh); err != nil {
			log.Error("failed to start art-net service:", err.Error())
			output = nil
			cancel()
		}
	} else {
		go artnet.Consume(ctx, ws, cfg.Show.AutoApply, dmxDataCh)
	}

	var client *clientmqtt.ClientMQTT
	if cfg.MQTT.Enabled {
		client = clientmqtt.NewClient(log, ConvertConfigClientMQTT(cfg.MQTT), store)
		log.With(logger.Fields{"module": "mqtt"}).Debug("NewClient created ok")

		if err = client.Start(ctx, dmxDataCh); err != nil {
			log.Error("failed to start MQTT service:", err.Error())
			cancel()
		}
	}

	<-ctx.Done()

	if client != nil {
		if err := client.Stop(); err != nil {
			log.Error("failed to stop MQTT service:", err.Error())
		}
	}

	if output != nil {
		output.Stop()
	}

	log.Info("shutdown complete")
}

// ConvertConfigClientMQTT converts the file configuration into the client's.
func ConvertConfigClientMQTT(cfg config.MQTTConf) clientmqtt.MQTTConf {
	return clientmqtt.MQTTConf{
		ClientID:    cfg.ClientID,
		Schema:      "tcp",
		Host:        cfg.Host,
		Port:        cfg.Port,
		User:        cfg.User,
		Password:    cfg.Password,
		Qos:         cfg.Qos,
		TopicPrefix: cfg.TopicPrefix,
	}
}
