package clientmqtt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/fixturestore"
	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/logger"
	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Catalog is the source of the published fixture menu.
type Catalog interface {
	Menu() *fixturestore.Menu
}

// ClientMQTT receives override commands and publishes the fixture catalog.
type ClientMQTT struct {
	ctx       context.Context
	log       logger.Logger
	cfgClient MQTTConf
	catalog   Catalog
	client    mqtt.Client
	opts      *mqtt.ClientOptions
	dmxDataCh chan<- DataCh
}

// NewClient creates a client. Nothing connects before Start.
func NewClient(log logger.Logger, cfgClient MQTTConf, catalog Catalog) *ClientMQTT {
	return &ClientMQTT{
		log:       log,
		cfgClient: cfgClient,
		catalog:   catalog,
	}
}

func (c *ClientMQTT) Start(ctx context.Context, dmxDataCh chan<- DataCh) error {
	if c.log.GetLevel() == "debug" {
		mqtt.ERROR = log.New(os.Stdout, "[ERROR] ", 0)
		mqtt.CRITICAL = log.New(os.Stdout, "[CRIT] ", 0)
		mqtt.WARN = log.New(os.Stdout, "[WARN]  ", 0)
	}

	c.ctx = ctx
	c.dmxDataCh = dmxDataCh

	c.opts = mqtt.NewClientOptions().
		AddBroker(fmt.Sprintf("%s://%s:%s", c.cfgClient.Schema, c.cfgClient.Host, c.cfgClient.Port)).
		SetUsername(c.cfgClient.User).
		SetPassword(c.cfgClient.Password).
		SetDefaultPublishHandler(c.messageHandler).
		SetOnConnectHandler(c.connectHandler).
		SetConnectionLostHandler(c.connectLostHandler).
		SetClientID(c.cfgClient.ClientID).
		SetOrderMatters(true).
		SetCleanSession(false).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second).
		SetMaxReconnectInterval(5 * time.Second).
		SetKeepAlive(30 * time.Second)

	c.client = mqtt.NewClient(c.opts)

	token := c.client.Connect()
	select {
	case <-token.Done():
		if token.Error() != nil {
			return token.Error()
		}
	case <-c.ctx.Done():
		return errors.New("context canceled")
	}

	c.log.With(logger.Fields{"module": "mqtt"}).Infof("Status: %v", c.client.IsConnected())
	return nil
}

func (c *ClientMQTT) Stop() error {
	if c.client != nil && c.client.IsConnected() {
		c.client.Disconnect(500)
	}
	return nil
}

// connectHandler runs on every (re)connect, so subscriptions survive a lost session.
func (c *ClientMQTT) connectHandler(_ mqtt.Client) {
	c.log.With(logger.Fields{"module": "mqtt"}).Info("client connected to server")
	c.sub(SetTopicFilter(c.cfgClient.TopicPrefix))
	c.PublishCatalog()
}

func (c *ClientMQTT) connectLostHandler(_ mqtt.Client, err error) {
	c.log.With(logger.Fields{"module": "mqtt"}).Errorf("server connect lost: %v", err)
}

// messageHandler runs on the client's router goroutine, one message at a time,
// so batches reach the output stage in arrival order.
func (c *ClientMQTT) messageHandler(_ mqtt.Client, msg mqtt.Message) {
	c.log.With(logger.Fields{"module": "mqtt"}).Debugf("received message: %s from topic: %s", msg.Payload(), msg.Topic())
	c.sendDataToArtNet(msg)
}

func (c *ClientMQTT) sendDataToArtNet(msg mqtt.Message) {
	data, err := c.decode(msg.Topic(), msg.Payload())
	if err != nil {
		c.log.With(logger.Fields{"module": "mqtt"}).Errorf("dropping message from %s: %v", msg.Topic(), err)
		return
	}
	c.log.With(logger.Fields{"module": "mqtt"}).Debugf("message payload parsed. Result: %v", data)
	select {
	case c.dmxDataCh <- data:
	case <-c.ctx.Done():
	}
}

func (c *ClientMQTT) decode(topic string, payload []byte) (DataCh, error) {
	u, err := ParseSetTopic(c.cfgClient.TopicPrefix, topic)
	if err != nil {
		return DataCh{}, err
	}
	cmds, err := DecodePayload(payload)
	if err != nil {
		return DataCh{}, err
	}
	return DataCh{Universe: u, Commands: cmds}, nil
}

func (c *ClientMQTT) sub(topic string) {
	token := c.client.Subscribe(topic, c.cfgClient.Qos, nil)
	go func() {
		select {
		case <-c.ctx.Done():
			return
		case <-token.Done():
			if token.Error() != nil {
				c.log.With(logger.Fields{"module": "mqtt"}).Errorf("topic %s subscription error. %v", topic, token.Error())
				return
			}
		}
		c.log.With(logger.Fields{"module": "mqtt"}).Debugf("topic %s subscribed", topic)
	}()
}

// PublishCatalog publishes the fixture menu as a retained message.
func (c *ClientMQTT) PublishCatalog() {
	topic := CatalogTopic(c.cfgClient.TopicPrefix)
	msg, err := json.Marshal(c.catalog.Menu())
	if err != nil {
		c.log.With(logger.Fields{"module": "mqtt"}).Errorf("catalog. msg: %v", err)
		return
	}
	token := c.client.Publish(topic, c.cfgClient.Qos, true, msg)
	go func() {
		select {
		case <-c.ctx.Done():
			return
		case <-token.Done():
			if token.Error() != nil {
				c.log.With(logger.Fields{"module": "mqtt"}).Errorf("error publish topic %s. %v", topic, token.Error())
				return
			}
			c.log.With(logger.Fields{"module": "mqtt"}).Debugf("catalog published to %s", topic)
		}
	}()
}
