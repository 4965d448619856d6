package clientmqtt

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/address"
)

var ErrInvalidTopic = errors.New("invalid topic")

// SetTopicFilter is the subscription for override commands below prefix.
func SetTopicFilter(prefix string) string {
	return prefix + "/universe/+/set"
}

// SetTopic is the command topic of universe u.
func SetTopic(prefix string, u address.UniverseID) string {
	return fmt.Sprintf("%s/universe/%s/set", prefix, u)
}

// CatalogTopic carries the retained fixture catalog.
func CatalogTopic(prefix string) string {
	return prefix + "/catalog"
}

// ParseSetTopic extracts the universe of "<prefix>/universe/<id>/set".
func ParseSetTopic(prefix, topic string) (address.UniverseID, error) {
	rest, ok := strings.CutPrefix(topic, prefix+"/universe/")
	if !ok {
		return address.UniverseID{}, fmt.Errorf("%w: %s", ErrInvalidTopic, topic)
	}
	id, ok := strings.CutSuffix(rest, "/set")
	if !ok || id == "" || strings.Contains(id, "/") {
		return address.UniverseID{}, fmt.Errorf("%w: %s", ErrInvalidTopic, topic)
	}
	n, err := strconv.Atoi(id)
	if err != nil {
		return address.UniverseID{}, fmt.Errorf("%w: %s: %v", ErrInvalidTopic, topic, err)
	}
	return address.NewUniverseID(n)
}

// DecodePayload parses and validates a command payload.
func DecodePayload(raw []byte) ([]Command, error) {
	var data Payload
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("message could not be parsed: %w", err)
	}
	cmds := make([]Command, 0, len(data))
	for _, d := range data {
		ch, err := address.NewChannelID(int(d.Channel))
		if err != nil {
			return nil, err
		}
		if d.Value == nil {
			cmds = append(cmds, Command{Channel: ch, Clear: true})
			continue
		}
		cmds = append(cmds, Command{Channel: ch, Value: *d.Value})
	}
	return cmds, nil
}
