package events

import (
	"encoding/json"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

const (
	TopicNfts        = "hub-nfts"
	TopicTreasuries  = "hub-treasuries"
	TopicPolygonNfts = "hub-nfts-polygon"
)

var (
	ErrMissingKey     = errors.New("message is missing its key")
	ErrMissingPayload = errors.New("message is missing its payload")
)

type BadTopicError struct {
	Topic string
}

func (e *BadTopicError) Error() string {
	return fmt.Sprintf("unknown topic: %q", e.Topic)
}

type NftMessage struct {
	Key    NftEventKey
	Events PolygonEvents
}

type TreasuryMessage struct {
	Key    TreasuryEventKey
	Events TreasuryEvents
}

// MessageGroup is one decoded inbound message; exactly one stream field is
// set.
type MessageGroup struct {
	Nfts       *NftMessage
	Treasuries *TreasuryMessage
}

// FromMessage deserializes the typed key and payload for the message's
// logical stream. It has no side effects beyond logging.
func FromMessage(topic string, key []byte, payload []byte) (*MessageGroup, error) {
	if len(key) == 0 {
		return nil, ErrMissingKey
	}
	if len(payload) == 0 {
		return nil, ErrMissingPayload
	}

	log.Debug("[EVENTS] Received message on topic: ", topic)

	switch topic {
	case TopicNfts:
		var msg NftMessage
		if err := json.Unmarshal(key, &msg.Key); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(payload, &msg.Events); err != nil {
			return nil, err
		}
		return &MessageGroup{Nfts: &msg}, nil
	case TopicTreasuries:
		var msg TreasuryMessage
		if err := json.Unmarshal(key, &msg.Key); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(payload, &msg.Events); err != nil {
			return nil, err
		}
		return &MessageGroup{Treasuries: &msg}, nil
	default:
		return nil, &BadTopicError{Topic: topic}
	}
}
