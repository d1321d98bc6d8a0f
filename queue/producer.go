package queue

import (
	"context"
	"encoding/json"
	"time"

	"cloud.google.com/go/pubsub"
	"github.com/holaplex/hub-nfts-polygon/app"
	"github.com/holaplex/hub-nfts-polygon/events"
	log "github.com/sirupsen/logrus"
)

const publishTimeout = 30 * time.Second

// Producer publishes outbound events keyed by the routing key; the key id is
// also the ordering key so consumers of one subject see publish order.
type Producer interface {
	Send(key events.PolygonNftEventKey, event events.PolygonNftEvents) error
}

type pubSubProducer struct {
	client *pubsub.Client
	topic  string
}

func NewProducer(client *pubsub.Client) Producer {
	return &pubSubProducer{
		client: client,
		topic:  app.Config.PubSub.PolygonTopic,
	}
}

func (p *pubSubProducer) Send(key events.PolygonNftEventKey, event events.PolygonNftEvents) error {
	keyBytes, err := json.Marshal(key)
	if err != nil {
		return err
	}
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	topic := p.client.Topic(p.topic)
	topic.EnableMessageOrdering = true
	res := topic.Publish(ctx, &pubsub.Message{
		Data: data,
		Attributes: map[string]string{
			"key": string(keyBytes),
		},
		OrderingKey: key.ID,
	})

	_, err = res.Get(ctx)
	if err != nil {
		return err
	}

	log.Debug("[PRODUCER] Published event for key: ", key.ID)
	return nil
}
