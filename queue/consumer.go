package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"cloud.google.com/go/pubsub"
	"github.com/holaplex/hub-nfts-polygon/app"
	"github.com/holaplex/hub-nfts-polygon/events"
	"github.com/holaplex/hub-nfts-polygon/models"
	log "github.com/sirupsen/logrus"
)

const ConsumerName = "CONSUMER"

// MessageProcessor handles one decoded inbound message group.
type MessageProcessor interface {
	Process(group *events.MessageGroup) error
}

// ConsumerService multiplexes the inbound streams. Every delivery is handled
// in its own receive callback goroutine, so a slow handler does not stall
// ingestion. Failed messages are logged and dropped; retries arrive as
// distinct retry event variants.
type ConsumerService struct {
	wg        *sync.WaitGroup
	client    *pubsub.Client
	processor MessageProcessor
	// subscribed topic name -> logical stream its messages decode as
	topics map[string]string

	ctx    context.Context
	cancel context.CancelFunc

	healthMu sync.RWMutex
	health   models.ServiceHealth
}

func (x *ConsumerService) Start() {
	log.Info("[CONSUMER] Starting service")

	var rg sync.WaitGroup
	for topic, stream := range x.topics {
		rg.Add(1)
		go x.receive(&rg, topic, stream)
	}
	rg.Wait()

	log.Info("[CONSUMER] Stopped service")
	x.wg.Done()
}

func (x *ConsumerService) receive(rg *sync.WaitGroup, topic string, stream string) {
	defer rg.Done()

	sub, err := x.ensureSubscription(topic)
	if err != nil {
		log.Error("[CONSUMER] Error setting up subscription for topic ", topic, ": ", err)
		return
	}

	log.Info("[CONSUMER] Receiving on topic: ", topic)
	err = sub.Receive(x.ctx, func(ctx context.Context, msg *pubsub.Message) {
		x.handleMessage(stream, msg)
		msg.Ack()
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error("[CONSUMER] Error receiving on topic ", topic, ": ", err)
	}
}

func (x *ConsumerService) ensureSubscription(topic string) (*pubsub.Subscription, error) {
	ctx, cancel := context.WithTimeout(x.ctx, 30*time.Second)
	defer cancel()

	name := fmt.Sprintf("%s-%s", app.Config.PubSub.SubscriptionPrefix, topic)
	sub := x.client.Subscription(name)
	exists, err := sub.Exists(ctx)
	if err != nil {
		return nil, err
	}
	if exists {
		return sub, nil
	}

	return x.client.CreateSubscription(ctx, name, pubsub.SubscriptionConfig{
		Topic:       x.client.Topic(topic),
		AckDeadline: time.Second * 10,
	})
}

func (x *ConsumerService) handleMessage(stream string, msg *pubsub.Message) {
	group, err := events.FromMessage(stream, []byte(msg.Attributes["key"]), msg.Data)
	if err != nil {
		log.Error("[CONSUMER] Error decoding message: ", err)
		return
	}

	if err := x.processor.Process(group); err != nil {
		log.Error("[CONSUMER] Error processing message: ", err)
		return
	}

	x.updateHealth()
}

func (x *ConsumerService) Health() models.ServiceHealth {
	x.healthMu.RLock()
	defer x.healthMu.RUnlock()

	return x.health
}

func (x *ConsumerService) updateHealth() {
	x.healthMu.Lock()
	defer x.healthMu.Unlock()

	x.health = models.ServiceHealth{
		Name:         ConsumerName,
		LastSyncTime: time.Now(),
		NextSyncTime: time.Now(),
		Healthy:      true,
	}
}

func (x *ConsumerService) Stop() {
	log.Debug("[CONSUMER] Stopping service")
	x.cancel()
}

// consumerTopics maps each subscribed topic name to the logical stream its
// messages decode as, so operators can rename a topic without a code change.
func consumerTopics() map[string]string {
	return map[string]string{
		app.Config.PubSub.NftTopic:      events.TopicNfts,
		app.Config.PubSub.TreasuryTopic: events.TopicTreasuries,
	}
}

func NewConsumer(wg *sync.WaitGroup, processor MessageProcessor) models.Service {
	if !app.Config.Consumer.Enabled {
		log.Debug("[CONSUMER] Consumer disabled")
		return models.NewEmptyService(wg)
	}

	log.Debug("[CONSUMER] Initializing consumer")

	ctx, cancel := context.WithCancel(context.Background())
	client, err := pubsub.NewClient(ctx, app.Config.PubSub.ProjectId)
	if err != nil {
		cancel()
		log.Fatal("[CONSUMER] Error initializing pubsub client: ", err)
	}

	x := &ConsumerService{
		wg:        wg,
		client:    client,
		processor: processor,
		topics:    consumerTopics(),
		ctx:       ctx,
		cancel:    cancel,
		health: models.ServiceHealth{
			Name:    ConsumerName,
			Healthy: true,
		},
	}

	log.Debug("[CONSUMER] Initialized consumer")

	return x
}
