package queue

import (
	"errors"
	"io"
	"testing"

	"cloud.google.com/go/pubsub"
	"github.com/holaplex/hub-nfts-polygon/app"
	"github.com/holaplex/hub-nfts-polygon/events"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func init() {
	log.SetOutput(io.Discard)
}

type recordingProcessor struct {
	groups []*events.MessageGroup
	err    error
}

func (p *recordingProcessor) Process(group *events.MessageGroup) error {
	p.groups = append(p.groups, group)
	return p.err
}

func TestConsumerTopics(t *testing.T) {

	t.Run("Configured Topics Map To Streams", func(t *testing.T) {
		app.Config.PubSub.NftTopic = "staging-hub-nfts"
		app.Config.PubSub.TreasuryTopic = "staging-hub-treasuries"

		topics := consumerTopics()

		assert.Equal(t, map[string]string{
			"staging-hub-nfts":       events.TopicNfts,
			"staging-hub-treasuries": events.TopicTreasuries,
		}, topics)
	})

}

func TestHandleMessage(t *testing.T) {

	t.Run("Routes Decoded Message", func(t *testing.T) {
		proc := &recordingProcessor{}
		x := &ConsumerService{processor: proc}

		msg := &pubsub.Message{
			Data: []byte(`{"mintEditionDrop":{"collectionId":"col-1","receiver":"0xabc","amount":1}}`),
			Attributes: map[string]string{
				"key": `{"id":"mint-1","userId":"user-1","projectId":"project-1"}`,
			},
		}

		x.handleMessage(events.TopicNfts, msg)

		assert.Equal(t, 1, len(proc.groups))
		assert.NotNil(t, proc.groups[0].Nfts)
		assert.Equal(t, "mint-1", proc.groups[0].Nfts.Key.ID)
		assert.True(t, x.Health().Healthy)
	})

	t.Run("Drops Message Without Key", func(t *testing.T) {
		proc := &recordingProcessor{}
		x := &ConsumerService{processor: proc}

		msg := &pubsub.Message{
			Data:       []byte(`{}`),
			Attributes: map[string]string{},
		}

		x.handleMessage(events.TopicNfts, msg)

		assert.Equal(t, 0, len(proc.groups))
	})

	t.Run("Processor Error Is Dropped", func(t *testing.T) {
		proc := &recordingProcessor{err: errors.New("handler error")}
		x := &ConsumerService{processor: proc}

		msg := &pubsub.Message{
			Data: []byte(`{"mintEditionDrop":{"collectionId":"col-1"}}`),
			Attributes: map[string]string{
				"key": `{"id":"mint-1"}`,
			},
		}

		x.handleMessage(events.TopicNfts, msg)

		assert.Equal(t, 1, len(proc.groups))
		assert.False(t, x.Health().Healthy)
	})

}
