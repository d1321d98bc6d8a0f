package app

import (
	"testing"

	"github.com/holaplex/hub-nfts-polygon/events"
	"github.com/holaplex/hub-nfts-polygon/models"
	"github.com/stretchr/testify/assert"
)

func TestReadConfigFromENV(t *testing.T) {

	t.Run("Topic Defaults", func(t *testing.T) {
		Config = models.Config{}
		t.Setenv("PUBSUB_NFT_TOPIC", "")
		t.Setenv("PUBSUB_TREASURY_TOPIC", "")
		t.Setenv("PUBSUB_POLYGON_TOPIC", "")

		readConfigFromENV("")

		assert.Equal(t, events.TopicNfts, Config.PubSub.NftTopic)
		assert.Equal(t, events.TopicTreasuries, Config.PubSub.TreasuryTopic)
		assert.Equal(t, events.TopicPolygonNfts, Config.PubSub.PolygonTopic)
	})

	t.Run("Topic Overrides", func(t *testing.T) {
		Config = models.Config{}
		t.Setenv("PUBSUB_NFT_TOPIC", "staging-hub-nfts")
		t.Setenv("PUBSUB_POLYGON_TOPIC", "staging-hub-nfts-polygon")

		readConfigFromENV("")

		assert.Equal(t, "staging-hub-nfts", Config.PubSub.NftTopic)
		assert.Equal(t, events.TopicTreasuries, Config.PubSub.TreasuryTopic)
		assert.Equal(t, "staging-hub-nfts-polygon", Config.PubSub.PolygonTopic)
	})

	t.Run("Config File Topics Kept", func(t *testing.T) {
		Config = models.Config{}
		Config.PubSub.NftTopic = "custom-hub-nfts"
		t.Setenv("PUBSUB_NFT_TOPIC", "")

		readConfigFromENV("")

		assert.Equal(t, "custom-hub-nfts", Config.PubSub.NftTopic)
	})

}
