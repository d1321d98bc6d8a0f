package events

import (
	"io"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func init() {
	log.SetOutput(io.Discard)
}

func TestFromMessage(t *testing.T) {

	t.Run("Missing Key", func(t *testing.T) {
		group, err := FromMessage(TopicNfts, nil, []byte(`{}`))

		assert.Nil(t, group)
		assert.ErrorIs(t, err, ErrMissingKey)
	})

	t.Run("Missing Payload", func(t *testing.T) {
		group, err := FromMessage(TopicNfts, []byte(`{}`), nil)

		assert.Nil(t, group)
		assert.ErrorIs(t, err, ErrMissingPayload)
	})

	t.Run("Bad Topic", func(t *testing.T) {
		group, err := FromMessage("hub-unknown", []byte(`{}`), []byte(`{}`))

		assert.Nil(t, group)
		var badTopic *BadTopicError
		assert.ErrorAs(t, err, &badTopic)
		assert.Equal(t, "hub-unknown", badTopic.Topic)
	})

	t.Run("Invalid Key JSON", func(t *testing.T) {
		group, err := FromMessage(TopicNfts, []byte(`not json`), []byte(`{}`))

		assert.Nil(t, group)
		assert.NotNil(t, err)
	})

	t.Run("Invalid Payload JSON", func(t *testing.T) {
		group, err := FromMessage(TopicNfts, []byte(`{}`), []byte(`not json`))

		assert.Nil(t, group)
		assert.NotNil(t, err)
	})

	t.Run("Nft Message", func(t *testing.T) {
		key := []byte(`{"id":"drop-1","userId":"user-1","projectId":"project-1"}`)
		payload := []byte(`{"mintEditionDrop":{"collectionId":"col-1","receiver":"0xabc","amount":2}}`)

		group, err := FromMessage(TopicNfts, key, payload)

		assert.Nil(t, err)
		assert.NotNil(t, group.Nfts)
		assert.Nil(t, group.Treasuries)
		assert.Equal(t, "drop-1", group.Nfts.Key.ID)
		assert.Equal(t, "user-1", group.Nfts.Key.UserID)
		assert.NotNil(t, group.Nfts.Events.MintEditionDrop)
		assert.Equal(t, "col-1", group.Nfts.Events.MintEditionDrop.CollectionId)
		assert.Equal(t, int64(2), group.Nfts.Events.MintEditionDrop.Amount)
		assert.Nil(t, group.Nfts.Events.CreateEditionDrop)
	})

	t.Run("Treasury Message", func(t *testing.T) {
		key := []byte(`{"id":"transfer-1","userId":"user-1","projectId":"project-1"}`)
		payload := []byte(`{"permitTransferAssetHashSigned":{"signature":{"r":"0x01","s":"0x02","v":27},"owner":"0xaaa","spender":"0xbbb","recipient":"0xccc","editionId":7,"amount":1}}`)

		group, err := FromMessage(TopicTreasuries, key, payload)

		assert.Nil(t, err)
		assert.Nil(t, group.Nfts)
		assert.NotNil(t, group.Treasuries)
		assert.Equal(t, "transfer-1", group.Treasuries.Key.ID)

		signed := group.Treasuries.Events.PermitTransferAssetHashSigned
		assert.NotNil(t, signed)
		assert.NotNil(t, signed.Signature)
		assert.Equal(t, uint32(27), signed.Signature.V)
		assert.Equal(t, int64(7), signed.EditionId)
	})

	t.Run("Key Translation", func(t *testing.T) {
		nftKey := NftEventKey{ID: "a", UserID: "b", ProjectID: "c"}
		treasuryKey := TreasuryEventKey{ID: "a", UserID: "b", ProjectID: "c"}

		assert.Equal(t, PolygonNftEventKey{ID: "a", UserID: "b", ProjectID: "c"}, nftKey.PolygonKey())
		assert.Equal(t, nftKey.PolygonKey(), treasuryKey.PolygonKey())
	})

}
