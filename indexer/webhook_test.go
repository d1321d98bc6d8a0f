package indexer

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/holaplex/hub-nfts-polygon/app"
	"github.com/holaplex/hub-nfts-polygon/app/mocks"
	"github.com/holaplex/hub-nfts-polygon/events"
	"github.com/holaplex/hub-nfts-polygon/models"
	queuemocks "github.com/holaplex/hub-nfts-polygon/queue/mocks"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func init() {
	log.SetOutput(io.Discard)
	gin.SetMode(gin.TestMode)
}

const testSigningKey = "whsec_test_key"

const (
	senderAddress    = "0x8ba1f109551bd432803012645ac136ddd64dba72"
	recipientAddress = "0x70997970c51812dc3a010c7d01b50e0d17dc79c8"
	deployerAddress  = "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266"
)

func newTestWebhook(producer *queuemocks.MockProducer) (*WebhookService, *gin.Engine) {
	x := &WebhookService{
		wg:         &sync.WaitGroup{},
		producer:   producer,
		signingKey: []byte(testSigningKey),
	}
	router := gin.New()
	router.POST("/", x.handleWebhook)
	return x, router
}

func signBody(body []byte) string {
	mac := hmac.New(sha256.New, []byte(testSigningKey))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func transferPayload(from string, tokenId string, value string) []byte {
	payload := Payload{
		WebhookId: "wh_test",
		Id:        "whevt_test",
		CreatedAt: "2023-05-10T14:30:00Z",
		Type:      "NFT_ACTIVITY",
		Event: WebhookEvent{
			Network: "MATIC_MAINNET",
			Activity: []Activity{
				{
					FromAddress:     from,
					ToAddress:       recipientAddress,
					ContractAddress: "0x5fbdb2315678afecb367f032d93f642f64180aa3",
					Hash:            "0xtxhash",
					Category:        "erc1155",
					Erc1155Metadata: []Erc1155Entry{
						{TokenId: tokenId, Value: value},
					},
				},
			},
		},
	}
	body, _ := json.Marshal(payload)
	return body
}

func deliver(router *gin.Engine, body []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	if signature != "" {
		req.Header.Set("X-Alchemy-Signature", signature)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestWebhookAuthenticity(t *testing.T) {

	t.Run("Missing Signature Header", func(t *testing.T) {
		app.DB = mocks.NewMockDatabase(t)
		_, router := newTestWebhook(queuemocks.NewMockProducer(t))

		w := deliver(router, transferPayload(senderAddress, "0x2a", "0x1"), "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "X-Alchemy-Signature header is missing", w.Body.String())
	})

	t.Run("Non Hex Signature", func(t *testing.T) {
		app.DB = mocks.NewMockDatabase(t)
		_, router := newTestWebhook(queuemocks.NewMockProducer(t))

		w := deliver(router, transferPayload(senderAddress, "0x2a", "0x1"), "not-a-hex-string")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Tampered Body Is Rejected Without Writes", func(t *testing.T) {
		// no database expectations: any query or write would fail the test
		app.DB = mocks.NewMockDatabase(t)
		_, router := newTestWebhook(queuemocks.NewMockProducer(t))

		body := transferPayload(senderAddress, "0x2a", "0x1")
		signature := signBody(body)
		tampered := bytes.Replace(body, []byte("0x1"), []byte("0x2"), 1)

		w := deliver(router, tampered, signature)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

}

func TestWebhookPayload(t *testing.T) {

	t.Run("Malformed Timestamp", func(t *testing.T) {
		app.DB = mocks.NewMockDatabase(t)
		_, router := newTestWebhook(queuemocks.NewMockProducer(t))

		body := []byte(`{"webhookId":"wh","id":"evt","createdAt":"yesterday","type":"NFT_ACTIVITY","event":{"network":"MATIC_MAINNET","activity":[]}}`)

		w := deliver(router, body, signBody(body))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unknown Type Is Acknowledged", func(t *testing.T) {
		app.DB = mocks.NewMockDatabase(t)
		_, router := newTestWebhook(queuemocks.NewMockProducer(t))

		body := []byte(`{"webhookId":"wh","id":"evt","createdAt":"2023-05-10T14:30:00Z","type":"GRAPHQL","event":{"network":"MATIC_MAINNET","activity":[]}}`)

		w := deliver(router, body, signBody(body))

		assert.Equal(t, http.StatusOK, w.Code)
	})

}

func TestWebhookReconciliation(t *testing.T) {

	t.Run("Updates All Matched Mints And Emits Once", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB
		mockProducer := queuemocks.NewMockProducer(t)
		_, router := newTestWebhook(mockProducer)

		mockDB.EXPECT().FindOne(models.CollectionCollections, bson.M{"edition_id": int64(42)}, mock.Anything).
			Run(func(_ string, _ interface{}, result interface{}) {
				*result.(*models.Collection) = models.Collection{Id: "col-42", EditionId: 42}
			}).Return(nil)
		mockDB.EXPECT().FindManyWithLimit(
			models.CollectionMints,
			bson.M{"collection_id": "col-42", "owner": senderAddress},
			int64(3),
			mock.Anything,
		).Run(func(_ string, _ interface{}, _ int64, result interface{}) {
			*result.(*[]models.Mint) = []models.Mint{
				{Id: "mint-1", CollectionId: "col-42", Owner: senderAddress},
				{Id: "mint-2", CollectionId: "col-42", Owner: senderAddress},
				{Id: "mint-3", CollectionId: "col-42", Owner: senderAddress},
			}
		}).Return(nil)
		mockDB.EXPECT().WithTransaction(mock.Anything).
			RunAndReturn(func(fn func(mongo.SessionContext) error) error {
				return fn(nil)
			})
		update := bson.M{"$set": bson.M{"owner": recipientAddress}}
		mockDB.EXPECT().UpdateOneInSession(mock.Anything, models.CollectionMints, bson.M{"_id": "mint-1"}, update).Return(nil)
		mockDB.EXPECT().UpdateOneInSession(mock.Anything, models.CollectionMints, bson.M{"_id": "mint-2"}, update).Return(nil)
		mockDB.EXPECT().UpdateOneInSession(mock.Anything, models.CollectionMints, bson.M{"_id": "mint-3"}, update).Return(nil)

		mockProducer.EXPECT().Send(events.PolygonNftEventKey{ID: "col-42"}, mock.Anything).
			RunAndReturn(func(_ events.PolygonNftEventKey, event events.PolygonNftEvents) error {
				updateEvent := event.UpdateMintsOwner
				assert.NotNil(t, updateEvent)
				assert.Equal(t, []string{"mint-1", "mint-2", "mint-3"}, updateEvent.MintIds)
				assert.Equal(t, recipientAddress, updateEvent.NewOwner)
				assert.Equal(t, "0xtxhash", updateEvent.TransactionHash)
				return nil
			})

		body := transferPayload(senderAddress, "0x2a", "0x3")

		w := deliver(router, body, signBody(body))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Count Mismatch Applies Nothing", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB
		_, router := newTestWebhook(queuemocks.NewMockProducer(t))

		mockDB.EXPECT().FindOne(models.CollectionCollections, bson.M{"edition_id": int64(42)}, mock.Anything).
			Run(func(_ string, _ interface{}, result interface{}) {
				*result.(*models.Collection) = models.Collection{Id: "col-42", EditionId: 42}
			}).Return(nil)
		mockDB.EXPECT().FindManyWithLimit(
			models.CollectionMints,
			bson.M{"collection_id": "col-42", "owner": senderAddress},
			int64(3),
			mock.Anything,
		).Run(func(_ string, _ interface{}, _ int64, result interface{}) {
			*result.(*[]models.Mint) = []models.Mint{
				{Id: "mint-1", CollectionId: "col-42", Owner: senderAddress},
				{Id: "mint-2", CollectionId: "col-42", Owner: senderAddress},
			}
		}).Return(nil)

		body := transferPayload(senderAddress, "0x2a", "0x3")

		w := deliver(router, body, signBody(body))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("Replay Finds Nothing And Fails Safely", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB
		_, router := newTestWebhook(queuemocks.NewMockProducer(t))

		// ownership already moved, so the second delivery matches zero rows
		mockDB.EXPECT().FindOne(models.CollectionCollections, bson.M{"edition_id": int64(42)}, mock.Anything).
			Run(func(_ string, _ interface{}, result interface{}) {
				*result.(*models.Collection) = models.Collection{Id: "col-42", EditionId: 42}
			}).Return(nil)
		mockDB.EXPECT().FindManyWithLimit(
			models.CollectionMints,
			bson.M{"collection_id": "col-42", "owner": senderAddress},
			int64(3),
			mock.Anything,
		).Return(nil)

		body := transferPayload(senderAddress, "0x2a", "0x3")

		w := deliver(router, body, signBody(body))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("Null Sender Is Ignored", func(t *testing.T) {
		app.DB = mocks.NewMockDatabase(t)
		_, router := newTestWebhook(queuemocks.NewMockProducer(t))

		body := transferPayload(nullAddress, "0x2a", "0x3")

		w := deliver(router, body, signBody(body))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Deployer Sender Is Ignored", func(t *testing.T) {
		app.DB = mocks.NewMockDatabase(t)
		app.Config.Ethereum.DeployerAddress = deployerAddress
		_, router := newTestWebhook(queuemocks.NewMockProducer(t))

		body := transferPayload(deployerAddress, "0x2a", "0x3")

		w := deliver(router, body, signBody(body))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Token Id Without Hex Prefix", func(t *testing.T) {
		app.DB = mocks.NewMockDatabase(t)
		_, router := newTestWebhook(queuemocks.NewMockProducer(t))

		body := transferPayload(senderAddress, "2a", "0x3")

		w := deliver(router, body, signBody(body))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

}
