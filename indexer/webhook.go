package indexer

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/holaplex/hub-nfts-polygon/app"
	"github.com/holaplex/hub-nfts-polygon/events"
	"github.com/holaplex/hub-nfts-polygon/store"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	signatureHeader = "X-Alchemy-Signature"
	nftActivityType = "NFT_ACTIVITY"
	nullAddress     = "0x0000000000000000000000000000000000000000"
)

// Payload is one webhook delivery. Unknown type values are tolerated and
// acknowledged without action.
type Payload struct {
	WebhookId string       `json:"webhookId"`
	Id        string       `json:"id"`
	CreatedAt string       `json:"createdAt"`
	Type      string       `json:"type"`
	Event     WebhookEvent `json:"event"`
}

type WebhookEvent struct {
	Network  string     `json:"network"`
	Activity []Activity `json:"activity"`
}

type Activity struct {
	FromAddress     string         `json:"fromAddress"`
	ToAddress       string         `json:"toAddress"`
	ContractAddress string         `json:"contractAddress"`
	Hash            string         `json:"hash"`
	Category        string         `json:"category"`
	Erc1155Metadata []Erc1155Entry `json:"erc1155Metadata"`
	Erc721TokenId   string         `json:"erc721TokenId"`
}

// Erc1155Entry is one token entry of a multi-token transfer; both fields are
// hex encoded quantities.
type Erc1155Entry struct {
	TokenId string `json:"tokenId"`
	Value   string `json:"value"`
}

func (x *WebhookService) handleWebhook(c *gin.Context) {
	signature := c.GetHeader(signatureHeader)
	if signature == "" {
		c.String(http.StatusNotFound, "X-Alchemy-Signature header is missing")
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.String(http.StatusBadRequest, "error reading request body")
		return
	}

	if !x.verifySignature(body, signature) {
		c.String(http.StatusBadRequest, "invalid signature")
		return
	}

	var payload Payload
	if err := json.Unmarshal(body, &payload); err != nil {
		c.String(http.StatusBadRequest, "error parsing payload")
		return
	}

	createdAt, err := time.Parse(time.RFC3339, payload.CreatedAt)
	if err != nil {
		c.String(http.StatusBadRequest, "error parsing createdAt timestamp")
		return
	}

	if payload.Type != nftActivityType {
		log.Debug("[INDEXER] Ignoring webhook of type: ", payload.Type)
		c.Status(http.StatusOK)
		return
	}

	if err := x.processActivity(payload.Event.Activity, createdAt); err != nil {
		log.Error("[INDEXER] Error processing activity: ", err)
		c.String(http.StatusInternalServerError, "error processing activity")
		return
	}

	x.updateHealth()
	c.Status(http.StatusOK)
}

// verifySignature checks the lowercase hex MAC over the exact raw body. A
// non-hex header fails the same way a mismatch does.
func (x *WebhookService) verifySignature(body []byte, signature string) bool {
	provided, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, x.signingKey)
	mac.Write(body)
	return hmac.Equal(provided, mac.Sum(nil))
}

// processActivity fans each token entry out to its own task with its own
// transaction. One failing entry does not stop the others, but it fails the
// whole delivery so the source redelivers.
func (x *WebhookService) processActivity(activity []Activity, createdAt time.Time) error {
	var group errgroup.Group
	for _, item := range activity {
		if item.FromAddress == nullAddress {
			log.Debug("[INDEXER] Ignoring transfer from null address")
			continue
		}
		if strings.EqualFold(item.FromAddress, app.Config.Ethereum.DeployerAddress) {
			log.Debug("[INDEXER] Ignoring transfer from deployer address")
			continue
		}

		for _, entry := range item.Erc1155Metadata {
			item := item
			entry := entry
			group.Go(func() error {
				return x.processTokenEntry(item, entry, createdAt)
			})
		}
	}
	return group.Wait()
}

func (x *WebhookService) processTokenEntry(activity Activity, entry Erc1155Entry, createdAt time.Time) error {
	editionId, err := parseHexUint(entry.TokenId)
	if err != nil {
		return fmt.Errorf("error parsing token id %q: %w", entry.TokenId, err)
	}
	value, err := parseHexUint(entry.Value)
	if err != nil {
		return fmt.Errorf("error parsing value %q: %w", entry.Value, err)
	}

	mints, err := store.FindMintsForEdition(activity.FromAddress, int64(editionId), int64(value))
	if err != nil {
		return fmt.Errorf("error finding mints for edition %d: %w", editionId, err)
	}
	if uint64(len(mints)) != value {
		return fmt.Errorf("mint count mismatch for edition %d: have %d, want %d", editionId, len(mints), value)
	}
	if len(mints) == 0 {
		return nil
	}

	mintIds := make([]string, len(mints))
	for i, mint := range mints {
		mintIds[i] = mint.Id
	}

	if err := store.UpdateMintOwners(mintIds, activity.ToAddress); err != nil {
		return fmt.Errorf("error updating mint owners for edition %d: %w", editionId, err)
	}

	collectionId := mints[0].CollectionId
	log.Info("[INDEXER] Updated owner of ", len(mintIds), " mints for collection: ", collectionId)

	return x.producer.Send(
		events.PolygonNftEventKey{ID: collectionId},
		events.PolygonNftEvents{
			UpdateMintsOwner: &events.MintedTokensOwnershipUpdate{
				MintIds:         mintIds,
				NewOwner:        activity.ToAddress,
				Timestamp:       createdAt,
				TransactionHash: activity.Hash,
			},
		},
	)
}

func parseHexUint(s string) (uint64, error) {
	trimmed, ok := strings.CutPrefix(s, "0x")
	if !ok {
		return 0, fmt.Errorf("missing 0x prefix")
	}
	return strconv.ParseUint(trimmed, 16, 64)
}
