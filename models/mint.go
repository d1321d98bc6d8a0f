package models

import (
	"time"
)

const (
	CollectionMints = "mints"
)

// Mint is one minted quantity of an edition. Owner is the only field that
// changes after insert, and only the indexer reconciliation path changes it.
type Mint struct {
	Id           string    `bson:"_id" json:"id"`
	CollectionId string    `bson:"collection_id" json:"collection_id"`
	Owner        string    `bson:"owner" json:"owner"`
	Amount       int64     `bson:"amount" json:"amount"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
