package models

import (
	"time"
)

const (
	CollectionCollections = "collections"
)

// Collection is the persisted record for one deployed edition drop. The
// edition id is assigned locally, exactly once, when the collection is
// created; every other field besides Id may be rewritten by metadata
// updates.
type Collection struct {
	Id          string    `bson:"_id" json:"id"`
	EditionId   int64     `bson:"edition_id" json:"edition_id"`
	FeeReceiver string    `bson:"fee_receiver" json:"fee_receiver"`
	Owner       string    `bson:"owner" json:"owner"`
	Creator     string    `bson:"creator" json:"creator"`
	Uri         string    `bson:"uri" json:"uri"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	ImageUri    string    `bson:"image_uri" json:"image_uri"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
