package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionHealthChecks = "healthchecks"
)

type Health struct {
	Id              *primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Hostname        string              `bson:"hostname" json:"hostname"`
	ContractAddress string              `bson:"contract_address" json:"contract_address"`
	ServiceHealths  []ServiceHealth     `bson:"service_healths" json:"service_healths"`
	CreatedAt       time.Time           `bson:"created_at" json:"created_at"`
}
