package store

import (
	"errors"

	"github.com/holaplex/hub-nfts-polygon/app"
	"github.com/holaplex/hub-nfts-polygon/models"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const editionLockResource = "collections_edition_id"

var ErrCollectionNotFound = errors.New("collection not found")

// CreateCollection persists a new collection, assigning the next edition id
// under an exclusive lock so that ids are strictly increasing with no gaps.
// The assigned id starts at 1 when no collections exist.
func CreateCollection(collection models.Collection) (models.Collection, error) {
	lockId, err := app.DB.XLock(editionLockResource)
	if err != nil {
		return collection, err
	}
	defer func() {
		if err := app.DB.Unlock(lockId); err != nil {
			log.Error("[STORE] Error unlocking edition id allocation: ", err)
		}
	}()

	maxEditionId, err := findMaxEditionId()
	if err != nil {
		return collection, err
	}
	collection.EditionId = maxEditionId + 1

	if err := app.DB.InsertOne(models.CollectionCollections, collection); err != nil {
		return collection, err
	}
	return collection, nil
}

func findMaxEditionId() (int64, error) {
	var last models.Collection
	err := app.DB.FindOneWithSort(
		models.CollectionCollections,
		bson.M{},
		bson.M{"edition_id": -1},
		&last,
	)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, nil
		}
		return 0, err
	}
	return last.EditionId, nil
}

func FindCollectionByID(id string) (models.Collection, error) {
	var collection models.Collection
	err := app.DB.FindOne(models.CollectionCollections, bson.M{"_id": id}, &collection)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return collection, ErrCollectionNotFound
		}
		return collection, err
	}
	return collection, nil
}

func FindCollectionByEditionID(editionId int64) (models.Collection, error) {
	var collection models.Collection
	err := app.DB.FindOne(models.CollectionCollections, bson.M{"edition_id": editionId}, &collection)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return collection, ErrCollectionNotFound
		}
		return collection, err
	}
	return collection, nil
}

// UpdateCollectionMetadata rewrites the mutable metadata fields of a
// collection in place. The id, edition id, owner, fee receiver and creation
// time are never touched.
func UpdateCollectionMetadata(collection models.Collection) error {
	update := bson.M{
		"$set": bson.M{
			"creator":     collection.Creator,
			"uri":         collection.Uri,
			"name":        collection.Name,
			"description": collection.Description,
			"image_uri":   collection.ImageUri,
		},
	}
	return app.DB.UpdateOne(models.CollectionCollections, bson.M{"_id": collection.Id}, update)
}
