package store

import (
	"errors"

	"github.com/holaplex/hub-nfts-polygon/app"
	"github.com/holaplex/hub-nfts-polygon/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrMintNotFound = errors.New("mint not found")

func CreateMint(mint models.Mint) error {
	return app.DB.InsertOne(models.CollectionMints, mint)
}

func FindMintByID(id string) (models.Mint, error) {
	var mint models.Mint
	err := app.DB.FindOne(models.CollectionMints, bson.M{"_id": id}, &mint)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return mint, ErrMintNotFound
		}
		return mint, err
	}
	return mint, nil
}

// FindMintWithCollection loads a mint and its related collection.
func FindMintWithCollection(id string) (models.Mint, models.Collection, error) {
	mint, err := FindMintByID(id)
	if err != nil {
		return mint, models.Collection{}, err
	}
	collection, err := FindCollectionByID(mint.CollectionId)
	if err != nil {
		return mint, collection, err
	}
	return mint, collection, nil
}

// FindMintsForEdition returns up to limit mints of the given edition that
// are currently owned by owner.
func FindMintsForEdition(owner string, editionId int64, limit int64) ([]models.Mint, error) {
	collection, err := FindCollectionByEditionID(editionId)
	if err != nil {
		return nil, err
	}

	var mints []models.Mint
	filter := bson.M{
		"collection_id": collection.Id,
		"owner":         owner,
	}
	err = app.DB.FindManyWithLimit(models.CollectionMints, filter, limit, &mints)
	if err != nil {
		return nil, err
	}
	return mints, nil
}

// UpdateMintOwners sets the owner of every given mint inside one
// transaction; if any update fails the whole transaction is rolled back.
func UpdateMintOwners(mintIds []string, newOwner string) error {
	return app.DB.WithTransaction(func(sc mongo.SessionContext) error {
		for _, id := range mintIds {
			update := bson.M{"$set": bson.M{"owner": newOwner}}
			if err := app.DB.UpdateOneInSession(sc, models.CollectionMints, bson.M{"_id": id}, update); err != nil {
				return err
			}
		}
		return nil
	})
}
