package store

import (
	"errors"
	"testing"

	"github.com/holaplex/hub-nfts-polygon/app"
	"github.com/holaplex/hub-nfts-polygon/app/mocks"
	"github.com/holaplex/hub-nfts-polygon/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestFindMint(t *testing.T) {

	t.Run("Not Found", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		mockDB.EXPECT().FindOne(models.CollectionMints, bson.M{"_id": "missing"}, mock.Anything).
			Return(mongo.ErrNoDocuments)

		_, err := FindMintByID("missing")

		assert.ErrorIs(t, err, ErrMintNotFound)
	})

	t.Run("With Collection", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		mockDB.EXPECT().FindOne(models.CollectionMints, bson.M{"_id": "mint-1"}, mock.Anything).
			Run(func(_ string, _ interface{}, result interface{}) {
				*result.(*models.Mint) = models.Mint{Id: "mint-1", CollectionId: "col-1", Owner: "0xabc", Amount: 1}
			}).Return(nil)
		mockDB.EXPECT().FindOne(models.CollectionCollections, bson.M{"_id": "col-1"}, mock.Anything).
			Run(func(_ string, _ interface{}, result interface{}) {
				*result.(*models.Collection) = models.Collection{Id: "col-1", EditionId: 9}
			}).Return(nil)

		mint, collection, err := FindMintWithCollection("mint-1")

		assert.Nil(t, err)
		assert.Equal(t, "mint-1", mint.Id)
		assert.Equal(t, int64(9), collection.EditionId)
	})

}

func TestFindMintsForEdition(t *testing.T) {

	t.Run("Limits To Notified Quantity", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		mockDB.EXPECT().FindOne(models.CollectionCollections, bson.M{"edition_id": int64(42)}, mock.Anything).
			Run(func(_ string, _ interface{}, result interface{}) {
				*result.(*models.Collection) = models.Collection{Id: "col-42", EditionId: 42}
			}).Return(nil)
		mockDB.EXPECT().FindManyWithLimit(
			models.CollectionMints,
			bson.M{"collection_id": "col-42", "owner": "0xsender"},
			int64(3),
			mock.Anything,
		).Run(func(_ string, _ interface{}, _ int64, result interface{}) {
			*result.(*[]models.Mint) = []models.Mint{
				{Id: "mint-1", CollectionId: "col-42", Owner: "0xsender"},
				{Id: "mint-2", CollectionId: "col-42", Owner: "0xsender"},
				{Id: "mint-3", CollectionId: "col-42", Owner: "0xsender"},
			}
		}).Return(nil)

		mints, err := FindMintsForEdition("0xsender", 42, 3)

		assert.Nil(t, err)
		assert.Equal(t, 3, len(mints))
	})

	t.Run("Unknown Edition", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		mockDB.EXPECT().FindOne(models.CollectionCollections, bson.M{"edition_id": int64(7)}, mock.Anything).
			Return(mongo.ErrNoDocuments)

		_, err := FindMintsForEdition("0xsender", 7, 1)

		assert.ErrorIs(t, err, ErrCollectionNotFound)
	})

}

func TestUpdateMintOwners(t *testing.T) {

	t.Run("Updates Every Mint In One Transaction", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		mockDB.EXPECT().WithTransaction(mock.Anything).
			RunAndReturn(func(fn func(mongo.SessionContext) error) error {
				return fn(nil)
			})

		update := bson.M{"$set": bson.M{"owner": "0xnew"}}
		mockDB.EXPECT().UpdateOneInSession(mock.Anything, models.CollectionMints, bson.M{"_id": "mint-1"}, update).Return(nil)
		mockDB.EXPECT().UpdateOneInSession(mock.Anything, models.CollectionMints, bson.M{"_id": "mint-2"}, update).Return(nil)

		err := UpdateMintOwners([]string{"mint-1", "mint-2"}, "0xnew")

		assert.Nil(t, err)
	})

	t.Run("Failed Update Aborts Transaction", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB

		mockDB.EXPECT().WithTransaction(mock.Anything).
			RunAndReturn(func(fn func(mongo.SessionContext) error) error {
				return fn(nil)
			})

		update := bson.M{"$set": bson.M{"owner": "0xnew"}}
		mockDB.EXPECT().UpdateOneInSession(mock.Anything, models.CollectionMints, bson.M{"_id": "mint-1"}, update).
			Return(errors.New("no document matched"))

		err := UpdateMintOwners([]string{"mint-1", "mint-2"}, "0xnew")

		assert.NotNil(t, err)
	})

}
