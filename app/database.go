package app

import (
	"context"
	"crypto/rand"
	"errors"
	"time"

	"github.com/holaplex/hub-nfts-polygon/models"
	log "github.com/sirupsen/logrus"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	lock "github.com/square/mongo-lock"
)

type Database interface {
	Connect() error
	SetupLockers() error
	SetupIndexes() error
	Disconnect() error
	InsertOne(collection string, data interface{}) error
	FindOne(collection string, filter interface{}, result interface{}) error
	FindOneWithSort(collection string, filter interface{}, sort interface{}, result interface{}) error
	FindManyWithLimit(collection string, filter interface{}, limit int64, result interface{}) error
	UpdateOne(collection string, filter interface{}, update interface{}) error
	WithTransaction(fn func(sc mongo.SessionContext) error) error
	UpdateOneInSession(sc mongo.SessionContext, collection string, filter interface{}, update interface{}) error

	XLock(resourceId string) (string, error)
	Unlock(lockId string) error
}

// mongoDatabase is a wrapper around the mongo database
type mongoDatabase struct {
	db       *mongo.Database
	uri      string
	database string
	locker   *lock.Client
}

var (
	DB Database
)

func (d *mongoDatabase) timeout() time.Duration {
	return time.Duration(Config.MongoDB.TimeoutMillis) * time.Millisecond
}

// Connect connects to the database
func (d *mongoDatabase) Connect() error {
	log.Debug("[DB] Connecting to database")
	wcMajority := writeconcern.Majority()

	ctx, cancel := context.WithTimeout(context.Background(), d.timeout())
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(d.uri).SetWriteConcern(wcMajority))
	if err != nil {
		return err
	}
	d.db = client.Database(d.database)

	log.Info("[DB] Connected to mongo database: ", d.database)
	return nil
}

// SetupLockers sets up the locker used to serialize edition id allocation
func (d *mongoDatabase) SetupLockers() error {
	log.Debug("[DB] Setting up locker")

	ctx, cancel := context.WithTimeout(context.Background(), d.timeout())
	defer cancel()

	locker := lock.NewClient(d.db.Collection("locks"))
	if err := locker.CreateIndexes(ctx); err != nil {
		return err
	}
	d.locker = locker

	log.Info("[DB] Locker setup")
	return nil
}

func randomString(n int) string {
	const alphanum = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	var bytes = make([]byte, n)
	rand.Read(bytes)
	for i, b := range bytes {
		bytes[i] = alphanum[b%byte(len(alphanum))]
	}
	return string(bytes)
}

// XLock locks a resource for exclusive access
func (d *mongoDatabase) XLock(resourceId string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout())
	defer cancel()

	lockId := randomString(32)
	err := d.locker.XLock(ctx, resourceId, lockId, lock.LockDetails{})
	return lockId, err
}

// Unlock unlocks a resource
func (d *mongoDatabase) Unlock(lockId string) error {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout())
	defer cancel()

	_, err := d.locker.Unlock(ctx, lockId)
	return err
}

// SetupIndexes sets up the indexes for the collections and mints
func (d *mongoDatabase) SetupIndexes() error {
	log.Debug("[DB] Setting up indexes")

	// edition ids are unique across collections
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout())
	defer cancel()
	_, err := d.db.Collection(models.CollectionCollections).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "edition_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	// mints are looked up by collection and current owner during reconciliation
	ctx, cancel = context.WithTimeout(context.Background(), d.timeout())
	defer cancel()
	_, err = d.db.Collection(models.CollectionMints).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "collection_id", Value: 1}, {Key: "owner", Value: 1}},
	})
	if err != nil {
		return err
	}

	log.Info("[DB] Indexes setup")

	return nil
}

// Disconnect disconnects from the database
func (d *mongoDatabase) Disconnect() error {
	log.Debug("[DB] Disconnecting from database")
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout())
	defer cancel()
	err := d.db.Client().Disconnect(ctx)
	log.Info("[DB] Disconnected from database")
	return err
}

// method for insert single value in a collection
func (d *mongoDatabase) InsertOne(collection string, data interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout())
	defer cancel()
	_, err := d.db.Collection(collection).InsertOne(ctx, data)
	return err
}

// method for find single value in a collection
func (d *mongoDatabase) FindOne(collection string, filter interface{}, result interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout())
	defer cancel()
	err := d.db.Collection(collection).FindOne(ctx, filter).Decode(result)
	return err
}

// method for find single value in a collection with a sort order
func (d *mongoDatabase) FindOneWithSort(collection string, filter interface{}, sort interface{}, result interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout())
	defer cancel()
	opts := options.FindOne().SetSort(sort)
	err := d.db.Collection(collection).FindOne(ctx, filter, opts).Decode(result)
	return err
}

// method for find multiple values in a collection with a limit
func (d *mongoDatabase) FindManyWithLimit(collection string, filter interface{}, limit int64, result interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout())
	defer cancel()
	opts := options.Find().SetLimit(limit)
	cursor, err := d.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	err = cursor.All(ctx, result)
	return err
}

// method for update single value in a collection
func (d *mongoDatabase) UpdateOne(collection string, filter interface{}, update interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout())
	defer cancel()
	_, err := d.db.Collection(collection).UpdateOne(ctx, filter, update)
	return err
}

// WithTransaction runs fn inside a single multi-document transaction;
// any error aborts the whole transaction
func (d *mongoDatabase) WithTransaction(fn func(sc mongo.SessionContext) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout())
	defer cancel()

	session, err := d.db.Client().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}

// UpdateOneInSession updates a single document within a session's transaction;
// a filter that matches nothing is an error so the transaction aborts
func (d *mongoDatabase) UpdateOneInSession(sc mongo.SessionContext, collection string, filter interface{}, update interface{}) error {
	res, err := d.db.Collection(collection).UpdateOne(sc, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("no document matched")
	}
	return nil
}

// InitDB creates a new database wrapper
func InitDB() {
	DB = &mongoDatabase{
		uri:      Config.MongoDB.URI,
		database: Config.MongoDB.Database,
	}

	err := DB.Connect()
	if err != nil {
		log.Fatal(err)
	}
	err = DB.SetupIndexes()
	if err != nil {
		log.Fatal(err)
	}
	err = DB.SetupLockers()
	if err != nil {
		log.Fatal(err)
	}
	log.Info("[DB] Database initialized")
}
