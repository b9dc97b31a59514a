package db

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

var (
	Client *mongo.Client
	DB     *mongo.Database
)

/*
* Connect to mongo with the URI and database name from the environment
 */
func Connect() error {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "vitalfit"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Println("Error while connecting to mongo: ", err)
		return err
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Println("Error while pinging mongo: ", err)
		return err
	}
	Client = client
	DB = client.Database(dbName)
	log.Println("Connected to mongo database: ", dbName)
	return nil
}

func OpenCollections(name string) *mongo.Collection {
	return DB.Collection(name)
}

func FindOne(ctx context.Context, coll *mongo.Collection, filter interface{}, result interface{}) error {
	return coll.FindOne(ctx, filter).Decode(result)
}

func FindAll(ctx context.Context, coll *mongo.Collection, filter interface{}, opts *options.FindOptions, results interface{}) error {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, results)
}

func CreateOne(ctx context.Context, coll *mongo.Collection, doc interface{}) (*mongo.InsertOneResult, error) {
	return coll.InsertOne(ctx, doc)
}

func UpdateOne(ctx context.Context, coll *mongo.Collection, filter interface{}, update interface{}) (*mongo.UpdateResult, error) {
	return coll.UpdateOne(ctx, filter, update)
}

func DeleteOne(ctx context.Context, coll *mongo.Collection, filter interface{}) (*mongo.DeleteResult, error) {
	return coll.DeleteOne(ctx, filter)
}

/*
* Run fn inside a causally-consistent session with snapshot reads and
* majority writes, so a conflict check and the insert it guards commit
* or abort together
 */
func WithTransaction(ctx context.Context, fn func(sc mongo.SessionContext) (interface{}, error)) (interface{}, error) {
	session, err := Client.StartSession()
	if err != nil {
		return nil, err
	}
	defer session.EndSession(ctx)

	txnOpts := options.Transaction().
		SetReadConcern(readconcern.Snapshot()).
		SetWriteConcern(writeconcern.Majority())
	return session.WithTransaction(ctx, fn, txnOpts)
}
