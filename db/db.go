package db

import (
	"context"
	"log"
	"os"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	TablesCollection   *mongo.Collection
	BookingsCollection *mongo.Collection
	UserCollection     *mongo.Collection
	Client             *mongo.Client
)

// Initialize MongoDB connection
func init() {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	var err error
	Client, err = mongo.Connect(context.TODO(), options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	database := Client.Database("erable")
	TablesCollection = database.Collection("tables")
	BookingsCollection = database.Collection("bookings")
	UserCollection = database.Collection("users")
}

// EnsureIndexes creates the indexes the handlers rely on. Called once
// from main after the connection is up.
func EnsureIndexes(ctx context.Context) {

	// Bookings are looked up by id, by assigned table and by window.
	_, err := BookingsCollection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "tables.name", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "startTime", Value: 1}}},
	})
	if err != nil {
		log.Printf("booking index creation: %v", err)
	}

	_, err = TablesCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Printf("table index creation: %v", err)
	}
}
