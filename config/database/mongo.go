package database

import (
	"TaskNest/config/environment"
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var MongoClient *mongo.Client

// InitMongo connects to MongoDB and keeps the client as a package global.
func InitMongo() {
	uri := environment.GetMongoURI()
	if uri == "" {
		log.Fatal("MONGO_URI environment variable is missing")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}

	MongoClient = client
	log.Println("MongoDB connected successfully")

	ensureIndexes(ctx)
}

// ensureIndexes backs the duplicate-email check with a unique index, so a
// race between two registrations still cannot produce two accounts.
func ensureIndexes(ctx context.Context) {
	_, err := GetCollection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Fatalf("Failed to create email index: %v", err)
	}
}

// GetMongoClient returns the Mongo client instance
func GetMongoClient() *mongo.Client {
	return MongoClient
}

// GetCollection returns a collection handle in the configured database
func GetCollection(name string) *mongo.Collection {
	return MongoClient.Database(environment.GetMongoDatabase()).Collection(name)
}

// Disconnect closes the connection, used on shutdown
func Disconnect() {
	if MongoClient == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := MongoClient.Disconnect(ctx); err != nil {
		log.Printf("Error disconnecting from MongoDB: %v", err)
	}
}
