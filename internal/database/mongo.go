package database

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names used by the Mongo backend
const (
	PizzasCollection   = "pizzas"
	ToppingsCollection = "toppings"
)

// InitMongo connects to MongoDB with the same retry policy as InitDatabase
// and returns the configured database.
func InitMongo(cfg DatabaseConfig) (*mongo.Client, *mongo.Database, error) {
	if cfg.MongoURI == "" {
		return nil, nil, fmt.Errorf("mongodb URI is required")
	}
	if cfg.MongoDatabase == "" {
		return nil, nil, fmt.Errorf("mongodb database is required")
	}
	timeout := cfg.MongoTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	log.WithFields(logrus.Fields{
		"db_driver": DriverMongo,
		"mongo_uri": maskURI(cfg.MongoURI),
		"db_name":   cfg.MongoDatabase,
	}).Info("Initializing database connection")

	var client *mongo.Client
	err := withRetry(DriverMongo, func() error {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		clientOptions := options.Client().
			ApplyURI(cfg.MongoURI).
			SetMaxPoolSize(100).
			SetMinPoolSize(10)

		c, err := mongo.Connect(ctx, clientOptions)
		if err != nil {
			return fmt.Errorf("failed to connect to mongodb: %w", err)
		}
		if err := c.Ping(ctx, readpref.Primary()); err != nil {
			_ = c.Disconnect(context.Background())
			return fmt.Errorf("failed to ping mongodb: %w", err)
		}
		client = c
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return client, client.Database(cfg.MongoDatabase), nil
}

// EnsureIndexes creates the (name, _id) index pagination sorts on
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	nameIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}},
	}
	for _, name := range []string{PizzasCollection, ToppingsCollection} {
		if _, err := db.Collection(name).Indexes().CreateOne(ctx, nameIndex); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", name, err)
		}
	}
	log.Info("MongoDB indexes created successfully")
	return nil
}
