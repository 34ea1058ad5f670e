package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectMongo opens a connection and returns the client. Caller should call client.Disconnect(ctx).
func ConnectMongo(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	clientOpts := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

// EnsureDocumentIndexes creates the secondary indexes the read paths query:
// forums by name, top-level posts by forum ordered by date, and replies by
// parent. Index creation is idempotent.
func EnsureDocumentIndexes(ctx context.Context, col *mongo.Collection) error {
	idx := []mongo.IndexModel{
		{Keys: bson.D{{Key: "type", Value: 1}, {Key: "name", Value: 1}}},
		{Keys: bson.D{{Key: "type", Value: 1}, {Key: "forum", Value: 1}, {Key: "parent", Value: 1}, {Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "type", Value: 1}, {Key: "parent", Value: 1}}},
	}
	if _, err := col.Indexes().CreateMany(ctx, idx); err != nil {
		return fmt.Errorf("create document indexes: %w", err)
	}
	return nil
}
