package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	userCollectionName     = "users"
	trainingCollectionName = "training"
	defaultTimeout         = 10 * time.Second
)

// DB holds the client and the selected database
type DB struct {
	client   *mongo.Client
	database *mongo.Database
}

// Connect opens the client, pings the primary and ensures indexes.
func Connect(ctx context.Context, uri, database string, timeout time.Duration) (*DB, error) {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	db := &DB{client: client, database: client.Database(database)}
	if err := db.EnsureIndexes(connectCtx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// EnsureIndexes creates the unique email and user_id indexes.
func (db *DB) EnsureIndexes(ctx context.Context) error {
	_, err := db.database.Collection(userCollectionName).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}

	_, err = db.database.Collection(trainingCollectionName).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create training indexes: %w", err)
	}
	return nil
}

// Ping verifies connectivity
func (db *DB) Ping(ctx context.Context) error {
	return db.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client
func (db *DB) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return db.client.Disconnect(ctx)
}
