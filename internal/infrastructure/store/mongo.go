package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ticketapp/ticket-system/internal/core/domain"
)

const (
	mongoTimeout       = 10 * time.Second
	documentCollection = "documents"
)

// MongoConfig captures the minimal settings required to establish a MongoDB
// connection.
type MongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// ConnectMongo establishes a MongoDB client, verifies connectivity with a
// ping, and returns both the client and the selected database. A default
// timeout is applied when none is provided.
func ConnectMongo(ctx context.Context, cfg MongoConfig) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = mongoTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}

// MongoStore keeps each document as one record in a single collection, keyed
// by _id.
type MongoStore struct {
	coll *mongo.Collection
}

// NewMongoStore wraps an established database handle.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{coll: db.Collection(documentCollection)}
}

type mongoDocument struct {
	Key  string `bson:"_id"`
	Data []byte `bson:"data"`
}

func (s *MongoStore) Read(ctx context.Context, key string) ([]byte, error) {
	var doc mongoDocument
	if err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNoDocument
		}
		return nil, fmt.Errorf("read %q: %w", key, err)
	}
	return doc.Data, nil
}

func (s *MongoStore) Write(ctx context.Context, key string, data []byte) error {
	_, err := s.coll.ReplaceOne(
		ctx,
		bson.M{"_id": key},
		mongoDocument{Key: key, Data: data},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}
	return nil
}

func (s *MongoStore) Remove(ctx context.Context, key string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("remove %q: %w", key, err)
	}
	return nil
}
