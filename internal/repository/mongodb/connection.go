// Package mongodb implements the stores on top of MongoDB.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/dtroode/bloglist-server/internal/model"
)

var _ model.Pinger = (*Connection)(nil)

const (
	usersCollection   = "users"
	blogsCollection   = "blogs"
	personsCollection = "persons"
)

// insertionOrder sorts documents in the order they were written.
var insertionOrder = bson.D{{Key: "$natural", Value: 1}}

type Connection struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewConnection connects to uri, verifies the connection and creates the indexes
// the stores rely on.
func NewConnection(ctx context.Context, uri, database string, timeout time.Duration) (*Connection, error) {
	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	conn := &Connection{client: client, db: client.Database(database)}
	if err := conn.ensureIndexes(connectCtx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return conn, nil
}

func (c *Connection) ensureIndexes(ctx context.Context) error {
	_, err := c.db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create username index: %w", err)
	}
	return nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

func (c *Connection) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

func (c *Connection) collection(name string) *mongo.Collection {
	return c.db.Collection(name)
}

func mapError(err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return model.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return model.ErrAlreadyExists
	default:
		return err
	}
}

func parseIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("failed to parse id %q: %w", s, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
