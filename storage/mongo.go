package storage

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoCollection = "session_storage"

type mongoEntry struct {
	Session   string    `bson:"session"`
	Key       string    `bson:"key"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// Mongo stores one document per session key in the session_storage collection.
type Mongo struct {
	collection *mongo.Collection
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{collection: db.Collection(mongoCollection)}
}

// EnsureIndexes creates the unique {session, key} index.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := m.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "session", Value: 1}, {Key: "key", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (m *Mongo) Get(ctx context.Context, session, key string) ([]byte, error) {
	var entry mongoEntry
	err := m.collection.FindOne(ctx, bson.M{"session": session, "key": key}).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return []byte(entry.Value), nil
}

func (m *Mongo) Put(ctx context.Context, session, key string, value []byte) error {
	update := bson.M{
		"$set": bson.M{
			"value":     string(value),
			"updatedAt": time.Now(),
		},
	}

	_, err := m.collection.UpdateOne(
		ctx,
		bson.M{"session": session, "key": key},
		update,
		options.Update().SetUpsert(true),
	)
	return err
}

func (m *Mongo) Delete(ctx context.Context, session, key string) error {
	_, err := m.collection.DeleteOne(ctx, bson.M{"session": session, "key": key})
	return err
}
