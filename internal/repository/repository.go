package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is a thin generic wrapper over a Mongo collection, instantiated
// once per entity type. No transactions; every call is an independent
// round-trip to the store.
type Collection[T any] struct {
	coll *mongo.Collection
}

func New[T any](db *mongo.Database, name string) *Collection[T] {
	return &Collection[T]{coll: db.Collection(name)}
}

// FindOne returns (nil, nil) when no document matches.
func (c *Collection[T]) FindOne(ctx context.Context, filter bson.M) (*T, error) {
	var doc T
	err := c.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Find never returns a nil slice on success.
func (c *Collection[T]) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := c.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := make([]T, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (c *Collection[T]) InsertOne(ctx context.Context, doc T) (*mongo.InsertOneResult, error) {
	return c.coll.InsertOne(ctx, doc)
}

func (c *Collection[T]) UpdateOne(ctx context.Context, filter, update bson.M, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	return c.coll.UpdateOne(ctx, filter, update, opts...)
}

func (c *Collection[T]) UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) (*mongo.UpdateResult, error) {
	return c.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
}

func (c *Collection[T]) DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return c.coll.DeleteOne(ctx, bson.M{"_id": id})
}
