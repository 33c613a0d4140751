// Package mongostore implements store.Collection on a MongoDB collection.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/franciscosanchezn/pizza-toppings-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection is a MongoDB backed store.Collection. T must decode from a
// document whose _id is a string.
type Collection[T any] struct {
	collection *mongo.Collection
	timeout    time.Duration
}

// NewCollection wraps the named collection of db. Every operation is bounded
// by timeout unless the caller's context already has a deadline.
func NewCollection[T any](db *mongo.Database, name string, timeout time.Duration) *Collection[T] {
	return &Collection[T]{
		collection: db.Collection(name),
		timeout:    timeout,
	}
}

var nameOrder = bson.D{{Key: store.FieldName, Value: 1}, {Key: store.FieldID, Value: 1}}

func (c *Collection[T]) Find(ctx context.Context, filter store.Filter, opts store.FindOptions) ([]T, error) {
	ctx, cancel := c.withOperationTimeout(ctx)
	defer cancel()

	findOpts := options.Find().SetSort(nameOrder)
	if opts.Skip > 0 {
		findOpts.SetSkip(opts.Skip)
	}
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}

	cursor, err := c.collection.Find(ctx, buildFilter(filter), findOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to find documents: %w", err)
	}
	defer cursor.Close(ctx)

	docs := []T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode documents: %w", err)
	}
	return docs, nil
}

func (c *Collection[T]) Count(ctx context.Context, filter store.Filter) (int64, error) {
	ctx, cancel := c.withOperationTimeout(ctx)
	defer cancel()

	count, err := c.collection.CountDocuments(ctx, buildFilter(filter))
	if err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return count, nil
}

func (c *Collection[T]) FindOneAndUpdate(ctx context.Context, id string, set store.Fields, upsert bool) (*T, error) {
	ctx, cancel := c.withOperationTimeout(ctx)
	defer cancel()

	opts := options.FindOneAndUpdate().
		SetUpsert(upsert).
		SetReturnDocument(options.After)

	var doc T
	err := c.collection.FindOneAndUpdate(ctx, bson.M{store.FieldID: id}, buildUpdate(set), opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update document: %w", err)
	}
	return &doc, nil
}

func (c *Collection[T]) FindOneAndDelete(ctx context.Context, id string) (*T, error) {
	ctx, cancel := c.withOperationTimeout(ctx)
	defer cancel()

	var doc T
	err := c.collection.FindOneAndDelete(ctx, bson.M{store.FieldID: id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete document: %w", err)
	}
	return &doc, nil
}

func (c *Collection[T]) Ping(ctx context.Context) error {
	ctx, cancel := c.withOperationTimeout(ctx)
	defer cancel()
	return c.collection.Database().Client().Ping(ctx, readpref.Primary())
}

func (c *Collection[T]) withOperationTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return ctx, func() {}
	}
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeout)
}

// buildFilter translates a store.Filter into a Mongo query document
func buildFilter(filter store.Filter) bson.M {
	clauses := bson.A{}
	if filter.IDs != nil {
		clauses = append(clauses, bson.M{store.FieldID: bson.M{"$in": filter.IDs}})
	}
	if p := filter.Through; p != nil {
		clauses = append(clauses, bson.M{"$or": bson.A{
			bson.M{store.FieldName: bson.M{"$lt": p.Name}},
			bson.M{store.FieldName: p.Name, store.FieldID: bson.M{"$lte": p.ID}},
		}})
	}

	switch len(clauses) {
	case 0:
		return bson.M{}
	case 1:
		return clauses[0].(bson.M)
	default:
		return bson.M{"$and": clauses}
	}
}

// buildUpdate wraps fields in a $set. The _id is never part of the update.
func buildUpdate(set store.Fields) bson.M {
	fields := bson.M{}
	for k, v := range set {
		if k == store.FieldID {
			continue
		}
		fields[k] = v
	}
	return bson.M{"$set": fields}
}
