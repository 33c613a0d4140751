// Package store defines the document collection contract the services are
// written against. Backends live in the mongostore and sqlstore packages.
package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Field names shared by every backend. They are the bson keys in Mongo and
// the column names in SQL.
const (
	FieldID          = "_id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldImgSrc      = "img_src"
	FieldToppingIDs  = "topping_ids"
	FieldPriceCents  = "price_cents"
	FieldCreatedAt   = "created_at"
	FieldUpdatedAt   = "updated_at"
)

// Position identifies a document within the (name, id) ordering.
type Position struct {
	Name string
	ID   string
}

// Filter restricts the documents a query matches. The zero value matches
// every document.
type Filter struct {
	// IDs restricts the match to these ids when non-nil. An empty non-nil
	// slice matches nothing.
	IDs []string
	// Through restricts the match to documents ordered at or before the
	// given position.
	Through *Position
}

// FindOptions controls the window of a Find. Zero Limit means no limit.
type FindOptions struct {
	Skip  int64
	Limit int64
}

// Fields is the set of field values applied by FindOneAndUpdate, keyed by
// the Field* names.
type Fields map[string]interface{}

// Collection is a typed document collection. Find always returns documents
// sorted ascending by name, ties broken by ascending id.
type Collection[T any] interface {
	Find(ctx context.Context, filter Filter, opts FindOptions) ([]T, error)
	Count(ctx context.Context, filter Filter) (int64, error)
	// FindOneAndUpdate applies set to the document with the given id and
	// returns it after the update. With upsert a missing document is
	// created. A nil document with a nil error means nothing matched.
	FindOneAndUpdate(ctx context.Context, id string, set Fields, upsert bool) (*T, error)
	// FindOneAndDelete removes the document and returns it, or nil when
	// nothing matched.
	FindOneAndDelete(ctx context.Context, id string) (*T, error)
	Ping(ctx context.Context) error
}

// NewID returns a new identifier. Identifiers are ObjectID hex strings, so
// their lexical order follows creation order.
func NewID() string {
	return primitive.NewObjectID().Hex()
}
