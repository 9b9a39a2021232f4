package mongo

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Counter is the subset of *mongo.Collection the lookup needs.
type Counter interface {
	CountDocuments(ctx context.Context, filter any, opts ...options.Lister[options.CountOptions]) (int64, error)
}

// FieldLookup reports a value as taken when a document holds it in a field.
type FieldLookup struct {
	coll  Counter
	field string
}

func NewFieldLookup(coll Counter, field string) (*FieldLookup, error) {
	if field == "" {
		return nil, ErrInvalidTarget
	}
	return &FieldLookup{coll: coll, field: field}, nil
}

// NewTargetLookup resolves target, written "collection.field", inside db.
// Dotted paths after the collection name address nested fields.
func NewTargetLookup(db *mongo.Database, target string) (*FieldLookup, error) {
	collection, field, ok := strings.Cut(target, ".")
	if !ok || collection == "" || field == "" {
		return nil, ErrInvalidTarget
	}
	return NewFieldLookup(db.Collection(collection), field)
}

// Filter returns the query document used for value.
func (l *FieldLookup) Filter(value any) bson.D {
	return bson.D{{Key: l.field, Value: value}}
}

func (l *FieldLookup) Exists(ctx context.Context, value any) (bool, error) {
	n, err := l.coll.CountDocuments(ctx, l.Filter(value), options.Count().SetLimit(1))
	if err != nil {
		return false, errors.Join(ErrLookupFailed, err)
	}
	return n > 0, nil
}
