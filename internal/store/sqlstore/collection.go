// Package sqlstore implements store.Collection on top of gorm, so the
// service can run on SQLite or PostgreSQL.
package sqlstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/pizza-toppings-api/internal/store"
	"gorm.io/gorm"
)

const idColumn = "id"

// Collection is a gorm backed store.Collection. T must be a gorm model whose
// primary key column is "id".
type Collection[T any] struct {
	db *gorm.DB
}

// NewCollection creates a collection over the table of model T
func NewCollection[T any](db *gorm.DB) *Collection[T] {
	return &Collection[T]{db: db}
}

func (c *Collection[T]) scoped(ctx context.Context, filter store.Filter) *gorm.DB {
	q := c.db.WithContext(ctx).Model(new(T))
	if filter.IDs != nil {
		q = q.Where("id IN ?", filter.IDs)
	}
	if p := filter.Through; p != nil {
		q = q.Where("(name < ? OR (name = ? AND id <= ?))", p.Name, p.Name, p.ID)
	}
	return q
}

func (c *Collection[T]) Find(ctx context.Context, filter store.Filter, opts store.FindOptions) ([]T, error) {
	q := c.scoped(ctx, filter).Order("name ASC").Order("id ASC")
	if opts.Skip > 0 {
		q = q.Offset(int(opts.Skip))
	}
	if opts.Limit > 0 {
		q = q.Limit(int(opts.Limit))
	}

	docs := []T{}
	if err := q.Find(&docs).Error; err != nil {
		return nil, fmt.Errorf("failed to find documents: %w", err)
	}
	return docs, nil
}

func (c *Collection[T]) Count(ctx context.Context, filter store.Filter) (int64, error) {
	var count int64
	if err := c.scoped(ctx, filter).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return count, nil
}

func (c *Collection[T]) FindOneAndUpdate(ctx context.Context, id string, set store.Fields, upsert bool) (*T, error) {
	var result *T
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing T
		err := tx.Where("id = ?", id).Take(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if !upsert {
				return nil
			}
			values := columns(set)
			values[idColumn] = id
			if err := tx.Model(new(T)).Create(values).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			if err := tx.Model(new(T)).Where("id = ?", id).Updates(columns(set)).Error; err != nil {
				return err
			}
		}

		var doc T
		if err := tx.Where("id = ?", id).Take(&doc).Error; err != nil {
			return err
		}
		result = &doc
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update document: %w", err)
	}
	return result, nil
}

func (c *Collection[T]) FindOneAndDelete(ctx context.Context, id string) (*T, error) {
	var result *T
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var doc T
		err := tx.Where("id = ?", id).Take(&doc).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := tx.Where("id = ?", id).Delete(new(T)).Error; err != nil {
			return err
		}
		result = &doc
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete document: %w", err)
	}
	return result, nil
}

func (c *Collection[T]) Ping(ctx context.Context) error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// columns converts store fields to column values. The id is never updated.
func columns(set store.Fields) map[string]interface{} {
	values := make(map[string]interface{}, len(set)+1)
	for k, v := range set {
		if k == store.FieldID {
			continue
		}
		values[k] = v
	}
	return values
}
