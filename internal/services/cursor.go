package services

import (
	"context"

	"github.com/franciscosanchezn/pizza-toppings-api/internal/models"
	"github.com/franciscosanchezn/pizza-toppings-api/internal/store"
)

// CursorProvider pages through pizzas ordered by name (ties by id).
// Pages are skip based: the cursor is resolved to the number of documents
// to skip, so pages drift if the collection changes between requests.
type CursorProvider interface {
	// ResolveCursorIndex returns how many documents precede the page that
	// starts after cursor. A missing or unknown cursor resolves to 0.
	ResolveCursorIndex(ctx context.Context, cursor *string) (int64, error)
	// GetPage returns at most input.Limit pizzas following input.Cursor
	GetPage(ctx context.Context, input models.PageInput) (models.PizzaPage, error)
}

type cursorProvider struct {
	collection store.Collection[models.Pizza]
}

// NewCursorProvider creates a CursorProvider over the pizza collection
func NewCursorProvider(collection store.Collection[models.Pizza]) CursorProvider {
	return &cursorProvider{collection: collection}
}

func (p *cursorProvider) ResolveCursorIndex(ctx context.Context, cursor *string) (int64, error) {
	if cursor == nil || *cursor == "" {
		return 0, nil
	}

	found, err := p.collection.Find(ctx, store.Filter{IDs: []string{*cursor}}, store.FindOptions{Limit: 1})
	if err != nil {
		return 0, err
	}
	if len(found) == 0 {
		// position -1, plus one
		return 0, nil
	}

	// Documents ordered at or before the cursor: its position plus one
	return p.collection.Count(ctx, store.Filter{
		Through: &store.Position{Name: found[0].Name, ID: found[0].ID},
	})
}

func (p *cursorProvider) GetPage(ctx context.Context, input models.PageInput) (models.PizzaPage, error) {
	if input.Limit <= 0 {
		return models.PizzaPage{}, models.NewValidationError("limit", "must be a positive integer")
	}

	skip, err := p.ResolveCursorIndex(ctx, input.Cursor)
	if err != nil {
		return models.PizzaPage{}, err
	}

	limit := int64(input.Limit)
	data, err := p.collection.Find(ctx, store.Filter{}, store.FindOptions{Skip: skip, Limit: limit + 1})
	if err != nil {
		return models.PizzaPage{}, err
	}

	hasNextPage := false
	if len(data) > input.Limit {
		hasNextPage = true
		data = data[:input.Limit]
	}

	page := models.PizzaPage{
		TotalCount:  len(data),
		HasNextPage: hasNextPage,
		Results:     data,
	}
	if page.TotalCount >= input.Limit {
		next := data[input.Limit-1].ID
		page.Cursor = &next
	}
	return page, nil
}
