package services

import (
	"context"
	"time"

	"github.com/franciscosanchezn/pizza-toppings-api/internal/models"
	"github.com/franciscosanchezn/pizza-toppings-api/internal/store"
)

// ToppingService provides methods to interact with the topping collection
type ToppingService interface {
	// GetAllToppings retrieves all toppings sorted by name
	GetAllToppings(ctx context.Context) ([]models.Topping, error)
	// GetToppingByID retrieves a topping by its ID
	GetToppingByID(ctx context.Context, id string) (models.Topping, error)
	// CreateTopping creates a new topping
	CreateTopping(ctx context.Context, input models.CreateToppingInput) (models.Topping, error)
	// UpdateTopping applies the provided fields to an existing topping
	UpdateTopping(ctx context.Context, input models.UpdateToppingInput) (models.Topping, error)
	// DeleteTopping deletes a topping and returns its ID
	DeleteTopping(ctx context.Context, id string) (string, error)
	// GetToppingsByIDs retrieves the existing toppings among ids, sorted by name
	GetToppingsByIDs(ctx context.Context, ids []string) ([]models.Topping, error)
	// ValidateToppings fails unless every id references an existing topping
	ValidateToppings(ctx context.Context, ids []string) error
	// SumPriceCents sums the price of the existing toppings among ids
	SumPriceCents(ctx context.Context, ids []string) (int64, error)
}

// toppingService is the implementation of the ToppingService interface
type toppingService struct {
	collection store.Collection[models.Topping]
	now        func() time.Time
}

// NewToppingService creates a new instance of ToppingService
func NewToppingService(collection store.Collection[models.Topping]) ToppingService {
	return &toppingService{collection: collection, now: time.Now}
}

func (s *toppingService) GetAllToppings(ctx context.Context) ([]models.Topping, error) {
	return s.collection.Find(ctx, store.Filter{}, store.FindOptions{})
}

func (s *toppingService) GetToppingByID(ctx context.Context, id string) (models.Topping, error) {
	toppings, err := s.collection.Find(ctx, store.Filter{IDs: []string{id}}, store.FindOptions{Limit: 1})
	if err != nil {
		return models.Topping{}, err
	}
	if len(toppings) == 0 {
		return models.Topping{}, models.NewNotFoundError("topping", id)
	}
	return toppings[0], nil
}

func (s *toppingService) CreateTopping(ctx context.Context, input models.CreateToppingInput) (models.Topping, error) {
	if err := requireNonEmpty("name", input.Name); err != nil {
		return models.Topping{}, err
	}
	if err := requireNonNegative("priceCents", input.PriceCents); err != nil {
		return models.Topping{}, err
	}

	now := s.now().UTC()
	topping, err := s.collection.FindOneAndUpdate(ctx, store.NewID(), store.Fields{
		store.FieldName:       input.Name,
		store.FieldPriceCents: input.PriceCents,
		store.FieldCreatedAt:  now,
		store.FieldUpdatedAt:  now,
	}, true)
	if err != nil {
		return models.Topping{}, err
	}
	if topping == nil {
		return models.Topping{}, models.NewPersistenceError("create the "+input.Name+" topping", nil)
	}
	return *topping, nil
}

func (s *toppingService) UpdateTopping(ctx context.Context, input models.UpdateToppingInput) (models.Topping, error) {
	set := store.Fields{store.FieldUpdatedAt: s.now().UTC()}
	if input.Name != nil {
		if err := requireNonEmpty("name", *input.Name); err != nil {
			return models.Topping{}, err
		}
		set[store.FieldName] = *input.Name
	}
	if input.PriceCents != nil {
		if err := requireNonNegative("priceCents", *input.PriceCents); err != nil {
			return models.Topping{}, err
		}
		set[store.FieldPriceCents] = *input.PriceCents
	}

	topping, err := s.collection.FindOneAndUpdate(ctx, input.ID, set, false)
	if err != nil {
		return models.Topping{}, err
	}
	if topping == nil {
		return models.Topping{}, models.NewNotFoundError("topping", input.ID)
	}
	return *topping, nil
}

func (s *toppingService) DeleteTopping(ctx context.Context, id string) (string, error) {
	topping, err := s.collection.FindOneAndDelete(ctx, id)
	if err != nil {
		return "", err
	}
	if topping == nil {
		return "", models.NewNotFoundError("topping", id)
	}
	return id, nil
}

func (s *toppingService) GetToppingsByIDs(ctx context.Context, ids []string) ([]models.Topping, error) {
	if len(ids) == 0 {
		return []models.Topping{}, nil
	}
	return s.collection.Find(ctx, store.Filter{IDs: ids}, store.FindOptions{})
}

func (s *toppingService) ValidateToppings(ctx context.Context, ids []string) error {
	toppings, err := s.GetToppingsByIDs(ctx, ids)
	if err != nil {
		return err
	}
	// Duplicate ids resolve once, so they fail here as well
	if len(toppings) != len(ids) {
		return models.NewValidationError("toppingIds", "unknown topping reference")
	}
	return nil
}

func (s *toppingService) SumPriceCents(ctx context.Context, ids []string) (int64, error) {
	toppings, err := s.GetToppingsByIDs(ctx, ids)
	if err != nil {
		return 0, err
	}
	var sum int64
	for _, t := range toppings {
		sum += t.PriceCents
	}
	return sum, nil
}
