package services

import (
	"context"
	"time"

	"github.com/franciscosanchezn/pizza-toppings-api/internal/models"
	"github.com/franciscosanchezn/pizza-toppings-api/internal/store"
)

// PizzaService provides methods to interact with the pizza collection
type PizzaService interface {
	// GetPizzas retrieves one page of pizzas ordered by name
	GetPizzas(ctx context.Context, input models.PageInput) (models.PizzaPage, error)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(ctx context.Context, id string) (models.Pizza, error)
	// CreatePizza creates a new pizza after validating its topping references
	CreatePizza(ctx context.Context, input models.CreatePizzaInput) (models.Pizza, error)
	// UpdatePizza applies the provided fields to an existing pizza
	UpdatePizza(ctx context.Context, input models.UpdatePizzaInput) (models.Pizza, error)
	// DeletePizza deletes a pizza by its ID and returns the ID
	DeletePizza(ctx context.Context, id string) (string, error)
}

// pizzaService is the implementation of the PizzaService interface
type pizzaService struct {
	collection store.Collection[models.Pizza]
	toppings   ToppingService
	cursor     CursorProvider
	now        func() time.Time
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(collection store.Collection[models.Pizza], toppings ToppingService, cursor CursorProvider) PizzaService {
	return &pizzaService{
		collection: collection,
		toppings:   toppings,
		cursor:     cursor,
		now:        time.Now,
	}
}

func (s *pizzaService) GetPizzas(ctx context.Context, input models.PageInput) (models.PizzaPage, error) {
	return s.cursor.GetPage(ctx, input)
}

func (s *pizzaService) GetPizzaByID(ctx context.Context, id string) (models.Pizza, error) {
	pizzas, err := s.collection.Find(ctx, store.Filter{IDs: []string{id}}, store.FindOptions{Limit: 1})
	if err != nil {
		return models.Pizza{}, err
	}
	if len(pizzas) == 0 {
		return models.Pizza{}, models.NewNotFoundError("pizza", id)
	}
	return pizzas[0], nil
}

func (s *pizzaService) CreatePizza(ctx context.Context, input models.CreatePizzaInput) (models.Pizza, error) {
	for _, f := range []struct{ name, value string }{
		{"name", input.Name},
		{"description", input.Description},
		{"imgSrc", input.ImgSrc},
	} {
		if err := requireNonEmpty(f.name, f.value); err != nil {
			return models.Pizza{}, err
		}
	}

	toppingIDs := models.IDList(input.ToppingIDs)
	if toppingIDs == nil {
		toppingIDs = models.IDList{}
	}
	if err := s.toppings.ValidateToppings(ctx, toppingIDs); err != nil {
		return models.Pizza{}, err
	}

	now := s.now().UTC()
	pizza, err := s.collection.FindOneAndUpdate(ctx, store.NewID(), store.Fields{
		store.FieldName:        input.Name,
		store.FieldDescription: input.Description,
		store.FieldImgSrc:      input.ImgSrc,
		store.FieldToppingIDs:  toppingIDs,
		store.FieldCreatedAt:   now,
		store.FieldUpdatedAt:   now,
	}, true)
	if err != nil {
		return models.Pizza{}, err
	}
	if pizza == nil {
		return models.Pizza{}, models.NewPersistenceError("create the "+input.Name+" pizza", nil)
	}
	return *pizza, nil
}

func (s *pizzaService) UpdatePizza(ctx context.Context, input models.UpdatePizzaInput) (models.Pizza, error) {
	set := store.Fields{store.FieldUpdatedAt: s.now().UTC()}
	for _, f := range []struct {
		name  string
		field string
		value *string
	}{
		{"name", store.FieldName, input.Name},
		{"description", store.FieldDescription, input.Description},
		{"imgSrc", store.FieldImgSrc, input.ImgSrc},
	} {
		if f.value == nil {
			continue
		}
		if err := requireNonEmpty(f.name, *f.value); err != nil {
			return models.Pizza{}, err
		}
		set[f.field] = *f.value
	}

	if input.ToppingIDs != nil {
		toppingIDs := models.IDList(*input.ToppingIDs)
		if toppingIDs == nil {
			toppingIDs = models.IDList{}
		}
		if err := s.toppings.ValidateToppings(ctx, toppingIDs); err != nil {
			return models.Pizza{}, err
		}
		set[store.FieldToppingIDs] = toppingIDs
	}

	pizza, err := s.collection.FindOneAndUpdate(ctx, input.ID, set, false)
	if err != nil {
		return models.Pizza{}, err
	}
	if pizza == nil {
		return models.Pizza{}, models.NewNotFoundError("pizza", input.ID)
	}
	return *pizza, nil
}

func (s *pizzaService) DeletePizza(ctx context.Context, id string) (string, error) {
	pizza, err := s.collection.FindOneAndDelete(ctx, id)
	if err != nil {
		return "", err
	}
	if pizza == nil {
		return "", models.NewNotFoundError("pizza", id)
	}
	return id, nil
}
