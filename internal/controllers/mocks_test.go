package controllers

import (
	"context"

	"github.com/franciscosanchezn/pizza-toppings-api/internal/models"
	"github.com/stretchr/testify/mock"
)

type mockPizzaService struct {
	mock.Mock
}

func (m *mockPizzaService) GetPizzas(ctx context.Context, input models.PageInput) (models.PizzaPage, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(models.PizzaPage), args.Error(1)
}

func (m *mockPizzaService) GetPizzaByID(ctx context.Context, id string) (models.Pizza, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Pizza), args.Error(1)
}

func (m *mockPizzaService) CreatePizza(ctx context.Context, input models.CreatePizzaInput) (models.Pizza, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(models.Pizza), args.Error(1)
}

func (m *mockPizzaService) UpdatePizza(ctx context.Context, input models.UpdatePizzaInput) (models.Pizza, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(models.Pizza), args.Error(1)
}

func (m *mockPizzaService) DeletePizza(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

type mockToppingService struct {
	mock.Mock
}

func (m *mockToppingService) GetAllToppings(ctx context.Context) ([]models.Topping, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Topping), args.Error(1)
}

func (m *mockToppingService) GetToppingByID(ctx context.Context, id string) (models.Topping, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Topping), args.Error(1)
}

func (m *mockToppingService) CreateTopping(ctx context.Context, input models.CreateToppingInput) (models.Topping, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(models.Topping), args.Error(1)
}

func (m *mockToppingService) UpdateTopping(ctx context.Context, input models.UpdateToppingInput) (models.Topping, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(models.Topping), args.Error(1)
}

func (m *mockToppingService) DeleteTopping(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *mockToppingService) GetToppingsByIDs(ctx context.Context, ids []string) ([]models.Topping, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]models.Topping), args.Error(1)
}

func (m *mockToppingService) ValidateToppings(ctx context.Context, ids []string) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

func (m *mockToppingService) SumPriceCents(ctx context.Context, ids []string) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}
