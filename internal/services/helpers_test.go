package services

import (
	"context"
	"testing"

	"github.com/franciscosanchezn/pizza-toppings-api/internal/database"
	"github.com/franciscosanchezn/pizza-toppings-api/internal/models"
	"github.com/franciscosanchezn/pizza-toppings-api/internal/store/sqlstore"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testServices struct {
	toppings ToppingService
	pizzas   PizzaService
	cursor   CursorProvider
}

func openTestDB(t testing.TB) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	// every connection to :memory: is a new database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func setupServices(t testing.TB) testServices {
	db := openTestDB(t)
	pizzas := sqlstore.NewCollection[models.Pizza](db)
	toppings := NewToppingService(sqlstore.NewCollection[models.Topping](db))
	cursor := NewCursorProvider(pizzas)
	return testServices{
		toppings: toppings,
		pizzas:   NewPizzaService(pizzas, toppings, cursor),
		cursor:   cursor,
	}
}

func mustCreateTopping(t testing.TB, s ToppingService, name string, price int64) models.Topping {
	topping, err := s.CreateTopping(context.Background(), models.CreateToppingInput{Name: name, PriceCents: price})
	require.NoError(t, err)
	return topping
}

func mustCreatePizza(t testing.TB, s PizzaService, name string, toppingIDs ...string) models.Pizza {
	pizza, err := s.CreatePizza(context.Background(), models.CreatePizzaInput{
		Name:        name,
		Description: name + " pizza",
		ImgSrc:      "https://img.example.com/" + name + ".jpg",
		ToppingIDs:  toppingIDs,
	})
	require.NoError(t, err)
	return pizza
}

func strPtr(s string) *string { return &s }
