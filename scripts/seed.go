package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/franciscosanchezn/pizza-toppings-api/internal/database"
	"github.com/franciscosanchezn/pizza-toppings-api/internal/models"
	"github.com/franciscosanchezn/pizza-toppings-api/internal/seed"
	"github.com/franciscosanchezn/pizza-toppings-api/internal/services"
	"github.com/franciscosanchezn/pizza-toppings-api/internal/store/sqlstore"
	"github.com/sirupsen/logrus"
)

func main() {
	// Parse command line flags
	path := flag.String("db", "pizzas.sqlite", "SQLite database file")
	verbose := flag.Bool("v", false, "Log every seeded pizza")
	flag.Parse()

	db, err := database.InitDatabase(database.DatabaseConfig{Driver: database.DriverSQLite, Path: *path})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	logger := logrus.New()
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	pizzas := sqlstore.NewCollection[models.Pizza](db)
	toppingService := services.NewToppingService(sqlstore.NewCollection[models.Topping](db))
	pizzaService := services.NewPizzaService(pizzas, toppingService, services.NewCursorProvider(pizzas))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	seeded, err := seed.Run(ctx, pizzaService, toppingService, logger)
	if err != nil {
		log.Fatal("Failed to seed database:", err)
	}
	if !seeded {
		fmt.Printf("%s already has pizzas, nothing to do\n", *path)
		return
	}
	fmt.Printf("Seeded starter menu into %s\n", *path)
}
