// Package seed inserts a starter menu into an empty store.
package seed

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/pizza-toppings-api/internal/models"
	"github.com/franciscosanchezn/pizza-toppings-api/internal/services"
	"github.com/sirupsen/logrus"
)

var starterToppings = []models.CreateToppingInput{
	{Name: "Tomato Sauce", PriceCents: 150},
	{Name: "Mozzarella", PriceCents: 250},
	{Name: "Basil", PriceCents: 75},
	{Name: "Pepperoni", PriceCents: 300},
	{Name: "Bell Peppers", PriceCents: 125},
	{Name: "Olives", PriceCents: 100},
}

type starterPizza struct {
	name        string
	description string
	imgSrc      string
	toppings    []string
}

var starterPizzas = []starterPizza{
	{"Margherita", "Tomato, mozzarella and fresh basil", "https://images.example.com/margherita.jpg",
		[]string{"Tomato Sauce", "Mozzarella", "Basil"}},
	{"Pepperoni", "Classic pepperoni over mozzarella", "https://images.example.com/pepperoni.jpg",
		[]string{"Tomato Sauce", "Mozzarella", "Pepperoni"}},
	{"Vegetarian", "Peppers and olives", "https://images.example.com/vegetarian.jpg",
		[]string{"Tomato Sauce", "Mozzarella", "Bell Peppers", "Olives"}},
}

// Run seeds the starter toppings and pizzas unless a pizza already exists.
// It reports whether anything was inserted.
func Run(ctx context.Context, pizzas services.PizzaService, toppings services.ToppingService, log logrus.FieldLogger) (bool, error) {
	page, err := pizzas.GetPizzas(ctx, models.PageInput{Limit: 1})
	if err != nil {
		return false, fmt.Errorf("failed to check existing pizzas: %w", err)
	}
	if page.TotalCount > 0 {
		log.Info("Database already seeded with initial data")
		return false, nil
	}

	log.Info("Database is empty, seeding initial data")
	ids := make(map[string]string, len(starterToppings))
	for _, input := range starterToppings {
		topping, err := toppings.CreateTopping(ctx, input)
		if err != nil {
			return false, fmt.Errorf("failed to seed topping %s: %w", input.Name, err)
		}
		ids[topping.Name] = topping.ID
	}

	for _, p := range starterPizzas {
		toppingIDs := make([]string, 0, len(p.toppings))
		for _, name := range p.toppings {
			toppingIDs = append(toppingIDs, ids[name])
		}
		pizza, err := pizzas.CreatePizza(ctx, models.CreatePizzaInput{
			Name:        p.name,
			Description: p.description,
			ImgSrc:      p.imgSrc,
			ToppingIDs:  toppingIDs,
		})
		if err != nil {
			return false, fmt.Errorf("failed to seed pizza %s: %w", p.name, err)
		}
		log.WithField("pizza_id", pizza.ID).Debugf("Seeded pizza %s", pizza.Name)
	}

	log.WithFields(logrus.Fields{
		"toppings": len(starterToppings),
		"pizzas":   len(starterPizzas),
	}).Info("Database seeded successfully")
	return true, nil
}
