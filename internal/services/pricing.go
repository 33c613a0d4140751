package services

import (
	"context"

	"github.com/franciscosanchezn/pizza-toppings-api/internal/models"
)

// ComputePriceCents derives a pizza price from its topping references. It is
// recomputed on every read and never stored on the pizza.
func ComputePriceCents(ctx context.Context, toppingIDs []string, toppings ToppingService) (int64, error) {
	return toppings.SumPriceCents(ctx, toppingIDs)
}

// PresentPizza resolves the toppings of a pizza and its derived price
func PresentPizza(ctx context.Context, pizza models.Pizza, toppings ToppingService) (models.PizzaView, error) {
	resolved, err := toppings.GetToppingsByIDs(ctx, pizza.ToppingIDs)
	if err != nil {
		return models.PizzaView{}, err
	}
	price, err := ComputePriceCents(ctx, pizza.ToppingIDs, toppings)
	if err != nil {
		return models.PizzaView{}, err
	}
	if pizza.ToppingIDs == nil {
		pizza.ToppingIDs = models.IDList{}
	}
	return models.PizzaView{Pizza: pizza, Toppings: resolved, PriceCents: price}, nil
}

// PresentPage presents every pizza of a page
func PresentPage(ctx context.Context, page models.PizzaPage, toppings ToppingService) (models.PizzaViewPage, error) {
	views := make([]models.PizzaView, 0, len(page.Results))
	for _, pizza := range page.Results {
		view, err := PresentPizza(ctx, pizza, toppings)
		if err != nil {
			return models.PizzaViewPage{}, err
		}
		views = append(views, view)
	}
	return models.PizzaViewPage{
		TotalCount:  page.TotalCount,
		HasNextPage: page.HasNextPage,
		Results:     views,
		Cursor:      page.Cursor,
	}, nil
}
