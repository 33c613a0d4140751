package models

// PageInput selects one page of the name-ordered pizza listing.
// Cursor is the id of the last pizza of the previous page.
type PageInput struct {
	Limit  int     `json:"limit"`
	Cursor *string `json:"cursor,omitempty"`
}

// PizzaPage is one page of pizzas.
// TotalCount is the number of results in this page, not in the collection.
type PizzaPage struct {
	TotalCount  int     `json:"totalCount"`
	HasNextPage bool    `json:"hasNextPage"`
	Results     []Pizza `json:"results"`
	Cursor      *string `json:"cursor"`
}

// PizzaViewPage is PizzaPage with presented pizzas, as returned by the API
type PizzaViewPage struct {
	TotalCount  int         `json:"totalCount"`
	HasNextPage bool        `json:"hasNextPage"`
	Results     []PizzaView `json:"results"`
	Cursor      *string     `json:"cursor"`
}
