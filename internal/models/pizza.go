package models

import "time"

// Pizza represents a pizza document. Its price is never stored, it is derived
// from the referenced toppings when the pizza is presented.
type Pizza struct {
	ID          string    `json:"id" bson:"_id" gorm:"primaryKey;size:24"`
	Name        string    `json:"name" bson:"name" gorm:"index;not null"`
	Description string    `json:"description" bson:"description" gorm:"not null"`
	ImgSrc      string    `json:"imgSrc" bson:"img_src" gorm:"column:img_src;not null"`
	ToppingIDs  IDList    `json:"toppingIds" bson:"topping_ids" gorm:"column:topping_ids;type:text"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updated_at"`
}

// CreatePizzaInput holds the fields required to create a pizza
type CreatePizzaInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ImgSrc      string   `json:"imgSrc"`
	ToppingIDs  []string `json:"toppingIds"`
}

// UpdatePizzaInput holds a partial pizza update. Nil fields are left untouched.
type UpdatePizzaInput struct {
	ID          string    `json:"-"`
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	ImgSrc      *string   `json:"imgSrc"`
	ToppingIDs  *[]string `json:"toppingIds"`
}

// PizzaView is the API representation of a pizza with its resolved toppings
// and derived price.
type PizzaView struct {
	Pizza
	Toppings   []Topping `json:"toppings"`
	PriceCents int64     `json:"priceCents"`
}
