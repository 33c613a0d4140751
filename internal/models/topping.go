package models

import "time"

// Topping represents a topping document
type Topping struct {
	ID         string    `json:"id" bson:"_id" gorm:"primaryKey;size:24"`
	Name       string    `json:"name" bson:"name" gorm:"index;not null"`
	PriceCents int64     `json:"priceCents" bson:"price_cents" gorm:"column:price_cents;not null"`
	CreatedAt  time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" bson:"updated_at"`
}

type CreateToppingInput struct {
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
}

// UpdateToppingInput holds a partial topping update. Nil fields are left untouched.
type UpdateToppingInput struct {
	ID         string  `json:"-"`
	Name       *string `json:"name"`
	PriceCents *int64  `json:"priceCents"`
}
