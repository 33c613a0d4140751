package services

import (
	"strings"

	"github.com/franciscosanchezn/pizza-toppings-api/internal/models"
)

// requireNonEmpty fails when value is blank
func requireNonEmpty(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return models.NewValidationError(field, "must be a non-empty string")
	}
	return nil
}

func requireNonNegative(field string, value int64) error {
	if value < 0 {
		return models.NewValidationError(field, "must not be negative")
	}
	return nil
}
