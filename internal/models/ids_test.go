package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDListValue(t *testing.T) {
	v, err := IDList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	v, err = IDList{"a", "b"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["a","b"]`, v)
}

func TestIDListScan(t *testing.T) {
	testCases := []struct {
		name     string
		src      interface{}
		expected IDList
	}{
		{"nil", nil, IDList{}},
		{"string", `["x","y"]`, IDList{"x", "y"}},
		{"bytes", []byte(`["z"]`), IDList{"z"}},
		{"empty text", "", IDList{}},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			var l IDList
			require.NoError(t, l.Scan(tt.src))
			assert.Equal(t, tt.expected, l)
		})
	}

	var l IDList
	assert.Error(t, l.Scan(42))
	assert.Error(t, l.Scan("not json"))
}

func TestPizzaViewJSON(t *testing.T) {
	view := PizzaView{
		Pizza:      Pizza{ID: "p1", Name: "Margherita", ToppingIDs: IDList{"t1"}},
		Toppings:   []Topping{{ID: "t1", Name: "Basil", PriceCents: 75}},
		PriceCents: 75,
	}

	b, err := json.Marshal(view)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, "p1", decoded["id"])
	assert.Equal(t, float64(75), decoded["priceCents"])
	assert.Equal(t, []interface{}{"t1"}, decoded["toppingIds"])
	assert.Len(t, decoded["toppings"], 1)
}

func TestErrors(t *testing.T) {
	assert.Equal(t, "name: must be a non-empty string", NewValidationError("name", "must be a non-empty string").Error())
	assert.Equal(t, "limit too large", NewValidationError("", "limit too large").Error())
	assert.Equal(t, `pizza "abc" not found`, NewNotFoundError("pizza", "abc").Error())

	cause := assert.AnError
	persistenceErr := NewPersistenceError("create the topping", cause)
	assert.ErrorIs(t, persistenceErr, cause)
	assert.Equal(t, "could not create the topping", NewPersistenceError("create the topping", nil).Error())
}
