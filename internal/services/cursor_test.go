package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/franciscosanchezn/pizza-toppings-api/internal/models"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pizzaNames(pizzas []models.Pizza) []string {
	names := make([]string, 0, len(pizzas))
	for _, p := range pizzas {
		names = append(names, p.Name)
	}
	return names
}

func TestGetPageWalksTheCollection(t *testing.T) {
	ctx := context.Background()
	s := setupServices(t)
	// inserted out of order, listed by name
	for _, name := range []string{"D", "B", "E", "A", "C"} {
		mustCreatePizza(t, s.pizzas, name)
	}

	page, err := s.cursor.GetPage(ctx, models.PageInput{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, pizzaNames(page.Results))
	assert.Equal(t, 2, page.TotalCount)
	assert.True(t, page.HasNextPage)
	require.NotNil(t, page.Cursor)
	assert.Equal(t, page.Results[1].ID, *page.Cursor)

	page, err = s.cursor.GetPage(ctx, models.PageInput{Limit: 2, Cursor: page.Cursor})
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "D"}, pizzaNames(page.Results))
	assert.True(t, page.HasNextPage)
	require.NotNil(t, page.Cursor)
	assert.Equal(t, page.Results[1].ID, *page.Cursor)

	page, err = s.cursor.GetPage(ctx, models.PageInput{Limit: 2, Cursor: page.Cursor})
	require.NoError(t, err)
	assert.Equal(t, []string{"E"}, pizzaNames(page.Results))
	assert.Equal(t, 1, page.TotalCount)
	assert.False(t, page.HasNextPage)
	assert.Nil(t, page.Cursor)
}

func TestGetPageExactFit(t *testing.T) {
	ctx := context.Background()
	s := setupServices(t)
	for _, name := range []string{"A", "B"} {
		mustCreatePizza(t, s.pizzas, name)
	}

	page, err := s.cursor.GetPage(ctx, models.PageInput{Limit: 2})
	require.NoError(t, err)
	assert.False(t, page.HasNextPage)
	// a full page always carries a cursor, even when it is the last one
	require.NotNil(t, page.Cursor)

	page, err = s.cursor.GetPage(ctx, models.PageInput{Limit: 2, Cursor: page.Cursor})
	require.NoError(t, err)
	assert.Empty(t, page.Results)
	assert.NotNil(t, page.Results)
	assert.Equal(t, 0, page.TotalCount)
	assert.False(t, page.HasNextPage)
	assert.Nil(t, page.Cursor)
}

func TestGetPageEmptyCollection(t *testing.T) {
	s := setupServices(t)

	page, err := s.cursor.GetPage(context.Background(), models.PageInput{Limit: 3})
	require.NoError(t, err)
	assert.Empty(t, page.Results)
	assert.False(t, page.HasNextPage)
	assert.Nil(t, page.Cursor)
}

func TestGetPageRejectsNonPositiveLimit(t *testing.T) {
	s := setupServices(t)

	for _, limit := range []int{0, -1} {
		_, err := s.cursor.GetPage(context.Background(), models.PageInput{Limit: limit})
		var validationErr *models.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "limit", validationErr.Field)
	}
}

func TestResolveCursorIndex(t *testing.T) {
	ctx := context.Background()
	s := setupServices(t)
	mustCreatePizza(t, s.pizzas, "Pepperoni")
	first := mustCreatePizza(t, s.pizzas, "Hawaiian")
	// same name, created later, so ordered after by id
	second := mustCreatePizza(t, s.pizzas, "Hawaiian")

	testCases := []struct {
		name     string
		cursor   *string
		expected int64
	}{
		{"nil cursor", nil, 0},
		{"empty cursor", strPtr(""), 0},
		{"unknown cursor", strPtr("000000000000000000000000"), 0},
		{"first document", strPtr(first.ID), 1},
		{"tie on name", strPtr(second.ID), 2},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			index, err := s.cursor.ResolveCursorIndex(ctx, tt.cursor)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, index)
		})
	}
}

func TestGetPageIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := setupServices(t)
	for _, name := range []string{"C", "A", "B"} {
		mustCreatePizza(t, s.pizzas, name)
	}

	first, err := s.cursor.GetPage(ctx, models.PageInput{Limit: 1})
	require.NoError(t, err)
	input := models.PageInput{Limit: 1, Cursor: first.Cursor}

	a, err := s.cursor.GetPage(ctx, input)
	require.NoError(t, err)
	b, err := s.cursor.GetPage(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, []string{"B"}, pizzaNames(a.Results))
}

func TestGetPageUnknownCursorStartsOver(t *testing.T) {
	ctx := context.Background()
	s := setupServices(t)
	mustCreatePizza(t, s.pizzas, "A")
	mustCreatePizza(t, s.pizzas, "B")

	page, err := s.cursor.GetPage(ctx, models.PageInput{Limit: 1, Cursor: strPtr("deleted-or-bogus")})
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, pizzaNames(page.Results))
}

func TestProperty_PagesChainOverEveryPizza(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 25
	properties := gopter.NewProperties(parameters)

	properties.Property("following cursors lists every pizza once, in order", prop.ForAll(
		func(count int, limit int) bool {
			ctx := context.Background()
			s := setupServices(t)

			expected := make([]string, 0, count)
			for i := count - 1; i >= 0; i-- {
				mustCreatePizza(t, s.pizzas, fmt.Sprintf("pizza-%02d", i))
			}
			for i := 0; i < count; i++ {
				expected = append(expected, fmt.Sprintf("pizza-%02d", i))
			}

			var seen []string
			input := models.PageInput{Limit: limit}
			for {
				page, err := s.cursor.GetPage(ctx, input)
				if err != nil {
					t.Logf("GetPage failed: %v", err)
					return false
				}
				if len(page.Results) > limit || page.TotalCount != len(page.Results) {
					return false
				}
				if page.HasNextPage && page.Cursor == nil {
					return false
				}
				seen = append(seen, pizzaNames(page.Results)...)
				if page.Cursor == nil {
					break
				}
				input.Cursor = page.Cursor
			}

			if len(seen) != len(expected) {
				return false
			}
			for i := range seen {
				if seen[i] != expected[i] {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 12),
		gen.IntRange(1, 5),
	))

	properties.TestingRun(t)
}
