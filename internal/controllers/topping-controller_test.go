package controllers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/franciscosanchezn/pizza-toppings-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupToppingRouter(toppings *mockToppingService) *gin.Engine {
	c := NewToppingController(toppings)
	router := gin.New()
	router.GET("/toppings", c.GetAllToppings)
	router.GET("/toppings/:id", c.GetToppingByID)
	router.POST("/toppings", c.CreateTopping)
	router.PATCH("/toppings/:id", c.UpdateTopping)
	router.DELETE("/toppings/:id", c.DeleteTopping)
	return router
}

func TestGetAllToppings(t *testing.T) {
	toppings := new(mockToppingService)
	toppings.On("GetAllToppings", mock.Anything).Return([]models.Topping{{ID: "t1", Name: "Basil", PriceCents: 75}}, nil)

	w := doRequest(setupToppingRouter(toppings), http.MethodGet, "/toppings", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"priceCents":75`)
}

func TestGetToppingByID(t *testing.T) {
	toppings := new(mockToppingService)
	toppings.On("GetToppingByID", mock.Anything, "t1").Return(models.Topping{ID: "t1", Name: "Basil"}, nil)
	toppings.On("GetToppingByID", mock.Anything, "t2").Return(models.Topping{}, models.NewNotFoundError("topping", "t2"))
	router := setupToppingRouter(toppings)

	w := doRequest(router, http.MethodGet, "/toppings/t1", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/toppings/t2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, models.ErrToppingNotFound, decodeAPIError(t, w).Code)
}

func TestCreateTopping(t *testing.T) {
	toppings := new(mockToppingService)
	toppings.On("CreateTopping", mock.Anything, models.CreateToppingInput{Name: "Ham", PriceCents: 300}).
		Return(models.Topping{ID: "t9", Name: "Ham", PriceCents: 300}, nil)
	toppings.On("CreateTopping", mock.Anything, models.CreateToppingInput{Name: "", PriceCents: 300}).
		Return(models.Topping{}, models.NewValidationError("name", "must be a non-empty string"))
	router := setupToppingRouter(toppings)

	w := doRequest(router, http.MethodPost, "/toppings", `{"name":"Ham","priceCents":300}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(router, http.MethodPost, "/toppings", `{"name":"","priceCents":300}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.ErrToppingInvalidData, decodeAPIError(t, w).Code)

	w = doRequest(router, http.MethodPost, "/toppings", `{"priceCents":"cheap"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.ErrBadRequest, decodeAPIError(t, w).Code)
}

func TestUpdateTopping(t *testing.T) {
	toppings := new(mockToppingService)
	price := int64(99)
	toppings.On("UpdateTopping", mock.Anything, models.UpdateToppingInput{ID: "t1", PriceCents: &price}).
		Return(models.Topping{ID: "t1", Name: "Basil", PriceCents: 99}, nil)

	w := doRequest(setupToppingRouter(toppings), http.MethodPatch, "/toppings/t1", `{"priceCents":99}`)

	assert.Equal(t, http.StatusOK, w.Code)
	toppings.AssertExpectations(t)
}

func TestDeleteTopping(t *testing.T) {
	toppings := new(mockToppingService)
	toppings.On("DeleteTopping", mock.Anything, "t1").Return("", errors.New("connection refused"))

	w := doRequest(setupToppingRouter(toppings), http.MethodDelete, "/toppings/t1", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
