package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-toppings-api/internal/models"
	"github.com/franciscosanchezn/pizza-toppings-api/internal/services"
	"github.com/gin-gonic/gin"
)

// ToppingController handles HTTP requests related to toppings
type ToppingController interface {
	GetAllToppings(c *gin.Context)
	GetToppingByID(c *gin.Context)
	CreateTopping(c *gin.Context)
	UpdateTopping(c *gin.Context)
	DeleteTopping(c *gin.Context)
}

type toppingController struct {
	service services.ToppingService
}

// NewToppingController creates a new instance of ToppingController
func NewToppingController(service services.ToppingService) *toppingController {
	return &toppingController{service: service}
}

// GetAllToppings godoc
// @Summary List toppings
// @Description Get every topping ordered by name
// @Tags toppings
// @Produce json
// @Success 200 {array} models.Topping
// @Failure 500 {object} models.APIError
// @Router /api/v1/toppings [get]
func (c *toppingController) GetAllToppings(ctx *gin.Context) {
	toppings, err := c.service.GetAllToppings(ctx.Request.Context())
	if err != nil {
		respondWithError(ctx, err, models.ErrToppingNotFound, models.ErrToppingInvalidData)
		return
	}
	ctx.JSON(http.StatusOK, toppings)
}

// GetToppingByID godoc
// @Summary Get topping by ID
// @Tags toppings
// @Produce json
// @Param id path string true "Topping ID"
// @Success 200 {object} models.Topping
// @Failure 404 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v1/toppings/{id} [get]
func (c *toppingController) GetToppingByID(ctx *gin.Context) {
	topping, err := c.service.GetToppingByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, err, models.ErrToppingNotFound, models.ErrToppingInvalidData)
		return
	}
	ctx.JSON(http.StatusOK, topping)
}

// CreateTopping godoc
// @Summary Create a new topping
// @Tags toppings
// @Accept json
// @Produce json
// @Param topping body models.CreateToppingInput true "Topping fields"
// @Success 201 {object} models.Topping
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v1/toppings [post]
func (c *toppingController) CreateTopping(ctx *gin.Context) {
	var input models.CreateToppingInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithBadRequest(ctx, "Invalid request body")
		return
	}

	topping, err := c.service.CreateTopping(ctx.Request.Context(), input)
	if err != nil {
		respondWithError(ctx, err, models.ErrToppingNotFound, models.ErrToppingInvalidData)
		return
	}
	ctx.JSON(http.StatusCreated, topping)
}

// UpdateTopping godoc
// @Summary Update a topping
// @Description Update the provided fields of a topping. Pizzas referencing it are repriced on their next read.
// @Tags toppings
// @Accept json
// @Produce json
// @Param id path string true "Topping ID"
// @Param topping body models.UpdateToppingInput true "Fields to update"
// @Success 200 {object} models.Topping
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v1/toppings/{id} [patch]
func (c *toppingController) UpdateTopping(ctx *gin.Context) {
	var input models.UpdateToppingInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithBadRequest(ctx, "Invalid request body")
		return
	}
	input.ID = ctx.Param("id")

	topping, err := c.service.UpdateTopping(ctx.Request.Context(), input)
	if err != nil {
		respondWithError(ctx, err, models.ErrToppingNotFound, models.ErrToppingInvalidData)
		return
	}
	ctx.JSON(http.StatusOK, topping)
}

// DeleteTopping godoc
// @Summary Delete a topping
// @Tags toppings
// @Produce json
// @Param id path string true "Topping ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v1/toppings/{id} [delete]
func (c *toppingController) DeleteTopping(ctx *gin.Context) {
	id, err := c.service.DeleteTopping(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, err, models.ErrToppingNotFound, models.ErrToppingInvalidData)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"id": id})
}
