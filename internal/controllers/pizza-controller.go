package controllers

import (
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/pizza-toppings-api/internal/models"
	"github.com/franciscosanchezn/pizza-toppings-api/internal/services"
	"github.com/gin-gonic/gin"
)

// PizzaController handles HTTP requests related to pizzas
type PizzaController interface {
	// GetPizzas retrieves one page of pizzas
	GetPizzas(c *gin.Context)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(c *gin.Context)
	// CreatePizza creates a new pizza
	CreatePizza(c *gin.Context)
	// UpdatePizza updates an existing pizza
	UpdatePizza(c *gin.Context)
	// DeletePizza deletes a pizza by its ID
	DeletePizza(c *gin.Context)
}

type pizzaController struct {
	service          services.PizzaService
	toppings         services.ToppingService
	defaultPageLimit int
}

// NewPizzaController creates a new instance of PizzaController.
// Pizzas are presented with their toppings and derived price.
func NewPizzaController(service services.PizzaService, toppings services.ToppingService, defaultPageLimit int) *pizzaController {
	if defaultPageLimit <= 0 {
		defaultPageLimit = 10
	}
	return &pizzaController{service: service, toppings: toppings, defaultPageLimit: defaultPageLimit}
}

// GetPizzas godoc
// @Summary List pizzas
// @Description Get one page of pizzas ordered by name. Pass the cursor of a page to get the next one.
// @Tags pizzas
// @Accept json
// @Produce json
// @Param limit query int false "Page size"
// @Param cursor query string false "Cursor returned by the previous page"
// @Success 200 {object} models.PizzaViewPage
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v1/pizzas [get]
func (c *pizzaController) GetPizzas(ctx *gin.Context) {
	limit := c.defaultPageLimit
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondWithBadRequest(ctx, "Invalid limit, expected an integer")
			return
		}
		limit = parsed
	}

	input := models.PageInput{Limit: limit}
	if cursor, ok := ctx.GetQuery("cursor"); ok && cursor != "" {
		input.Cursor = &cursor
	}

	page, err := c.service.GetPizzas(ctx.Request.Context(), input)
	if err != nil {
		respondWithError(ctx, err, models.ErrPizzaNotFound, models.ErrValidationFailed)
		return
	}
	view, err := services.PresentPage(ctx.Request.Context(), page, c.toppings)
	if err != nil {
		respondWithError(ctx, err, models.ErrPizzaNotFound, models.ErrValidationFailed)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// GetPizzaByID godoc
// @Summary Get pizza by ID
// @Description Get a single pizza by its ID
// @Tags pizzas
// @Accept json
// @Produce json
// @Param id path string true "Pizza ID"
// @Success 200 {object} models.PizzaView
// @Failure 404 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v1/pizzas/{id} [get]
func (c *pizzaController) GetPizzaByID(ctx *gin.Context) {
	pizza, err := c.service.GetPizzaByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, err, models.ErrPizzaNotFound, models.ErrPizzaInvalidData)
		return
	}
	c.present(ctx, http.StatusOK, pizza)
}

// CreatePizza godoc
// @Summary Create a new pizza
// @Description Create a new pizza. Every topping id must reference an existing topping.
// @Tags pizzas
// @Accept json
// @Produce json
// @Param pizza body models.CreatePizzaInput true "Pizza fields"
// @Success 201 {object} models.PizzaView
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v1/pizzas [post]
func (c *pizzaController) CreatePizza(ctx *gin.Context) {
	var input models.CreatePizzaInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithBadRequest(ctx, "Invalid request body")
		return
	}

	pizza, err := c.service.CreatePizza(ctx.Request.Context(), input)
	if err != nil {
		respondWithError(ctx, err, models.ErrPizzaNotFound, models.ErrPizzaInvalidData)
		return
	}
	c.present(ctx, http.StatusCreated, pizza)
}

// UpdatePizza godoc
// @Summary Update a pizza
// @Description Update the provided fields of a pizza
// @Tags pizzas
// @Accept json
// @Produce json
// @Param id path string true "Pizza ID"
// @Param pizza body models.UpdatePizzaInput true "Fields to update"
// @Success 200 {object} models.PizzaView
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v1/pizzas/{id} [patch]
func (c *pizzaController) UpdatePizza(ctx *gin.Context) {
	var input models.UpdatePizzaInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithBadRequest(ctx, "Invalid request body")
		return
	}
	// Ensure the ID from URL is used
	input.ID = ctx.Param("id")

	pizza, err := c.service.UpdatePizza(ctx.Request.Context(), input)
	if err != nil {
		respondWithError(ctx, err, models.ErrPizzaNotFound, models.ErrPizzaInvalidData)
		return
	}
	c.present(ctx, http.StatusOK, pizza)
}

// DeletePizza godoc
// @Summary Delete a pizza
// @Description Delete a pizza by its ID
// @Tags pizzas
// @Accept json
// @Produce json
// @Param id path string true "Pizza ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v1/pizzas/{id} [delete]
func (c *pizzaController) DeletePizza(ctx *gin.Context) {
	id, err := c.service.DeletePizza(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, err, models.ErrPizzaNotFound, models.ErrPizzaInvalidData)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"id": id})
}

func (c *pizzaController) present(ctx *gin.Context, status int, pizza models.Pizza) {
	view, err := services.PresentPizza(ctx.Request.Context(), pizza, c.toppings)
	if err != nil {
		respondWithError(ctx, err, models.ErrPizzaNotFound, models.ErrPizzaInvalidData)
		return
	}
	ctx.JSON(status, view)
}
