// Package router assembles the gin engine serving the pizza and topping API.
package router

import (
	"context"
	"net/http"
	"time"

	"github.com/franciscosanchezn/pizza-toppings-api/internal/controllers"
	"github.com/franciscosanchezn/pizza-toppings-api/internal/metrics"
	"github.com/franciscosanchezn/pizza-toppings-api/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const serviceName = "pizza-toppings-api"

// Dependencies are the collaborators the routes are wired to
type Dependencies struct {
	Pizzas             controllers.PizzaController
	Toppings           controllers.ToppingController
	Metrics            *metrics.Registry
	Logger             logrus.FieldLogger
	CORSAllowedOrigins []string
	// Ping checks the backing store for the health endpoint
	Ping func(ctx context.Context) error
}

// New initializes the Gin router and sets up the routes
func New(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logger(deps.Logger),
		middleware.Metrics(deps.Metrics),
		middleware.CORS(deps.CORSAllowedOrigins),
		gin.Recovery(),
	)

	router.GET("/health", healthCheckHandler(deps.Ping))
	router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	v1 := router.Group("/api/v1")
	{
		pizzas := v1.Group("/pizzas")
		{
			pizzas.GET("", deps.Pizzas.GetPizzas)
			pizzas.GET("/:id", deps.Pizzas.GetPizzaByID)
			pizzas.POST("", deps.Pizzas.CreatePizza)
			pizzas.PATCH("/:id", deps.Pizzas.UpdatePizza)
			pizzas.DELETE("/:id", deps.Pizzas.DeletePizza)
		}

		toppings := v1.Group("/toppings")
		{
			toppings.GET("", deps.Toppings.GetAllToppings)
			toppings.GET("/:id", deps.Toppings.GetToppingByID)
			toppings.POST("", deps.Toppings.CreateTopping)
			toppings.PATCH("/:id", deps.Toppings.UpdateTopping)
			toppings.DELETE("/:id", deps.Toppings.DeleteTopping)
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service and its store are reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(ping func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, code := "healthy", http.StatusOK
		if ping != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := ping(ctx); err != nil {
				_ = c.Error(err)
				status, code = "unhealthy", http.StatusServiceUnavailable
			}
		}
		c.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"service":   serviceName,
		})
	}
}
