package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/franciscosanchezn/pizza-toppings-api/docs"
	"github.com/franciscosanchezn/pizza-toppings-api/internal/config"
	"github.com/franciscosanchezn/pizza-toppings-api/internal/controllers"
	"github.com/franciscosanchezn/pizza-toppings-api/internal/database"
	"github.com/franciscosanchezn/pizza-toppings-api/internal/metrics"
	"github.com/franciscosanchezn/pizza-toppings-api/internal/models"
	"github.com/franciscosanchezn/pizza-toppings-api/internal/router"
	"github.com/franciscosanchezn/pizza-toppings-api/internal/seed"
	"github.com/franciscosanchezn/pizza-toppings-api/internal/services"
	"github.com/franciscosanchezn/pizza-toppings-api/internal/store"
	"github.com/franciscosanchezn/pizza-toppings-api/internal/store/mongostore"
	"github.com/franciscosanchezn/pizza-toppings-api/internal/store/sqlstore"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// backend is the opened document store
type backend struct {
	pizzas   store.Collection[models.Pizza]
	toppings store.Collection[models.Topping]
	close    func(ctx context.Context) error
}

// @title Pizza Toppings API
// @version 1.0
// @description Manage toppings and pizzas priced from their toppings
// @host localhost:8080
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration := loadConfig()
	// An explicit LOG_LEVEL overrides the environment default
	if os.Getenv("LOG_LEVEL") != "" {
		if lvl, err := log.ParseLevel(configuration.LogLevel); err == nil {
			log.SetLevel(lvl)
		}
	}
	if configuration.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	controllers.SetLogger(log.StandardLogger())

	// Initialize the document store
	db := setupBackend(configuration)

	// Initialize services and controllers
	toppingService := services.NewToppingService(db.toppings)
	pizzaService := services.NewPizzaService(db.pizzas, toppingService, services.NewCursorProvider(db.pizzas))

	if configuration.SeedData {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		_, err := seed.Run(ctx, pizzaService, toppingService, log.StandardLogger())
		cancel()
		checkPanicErr(err)
	}

	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%d", configuration.Host, configuration.Port)

	handler := router.New(router.Dependencies{
		Pizzas:             controllers.NewPizzaController(pizzaService, toppingService, configuration.DefaultPageLimit),
		Toppings:           controllers.NewToppingController(toppingService),
		Metrics:            metrics.NewRegistry(),
		Logger:             log.StandardLogger(),
		CORSAllowedOrigins: configuration.CORSAllowedOrigins,
		Ping:               db.pizzas.Ping,
	})

	if err := run(configuration, handler, db); err != nil {
		log.WithError(err).Fatal("Server stopped with error")
	}
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(config.LevelForEnvironment(config.GetEnvWithDefault("APP_ENV", "development")))
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupBackend opens the store selected by DB_DRIVER and prepares its schema
func setupBackend(conf *config.Config) backend {
	if conf.Database.Driver == database.DriverMongo {
		client, mdb, err := database.InitMongo(conf.Database)
		checkPanicErr(err)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := database.EnsureIndexes(ctx, mdb); err != nil {
			log.WithError(err).Warn("Failed to create indexes")
		}

		timeout := conf.Database.MongoTimeout
		return backend{
			pizzas:   mongostore.NewCollection[models.Pizza](mdb, database.PizzasCollection, timeout),
			toppings: mongostore.NewCollection[models.Topping](mdb, database.ToppingsCollection, timeout),
			close:    client.Disconnect,
		}
	}

	db, err := database.InitDatabase(conf.Database)
	checkPanicErr(err)
	checkPanicErr(database.Migrate(db))

	return backend{
		pizzas:   sqlstore.NewCollection[models.Pizza](db),
		toppings: sqlstore.NewCollection[models.Topping](db),
		close: func(context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	}
}

// run serves handler until SIGINT or SIGTERM, then drains requests and closes the store
func run(conf *config.Config, handler http.Handler, db backend) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("%v:%d", conf.Host, conf.Port),
		Handler:      handler,
		WriteTimeout: 30 * time.Second,
		ReadTimeout:  10 * time.Second,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		log.WithField("signal", s.String()).Info("Signal caught, shutting down")
		err := srv.Shutdown(ctx)
		if closeErr := db.close(ctx); closeErr != nil {
			log.WithError(closeErr).Error("Error closing database")
		} else {
			log.Info("Database connection closed gracefully")
		}
		shutdown <- err
	}()

	log.Infof("Starting server on %s", srv.Addr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	if err := <-shutdown; err != nil {
		return err
	}
	log.Info("Server has stopped")
	return nil
}
