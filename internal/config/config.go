package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/franciscosanchezn/pizza-toppings-api/internal/database"
	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(LevelForEnvironment(GetEnvWithDefault("APP_ENV", "development")))
}

// LevelForEnvironment maps an APP_ENV value to its default log level
func LevelForEnvironment(environment string) logrus.Level {
	switch environment {
	case "development":
		return logrus.DebugLevel
	case "production":
		return logrus.ErrorLevel
	default:
		// Default to info level for other environments
		return logrus.InfoLevel
	}
}

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Environment string `json:"environment"`
	Port        int    `json:"port"`
	Host        string `json:"host"`

	// Database configuration
	Database database.DatabaseConfig `json:"database"`

	// Logging configuration
	LogLevel string `json:"log_level"`

	// HTTP configuration
	CORSAllowedOrigins []string `json:"cors_allowed_origins"`
	DefaultPageLimit   int      `json:"default_page_limit"`

	// SeedData seeds a starter menu when the pizza collection is empty
	SeedData bool `json:"seed_data"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Environment: %s, Port: %d, Host: %s, Database: %s, LogLevel: %s, CORSAllowedOrigins: %v, DefaultPageLimit: %d, SeedData: %t}",
		c.Environment, c.Port, c.Host, c.Database.String(), c.LogLevel, c.CORSAllowedOrigins, c.DefaultPageLimit, c.SeedData)
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// It also validates the port, database driver, connection URIs and page limit
// Returns an error if any required environment variable is missing or invalid
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid APP_PORT: %d is out of range", port)
	}

	pageLimit, err := strconv.Atoi(GetEnvWithDefault("DEFAULT_PAGE_LIMIT", "10"))
	if err != nil || pageLimit <= 0 {
		return nil, fmt.Errorf("DEFAULT_PAGE_LIMIT must be a positive integer")
	}

	dbConfig, err := loadDatabaseConfig()
	if err != nil {
		return nil, err
	}

	config := &Config{
		Environment:        GetEnvWithDefault("APP_ENV", "development"),
		Port:               port,
		Host:               GetEnvWithDefault("APP_HOST", "localhost"),
		Database:           dbConfig,
		LogLevel:           GetEnvWithDefault("LOG_LEVEL", "info"),
		CORSAllowedOrigins: splitList(GetEnvWithDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		DefaultPageLimit:   pageLimit,
		SeedData:           GetEnvAsType("SEED_DATA", true),
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

func loadDatabaseConfig() (database.DatabaseConfig, error) {
	driver := strings.ToLower(GetEnvWithDefault("DB_DRIVER", database.DriverSQLite))
	switch driver {
	case "mongodb":
		driver = database.DriverMongo
	case "postgresql":
		driver = database.DriverPostgres
	}

	cfg := database.DatabaseConfig{
		Driver:        driver,
		Host:          GetEnvWithDefault("DB_HOST", "localhost"),
		Port:          GetEnvWithDefault("DB_PORT", "5432"),
		User:          GetEnvWithDefault("DB_USER", "user"),
		Password:      GetEnvWithDefault("DB_PASSWORD", "password"),
		Name:          GetEnvWithDefault("DB_NAME", "pizzas"),
		SSLMode:       GetEnvWithDefault("DB_SSLMODE", "disable"),
		Path:          GetEnvWithDefault("DB_PATH", "pizzas.sqlite"),
		MongoURI:      GetEnvWithDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: GetEnvWithDefault("MONGO_DATABASE", "pizzas"),
		MongoTimeout:  time.Duration(GetEnvAsType("MONGO_TIMEOUT_SECONDS", 10)) * time.Second,
	}

	switch driver {
	case database.DriverSQLite, database.DriverPostgres:
	case database.DriverMongo:
		// validate URI with net/url
		parsed, err := url.Parse(cfg.MongoURI)
		if err != nil || (parsed.Scheme != "mongodb" && parsed.Scheme != "mongodb+srv") {
			return database.DatabaseConfig{}, fmt.Errorf("invalid MONGO_URI format")
		}
	default:
		return database.DatabaseConfig{}, fmt.Errorf("unsupported DB_DRIVER: %s (supported: sqlite, postgres, mongo)", driver)
	}
	return cfg, nil
}

// splitList splits a comma separated value, dropping blanks
func splitList(value string) []string {
	items := []string{}
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
