// Package config provides configuration management for the coffee maker service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Idempotency backends.
const (
	IdempotencyBackendMemory = "memory"
	IdempotencyBackendRedis  = "redis"
)

// Config holds the complete application configuration.
type Config struct {
	Server      ServerConfig
	Machine     MachineConfig
	Database    DatabaseConfig
	Idempotency IdempotencyConfig
	Log         LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
}

// MachineConfig holds the state a fresh machine is seeded with.
// Values are kept as read; they are validated when the machine is built.
type MachineConfig struct {
	InitialCoffee    int
	InitialMilk      int
	InitialChocolate int
	InitialSugar     int

	SeedRecipeName  string
	SeedRecipePrice string
	// SeedRecipeAmounts is "coffee,milk,chocolate,sugar".
	SeedRecipeAmounts string
}

// DatabaseConfig holds MongoDB configuration for the audit journal.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	EventsTTL    time.Duration
	Enabled      bool
	// CircuitBreaker configuration, shared by the MongoDB and Redis breakers.
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// IdempotencyConfig holds configuration for the Idempotency-Key store.
type IdempotencyConfig struct {
	Enabled       bool
	Backend       string
	TTL           time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string
	Pretty bool
}

// Load creates a Config from environment variables.
func Load() Config {
	initialStock := getEnvInt("INITIAL_STOCK", 10)

	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RateLimit:      getEnvInt("RATE_LIMIT", 100),
			RateWindow:     getEnvDuration("RATE_WINDOW", time.Minute),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),
			CORSOrigins:    parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:    getEnv("SWAGGER_USER", ""),
			SwaggerPass:    getEnv("SWAGGER_PASS", ""),
		},
		Machine: MachineConfig{
			InitialCoffee:     getEnvInt("INITIAL_COFFEE", initialStock),
			InitialMilk:       getEnvInt("INITIAL_MILK", initialStock),
			InitialChocolate:  getEnvInt("INITIAL_CHOCOLATE", initialStock),
			InitialSugar:      getEnvInt("INITIAL_SUGAR", initialStock),
			SeedRecipeName:    getEnv("SEED_RECIPE_NAME", "Cappuccino"),
			SeedRecipePrice:   getEnv("SEED_RECIPE_PRICE", "2.70"),
			SeedRecipeAmounts: getEnv("SEED_RECIPE_AMOUNTS", "2,3,0,1"),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "coffeemaker"),
			EventsTTL:                      getEnvDuration("MONGODB_EVENTS_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Idempotency: IdempotencyConfig{
			Enabled:       getEnvBool("IDEMPOTENCY_ENABLED", true),
			Backend:       strings.ToLower(getEnv("IDEMPOTENCY_BACKEND", IdempotencyBackendMemory)),
			TTL:           getEnvDuration("IDEMPOTENCY_TTL", 5*time.Minute),
			RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvInt("REDIS_DB", 0),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
