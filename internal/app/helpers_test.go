package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/coffeemaker-service/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func defaultMachineConfig() config.MachineConfig {
	return config.MachineConfig{
		InitialCoffee:     10,
		InitialMilk:       10,
		InitialChocolate:  10,
		InitialSugar:      10,
		SeedRecipeName:    "Cappuccino",
		SeedRecipePrice:   "2.70",
		SeedRecipeAmounts: "2,3,0,1",
	}
}

func testConfig() config.Config {
	return config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			RateLimit:      100,
			RateWindow:     time.Minute,
			RequestTimeout: 5 * time.Second,
		},
		Machine: defaultMachineConfig(),
		Idempotency: config.IdempotencyConfig{
			Enabled: true,
			Backend: config.IdempotencyBackendMemory,
			TTL:     time.Minute,
		},
		Log: config.LogConfig{Level: "error"},
	}
}
