// Package main is the entry point for the coffee maker service.
//
// @title           Coffee Maker API
// @version         1.0.0
// @description     Self-service coffee machine: recipe catalog, ingredient inventory, brewing and paid purchases.
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/coffeemaker-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Recipes
// @tag.description Recipe catalog operations
//
// @tag.name        Inventory
// @tag.description Ingredient stock operations
//
// @tag.name        Brewing
// @tag.description Brew and purchase operations
//
// @tag.name        Machine
// @tag.description Machine status
//
// @tag.name        Events
// @tag.description Audit journal queries
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

//go:generate swag init -d ./,../../internal/http,../../internal/domain/dto -g main.go -o ../../docs --outputTypes go

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/guttosm/coffeemaker-service/docs" // swagger docs
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := 0
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		code = 1
	}
	stop()
	os.Exit(code)
}
