package http

import (
	"github.com/gin-gonic/gin"
)

// MachineRoutes registers the recipe, inventory, brew and status routes.
type MachineRoutes struct {
	handler *Handler
}

// NewMachineRoutes creates a new MachineRoutes instance.
func NewMachineRoutes(handler *Handler) *MachineRoutes {
	return &MachineRoutes{handler: handler}
}

// RegisterPublicRoutes registers the machine routes.
func (r *MachineRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	recipes := rg.Group("/recipes")
	recipes.GET("", r.handler.ListRecipes)
	recipes.POST("", r.handler.AddRecipe)
	recipes.GET("/:name", r.handler.GetRecipe)
	recipes.PUT("/:name", r.handler.UpdateRecipe)
	recipes.DELETE("/:name", r.handler.RemoveRecipe)
	recipes.GET("/:name/availability", r.handler.RecipeAvailability)

	rg.GET("/inventory", r.handler.GetInventory)
	rg.POST("/inventory", r.handler.AddIngredients)
	rg.POST("/brews", r.handler.Brew)
	rg.GET("/status", r.handler.Status)
}

// EventsRoutes registers the audit journal route.
type EventsRoutes struct {
	handler *EventsHandler
}

// NewEventsRoutes creates a new EventsRoutes instance.
func NewEventsRoutes(handler *EventsHandler) *EventsRoutes {
	return &EventsRoutes{handler: handler}
}

// RegisterPublicRoutes registers the events route.
func (r *EventsRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/events", r.handler.ListEvents)
}
