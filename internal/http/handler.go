// Package http exposes the coffee maker over a JSON HTTP API.
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/coffeemaker-service/internal/domain/dto"
	"github.com/guttosm/coffeemaker-service/internal/domain/model"
	"github.com/guttosm/coffeemaker-service/internal/middleware"
	"github.com/guttosm/coffeemaker-service/internal/service"
)

// Handler provides HTTP handlers for the machine routes.
type Handler struct {
	machine service.CoffeeMaker
	journal *middleware.AsyncJournal
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithJournal records every state-changing machine action in journal.
func WithJournal(journal *middleware.AsyncJournal) HandlerOption {
	return func(h *Handler) {
		h.journal = journal
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(machine service.CoffeeMaker, opts ...HandlerOption) *Handler {
	h := &Handler{machine: machine}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ListRecipes handles GET /api/recipes requests.
//
// @Summary      List recipes
// @Description  Returns every recipe in catalog order, each flagged with whether the current stock can brew it.
// @Tags         Recipes
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]dto.RecipeResponse} "Menu"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Router       /api/recipes [get]
func (h *Handler) ListRecipes(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(dto.NewMenuResponse(h.machine.Menu()))
}

// GetRecipe handles GET /api/recipes/:name requests.
//
// @Summary      Get recipe
// @Tags         Recipes
// @Produce      json
// @Param        name path string true "Recipe name"
// @Success      200 {object} dto.SuccessResponse{data=dto.RecipeResponse} "Recipe"
// @Failure      404 {object} dto.ErrorResponse "Recipe not found"
// @Router       /api/recipes/{name} [get]
func (h *Handler) GetRecipe(c *gin.Context) {
	builder := NewResponseBuilder(c)
	name := c.Param("name")

	recipe, ok := h.machine.FindRecipe(name)
	if !ok {
		builder.Error(http.StatusNotFound, "Recipe "+name+" not found", nil)
		return
	}
	builder.SuccessOK(dto.NewRecipeResponse(recipe))
}

// AddRecipe handles POST /api/recipes requests.
//
// @Summary      Add recipe
// @Description  Adds a recipe to the catalog. Names are unique and the catalog holds at most four recipes. Supports idempotency via Idempotency-Key header.
// @Tags         Recipes
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.RecipeRequest true "Recipe"
// @Success      201 {object} dto.SuccessResponse{data=dto.RecipeResponse} "Recipe added"
// @Failure      400 {object} dto.ErrorResponse "Invalid name, price or ingredient amount"
// @Failure      409 {object} dto.ErrorResponse "Name already taken (conflict) or catalog full (catalog_full)"
// @Router       /api/recipes [post]
func (h *Handler) AddRecipe(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.RecipeRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, "Invalid request body: "+err.Error(), err)
		return
	}

	recipe, err := req.ToRecipe()
	if err != nil {
		builder.Error(http.StatusBadRequest, err.Error(), err)
		return
	}

	if err := h.machine.InsertRecipe(recipe); err != nil {
		middleware.AuditLogError(h.journal, c, model.ActionAddRecipe, recipe.Name(), "Recipe not added", err, nil)
		switch {
		case errors.Is(err, model.ErrRecipeExists):
			builder.ErrorWithCode(http.StatusConflict, dto.ErrCodeConflict, "Recipe "+recipe.Name()+" already exists", nil)
		case errors.Is(err, model.ErrCatalogFull):
			builder.ErrorWithCode(http.StatusConflict, dto.ErrCodeCatalogFull, "Recipe catalog is full", nil)
		default:
			builder.Error(http.StatusBadRequest, err.Error(), err)
		}
		return
	}

	middleware.AuditLog(h.journal, c, model.ActionAddRecipe, recipe.Name(), "Recipe added",
		map[string]any{"price": recipe.Price().StringFixed(model.PricePlaces)})
	builder.SuccessCreated(dto.NewRecipeResponse(recipe))
}

// UpdateRecipe handles PUT /api/recipes/:name requests.
//
// @Summary      Update recipe
// @Description  Replaces the price and ingredient amounts of an existing recipe, keeping its catalog position.
// @Tags         Recipes
// @Accept       json
// @Produce      json
// @Param        name path string true "Recipe name"
// @Param        request body dto.UpdateRecipeRequest true "Replacement values"
// @Success      200 {object} dto.SuccessResponse{data=dto.RecipeResponse} "Recipe updated"
// @Failure      400 {object} dto.ErrorResponse "Invalid price or ingredient amount"
// @Failure      404 {object} dto.ErrorResponse "Recipe not found"
// @Router       /api/recipes/{name} [put]
func (h *Handler) UpdateRecipe(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.UpdateRecipeRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, "Invalid request body: "+err.Error(), err)
		return
	}

	recipe, err := req.ToRecipe(c.Param("name"))
	if err != nil {
		builder.Error(http.StatusBadRequest, err.Error(), err)
		return
	}

	if !h.machine.UpdateRecipe(recipe) {
		builder.Error(http.StatusNotFound, "Recipe "+recipe.Name()+" not found", nil)
		return
	}

	middleware.AuditLog(h.journal, c, model.ActionUpdateRecipe, recipe.Name(), "Recipe updated",
		map[string]any{"price": recipe.Price().StringFixed(model.PricePlaces)})
	builder.SuccessOK(dto.NewRecipeResponse(recipe))
}

// RemoveRecipe handles DELETE /api/recipes/:name requests.
//
// @Summary      Remove recipe
// @Tags         Recipes
// @Param        name path string true "Recipe name"
// @Success      204 "Recipe removed"
// @Failure      404 {object} dto.ErrorResponse "Recipe not found"
// @Router       /api/recipes/{name} [delete]
func (h *Handler) RemoveRecipe(c *gin.Context) {
	builder := NewResponseBuilder(c)
	name := c.Param("name")

	if !h.machine.RemoveRecipe(name) {
		builder.Error(http.StatusNotFound, "Recipe "+name+" not found", nil)
		return
	}

	middleware.AuditLog(h.journal, c, model.ActionRemoveRecipe, name, "Recipe removed", nil)
	builder.NoContent()
}

// RecipeAvailability handles GET /api/recipes/:name/availability requests.
//
// @Summary      Recipe availability
// @Description  Reports whether the current stock covers every ingredient the recipe needs.
// @Tags         Recipes
// @Produce      json
// @Param        name path string true "Recipe name"
// @Success      200 {object} dto.SuccessResponse{data=dto.AvailabilityResponse} "Availability"
// @Failure      404 {object} dto.ErrorResponse "Recipe not found"
// @Router       /api/recipes/{name}/availability [get]
func (h *Handler) RecipeAvailability(c *gin.Context) {
	builder := NewResponseBuilder(c)
	name := c.Param("name")

	if _, ok := h.machine.FindRecipe(name); !ok {
		builder.Error(http.StatusNotFound, "Recipe "+name+" not found", nil)
		return
	}
	builder.SuccessOK(dto.AvailabilityResponse{Recipe: name, Available: h.machine.CanFulfill(name)})
}

// GetInventory handles GET /api/inventory requests.
//
// @Summary      Get inventory
// @Tags         Inventory
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.InventoryResponse} "Current stock"
// @Router       /api/inventory [get]
func (h *Handler) GetInventory(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(dto.NewInventoryResponse(h.machine.InventorySnapshot()))
}

// AddIngredients handles POST /api/inventory requests.
//
// @Summary      Refill inventory
// @Description  Adds units of each ingredient. A negative amount rejects the whole refill. Supports idempotency via Idempotency-Key header.
// @Tags         Inventory
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.InventoryRequest true "Units to add"
// @Success      200 {object} dto.SuccessResponse{data=dto.InventoryResponse} "Stock after the refill"
// @Failure      400 {object} dto.ErrorResponse "Negative amount"
// @Router       /api/inventory [post]
func (h *Handler) AddIngredients(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.InventoryRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, "Invalid request body: "+err.Error(), err)
		return
	}

	refill := map[string]any{
		"coffee":    req.Coffee,
		"milk":      req.Milk,
		"chocolate": req.Chocolate,
		"sugar":     req.Sugar,
	}
	if err := h.machine.AddIngredients(req.Coffee, req.Milk, req.Chocolate, req.Sugar); err != nil {
		middleware.AuditLogError(h.journal, c, model.ActionRefill, "", "Refill rejected", err, refill)
		builder.Error(http.StatusBadRequest, err.Error(), err)
		return
	}

	stock := h.machine.InventorySnapshot()
	middleware.AuditLog(h.journal, c, model.ActionRefill, "", "Ingredients added", refill)
	builder.SuccessOK(dto.NewInventoryResponse(stock))
}

// Brew handles POST /api/brews requests.
//
// @Summary      Brew a recipe
// @Description  Brews the named recipe and deducts its ingredients. When paid is given the brew is a purchase: underpayment is refused with 402, and a brew that cannot be made returns 409 with the whole payment as refund. Supports idempotency via Idempotency-Key header.
// @Tags         Brewing
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.BrewRequest true "Recipe and optional payment"
// @Success      200 {object} dto.SuccessResponse{data=dto.BrewResponse} "Brewed"
// @Failure      400 {object} dto.ErrorResponse "Invalid request or negative payment"
// @Failure      402 {object} dto.ErrorResponse "Payment below price"
// @Failure      404 {object} dto.ErrorResponse "Recipe not found"
// @Failure      409 {object} dto.ErrorResponse "Insufficient stock"
// @Router       /api/brews [post]
func (h *Handler) Brew(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.BrewRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, "Invalid request body: "+err.Error(), err)
		return
	}

	if req.Paid != nil {
		h.purchase(c, builder, req)
		return
	}

	if !h.machine.Fulfill(req.Recipe) {
		if _, exists := h.machine.FindRecipe(req.Recipe); !exists {
			middleware.AuditLogError(h.journal, c, model.ActionBrew, req.Recipe, "Brew declined", model.ErrRecipeNotFound, nil)
			builder.Error(http.StatusNotFound, "Recipe "+req.Recipe+" not found", nil)
			return
		}
		middleware.AuditLogError(h.journal, c, model.ActionBrew, req.Recipe, "Brew declined", errInsufficientStock, nil)
		builder.ErrorWithCode(http.StatusConflict, dto.ErrCodeInsufficientStock, "Not enough ingredients to brew "+req.Recipe, nil)
		return
	}

	stock := h.machine.InventorySnapshot()
	event := middleware.NewAuditEvent(c, "info", model.ActionBrew, "Recipe brewed").WithStock(stock)
	event.Recipe = req.Recipe
	h.journal.Record(event)

	builder.SuccessOK(dto.BrewResponse{
		Recipe:    req.Recipe,
		Brewed:    true,
		Inventory: dto.NewInventoryResponse(stock),
	})
}

var errInsufficientStock = errors.New("insufficient stock")

func (h *Handler) purchase(c *gin.Context, builder *ResponseBuilder, req *dto.BrewRequest) {
	paid := *req.Paid
	fields := map[string]any{"paid": paid.StringFixed(model.PricePlaces)}

	result, err := h.machine.Purchase(req.Recipe, paid)
	if err != nil {
		status, code := purchaseErrorStatus(err)
		middleware.AuditLogError(h.journal, c, model.ActionPurchase, req.Recipe, "Purchase refused", err, fields)
		builder.ErrorWithCode(status, code, err.Error(), err)
		return
	}

	stock := h.machine.InventorySnapshot()
	resp := dto.NewPurchaseResponse(result, stock)
	if !result.Brewed {
		fields["refund"] = resp.Refund
		middleware.AuditLogError(h.journal, c, model.ActionPurchase, req.Recipe, "Purchase refunded", errInsufficientStock, fields)
		builder.ErrorWithDetails(http.StatusConflict, dto.ErrCodeInsufficientStock,
			"Not enough ingredients to brew "+req.Recipe+", payment refunded",
			map[string]string{"refund": resp.Refund}, nil)
		return
	}

	fields["change"] = resp.Change
	event := middleware.NewAuditEvent(c, "info", model.ActionPurchase, "Recipe sold").WithStock(stock)
	event.Recipe = req.Recipe
	for k, v := range fields {
		event.WithField(k, v)
	}
	h.journal.Record(event)

	builder.SuccessOK(resp)
}

// purchaseErrorStatus maps a Purchase error to its HTTP status and error code.
func purchaseErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrInvalidPayment):
		return http.StatusBadRequest, dto.ErrCodeInvalidRequest
	case errors.Is(err, model.ErrRecipeNotFound):
		return http.StatusNotFound, dto.ErrCodeNotFound
	case errors.Is(err, model.ErrInsufficientPayment):
		return http.StatusPaymentRequired, dto.ErrCodeInsufficientPayment
	default:
		return http.StatusInternalServerError, dto.ErrCodeInternal
	}
}

// Status handles GET /api/status requests.
//
// @Summary      Machine status
// @Description  Reports which operations are currently possible, mirroring the options a kiosk menu would offer.
// @Tags         Machine
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.StatusResponse} "Status"
// @Router       /api/status [get]
func (h *Handler) Status(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(dto.NewStatusResponse(h.machine.Status()))
}
