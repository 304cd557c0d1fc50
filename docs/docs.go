// Package docs holds the Swagger document served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "url": "https://github.com/guttosm/coffeemaker-service",
            "email": "support@example.com"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/recipes": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Recipes"
                ],
                "summary": "List recipes",
                "responses": {
                    "200": {
                        "description": "Menu",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.SuccessResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/RecipeResponse"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "429": {
                        "description": "Too many requests - rate limit exceeded",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Recipes"
                ],
                "summary": "Add recipe",
                "responses": {
                    "201": {
                        "description": "Recipe added",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.SuccessResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/RecipeResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Invalid name, price or ingredient amount",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Name already taken (conflict) or catalog full (catalog_full)",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Idempotency key for request deduplication",
                        "name": "Idempotency-Key",
                        "in": "header"
                    },
                    {
                        "description": "Recipe",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/RecipeRequest"
                        }
                    }
                ]
            }
        },
        "/api/recipes/{name}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Recipes"
                ],
                "summary": "Get recipe",
                "responses": {
                    "200": {
                        "description": "Recipe",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.SuccessResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/RecipeResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "Recipe not found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Recipe name",
                        "name": "name",
                        "in": "path",
                        "required": true
                    }
                ]
            },
            "put": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Recipes"
                ],
                "summary": "Update recipe",
                "responses": {
                    "200": {
                        "description": "Recipe updated",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.SuccessResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/RecipeResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Invalid price or ingredient amount",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Recipe not found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Recipe name",
                        "name": "name",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Replacement values",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/UpdateRecipeRequest"
                        }
                    }
                ]
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Recipes"
                ],
                "summary": "Remove recipe",
                "responses": {
                    "204": {
                        "description": "Recipe removed"
                    },
                    "404": {
                        "description": "Recipe not found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Recipe name",
                        "name": "name",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/recipes/{name}/availability": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Recipes"
                ],
                "summary": "Recipe availability",
                "responses": {
                    "200": {
                        "description": "Availability",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.SuccessResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/AvailabilityResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "Recipe not found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Recipe name",
                        "name": "name",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/inventory": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Inventory"
                ],
                "summary": "Get inventory",
                "responses": {
                    "200": {
                        "description": "Current stock",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.SuccessResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/InventoryResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Inventory"
                ],
                "summary": "Refill inventory",
                "responses": {
                    "200": {
                        "description": "Stock after the refill",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.SuccessResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/InventoryResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Negative amount",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Idempotency key for request deduplication",
                        "name": "Idempotency-Key",
                        "in": "header"
                    },
                    {
                        "description": "Units to add",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/InventoryRequest"
                        }
                    }
                ]
            }
        },
        "/api/brews": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Brewing"
                ],
                "summary": "Brew a recipe",
                "responses": {
                    "200": {
                        "description": "Brewed",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.SuccessResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/BrewResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Invalid request or negative payment",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "402": {
                        "description": "Payment below price",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Recipe not found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Insufficient stock",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Idempotency key for request deduplication",
                        "name": "Idempotency-Key",
                        "in": "header"
                    },
                    {
                        "description": "Recipe and optional payment",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/BrewRequest"
                        }
                    }
                ]
            }
        },
        "/api/status": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Machine"
                ],
                "summary": "Machine status",
                "responses": {
                    "200": {
                        "description": "Status",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.SuccessResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/StatusResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/api/events": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Events"
                ],
                "summary": "Query audit journal",
                "responses": {
                    "200": {
                        "description": "Journal page",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.SuccessResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/EventsResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Invalid query",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "Journal store unavailable",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filter by request ID",
                        "name": "request_id",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by action",
                        "name": "action",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by recipe name",
                        "name": "recipe",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by level",
                        "name": "level",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Earliest timestamp (RFC 3339)",
                        "name": "from",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Latest timestamp (RFC 3339)",
                        "name": "to",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Page size (default 50, max 500)",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Entries to skip",
                        "name": "skip",
                        "in": "query"
                    }
                ]
            }
        },
        "/healthz": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Health"
                ],
                "summary": "Liveness probe",
                "responses": {
                    "200": {
                        "description": "Service is alive",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/readyz": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Health"
                ],
                "summary": "Readiness probe",
                "responses": {
                    "200": {
                        "description": "Service is ready",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "503": {
                        "description": "Service is not ready",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "AvailabilityResponse": {
            "type": "object",
            "properties": {
                "recipe": {
                    "type": "string",
                    "example": "Cappuccino"
                },
                "available": {
                    "type": "boolean",
                    "example": true
                }
            }
        },
        "BrewRequest": {
            "type": "object",
            "properties": {
                "recipe": {
                    "type": "string",
                    "example": "Cappuccino"
                },
                "paid": {
                    "type": "string",
                    "example": "5.00"
                }
            },
            "required": [
                "recipe"
            ]
        },
        "BrewResponse": {
            "type": "object",
            "properties": {
                "recipe": {
                    "type": "string",
                    "example": "Cappuccino"
                },
                "brewed": {
                    "type": "boolean",
                    "example": true
                },
                "paid": {
                    "type": "string",
                    "example": "5.00"
                },
                "change": {
                    "type": "string",
                    "example": "2.30"
                },
                "refund": {
                    "type": "string",
                    "example": ""
                },
                "inventory": {
                    "$ref": "#/definitions/InventoryResponse"
                }
            }
        },
        "EventsResponse": {
            "type": "object",
            "properties": {
                "events": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.Event"
                    }
                },
                "total": {
                    "type": "integer",
                    "example": 42
                },
                "limit": {
                    "type": "integer",
                    "example": 50
                },
                "skip": {
                    "type": "integer",
                    "example": 0
                }
            }
        },
        "InventoryRequest": {
            "type": "object",
            "properties": {
                "coffee": {
                    "type": "integer",
                    "example": 5
                },
                "milk": {
                    "type": "integer",
                    "example": 5
                },
                "chocolate": {
                    "type": "integer",
                    "example": 0
                },
                "sugar": {
                    "type": "integer",
                    "example": 2
                }
            }
        },
        "InventoryResponse": {
            "type": "object",
            "properties": {
                "coffee": {
                    "type": "integer",
                    "example": 10
                },
                "milk": {
                    "type": "integer",
                    "example": 10
                },
                "chocolate": {
                    "type": "integer",
                    "example": 10
                },
                "sugar": {
                    "type": "integer",
                    "example": 10
                }
            }
        },
        "RecipeRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "example": "Mocha"
                },
                "price": {
                    "type": "string",
                    "example": "3.10"
                },
                "coffee": {
                    "type": "integer",
                    "example": 3
                },
                "milk": {
                    "type": "integer",
                    "example": 1
                },
                "chocolate": {
                    "type": "integer",
                    "example": 2
                },
                "sugar": {
                    "type": "integer",
                    "example": 1
                }
            },
            "required": [
                "name",
                "price"
            ]
        },
        "RecipeResponse": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "example": "Cappuccino"
                },
                "price": {
                    "type": "string",
                    "example": "2.70"
                },
                "coffee": {
                    "type": "integer",
                    "example": 2
                },
                "milk": {
                    "type": "integer",
                    "example": 3
                },
                "chocolate": {
                    "type": "integer",
                    "example": 0
                },
                "sugar": {
                    "type": "integer",
                    "example": 1
                },
                "available": {
                    "type": "boolean",
                    "example": true
                }
            }
        },
        "StatusResponse": {
            "type": "object",
            "properties": {
                "recipes": {
                    "type": "integer",
                    "example": 1
                },
                "max_recipes": {
                    "type": "integer",
                    "example": 4
                },
                "can_brew_any": {
                    "type": "boolean",
                    "example": true
                },
                "can_add_recipe": {
                    "type": "boolean",
                    "example": true
                },
                "can_edit_recipes": {
                    "type": "boolean",
                    "example": true
                },
                "can_remove_recipes": {
                    "type": "boolean",
                    "example": true
                },
                "inventory": {
                    "$ref": "#/definitions/InventoryResponse"
                }
            }
        },
        "UpdateRecipeRequest": {
            "type": "object",
            "properties": {
                "price": {
                    "type": "string",
                    "example": "2.90"
                },
                "coffee": {
                    "type": "integer",
                    "example": 2
                },
                "milk": {
                    "type": "integer",
                    "example": 3
                },
                "chocolate": {
                    "type": "integer",
                    "example": 0
                },
                "sugar": {
                    "type": "integer",
                    "example": 1
                }
            },
            "required": [
                "price"
            ]
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "invalid_request"
                },
                "message": {
                    "type": "string",
                    "example": "price must not be negative, got -1"
                },
                "details": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                },
                "request_id": {
                    "type": "string",
                    "example": "550e8400-e29b-41d4-a716-446655440000"
                },
                "timestamp": {
                    "type": "string",
                    "example": "2025-01-28T10:00:00Z"
                }
            }
        },
        "dto.SuccessResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object"
                },
                "request_id": {
                    "type": "string",
                    "example": "550e8400-e29b-41d4-a716-446655440000"
                },
                "timestamp": {
                    "type": "string",
                    "example": "2025-01-28T10:00:00Z"
                }
            }
        },
        "model.Event": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "timestamp": {
                    "type": "string"
                },
                "level": {
                    "type": "string"
                },
                "action": {
                    "type": "string"
                },
                "recipe": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "request_id": {
                    "type": "string"
                },
                "method": {
                    "type": "string"
                },
                "path": {
                    "type": "string"
                },
                "status_code": {
                    "type": "integer"
                },
                "ip": {
                    "type": "string"
                },
                "user_agent": {
                    "type": "string"
                },
                "error": {
                    "type": "string"
                }
            }
        }
    },
    "tags": [
        {
            "description": "Recipe catalog operations",
            "name": "Recipes"
        },
        {
            "description": "Ingredient stock operations",
            "name": "Inventory"
        },
        {
            "description": "Brew and purchase operations",
            "name": "Brewing"
        },
        {
            "description": "Machine status",
            "name": "Machine"
        },
        {
            "description": "Audit journal queries",
            "name": "Events"
        },
        {
            "description": "Health check endpoints",
            "name": "Health"
        }
    ]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Coffee Maker API",
	Description:      "Self-service coffee machine: recipe catalog, ingredient inventory, brewing and paid purchases.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
