package http

import (
	"github.com/gin-gonic/gin"
)

// PublicRouteGroup defines a set of routes registered on the API group.
type PublicRouteGroup interface {
	// RegisterPublicRoutes registers routes to the given router group.
	RegisterPublicRoutes(rg *gin.RouterGroup)
}

var (
	_ PublicRouteGroup = (*MachineRoutes)(nil)
	_ PublicRouteGroup = (*EventsRoutes)(nil)
)
