package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/River-03/shopping-list-api/internal/handler" // import the handlers that implement the list operations
)

// RegisterRoutes registers every route of the shopping list API on the
// provided Echo instance.  The root banner and health check are static;
// all item operations go through the injected ListHandler so the list
// state stays owned by a single component.
func RegisterRoutes(e *echo.Echo, h *handler.ListHandler) {
	// Map the root path to the plain-text welcome banner.
	e.GET("/", handler.Root)
	// Map the GET request at path "/health" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/health", handler.Health)

	// Item operations.  POST appends, GET reads a snapshot, DELETE with a
	// name removes the first match, DELETE without a name clears the list.
	e.POST("/items", h.AddItem)
	e.GET("/items", h.GetItems)
	e.GET("/items/count", h.CountItems)
	e.DELETE("/items/:name", h.RemoveItem)
	e.DELETE("/items", h.ClearItems)
}
