package handler // handler package contains the shopping list HTTP handlers

import (
	"context"  // context detaches event publishing from the request lifetime
	"net/http" // http provides status code constants
	"time"     // time stamps published events

	"github.com/labstack/echo/v4" // echo is the web framework used for handlers

	"github.com/River-03/shopping-list-api/internal/queue"      // queue publishes list-change events
	"github.com/River-03/shopping-list-api/internal/repository" // repository owns the in-memory list
)

// ListHandler bundles the dependencies of the shopping list endpoints.  The
// repo is required; Events may be nil, in which case no events are published.
type ListHandler struct {
	Repo   *repository.ShoppingListRepo // the process-wide shopping list
	Events *queue.Publisher             // optional change-event publisher
}

// NewListHandler constructs a ListHandler.  This function allows dependency
// injection of the repo and publisher in tests and at startup.
func NewListHandler(repo *repository.ShoppingListRepo, events *queue.Publisher) *ListHandler {
	return &ListHandler{Repo: repo, Events: events}
}

// AddItem handles POST /items and appends a new item to the list
func (h *ListHandler) AddItem(c echo.Context) error { // begin AddItem handler
	var body struct { // anonymous struct to bind incoming JSON
		Name string `json:"name"` // Name is the only field of an item
	}
	if err := c.Bind(&body); err != nil { // attempt to bind the request body into the struct
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"}) // return bad request when binding fails
	}
	item, err := h.Repo.Add(body.Name) // delegate trimming, validation and append to the repo
	if err != nil {                    // validation failed, the list was not touched
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()}) // surface the validation message
	}
	h.publish(queue.ActionItemAdded, item.Name) // best-effort change event
	return c.JSON(http.StatusCreated, item)     // return 201 and the created item on success
}

// GetItems handles GET /items and returns the current list with its count
func (h *ListHandler) GetItems(c echo.Context) error { // begin GetItems handler
	items, count := h.Repo.Items() // snapshot in insertion order
	return c.JSON(http.StatusOK, map[string]any{"items": items, "count": count})
}

// CountItems handles GET /items/count and returns the count alongside the items
func (h *ListHandler) CountItems(c echo.Context) error { // begin CountItems handler
	items, count := h.Repo.Items() // same snapshot as GetItems, count first
	return c.JSON(http.StatusOK, map[string]any{"count": count, "items": items})
}

// RemoveItem handles DELETE /items/:name and removes the first exact match
func (h *ListHandler) RemoveItem(c echo.Context) error { // begin RemoveItem handler
	name := c.Param("name")      // the item name comes from the URL path
	if !h.Repo.Remove(name) {    // exact-match removal of the first occurrence
		return c.JSON(http.StatusNotFound, map[string]string{"error": repository.ErrItemNotFound.Error()}) // respond with not found for absent names
	}
	h.publish(queue.ActionItemRemoved, name)                       // best-effort change event
	return c.JSON(http.StatusOK, map[string]string{"removed": name}) // confirm which item was removed
}

// ClearItems handles DELETE /items and empties the entire list
func (h *ListHandler) ClearItems(c echo.Context) error { // begin ClearItems handler
	removed := h.Repo.Clear()                  // empty the list, capturing the prior count
	h.publish(queue.ActionListCleared, "")     // best-effort change event
	return c.JSON(http.StatusOK, map[string]int{"removed": removed}) // report how many items were cleared
}

// publish emits a list-change event in the background.  Failures are logged
// by the publisher and never affect the HTTP response.
func (h *ListHandler) publish(action, item string) {
	if h.Events == nil {
		return
	}
	ev := queue.ListChangedEvent{
		Action:     action,
		Item:       item,
		Count:      h.Repo.Count(),
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
	go func() { _ = h.Events.Publish(context.Background(), ev) }()
}
