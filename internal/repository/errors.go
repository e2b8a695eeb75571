// Package repository owns the in-memory shopping list state, separated from
// the HTTP handlers.  This file defines sentinel error values shared by the
// repository and the handler layer.  Handlers translate these into HTTP
// status codes: validation failures become 400 responses and a missing item
// on removal becomes a 404.
package repository

import "errors"

// ErrEmptyName is returned by Add when the item name is empty after
// trimming surrounding whitespace.  Handlers should translate this
// into an HTTP 400 response.
var ErrEmptyName = errors.New("name is required")

// ErrNameTooLong is returned by Add when the item name exceeds
// MaxNameLength characters.  Handlers should translate this into an
// HTTP 400 response.
var ErrNameTooLong = errors.New("name too long")

// ErrItemNotFound is returned when a removal targets a name that is not
// present on the list.  Handlers should translate this into an HTTP 404
// response.
var ErrItemNotFound = errors.New("item not found")
