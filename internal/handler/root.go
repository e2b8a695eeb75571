package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Version is the API version reported by the root endpoint.
const Version = "1.0.0"

// Root is the welcome endpoint.  It returns a short plain-text banner so a
// browser pointed at the server sees something friendlier than a 404.
func Root(c echo.Context) error {
	return c.String(http.StatusOK, "Shopping List API v"+Version+"\n")
}
