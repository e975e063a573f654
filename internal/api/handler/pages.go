package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Section returns a handler for a navigable section of the marketplace.
// The gateway owns routing and access control; rendering belongs to the web
// frontend, so guarded sections answer with a small JSON marker the
// integration tests (and smoke checks) can assert on.
func Section(name string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"section": name})
	}
}
