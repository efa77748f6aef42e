package handler // declare the package name; contains HTTP handlers

import (
	"net/http" // net/http provides status codes and response helpers

	"github.com/labstack/echo/v4" // echo is the web framework used for this project
)

// Root is the liveness endpoint at the API root.
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "DevFolio API is running",
		"version": "1.0",
	})
}

// Health is a simple health-check endpoint used by load balancers and
// monitoring systems to verify that the service is running.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "healthy"})
}
