// Package http provides the HTTP server implementation for the enrichment service.
package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/geallenboy/ai-n8n/enricher/internal/service"
	v1 "github.com/geallenboy/ai-n8n/enricher/internal/transport/http/v1"
)

// NewServer creates and configures the HTTP server used by the CRUD layer.
func NewServer(svc *service.Service) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Handlers
	v1Handler := v1.NewHandler(svc)

	// Register Routes
	v1Handler.RegisterRoutes(e)

	return e
}
