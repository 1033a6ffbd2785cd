package api

import (
	"scout/internal/server/config"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// SetupRouter creates and configures the echo router with all routes and middleware.
func SetupRouter(handler *Handler, cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Global middleware
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "X-Admin-Token"},
	}))
	e.Use(RequestLogger())

	// Rate limiter on the scan endpoint only; scans walk whole subtrees.
	scanLimiter := NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	// Health & stats
	e.GET("/health", handler.HandleHealth)
	e.GET("/api/stats", handler.HandleStats)

	// Browsing
	e.GET("/api/browse", handler.HandleBrowse)

	// Scans
	e.POST("/api/scan", handler.HandleScan, scanLimiter.Middleware())
	e.GET("/api/scans", handler.HandleListScans)
	e.GET("/api/scan/:id", handler.HandleScanInfo)
	e.DELETE("/api/scan/:id", handler.HandleDelete)

	// Archive download
	e.GET("/a/:id", handler.HandleArchive)

	return e
}
