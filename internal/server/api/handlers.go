package api

import (
	"errors"
	"net/http"
	"strconv"

	"scout/internal/server/database"
	"scout/internal/server/service"

	"github.com/labstack/echo/v4"
)

// Handler contains the HTTP handlers for the scout API.
type Handler struct {
	svc *service.ScanService
	db  *database.DB
}

// NewHandler creates a new handler with the given service dependency.
func NewHandler(svc *service.ScanService, db *database.DB) *Handler {
	return &Handler{svc: svc, db: db}
}

// scanRequest is the body of POST /api/scan.
type scanRequest struct {
	Path string `json:"path"`
}

// HandleHealth handles GET /health.
func (h *Handler) HandleHealth(c echo.Context) error {
	if err := h.db.HealthCheck(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{
			"status": "degraded",
			"error":  "database unreachable",
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// HandleStats handles GET /api/stats.
func (h *Handler) HandleStats(c echo.Context) error {
	stats, err := h.svc.Stats(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "failed to gather stats",
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"total_scans":   stats.TotalScans,
		"total_files":   stats.TotalFiles,
		"total_bytes":   stats.TotalBytes,
		"archive_bytes": stats.ArchiveBytes,
	})
}

// HandleBrowse handles GET /api/browse?path=...
// Lists the immediate files and subdirectories of one directory under
// the served root.
func (h *Handler) HandleBrowse(c echo.Context) error {
	result, err := h.svc.Browse(c.QueryParam("path"))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// HandleScan handles POST /api/scan.
// Walks the requested subtree, archives it, and records the scan.
func (h *Handler) HandleScan(c echo.Context) error {
	var req scanRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "invalid request body",
		})
	}

	result, err := h.svc.Scan(c.Request().Context(), req.Path)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, result)
}

// HandleListScans handles GET /api/scans?limit=N.
// Returns the most recent scans, newest first.
func (h *Handler) HandleListScans(c echo.Context) error {
	scans, err := h.svc.Recent(c.Request().Context(), clampLimit(c.QueryParam("limit")))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "failed to list scans",
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"scans": scans})
}

// clampLimit parses a limit query value, falling back to a sane page
// size and capping runaway requests.
func clampLimit(raw string) int {
	const fallback, upper = 20, 100
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	if n > upper {
		return upper
	}
	return n
}

// HandleScanInfo handles GET /api/scan/:id.
func (h *Handler) HandleScanInfo(c echo.Context) error {
	info, err := h.svc.Info(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, info)
}

// HandleArchive handles GET /a/:id.
// Serves the cached scan archive as an attachment.
func (h *Handler) HandleArchive(c echo.Context) error {
	path, filename, err := h.svc.Archive(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.Attachment(path, filename)
}

// HandleDelete handles DELETE /api/scan/:id.
// Requires the admin token in the X-Admin-Token header.
func (h *Handler) HandleDelete(c echo.Context) error {
	token := c.Request().Header.Get("X-Admin-Token")
	if err := h.svc.Delete(c.Request().Context(), c.Param("id"), token); err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "deleted"})
}

// mapServiceError translates service sentinels into HTTP responses.
func mapServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "scan not found"})
	case errors.Is(err, service.ErrOutsideRoot):
		return c.JSON(http.StatusForbidden, echo.Map{"error": "path escapes the served root"})
	case errors.Is(err, service.ErrInvalidPath):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrTreeTooLarge):
		return c.JSON(http.StatusRequestEntityTooLarge, echo.Map{"error": "tree exceeds the maximum archive size"})
	case errors.Is(err, service.ErrAdminDisabled):
		return c.JSON(http.StatusForbidden, echo.Map{"error": "admin operations are disabled"})
	case errors.Is(err, service.ErrInvalidToken):
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid admin token"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}
}
