package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eadmin-africa/portal-api/internal/core/ports"
)

const maxSnapshotBytes = 8 << 20

// SnapshotHandler exposes full-store export, import, and reseed for super
// admins.
type SnapshotHandler struct {
	snapshots ports.SnapshotService
}

func NewSnapshotHandler(snapshots ports.SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{snapshots: snapshots}
}

// Export handles POST /v1/admin/snapshot/export.
//
// @Summary      Export the full store
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.Snapshot
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/snapshot/export [post]
func (h *SnapshotHandler) Export(c echo.Context) error {
	snap, err := h.snapshots.Export(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, snap)
}

// Import handles POST /v1/admin/snapshot/import. Decoding is lenient:
// malformed collections are replaced with safe defaults rather than
// rejected.
//
// @Summary      Replace the store with an uploaded snapshot
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.Snapshot
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/snapshot/import [post]
func (h *SnapshotHandler) Import(c echo.Context) error {
	raw, err := io.ReadAll(io.LimitReader(c.Request().Body, maxSnapshotBytes))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable payload")
	}

	snap, err := h.snapshots.Import(c.Request().Context(), raw)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, snap)
}

// Reset handles POST /v1/admin/snapshot/reset: reseeds the fixed demo dataset.
//
// @Summary      Reset the store to the seed dataset
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/snapshot/reset [post]
func (h *SnapshotHandler) Reset(c echo.Context) error {
	if err := h.snapshots.ResetToDefaults(c.Request().Context()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "reset"})
}
