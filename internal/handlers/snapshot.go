package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/seiyak/gourmet-hunter-backend/internal/logger"
	"github.com/seiyak/gourmet-hunter-backend/internal/services"
)

type SnapshotHandler struct {
	log             *logger.Logger
	snapshotService services.SnapshotService
}

func NewSnapshotHandler(log *logger.Logger, snapshotService services.SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{
		log:             log.With("handler", "SnapshotHandler"),
		snapshotService: snapshotService,
	}
}

// GetInitialData serves the bulk snapshot the client mirror hydrates
// from. Clients call it once at startup and again after each write,
// rather than trusting their mirror to reflect server-side
// recalculation.
func (h *SnapshotHandler) GetInitialData(c *gin.Context) {
	data, err := h.snapshotService.GetInitialData(c.Request.Context())
	if err != nil {
		h.log.Error("GetInitialData failed", "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, data)
}
