package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codyseavey/tcg-roi/internal/models"
	"github.com/codyseavey/tcg-roi/internal/services"
)

type SnapshotHandler struct {
	snapshots *services.SnapshotService
}

func NewSnapshotHandler(snapshots *services.SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{snapshots: snapshots}
}

// History returns snapshot aggregates for a period ("week", "month",
// "3month", "year", "all"; default month).
func (h *SnapshotHandler) History(c *gin.Context) {
	period := c.DefaultQuery("period", "month")

	snapshots, err := h.snapshots.History(period)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.SnapshotHistoryResponse{
		Snapshots: snapshots,
		Period:    period,
	})
}

// Latest returns the most recent snapshot.
func (h *SnapshotHandler) Latest(c *gin.Context) {
	snapshot := h.snapshots.Latest()
	if snapshot == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no snapshots recorded yet"})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}
