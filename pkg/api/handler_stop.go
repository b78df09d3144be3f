package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/datalens-ai/datalens/pkg/events"
)

// StopCompletion handles POST /api/v2/completions/:id/stop. Sets sigkill on
// the system completion and notifies any running loop.
func (s *Server) StopCompletion(c *gin.Context) {
	completionID := c.Param("id")

	if err := s.completions.RequestStop(c.Request.Context(), completionID); err != nil {
		respondServiceError(c, err)
		return
	}

	// A loop on another replica learns about the stop through NOTIFY; the
	// sigkill column covers loops that start after this call.
	if err := events.NotifyStop(c.Request.Context(), s.db.DB(), completionID); err != nil {
		slog.Warn("stop notify failed", "completion_id", completionID, "error", err)
	}

	c.JSON(http.StatusOK, gin.H{"status": "stopping"})
}
