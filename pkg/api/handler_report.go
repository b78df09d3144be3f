package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CreateReportRequest is the body for POST /api/v2/reports.
type CreateReportRequest struct {
	Title          string `json:"title"`
	OrganizationID string `json:"organization_id" binding:"required"`
}

// CreateReport handles POST /api/v2/reports.
func (s *Server) CreateReport(c *gin.Context) {
	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	report, err := s.reports.CreateReport(c.Request.Context(), req.Title, req.OrganizationID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

// ListReports handles GET /api/v2/reports.
func (s *Server) ListReports(c *gin.Context) {
	organizationID := c.Query("organization_id")
	reports, err := s.reports.ListReports(c.Request.Context(), organizationID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports})
}
