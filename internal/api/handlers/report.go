package handlers

import (
	"net/http"

	"helpdesk-admin-backend/internal/auth"
	"helpdesk-admin-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ReportHandler handles HTTP requests for reporting and exports
type ReportHandler struct {
	reportService service.ReportServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService service.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// GetTicketSummary aggregates tickets by status, sector and official
// @Summary Ticket summary report
// @Description Get the tenant's ticket counts grouped by status, sector and assigned official
// @Tags reports
// @Accept json
// @Produce json
// @Success 200 {object} service.TicketSummaryResponse "Ticket summary"
// @Security BearerAuth
// @Router /reports/tickets/summary [get]
func (h *ReportHandler) GetTicketSummary(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	summary, err := h.reportService.GetTicketSummary(tenantID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetSatisfactionReport aggregates survey results
// @Summary Satisfaction report
// @Description Get the tenant's survey totals, response rate and average rating
// @Tags reports
// @Accept json
// @Produce json
// @Success 200 {object} service.SatisfactionReportResponse "Satisfaction report"
// @Security BearerAuth
// @Router /reports/satisfaction [get]
func (h *ReportHandler) GetSatisfactionReport(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	report, err := h.reportService.GetSatisfactionReport(tenantID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// ExportTickets exports the tenant's tickets as CSV
// @Summary Export tickets as CSV
// @Description Download the tenant's tickets as a CSV file. Pass upload=true to also store the file in the configured object storage.
// @Tags reports
// @Accept json
// @Produce text/csv
// @Param upload query bool false "Also upload to object storage" default(false)
// @Success 200 {string} string "CSV payload"
// @Failure 503 {object} ErrorResponse "Export storage not configured"
// @Security BearerAuth
// @Router /reports/tickets/export [get]
func (h *ReportHandler) ExportTickets(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	upload := c.DefaultQuery("upload", "false") == "true"

	export, err := h.reportService.ExportTickets(c.Request.Context(), tenantID, upload)
	if err != nil {
		respondError(c, err)
		return
	}

	if upload {
		c.JSON(http.StatusOK, export)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+export.Filename+`"`)
	c.Data(http.StatusOK, "text/csv", export.Data)
}
