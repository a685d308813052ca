package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"helpdesk-admin-backend/internal/database/models"
	apperrors "helpdesk-admin-backend/internal/errors"
	"helpdesk-admin-backend/internal/repository"
	"helpdesk-admin-backend/internal/storage"

	"github.com/google/uuid"
)

// ReportService aggregates ticket and survey data for dashboards and
// produces CSV exports
type ReportService struct {
	ticketRepo repository.TicketRepositoryInterface
	surveyRepo repository.SurveyRepositoryInterface
	store      *storage.ExportStore
}

// Ensure ReportService implements ReportServiceInterface
var _ ReportServiceInterface = (*ReportService)(nil)

// NewReportService creates a new report service. store may be nil when no
// export bucket is configured; exports then stream to the caller only.
func NewReportService(
	ticketRepo repository.TicketRepositoryInterface,
	surveyRepo repository.SurveyRepositoryInterface,
	store *storage.ExportStore,
) *ReportService {
	return &ReportService{
		ticketRepo: ticketRepo,
		surveyRepo: surveyRepo,
		store:      store,
	}
}

// TicketSummaryResponse aggregates ticket counts for a tenant
type TicketSummaryResponse struct {
	Total      int64                    `json:"total"`
	ByStatus   []repository.StatusCount `json:"by_status"`
	BySector   []repository.GroupCount  `json:"by_sector"`
	ByOfficial []repository.GroupCount  `json:"by_official"`
}

// SatisfactionReportResponse aggregates survey results for a tenant
type SatisfactionReportResponse struct {
	Sent          int64   `json:"sent"`
	Answered      int64   `json:"answered"`
	ResponseRate  float64 `json:"response_rate"`
	AverageRating float64 `json:"average_rating"`
}

// ExportResponse describes a generated CSV export
type ExportResponse struct {
	Filename string `json:"filename"`
	Rows     int    `json:"rows"`
	Location string `json:"location,omitempty"`
	Data     []byte `json:"-"`
}

// GetTicketSummary aggregates the tenant's tickets by status, sector and
// official
func (s *ReportService) GetTicketSummary(tenantID uuid.UUID) (*TicketSummaryResponse, error) {
	byStatus, err := s.ticketRepo.CountByStatus(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to count tickets by status: %w", err)
	}

	bySector, err := s.ticketRepo.CountBySector(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to count tickets by sector: %w", err)
	}

	byOfficial, err := s.ticketRepo.CountByOfficial(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to count tickets by official: %w", err)
	}

	var total int64
	for _, count := range byStatus {
		total += count.Count
	}

	return &TicketSummaryResponse{
		Total:      total,
		ByStatus:   byStatus,
		BySector:   bySector,
		ByOfficial: byOfficial,
	}, nil
}

// GetSatisfactionReport aggregates the tenant's survey results
func (s *ReportService) GetSatisfactionReport(tenantID uuid.UUID) (*SatisfactionReportResponse, error) {
	stats, err := s.surveyRepo.GetStats(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get survey stats: %w", err)
	}

	var rate float64
	if stats.Sent > 0 {
		rate = float64(stats.Answered) / float64(stats.Sent)
	}

	return &SatisfactionReportResponse{
		Sent:          stats.Sent,
		Answered:      stats.Answered,
		ResponseRate:  rate,
		AverageRating: stats.AverageRating,
	}, nil
}

// ExportTickets produces a CSV of every ticket in the tenant. When an
// export bucket is configured and upload is requested, the file is also
// uploaded and its location returned.
func (s *ReportService) ExportTickets(ctx context.Context, tenantID uuid.UUID, upload bool) (*ExportResponse, error) {
	tickets, err := s.ticketRepo.GetForExport(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tickets for export: %w", err)
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{"id", "subject", "status", "priority", "customer", "official", "sector", "department", "created_at", "updated_at"}
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write export header: %w", err)
	}

	for _, ticket := range tickets {
		record := []string{
			ticket.ID.String(),
			ticket.Subject,
			string(ticket.Status),
			string(ticket.Priority),
			ticket.Customer.Name,
			personName(ticket.Official),
			sectorName(ticket.Sector),
			departmentName(ticket.Department),
			ticket.CreatedAt.UTC().Format(time.RFC3339),
			ticket.UpdatedAt.UTC().Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write export row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to finish export: %w", err)
	}

	resp := &ExportResponse{
		Filename: exportFilename(tenantID),
		Rows:     len(tickets),
		Data:     buf.Bytes(),
	}

	if upload {
		if s.store == nil {
			return nil, apperrors.ErrExportStorageNotConfigured
		}
		location, err := s.store.Upload(ctx, resp.Filename, resp.Data, "text/csv")
		if err != nil {
			return nil, fmt.Errorf("failed to upload export: %w", err)
		}
		resp.Location = location
	}

	return resp, nil
}

func exportFilename(tenantID uuid.UUID) string {
	stamp := strconv.FormatInt(time.Now().UTC().Unix(), 10)
	return "exports/tickets-" + tenantID.String() + "-" + stamp + ".csv"
}

func personName(p *models.Person) string {
	if p == nil {
		return ""
	}
	return p.FullName
}

func sectorName(s *models.Sector) string {
	if s == nil {
		return ""
	}
	return s.Name
}

func departmentName(d *models.Department) string {
	if d == nil {
		return ""
	}
	return d.Name
}
