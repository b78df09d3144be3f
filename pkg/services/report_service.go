package services

import (
	"context"
	"fmt"
	"time"

	"github.com/datalens-ai/datalens/ent"
	"github.com/datalens-ai/datalens/ent/report"
	"github.com/google/uuid"
)

// ReportService manages analyst reports
type ReportService struct {
	client *ent.Client
}

// NewReportService creates a new ReportService
func NewReportService(client *ent.Client) *ReportService {
	return &ReportService{client: client}
}

// CreateReport creates a new report
func (s *ReportService) CreateReport(httpCtx context.Context, title, organizationID string) (*ent.Report, error) {
	if organizationID == "" {
		return nil, NewValidationError("organization_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rep, err := s.client.Report.Create().
		SetID(uuid.New().String()).
		SetTitle(title).
		SetOrganizationID(organizationID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}
	return rep, nil
}

// GetReport retrieves a report by ID
func (s *ReportService) GetReport(ctx context.Context, id string) (*ent.Report, error) {
	rep, err := s.client.Report.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return rep, nil
}

// SetTitle updates the report title (used by background title generation)
func (s *ReportService) SetTitle(ctx context.Context, id, title string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Report.UpdateOneID(id).
		SetTitle(title).
		SetUpdatedAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update report title: %w", err)
	}
	return nil
}

// ListReports lists reports for an organization, newest first
func (s *ReportService) ListReports(ctx context.Context, organizationID string) ([]*ent.Report, error) {
	reports, err := s.client.Report.Query().
		Where(report.OrganizationID(organizationID)).
		Order(ent.Desc(report.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}
