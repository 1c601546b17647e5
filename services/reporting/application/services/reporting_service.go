package services

import (
	"context"
	"fmt"

	"github.com/ghuser/posledger/services/reporting/domain/models"
	"github.com/ghuser/posledger/services/reporting/domain/repositories"
)

// ReportingService serves dashboard aggregates.
type ReportingService struct {
	repo repositories.AnalyticsRepository
}

// NewReportingService returns a ReportingService wired with the given repository.
func NewReportingService(repo repositories.AnalyticsRepository) *ReportingService {
	return &ReportingService{repo: repo}
}

// Dashboard returns the landing-page metrics.
func (s *ReportingService) Dashboard(ctx context.Context) (*models.DashboardReport, error) {
	rep, err := s.repo.Dashboard(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard report: %w", err)
	}
	return rep, nil
}

// Items returns the catalog aggregates.
func (s *ReportingService) Items(ctx context.Context) (*models.ItemReport, error) {
	rep, err := s.repo.Items(ctx)
	if err != nil {
		return nil, fmt.Errorf("item report: %w", err)
	}
	return rep, nil
}
