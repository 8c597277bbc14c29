package service

import (
	"context"

	"github.com/facturio/facturio-api/internal/domain/repository"
	"github.com/google/uuid"
)

// DashboardService aggregates figures for the dashboard
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(analyticsRepo repository.AnalyticsRepository) *DashboardService {
	return &DashboardService{analyticsRepo: analyticsRepo}
}

// DashboardOutput is the dashboard payload
type DashboardOutput struct {
	Stats          *repository.DashboardStats        `json:"stats"`
	MonthlyRevenue []repository.MonthlyRevenueResult `json:"monthly_revenue"`
}

// GetDashboard returns counts and the last twelve months of invoiced revenue
func (s *DashboardService) GetDashboard(ctx context.Context, userID uuid.UUID) (*DashboardOutput, error) {
	stats, err := s.analyticsRepo.GetDashboardStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	revenue, err := s.analyticsRepo.GetMonthlyRevenue(ctx, userID, 12)
	if err != nil {
		return nil, err
	}

	return &DashboardOutput{
		Stats:          stats,
		MonthlyRevenue: revenue,
	}, nil
}
