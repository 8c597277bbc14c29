package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MonthlyRevenueResult represents invoiced revenue for a single month
type MonthlyRevenueResult struct {
	Month   time.Time
	Revenue float64
}

// DashboardStats aggregates the figures shown on the dashboard
type DashboardStats struct {
	QuoteCount    int64
	InvoiceCount  int64
	ClientCount   int64
	TotalInvoiced float64
}

// AnalyticsRepository defines interface for dashboard aggregation queries
type AnalyticsRepository interface {
	// GetDashboardStats returns document/client counts and invoiced totals
	// for a user
	GetDashboardStats(ctx context.Context, userID uuid.UUID) (*DashboardStats, error)

	// GetMonthlyRevenue returns invoiced TTC revenue per month for the last
	// N months
	GetMonthlyRevenue(ctx context.Context, userID uuid.UUID, months int) ([]MonthlyRevenueResult, error)
}
