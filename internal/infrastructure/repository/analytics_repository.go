package repository

import (
	"context"
	"time"

	"github.com/facturio/facturio-api/internal/domain/entity"
	"github.com/facturio/facturio-api/internal/domain/enum"
	domainRepo "github.com/facturio/facturio-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetDashboardStats(ctx context.Context, userID uuid.UUID) (*domainRepo.DashboardStats, error) {
	stats := &domainRepo.DashboardStats{}

	if err := r.db.WithContext(ctx).Model(&entity.Document{}).
		Where("user_id = ? AND type = ?", userID, enum.DocumentTypeQuote).
		Count(&stats.QuoteCount).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&entity.Document{}).
		Where("user_id = ? AND type = ?", userID, enum.DocumentTypeInvoice).
		Count(&stats.InvoiceCount).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&entity.Client{}).
		Where("user_id = ?", userID).
		Count(&stats.ClientCount).Error; err != nil {
		return nil, err
	}

	var totalInvoiced *float64
	if err := r.db.WithContext(ctx).Model(&entity.Document{}).
		Where("user_id = ? AND type = ?", userID, enum.DocumentTypeInvoice).
		Select("SUM(total_ttc)").
		Scan(&totalInvoiced).Error; err != nil {
		return nil, err
	}
	if totalInvoiced != nil {
		stats.TotalInvoiced = *totalInvoiced
	}

	return stats, nil
}

func (r *analyticsRepository) GetMonthlyRevenue(ctx context.Context, userID uuid.UUID, months int) ([]domainRepo.MonthlyRevenueResult, error) {
	if months < 1 {
		months = 12
	}
	since := time.Now().AddDate(0, -months, 0)

	var rows []struct {
		Month   time.Time
		Revenue float64
	}
	err := r.db.WithContext(ctx).Model(&entity.Document{}).
		Select("DATE_TRUNC('month', created_at) AS month, SUM(total_ttc) AS revenue").
		Where("user_id = ? AND type = ? AND created_at >= ?", userID, enum.DocumentTypeInvoice, since).
		Group("DATE_TRUNC('month', created_at)").
		Order("month ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	results := make([]domainRepo.MonthlyRevenueResult, 0, len(rows))
	for _, row := range rows {
		results = append(results, domainRepo.MonthlyRevenueResult{
			Month:   row.Month,
			Revenue: row.Revenue,
		})
	}
	return results, nil
}
