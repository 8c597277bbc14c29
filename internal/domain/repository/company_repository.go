package repository

import (
	"context"

	"github.com/facturio/facturio-api/internal/domain/entity"
	"github.com/google/uuid"
)

// CompanyRepository defines the interface for company data operations
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Company, error)
	// GetWithConfig loads a company together with its PDF config, which may
	// be nil for companies created before configuration existed
	GetWithConfig(ctx context.Context, id uuid.UUID) (*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Company, error)
}

// PDFConfigRepository defines the interface for PDF config data operations
type PDFConfigRepository interface {
	Create(ctx context.Context, config *entity.PDFConfig) error
	GetByCompanyID(ctx context.Context, companyID uuid.UUID) (*entity.PDFConfig, error)
	Update(ctx context.Context, config *entity.PDFConfig) error
}
