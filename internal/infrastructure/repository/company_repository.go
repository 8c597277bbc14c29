package repository

import (
	"context"
	"errors"

	"github.com/facturio/facturio-api/internal/domain/entity"
	domainRepo "github.com/facturio/facturio-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *gorm.DB) domainRepo.CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Create(ctx context.Context, company *entity.Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

func (r *companyRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	var company entity.Company
	err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &company, err
}

func (r *companyRepository) GetWithConfig(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	var company entity.Company
	err := r.db.WithContext(ctx).
		Preload("PDFConfig").
		First(&company, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &company, err
}

func (r *companyRepository) Update(ctx context.Context, company *entity.Company) error {
	return r.db.WithContext(ctx).Save(company).Error
}

func (r *companyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Company{}, "id = ?", id).Error
}

func (r *companyRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Company, error) {
	var companies []entity.Company
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&companies).Error
	return companies, err
}

type pdfConfigRepository struct {
	db *gorm.DB
}

// NewPDFConfigRepository creates a new PDF config repository
func NewPDFConfigRepository(db *gorm.DB) domainRepo.PDFConfigRepository {
	return &pdfConfigRepository{db: db}
}

func (r *pdfConfigRepository) Create(ctx context.Context, config *entity.PDFConfig) error {
	return r.db.WithContext(ctx).Create(config).Error
}

func (r *pdfConfigRepository) GetByCompanyID(ctx context.Context, companyID uuid.UUID) (*entity.PDFConfig, error) {
	var config entity.PDFConfig
	err := r.db.WithContext(ctx).First(&config, "company_id = ?", companyID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &config, err
}

func (r *pdfConfigRepository) Update(ctx context.Context, config *entity.PDFConfig) error {
	return r.db.WithContext(ctx).Save(config).Error
}
