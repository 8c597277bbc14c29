package service

import (
	"context"

	"github.com/facturio/facturio-api/internal/domain/entity"
	"github.com/facturio/facturio-api/internal/domain/repository"
	"github.com/facturio/facturio-api/pkg/apperror"
	"github.com/google/uuid"
)

// CompanyService handles company and PDF configuration operations
type CompanyService struct {
	companyRepo repository.CompanyRepository
	configRepo  repository.PDFConfigRepository
}

// NewCompanyService creates a new company service
func NewCompanyService(companyRepo repository.CompanyRepository, configRepo repository.PDFConfigRepository) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
		configRepo:  configRepo,
	}
}

// CompanyInput represents the fields accepted when creating or updating a company
type CompanyInput struct {
	UserID      uuid.UUID
	Name        string
	Description string
	Address     string
	PostalCode  string
	City        string
	Country     string
	Email       *string
	Phone       *string
	LegalID     string
	VatID       string
	ExemptVat   bool
	DateFormat  string
}

// Create creates a company and seeds its PDF configuration with the
// default French labels
func (s *CompanyService) Create(ctx context.Context, input *CompanyInput) (*entity.Company, error) {
	company := &entity.Company{
		UserID:      input.UserID,
		Name:        input.Name,
		Description: input.Description,
		Address:     input.Address,
		PostalCode:  input.PostalCode,
		City:        input.City,
		Country:     input.Country,
		Email:       input.Email,
		Phone:       input.Phone,
		LegalID:     input.LegalID,
		VatID:       input.VatID,
		ExemptVat:   input.ExemptVat,
	}
	if input.DateFormat != "" {
		company.DateFormat = input.DateFormat
	}

	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}

	config := entity.DefaultPDFConfig(company.ID)
	if err := s.configRepo.Create(ctx, config); err != nil {
		return nil, err
	}
	company.PDFConfig = config

	return company, nil
}

// GetByID retrieves a company owned by the user, including its PDF config
func (s *CompanyService) GetByID(ctx context.Context, userID, companyID uuid.UUID) (*entity.Company, error) {
	company, err := s.companyRepo.GetWithConfig(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil || company.UserID != userID {
		return nil, apperror.NewNotFoundError("Company")
	}
	return company, nil
}

// Update updates a company owned by the user
func (s *CompanyService) Update(ctx context.Context, companyID uuid.UUID, input *CompanyInput) (*entity.Company, error) {
	company, err := s.GetByID(ctx, input.UserID, companyID)
	if err != nil {
		return nil, err
	}

	company.Name = input.Name
	company.Description = input.Description
	company.Address = input.Address
	company.PostalCode = input.PostalCode
	company.City = input.City
	company.Country = input.Country
	company.Email = input.Email
	company.Phone = input.Phone
	company.LegalID = input.LegalID
	company.VatID = input.VatID
	company.ExemptVat = input.ExemptVat
	if input.DateFormat != "" {
		company.DateFormat = input.DateFormat
	}

	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// Delete removes a company owned by the user
func (s *CompanyService) Delete(ctx context.Context, userID, companyID uuid.UUID) error {
	if _, err := s.GetByID(ctx, userID, companyID); err != nil {
		return err
	}
	return s.companyRepo.Delete(ctx, companyID)
}

// List returns all companies owned by the user
func (s *CompanyService) List(ctx context.Context, userID uuid.UUID) ([]entity.Company, error) {
	return s.companyRepo.ListByUser(ctx, userID)
}

// GetPDFConfig returns the PDF configuration of a company owned by the
// user, creating the default one for companies that predate configuration
func (s *CompanyService) GetPDFConfig(ctx context.Context, userID, companyID uuid.UUID) (*entity.PDFConfig, error) {
	company, err := s.GetByID(ctx, userID, companyID)
	if err != nil {
		return nil, err
	}

	if company.PDFConfig != nil {
		return company.PDFConfig, nil
	}

	config := entity.DefaultPDFConfig(company.ID)
	if err := s.configRepo.Create(ctx, config); err != nil {
		return nil, err
	}
	return config, nil
}

// UpdatePDFConfig replaces the labels and style of a company's PDF
// configuration
func (s *CompanyService) UpdatePDFConfig(ctx context.Context, userID, companyID uuid.UUID, input *entity.PDFConfig) (*entity.PDFConfig, error) {
	config, err := s.GetPDFConfig(ctx, userID, companyID)
	if err != nil {
		return nil, err
	}

	input.ID = config.ID
	input.CompanyID = config.CompanyID
	input.CreatedAt = config.CreatedAt

	if err := s.configRepo.Update(ctx, input); err != nil {
		return nil, err
	}
	return input, nil
}
