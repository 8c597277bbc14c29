package service

import (
	"context"
	"testing"

	infraRepo "github.com/facturio/facturio-api/internal/infrastructure/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCompanyService(db *gorm.DB) *CompanyService {
	return NewCompanyService(
		infraRepo.NewCompanyRepository(db),
		infraRepo.NewPDFConfigRepository(db),
	)
}

func TestCompanyCreateSeedsPDFConfig(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	svc := newCompanyService(db)
	ctx := context.Background()

	company, err := svc.Create(ctx, &CompanyInput{
		UserID:  user.ID,
		Name:    "Atelier Dupont",
		Country: "France",
	})
	require.NoError(t, err)
	require.NotNil(t, company.PDFConfig)
	assert.Equal(t, "Devis", company.PDFConfig.Quote)
	assert.Equal(t, "Facture", company.PDFConfig.Invoice)
	assert.Equal(t, "02/01/2006", company.DateFormat)

	loaded, err := svc.GetByID(ctx, user.ID, company.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.PDFConfig)
	assert.Equal(t, company.PDFConfig.ID, loaded.PDFConfig.ID)
}

func TestCompanyGetPDFConfigCreatesWhenMissing(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	svc := newCompanyService(db)
	ctx := context.Background()

	company, err := svc.Create(ctx, &CompanyInput{UserID: user.ID, Name: "Atelier"})
	require.NoError(t, err)

	require.NoError(t, db.Unscoped().Delete(company.PDFConfig).Error)

	config, err := svc.GetPDFConfig(ctx, user.ID, company.ID)
	require.NoError(t, err)
	assert.Equal(t, "Devis", config.Quote)
}

func TestCompanyUpdatePDFConfig(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	svc := newCompanyService(db)
	ctx := context.Background()

	company, err := svc.Create(ctx, &CompanyInput{UserID: user.ID, Name: "Atelier"})
	require.NoError(t, err)

	updated := *company.PDFConfig
	updated.Quote = "Proposition"
	updated.PrimaryColor = "#1e3a8a"

	saved, err := svc.UpdatePDFConfig(ctx, user.ID, company.ID, &updated)
	require.NoError(t, err)
	assert.Equal(t, "Proposition", saved.Quote)

	reloaded, err := svc.GetPDFConfig(ctx, user.ID, company.ID)
	require.NoError(t, err)
	assert.Equal(t, "Proposition", reloaded.Quote)
	assert.Equal(t, "#1e3a8a", reloaded.PrimaryColor)
}

func TestCompanyOwnership(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	other := createTestUser(t, db)
	svc := newCompanyService(db)
	ctx := context.Background()

	company, err := svc.Create(ctx, &CompanyInput{UserID: user.ID, Name: "Atelier"})
	require.NoError(t, err)

	_, err = svc.GetByID(ctx, other.ID, company.ID)
	assert.Error(t, err)

	_, err = svc.GetPDFConfig(ctx, other.ID, company.ID)
	assert.Error(t, err)
}
