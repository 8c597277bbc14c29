package service

import (
	"context"
	"testing"

	"github.com/facturio/facturio-api/internal/domain/entity"
	"github.com/facturio/facturio-api/internal/domain/enum"
	"github.com/facturio/facturio-api/internal/infrastructure/pdf"
	infraRepo "github.com/facturio/facturio-api/internal/infrastructure/repository"
	"github.com/facturio/facturio-api/pkg/apperror"
	"github.com/facturio/facturio-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeRasterizer records the HTML it receives and returns canned bytes
type fakeRasterizer struct {
	lastHTML string
}

func (f *fakeRasterizer) Rasterize(ctx context.Context, html string) ([]byte, error) {
	f.lastHTML = html
	return []byte("%PDF-1.4 fake"), nil
}

func newPDFService(db *gorm.DB, rasterizer pdf.Rasterizer) *PDFService {
	return NewPDFService(
		infraRepo.NewDocumentRepository(db),
		pdf.NewRenderer(),
		rasterizer,
		nil,
		logger.New(logger.Config{Env: "test", Level: "error"}),
	)
}

func TestPDFGenerate(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	company := createTestCompany(t, db, user.ID)
	client := createTestClient(t, db, user.ID)
	docSvc := newDocumentService(db)
	ctx := context.Background()

	quote, err := docSvc.Create(ctx, enum.DocumentTypeQuote, quoteInput(user, company, client))
	require.NoError(t, err)

	rasterizer := &fakeRasterizer{}
	svc := newPDFService(db, rasterizer)

	generated, err := svc.Generate(ctx, user.ID, enum.DocumentTypeQuote, quote.ID, pdf.TemplateBase)
	require.NoError(t, err)

	assert.Equal(t, "devis_1.pdf", generated.Filename)
	assert.Equal(t, []byte("%PDF-1.4 fake"), generated.Content)
	assert.Contains(t, rasterizer.lastHTML, "Devis N° 1")
	assert.Contains(t, rasterizer.lastHTML, "240,00 EUR")
}

func TestPDFGenerateInvoiceFilename(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	company := createTestCompany(t, db, user.ID)
	client := createTestClient(t, db, user.ID)
	docSvc := newDocumentService(db)
	ctx := context.Background()

	input := quoteInput(user, company, client)
	input.RawNumber = "FAC 2026/007"
	invoice, err := docSvc.Create(ctx, enum.DocumentTypeInvoice, input)
	require.NoError(t, err)

	svc := newPDFService(db, &fakeRasterizer{})
	generated, err := svc.Generate(ctx, user.ID, enum.DocumentTypeInvoice, invoice.ID, pdf.TemplateBase)
	require.NoError(t, err)

	assert.Equal(t, "facture_FAC_2026-007.pdf", generated.Filename)
}

func TestPDFGenerateMissingConfig(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	company := createTestCompany(t, db, user.ID)
	client := createTestClient(t, db, user.ID)
	docSvc := newDocumentService(db)
	ctx := context.Background()

	quote, err := docSvc.Create(ctx, enum.DocumentTypeQuote, quoteInput(user, company, client))
	require.NoError(t, err)

	require.NoError(t, db.Unscoped().Delete(&entity.PDFConfig{}, "company_id = ?", company.ID).Error)

	svc := newPDFService(db, &fakeRasterizer{})
	_, err = svc.Generate(ctx, user.ID, enum.DocumentTypeQuote, quote.ID, pdf.TemplateBase)
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, apperror.ErrPDFConfigMissing.Code, appErr.Code)
}

func TestPDFGenerateOwnership(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	other := createTestUser(t, db)
	company := createTestCompany(t, db, user.ID)
	client := createTestClient(t, db, user.ID)
	docSvc := newDocumentService(db)
	ctx := context.Background()

	quote, err := docSvc.Create(ctx, enum.DocumentTypeQuote, quoteInput(user, company, client))
	require.NoError(t, err)

	svc := newPDFService(db, &fakeRasterizer{})
	_, err = svc.Generate(ctx, other.ID, enum.DocumentTypeQuote, quote.ID, pdf.TemplateBase)
	assert.Error(t, err)
}

func TestFilename(t *testing.T) {
	quote := &entity.Document{Type: enum.DocumentTypeQuote, Number: 42}
	assert.Equal(t, "devis_42.pdf", Filename(quote))

	invoice := &entity.Document{Type: enum.DocumentTypeInvoice, Number: 7, RawNumber: "2026/007"}
	assert.Equal(t, "facture_2026-007.pdf", Filename(invoice))
}
