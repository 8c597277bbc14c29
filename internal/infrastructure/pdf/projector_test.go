package pdf

import (
	"errors"
	"testing"
	"time"

	"github.com/facturio/facturio-api/internal/domain/entity"
	"github.com/facturio/facturio-api/internal/domain/enum"
	"github.com/facturio/facturio-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument() *entity.Document {
	companyID := uuid.New()
	return &entity.Document{
		ID:        uuid.New(),
		Type:      enum.DocumentTypeQuote,
		Number:    42,
		Currency:  "EUR",
		CreatedAt: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		Company: entity.Company{
			ID:         companyID,
			Name:       "Atelier Dupont",
			Address:    "12 rue de la Paix",
			PostalCode: "75002",
			City:       "Paris",
			Country:    "France",
			LegalID:    "123456789",
			PDFConfig:  entity.DefaultPDFConfig(companyID),
		},
		Client: &entity.Client{
			Name:       "ACME SARL",
			Address:    "3 avenue des Champs",
			PostalCode: "69001",
			City:       "Lyon",
			Country:    "France",
		},
		Items: []entity.LineItem{
			{Description: "Développement", Quantity: 2, UnitPrice: 100, VatRate: 20, Type: enum.ItemTypeDay, Order: 0},
		},
	}
}

func TestProjectMissingConfig(t *testing.T) {
	doc := testDocument()
	doc.Company.PDFConfig = nil

	_, err := Project(doc)
	require.Error(t, err)
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.ErrPDFConfigMissing, appErr)
}

func TestProjectNumberFallback(t *testing.T) {
	doc := testDocument()

	model, err := Project(doc)
	require.NoError(t, err)
	assert.Equal(t, "42", model.Number)

	doc.RawNumber = "DEV-2026-042"
	model, err = Project(doc)
	require.NoError(t, err)
	assert.Equal(t, "DEV-2026-042", model.Number)
}

func TestProjectClientNameFallback(t *testing.T) {
	doc := testDocument()
	doc.Client.Name = ""
	doc.Client.ContactFirstname = "Jean"
	doc.Client.ContactLastname = "Martin"

	model, err := Project(doc)
	require.NoError(t, err)
	assert.Equal(t, "Jean Martin", model.Client.Name)
}

func TestProjectSortsItemsByOrder(t *testing.T) {
	doc := testDocument()
	doc.Items = []entity.LineItem{
		{Description: "deuxième", Quantity: 1, UnitPrice: 10, Type: enum.ItemTypeService, Order: 1},
		{Description: "première", Quantity: 1, UnitPrice: 10, Type: enum.ItemTypeService, Order: 0},
		{Description: "troisième", Quantity: 1, UnitPrice: 10, Type: enum.ItemTypeService, Order: 2},
	}

	model, err := Project(doc)
	require.NoError(t, err)
	require.Len(t, model.Items, 3)
	assert.Contains(t, string(model.Items[0].Description), "première")
	assert.Contains(t, string(model.Items[1].Description), "deuxième")
	assert.Contains(t, string(model.Items[2].Description), "troisième")
}

func TestProjectTotals(t *testing.T) {
	doc := testDocument()

	model, err := Project(doc)
	require.NoError(t, err)
	assert.Equal(t, "200,00", model.TotalHT)
	assert.Equal(t, "40,00", model.TotalVAT)
	assert.Equal(t, "240,00", model.TotalTTC)
	assert.True(t, model.ShowVAT)
	assert.Equal(t, 3, model.ColSpan)
}

func TestProjectExemption(t *testing.T) {
	doc := testDocument()
	doc.VatExemptionReason = enum.VatExemptionFranceNoVat
	doc.Company.ExemptVat = true

	model, err := Project(doc)
	require.NoError(t, err)
	assert.False(t, model.ShowVAT)
	assert.Equal(t, 2, model.ColSpan)
	// Displayed total collapses to the pre-tax amount
	assert.Equal(t, "200,00", model.TotalTTC)
	assert.Equal(t, "TVA non applicable, art. 293 B du CGI", model.VatExemptText)
}

func TestProjectExplicitExemptionText(t *testing.T) {
	doc := testDocument()
	doc.VatExemptionReason = enum.VatExemptionEUNoVat
	doc.VatExemptionText = "Autoliquidation, art. 283 du CGI"

	model, err := Project(doc)
	require.NoError(t, err)
	assert.Equal(t, "Autoliquidation, art. 283 du CGI", model.VatExemptText)
}

func TestProjectDates(t *testing.T) {
	doc := testDocument()
	validUntil := time.Date(2026, 4, 14, 0, 0, 0, 0, time.UTC)
	doc.ValidUntil = &validUntil

	model, err := Project(doc)
	require.NoError(t, err)
	assert.Equal(t, "14/03/2026", model.Date)
	assert.Equal(t, "14/04/2026", model.ValidUntil)
	assert.Equal(t, "", model.DueDate)
}

func TestProjectPaymentMethodResolution(t *testing.T) {
	doc := testDocument()
	doc.PaymentMethod = "legacy method"
	doc.PaymentDetails = "legacy details"

	model, err := Project(doc)
	require.NoError(t, err)
	assert.Equal(t, "legacy method", model.PaymentMethod)
	assert.Equal(t, "legacy details", model.PaymentDetails)

	pmID := uuid.New()
	doc.PaymentMethodID = &pmID
	doc.ResolvedPayment = &entity.PaymentMethod{
		ID:      pmID,
		Type:    enum.PaymentMethodBankTransfer,
		Details: "IBAN FR76 1234",
	}

	model, err = Project(doc)
	require.NoError(t, err)
	assert.Equal(t, "Virement bancaire", model.PaymentMethod)
	assert.Equal(t, "IBAN FR76 1234", model.PaymentDetails)
}

func TestProjectPaymentDetailsFallback(t *testing.T) {
	doc := testDocument()
	doc.PaymentDetails = "legacy details"
	pmID := uuid.New()
	doc.PaymentMethodID = &pmID
	doc.ResolvedPayment = &entity.PaymentMethod{ID: pmID, Type: enum.PaymentMethodCheck}

	model, err := Project(doc)
	require.NoError(t, err)
	assert.Equal(t, "Chèque", model.PaymentMethod)
	// Empty details on the saved method keep the document's own details
	assert.Equal(t, "legacy details", model.PaymentDetails)
}

func TestProjectOptions(t *testing.T) {
	doc := testDocument()

	model, err := Project(doc)
	require.NoError(t, err)
	assert.True(t, model.ShowSignature)
	assert.True(t, model.ShowAcceptance)
	assert.True(t, model.ShowSignatureSection)

	doc.ComplementaryOptions = `{"signature":false,"acceptance":false,"title":false}`
	title := "Refonte du site"
	doc.Title = &title

	model, err = Project(doc)
	require.NoError(t, err)
	assert.False(t, model.ShowSignatureSection)
	assert.Equal(t, "", model.Title)

	doc.ComplementaryOptions = `{"signature":true,"acceptance":false,"title":true}`
	model, err = Project(doc)
	require.NoError(t, err)
	assert.True(t, model.ShowSignature)
	assert.False(t, model.ShowAcceptance)
	assert.True(t, model.ShowSignatureSection)
	assert.Equal(t, "Refonte du site", model.Title)
}

func TestProjectInvoiceHasNoSignatureSection(t *testing.T) {
	doc := testDocument()
	doc.Type = enum.DocumentTypeInvoice

	model, err := Project(doc)
	require.NoError(t, err)
	assert.Equal(t, "Facture", model.DocLabel)
	assert.False(t, model.ShowSignatureSection)
}

func TestProjectSections(t *testing.T) {
	doc := testDocument()
	doc.Items = []entity.LineItem{
		{Description: "## Phase 1", Type: enum.ItemTypeSection, Order: 0},
		{Description: "Conception", Quantity: 1, UnitPrice: 500, VatRate: 20, Type: enum.ItemTypeService, Order: 1},
	}

	model, err := Project(doc)
	require.NoError(t, err)
	require.Len(t, model.Items, 2)
	assert.True(t, model.Items[0].IsSection)
	assert.False(t, model.Items[1].IsSection)
	// Section rows carry no amount
	assert.Equal(t, "500,00", model.TotalHT)
}

func TestProjectNotes(t *testing.T) {
	doc := testDocument()
	doc.Notes = "Ligne 1\nLigne 2"

	model, err := Project(doc)
	require.NoError(t, err)
	assert.True(t, model.NoteExists)
	assert.Contains(t, string(model.Notes), "Ligne 1<br>Ligne 2")
}

func TestProjectMarkdownDescription(t *testing.T) {
	doc := testDocument()
	doc.Items[0].Description = "**Développement** backend"

	model, err := Project(doc)
	require.NoError(t, err)
	assert.Contains(t, string(model.Items[0].Description), "<strong>Développement</strong>")
}
