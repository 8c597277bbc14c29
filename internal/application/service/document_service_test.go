package service

import (
	"context"
	"testing"
	"time"

	"github.com/facturio/facturio-api/internal/domain/entity"
	"github.com/facturio/facturio-api/internal/domain/enum"
	infraRepo "github.com/facturio/facturio-api/internal/infrastructure/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDocumentService(db *gorm.DB) *DocumentService {
	return NewDocumentService(
		infraRepo.NewDocumentRepository(db),
		infraRepo.NewClientRepository(db),
		infraRepo.NewCompanyRepository(db),
		infraRepo.NewPaymentMethodRepository(db),
	)
}

func quoteInput(user *entity.User, company *entity.Company, client *entity.Client) *DocumentInput {
	return &DocumentInput{
		UserID:    user.ID,
		CompanyID: company.ID,
		ClientID:  client.ID,
		Items: []LineItemInput{
			{Description: "Développement", Quantity: 2, UnitPrice: 100, VatRate: 20, Type: enum.ItemTypeDay, Order: 0},
		},
	}
}

func TestDocumentCreateAssignsSequentialNumbers(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	company := createTestCompany(t, db, user.ID)
	client := createTestClient(t, db, user.ID)
	svc := newDocumentService(db)
	ctx := context.Background()

	first, err := svc.Create(ctx, enum.DocumentTypeQuote, quoteInput(user, company, client))
	require.NoError(t, err)
	second, err := svc.Create(ctx, enum.DocumentTypeQuote, quoteInput(user, company, client))
	require.NoError(t, err)

	assert.Equal(t, 1, first.Number)
	assert.Equal(t, 2, second.Number)

	// Invoices number independently of quotes
	invoice, err := svc.Create(ctx, enum.DocumentTypeInvoice, quoteInput(user, company, client))
	require.NoError(t, err)
	assert.Equal(t, 1, invoice.Number)
}

func TestDocumentCreateComputesTotals(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	company := createTestCompany(t, db, user.ID)
	client := createTestClient(t, db, user.ID)
	svc := newDocumentService(db)

	input := quoteInput(user, company, client)
	input.Items = []LineItemInput{
		{Description: "Phase 1", Type: enum.ItemTypeSection, Order: 0},
		{Description: "Conception", Quantity: 2, UnitPrice: 100, VatRate: 20, Type: enum.ItemTypeService, Order: 1},
		{Description: "Remise", Quantity: 1, UnitPrice: -50, VatRate: 20, Type: enum.ItemTypeService, Order: 2},
	}

	doc, err := svc.Create(context.Background(), enum.DocumentTypeQuote, input)
	require.NoError(t, err)

	assert.InDelta(t, 150, doc.TotalHT, 0.001)
	assert.InDelta(t, 30, doc.TotalVAT, 0.001)
	assert.InDelta(t, 180, doc.TotalTTC, 0.001)
}

func TestDocumentCreateRenormalizesItemOrder(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	company := createTestCompany(t, db, user.ID)
	client := createTestClient(t, db, user.ID)
	svc := newDocumentService(db)

	input := quoteInput(user, company, client)
	input.Items = []LineItemInput{
		{Description: "troisième", Quantity: 1, UnitPrice: 10, Type: enum.ItemTypeService, Order: 9},
		{Description: "première", Quantity: 1, UnitPrice: 10, Type: enum.ItemTypeService, Order: 2},
		{Description: "deuxième", Quantity: 1, UnitPrice: 10, Type: enum.ItemTypeService, Order: 5},
	}

	doc, err := svc.Create(context.Background(), enum.DocumentTypeQuote, input)
	require.NoError(t, err)
	require.Len(t, doc.Items, 3)

	assert.Equal(t, "première", doc.Items[0].Description)
	assert.Equal(t, "deuxième", doc.Items[1].Description)
	assert.Equal(t, "troisième", doc.Items[2].Description)
	for i, item := range doc.Items {
		assert.Equal(t, i, item.Order)
	}
}

func TestDocumentUpdateReplacesItems(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	company := createTestCompany(t, db, user.ID)
	client := createTestClient(t, db, user.ID)
	svc := newDocumentService(db)
	ctx := context.Background()

	doc, err := svc.Create(ctx, enum.DocumentTypeQuote, quoteInput(user, company, client))
	require.NoError(t, err)

	input := quoteInput(user, company, client)
	input.Items = []LineItemInput{
		{Description: "Nouvelle ligne", Quantity: 1, UnitPrice: 300, VatRate: 10, Type: enum.ItemTypeService, Order: 0},
	}

	updated, err := svc.Update(ctx, enum.DocumentTypeQuote, doc.ID, input)
	require.NoError(t, err)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, "Nouvelle ligne", updated.Items[0].Description)
	assert.InDelta(t, 300, updated.TotalHT, 0.001)
	assert.InDelta(t, 30, updated.TotalVAT, 0.001)

	var count int64
	require.NoError(t, db.Model(&entity.LineItem{}).Where("document_id = ?", doc.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestDocumentUpdateLeavesCompanyUntouched(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	company := createTestCompany(t, db, user.ID)
	client := createTestClient(t, db, user.ID)
	svc := newDocumentService(db)
	ctx := context.Background()

	doc, err := svc.Create(ctx, enum.DocumentTypeQuote, quoteInput(user, company, client))
	require.NoError(t, err)

	// The company is edited between the document load and its save
	require.NoError(t, db.Model(&entity.Company{}).Where("id = ?", company.ID).
		Update("name", "Atelier Renommé").Error)

	_, err = svc.Update(ctx, enum.DocumentTypeQuote, doc.ID, quoteInput(user, company, client))
	require.NoError(t, err)

	var kept entity.Company
	require.NoError(t, db.First(&kept, "id = ?", company.ID).Error)
	assert.Equal(t, "Atelier Renommé", kept.Name)
}

func TestDocumentOwnershipIsEnforced(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	other := createTestUser(t, db)
	company := createTestCompany(t, db, user.ID)
	client := createTestClient(t, db, user.ID)
	svc := newDocumentService(db)
	ctx := context.Background()

	doc, err := svc.Create(ctx, enum.DocumentTypeQuote, quoteInput(user, company, client))
	require.NoError(t, err)

	_, err = svc.GetByID(ctx, other.ID, enum.DocumentTypeQuote, doc.ID)
	assert.Error(t, err)

	// The wrong type path is also treated as not found
	_, err = svc.GetByID(ctx, user.ID, enum.DocumentTypeInvoice, doc.ID)
	assert.Error(t, err)
}

func TestDocumentCreateRejectsInvalidItemType(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	company := createTestCompany(t, db, user.ID)
	client := createTestClient(t, db, user.ID)
	svc := newDocumentService(db)

	input := quoteInput(user, company, client)
	input.Items[0].Type = "SOMETHING"

	_, err := svc.Create(context.Background(), enum.DocumentTypeQuote, input)
	assert.Error(t, err)
}

func TestDocumentCreateRejectsForeignClient(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	other := createTestUser(t, db)
	company := createTestCompany(t, db, user.ID)
	foreignClient := createTestClient(t, db, other.ID)
	svc := newDocumentService(db)

	input := quoteInput(user, company, foreignClient)

	_, err := svc.Create(context.Background(), enum.DocumentTypeQuote, input)
	assert.Error(t, err)
}

func TestConvertToInvoice(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	company := createTestCompany(t, db, user.ID)
	client := createTestClient(t, db, user.ID)
	svc := newDocumentService(db)
	ctx := context.Background()

	input := quoteInput(user, company, client)
	title := "Refonte du site"
	input.Title = &title
	quote, err := svc.Create(ctx, enum.DocumentTypeQuote, input)
	require.NoError(t, err)

	invoice, err := svc.ConvertToInvoice(ctx, user.ID, quote.ID)
	require.NoError(t, err)

	assert.Equal(t, enum.DocumentTypeInvoice, invoice.Type)
	assert.Equal(t, 1, invoice.Number)
	assert.NotEqual(t, quote.ID, invoice.ID)
	require.NotNil(t, invoice.Title)
	assert.Equal(t, "Refonte du site", *invoice.Title)
	require.Len(t, invoice.Items, 1)
	assert.Equal(t, quote.Items[0].Description, invoice.Items[0].Description)
	assert.InDelta(t, quote.TotalTTC, invoice.TotalTTC, 0.001)

	require.NotNil(t, invoice.DueDate)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), *invoice.DueDate, time.Minute)

	// The quote is untouched
	kept, err := svc.GetByID(ctx, user.ID, enum.DocumentTypeQuote, quote.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.DocumentTypeQuote, kept.Type)
}

func TestConvertToInvoiceRejectsInvoice(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	company := createTestCompany(t, db, user.ID)
	client := createTestClient(t, db, user.ID)
	svc := newDocumentService(db)
	ctx := context.Background()

	invoice, err := svc.Create(ctx, enum.DocumentTypeInvoice, quoteInput(user, company, client))
	require.NoError(t, err)

	_, err = svc.ConvertToInvoice(ctx, user.ID, invoice.ID)
	assert.Error(t, err)
}

func TestDocumentDelete(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	company := createTestCompany(t, db, user.ID)
	client := createTestClient(t, db, user.ID)
	svc := newDocumentService(db)
	ctx := context.Background()

	doc, err := svc.Create(ctx, enum.DocumentTypeQuote, quoteInput(user, company, client))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, user.ID, enum.DocumentTypeQuote, doc.ID))

	_, err = svc.GetByID(ctx, user.ID, enum.DocumentTypeQuote, doc.ID)
	assert.Error(t, err)
}

func TestDocumentList(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	company := createTestCompany(t, db, user.ID)
	client := createTestClient(t, db, user.ID)
	svc := newDocumentService(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, enum.DocumentTypeQuote, quoteInput(user, company, client))
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, enum.DocumentTypeInvoice, quoteInput(user, company, client))
	require.NoError(t, err)

	result, err := svc.List(ctx, user.ID, enum.DocumentTypeQuote, nil)
	require.NoError(t, err)
	assert.Len(t, result.Items, 3)
	assert.Equal(t, int64(3), result.Pagination.Total)
}
