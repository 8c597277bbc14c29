package service

import (
	"context"
	"sort"
	"time"

	"github.com/facturio/facturio-api/internal/domain/billing"
	"github.com/facturio/facturio-api/internal/domain/entity"
	"github.com/facturio/facturio-api/internal/domain/enum"
	"github.com/facturio/facturio-api/internal/domain/repository"
	"github.com/facturio/facturio-api/pkg/apperror"
	"github.com/facturio/facturio-api/pkg/pagination"
	"github.com/google/uuid"
)

// invoiceDueDelay is the default payment delay applied when a quote is
// converted to an invoice
const invoiceDueDelay = 30 * 24 * time.Hour

// DocumentService handles quote and invoice operations
type DocumentService struct {
	documentRepo repository.DocumentRepository
	clientRepo   repository.ClientRepository
	companyRepo  repository.CompanyRepository
	methodRepo   repository.PaymentMethodRepository
}

// NewDocumentService creates a new document service
func NewDocumentService(
	documentRepo repository.DocumentRepository,
	clientRepo repository.ClientRepository,
	companyRepo repository.CompanyRepository,
	methodRepo repository.PaymentMethodRepository,
) *DocumentService {
	return &DocumentService{
		documentRepo: documentRepo,
		clientRepo:   clientRepo,
		companyRepo:  companyRepo,
		methodRepo:   methodRepo,
	}
}

// LineItemInput represents one submitted document row
type LineItemInput struct {
	Description string
	Quantity    float64
	UnitPrice   float64
	VatRate     float64
	Type        enum.ItemType
	Order       int
}

// DocumentInput represents the fields accepted when creating or updating
// a document
type DocumentInput struct {
	UserID    uuid.UUID
	CompanyID uuid.UUID
	ClientID  uuid.UUID

	RawNumber string
	Title     *string
	Currency  string

	ValidUntil *time.Time
	DueDate    *time.Time

	Notes      string
	FooterText string

	VatExemptionReason enum.VatExemptionReason
	VatExemptionText   string

	PaymentMethodID *uuid.UUID
	PaymentMethod   string
	PaymentDetails  string

	ComplementaryOptions string
	ClientOptions        string

	Items []LineItemInput
}

// Create creates a document of the given type, assigns its sequence number
// and persists its items
func (s *DocumentService) Create(ctx context.Context, docType enum.DocumentType, input *DocumentInput) (*entity.Document, error) {
	if !docType.Valid() {
		return nil, apperror.NewBadRequestError("Invalid document type")
	}
	if err := s.validateInput(ctx, input); err != nil {
		return nil, err
	}

	items, totals := buildItems(input.Items)

	number, err := s.documentRepo.NextNumber(ctx, input.UserID, docType)
	if err != nil {
		return nil, err
	}

	doc := &entity.Document{
		UserID:    input.UserID,
		CompanyID: input.CompanyID,
		ClientID:  input.ClientID,
		Type:      docType,
		Number:    number,

		RawNumber: input.RawNumber,
		Title:     input.Title,

		ValidUntil: input.ValidUntil,
		DueDate:    input.DueDate,

		Notes:      input.Notes,
		FooterText: input.FooterText,

		VatExemptionReason: input.VatExemptionReason,
		VatExemptionText:   input.VatExemptionText,

		PaymentMethodID: input.PaymentMethodID,
		PaymentMethod:   input.PaymentMethod,
		PaymentDetails:  input.PaymentDetails,

		ComplementaryOptions: input.ComplementaryOptions,
		ClientOptions:        input.ClientOptions,

		TotalHT:  totals.TotalHT,
		TotalVAT: totals.TotalVAT,
		TotalTTC: totals.TotalTTC,

		Items: items,
	}
	if input.Currency != "" {
		doc.Currency = input.Currency
	}

	if err := s.documentRepo.Create(ctx, doc); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, input.UserID, docType, doc.ID)
}

// GetByID retrieves a document of the given type owned by the user, with
// all relations loaded
func (s *DocumentService) GetByID(ctx context.Context, userID uuid.UUID, docType enum.DocumentType, documentID uuid.UUID) (*entity.Document, error) {
	doc, err := s.documentRepo.GetWithRelations(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if doc == nil || doc.UserID != userID || doc.Type != docType {
		return nil, apperror.NewNotFoundError(documentLabel(docType))
	}
	return doc, nil
}

// Update replaces a document's fields and its full item set
func (s *DocumentService) Update(ctx context.Context, docType enum.DocumentType, documentID uuid.UUID, input *DocumentInput) (*entity.Document, error) {
	doc, err := s.GetByID(ctx, input.UserID, docType, documentID)
	if err != nil {
		return nil, err
	}
	if err := s.validateInput(ctx, input); err != nil {
		return nil, err
	}

	items, totals := buildItems(input.Items)

	doc.CompanyID = input.CompanyID
	doc.ClientID = input.ClientID
	doc.RawNumber = input.RawNumber
	doc.Title = input.Title
	if input.Currency != "" {
		doc.Currency = input.Currency
	}
	doc.ValidUntil = input.ValidUntil
	doc.DueDate = input.DueDate
	doc.Notes = input.Notes
	doc.FooterText = input.FooterText
	doc.VatExemptionReason = input.VatExemptionReason
	doc.VatExemptionText = input.VatExemptionText
	doc.PaymentMethodID = input.PaymentMethodID
	doc.PaymentMethod = input.PaymentMethod
	doc.PaymentDetails = input.PaymentDetails
	doc.ComplementaryOptions = input.ComplementaryOptions
	doc.ClientOptions = input.ClientOptions
	doc.TotalHT = totals.TotalHT
	doc.TotalVAT = totals.TotalVAT
	doc.TotalTTC = totals.TotalTTC

	// Items are replaced, not merged; detach all loaded relations so the
	// save touches only the document row
	doc.Items = nil
	doc.Client = nil
	doc.ResolvedPayment = nil
	doc.Company = entity.Company{}

	if err := s.documentRepo.Update(ctx, doc); err != nil {
		return nil, err
	}
	if err := s.documentRepo.ReplaceItems(ctx, doc.ID, items); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, input.UserID, docType, documentID)
}

// Delete removes a document and its items
func (s *DocumentService) Delete(ctx context.Context, userID uuid.UUID, docType enum.DocumentType, documentID uuid.UUID) error {
	doc, err := s.documentRepo.GetByID(ctx, documentID)
	if err != nil {
		return err
	}
	if doc == nil || doc.UserID != userID || doc.Type != docType {
		return apperror.NewNotFoundError(documentLabel(docType))
	}
	return s.documentRepo.Delete(ctx, documentID)
}

// List returns the user's documents of the given type
func (s *DocumentService) List(ctx context.Context, userID uuid.UUID, docType enum.DocumentType, params *repository.DocumentFilterParams) (*pagination.PaginatedResult[entity.Document], error) {
	if params == nil {
		params = &repository.DocumentFilterParams{}
	}
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	documents, total, err := s.documentRepo.List(ctx, userID, docType, params)
	if err != nil {
		return nil, err
	}

	p := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(documents, p), nil
}

// ConvertToInvoice creates an invoice from an existing quote. The quote is
// left untouched; the invoice gets its own sequence number and a due date
// thirty days out.
func (s *DocumentService) ConvertToInvoice(ctx context.Context, userID, quoteID uuid.UUID) (*entity.Document, error) {
	quote, err := s.GetByID(ctx, userID, enum.DocumentTypeQuote, quoteID)
	if err != nil {
		return nil, err
	}

	number, err := s.documentRepo.NextNumber(ctx, userID, enum.DocumentTypeInvoice)
	if err != nil {
		return nil, err
	}

	dueDate := time.Now().Add(invoiceDueDelay)
	invoice := &entity.Document{
		UserID:    quote.UserID,
		CompanyID: quote.CompanyID,
		ClientID:  quote.ClientID,
		Type:      enum.DocumentTypeInvoice,
		Number:    number,

		Title:    quote.Title,
		Currency: quote.Currency,
		DueDate:  &dueDate,

		Notes:      quote.Notes,
		FooterText: quote.FooterText,

		VatExemptionReason: quote.VatExemptionReason,
		VatExemptionText:   quote.VatExemptionText,

		PaymentMethodID: quote.PaymentMethodID,
		PaymentMethod:   quote.PaymentMethod,
		PaymentDetails:  quote.PaymentDetails,

		ComplementaryOptions: quote.ComplementaryOptions,
		ClientOptions:        quote.ClientOptions,

		TotalHT:  quote.TotalHT,
		TotalVAT: quote.TotalVAT,
		TotalTTC: quote.TotalTTC,
	}

	for _, item := range quote.Items {
		invoice.Items = append(invoice.Items, entity.LineItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			VatRate:     item.VatRate,
			Type:        item.Type,
			Order:       item.Order,
		})
	}

	if err := s.documentRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, userID, enum.DocumentTypeInvoice, invoice.ID)
}

// validateInput checks referenced entities exist and belong to the user
func (s *DocumentService) validateInput(ctx context.Context, input *DocumentInput) error {
	if !input.VatExemptionReason.Valid() {
		return apperror.NewBadRequestError("Invalid VAT exemption reason")
	}

	company, err := s.companyRepo.GetByID(ctx, input.CompanyID)
	if err != nil {
		return err
	}
	if company == nil || company.UserID != input.UserID {
		return apperror.NewNotFoundError("Company")
	}

	client, err := s.clientRepo.GetByID(ctx, input.ClientID)
	if err != nil {
		return err
	}
	if client == nil || client.UserID != input.UserID {
		return apperror.NewNotFoundError("Client")
	}

	if input.PaymentMethodID != nil {
		method, err := s.methodRepo.GetByID(ctx, *input.PaymentMethodID)
		if err != nil {
			return err
		}
		if method == nil || method.UserID != input.UserID {
			return apperror.NewNotFoundError("Payment method")
		}
	}

	for _, item := range input.Items {
		if !item.Type.Valid() {
			return apperror.NewBadRequestError("Invalid item type")
		}
	}

	return nil
}

// buildItems converts submitted rows to entities with a contiguous display
// order, and computes the document totals
func buildItems(inputs []LineItemInput) ([]entity.LineItem, billing.Totals) {
	sorted := make([]LineItemInput, len(inputs))
	copy(sorted, inputs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})

	items := make([]entity.LineItem, 0, len(sorted))
	for i, in := range sorted {
		items = append(items, entity.LineItem{
			Description: in.Description,
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
			VatRate:     in.VatRate,
			Type:        in.Type,
			Order:       i,
		})
	}

	return items, billing.ComputeTotals(items)
}

func documentLabel(t enum.DocumentType) string {
	if t == enum.DocumentTypeInvoice {
		return "Invoice"
	}
	return "Quote"
}
