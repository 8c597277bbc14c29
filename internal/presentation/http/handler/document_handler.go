package handler

import (
	"time"

	"github.com/facturio/facturio-api/internal/application/service"
	"github.com/facturio/facturio-api/internal/domain/enum"
	"github.com/facturio/facturio-api/internal/domain/repository"
	"github.com/facturio/facturio-api/internal/infrastructure/pdf"
	"github.com/facturio/facturio-api/internal/presentation/http/dto/response"
	"github.com/facturio/facturio-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DocumentHandler handles quote or invoice HTTP requests. One instance is
// registered per document type so quotes and invoices get separate routes
// over the same code path.
type DocumentHandler struct {
	docType         enum.DocumentType
	documentService *service.DocumentService
	pdfService      *service.PDFService
}

// NewDocumentHandler creates a handler bound to one document type
func NewDocumentHandler(docType enum.DocumentType, documentService *service.DocumentService, pdfService *service.PDFService) *DocumentHandler {
	return &DocumentHandler{
		docType:         docType,
		documentService: documentService,
		pdfService:      pdfService,
	}
}

// LineItemRequest is one submitted document row
type LineItemRequest struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	VatRate     float64 `json:"vat_rate"`
	Type        string  `json:"type" binding:"required"`
	Order       int     `json:"order"`
}

// DocumentRequest is the payload for creating or updating a document
type DocumentRequest struct {
	CompanyID string  `json:"company_id" binding:"required"`
	ClientID  string  `json:"client_id" binding:"required"`
	RawNumber string  `json:"raw_number"`
	Title     *string `json:"title"`
	Currency  string  `json:"currency"`

	ValidUntil *string `json:"valid_until"`
	DueDate    *string `json:"due_date"`

	Notes      string `json:"notes"`
	FooterText string `json:"footer_text"`

	VatExemptionReason string `json:"vat_exemption_reason"`
	VatExemptionText   string `json:"vat_exemption_text"`

	PaymentMethodID *string `json:"payment_method_id"`
	PaymentMethod   string  `json:"payment_method"`
	PaymentDetails  string  `json:"payment_details"`

	ComplementaryOptions string `json:"complementary_options"`
	ClientOptions        string `json:"client_options"`

	Items []LineItemRequest `json:"items" binding:"required"`
}

// toInput converts the request to a service input. Returns a user-facing
// message when a field cannot be parsed.
func (r *DocumentRequest) toInput(userID uuid.UUID) (*service.DocumentInput, string) {
	companyID, err := uuid.Parse(r.CompanyID)
	if err != nil {
		return nil, "Invalid company ID"
	}
	clientID, err := uuid.Parse(r.ClientID)
	if err != nil {
		return nil, "Invalid client ID"
	}

	var paymentMethodID *uuid.UUID
	if r.PaymentMethodID != nil && *r.PaymentMethodID != "" {
		parsed, err := uuid.Parse(*r.PaymentMethodID)
		if err != nil {
			return nil, "Invalid payment method ID"
		}
		paymentMethodID = &parsed
	}

	validUntil, msg := parseOptionalDate(r.ValidUntil)
	if msg != "" {
		return nil, msg
	}
	dueDate, msg := parseOptionalDate(r.DueDate)
	if msg != "" {
		return nil, msg
	}

	items := make([]service.LineItemInput, len(r.Items))
	for i, item := range r.Items {
		items[i] = service.LineItemInput{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			VatRate:     item.VatRate,
			Type:        enum.ItemType(item.Type),
			Order:       item.Order,
		}
	}

	return &service.DocumentInput{
		UserID:    userID,
		CompanyID: companyID,
		ClientID:  clientID,
		RawNumber: r.RawNumber,
		Title:     r.Title,
		Currency:  r.Currency,

		ValidUntil: validUntil,
		DueDate:    dueDate,

		Notes:      r.Notes,
		FooterText: r.FooterText,

		VatExemptionReason: enum.VatExemptionReason(r.VatExemptionReason),
		VatExemptionText:   r.VatExemptionText,

		PaymentMethodID: paymentMethodID,
		PaymentMethod:   r.PaymentMethod,
		PaymentDetails:  r.PaymentDetails,

		ComplementaryOptions: r.ComplementaryOptions,
		ClientOptions:        r.ClientOptions,

		Items: items,
	}, ""
}

func parseOptionalDate(s *string) (*time.Time, string) {
	if s == nil || *s == "" {
		return nil, ""
	}
	parsed, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, "Invalid date format. Use YYYY-MM-DD"
	}
	return &parsed, ""
}

// templateName reads the requested PDF template, defaulting to the plain one
func templateName(c *gin.Context) string {
	if c.Query("template") == pdf.TemplateBranded {
		return pdf.TemplateBranded
	}
	return pdf.TemplateBase
}

// List handles listing documents
// @Summary List Documents
// @Description Get paginated list of quotes or invoices
// @Tags documents
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Search term"
// @Param client_id query string false "Filter by client"
// @Success 200 {object} response.APIResponse
// @Router /quotes [get]
func (h *DocumentHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	page, _ := parsePositiveInt(c.DefaultQuery("page", "1"))
	perPage, _ := parsePositiveInt(c.DefaultQuery("per_page", "15"))

	params := &repository.DocumentFilterParams{
		Pagination: &pagination.PaginationParams{Page: page, PerPage: perPage},
		Search:     c.Query("search"),
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	}
	if clientID := c.Query("client_id"); clientID != "" {
		parsed, err := uuid.Parse(clientID)
		if err != nil {
			response.BadRequest(c, "Invalid client ID")
			return
		}
		params.ClientID = &parsed
	}

	result, err := h.documentService.List(c.Request.Context(), *userID, h.docType, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Documents retrieved successfully", result)
}

// Get handles getting a single document
// @Summary Get Document
// @Description Get a quote or invoice by ID with its items
// @Tags documents
// @Security BearerAuth
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} response.APIResponse
// @Router /quotes/{id} [get]
func (h *DocumentHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid document ID")
		return
	}

	doc, err := h.documentService.GetByID(c.Request.Context(), *userID, h.docType, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Document retrieved successfully", doc)
}

// Create handles creating a document
// @Summary Create Document
// @Description Create a new quote or invoice
// @Tags documents
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body DocumentRequest true "Document data"
// @Success 201 {object} response.APIResponse
// @Router /quotes [post]
func (h *DocumentHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input, msg := req.toInput(*userID)
	if msg != "" {
		response.BadRequest(c, msg)
		return
	}

	doc, err := h.documentService.Create(c.Request.Context(), h.docType, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Document created successfully", doc)
}

// Update handles updating a document
// @Summary Update Document
// @Description Update an existing quote or invoice, replacing its items
// @Tags documents
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param request body DocumentRequest true "Document data"
// @Success 200 {object} response.APIResponse
// @Router /quotes/{id} [put]
func (h *DocumentHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid document ID")
		return
	}

	var req DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input, msg := req.toInput(*userID)
	if msg != "" {
		response.BadRequest(c, msg)
		return
	}

	doc, err := h.documentService.Update(c.Request.Context(), h.docType, id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Document updated successfully", doc)
}

// Delete handles deleting a document
// @Summary Delete Document
// @Description Delete a quote or invoice by ID
// @Tags documents
// @Security BearerAuth
// @Param id path string true "Document ID"
// @Success 204
// @Router /quotes/{id} [delete]
func (h *DocumentHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid document ID")
		return
	}

	if err := h.documentService.Delete(c.Request.Context(), *userID, h.docType, id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Convert handles turning a quote into an invoice
// @Summary Convert Quote
// @Description Create an invoice from a quote. The quote is kept as is.
// @Tags documents
// @Security BearerAuth
// @Produce json
// @Param id path string true "Quote ID"
// @Success 201 {object} response.APIResponse
// @Router /quotes/{id}/convert [post]
func (h *DocumentHandler) Convert(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid document ID")
		return
	}

	invoice, err := h.documentService.ConvertToInvoice(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice created from quote", invoice)
}

// DownloadPDF handles rendering a document to PDF
// @Summary Download PDF
// @Description Render a quote or invoice to PDF
// @Tags documents
// @Security BearerAuth
// @Produce application/pdf
// @Param id path string true "Document ID"
// @Param template query string false "Template name (base or branded)"
// @Success 200 {file} binary
// @Router /quotes/{id}/pdf [get]
func (h *DocumentHandler) DownloadPDF(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid document ID")
		return
	}

	generated, err := h.pdfService.Generate(c.Request.Context(), *userID, h.docType, id, templateName(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+generated.Filename+`"`)
	c.Data(200, "application/pdf", generated.Content)
}

// Send handles emailing a document to its client
// @Summary Send Document
// @Description Render a quote or invoice to PDF and email it to the client
// @Tags documents
// @Security BearerAuth
// @Produce json
// @Param id path string true "Document ID"
// @Param template query string false "Template name (base or branded)"
// @Success 200 {object} response.APIResponse
// @Router /quotes/{id}/send [post]
func (h *DocumentHandler) Send(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid document ID")
		return
	}

	if err := h.pdfService.Send(c.Request.Context(), *userID, h.docType, id, templateName(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Document sent successfully", nil)
}
