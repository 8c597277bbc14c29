package handler

import (
	"github.com/facturio/facturio-api/internal/application/service"
	"github.com/facturio/facturio-api/internal/domain/entity"
	"github.com/facturio/facturio-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CompanyHandler handles company and PDF configuration HTTP requests
type CompanyHandler struct {
	companyService *service.CompanyService
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companyService *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// CompanyRequest is the payload for creating or updating a company
type CompanyRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Address     string  `json:"address"`
	PostalCode  string  `json:"postal_code"`
	City        string  `json:"city"`
	Country     string  `json:"country"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	LegalID     string  `json:"legal_id"`
	VatID       string  `json:"vat_id"`
	ExemptVat   bool    `json:"exempt_vat"`
	DateFormat  string  `json:"date_format"`
}

func (r *CompanyRequest) toInput(userID uuid.UUID) *service.CompanyInput {
	return &service.CompanyInput{
		UserID:      userID,
		Name:        r.Name,
		Description: r.Description,
		Address:     r.Address,
		PostalCode:  r.PostalCode,
		City:        r.City,
		Country:     r.Country,
		Email:       r.Email,
		Phone:       r.Phone,
		LegalID:     r.LegalID,
		VatID:       r.VatID,
		ExemptVat:   r.ExemptVat,
		DateFormat:  r.DateFormat,
	}
}

// List handles listing companies
// @Summary List Companies
// @Description Get all companies of the current user
// @Tags companies
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /companies [get]
func (h *CompanyHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	companies, err := h.companyService.List(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Companies retrieved successfully", companies)
}

// Get handles getting a single company
// @Summary Get Company
// @Description Get a company by ID, including its PDF configuration
// @Tags companies
// @Security BearerAuth
// @Produce json
// @Param id path string true "Company ID"
// @Success 200 {object} response.APIResponse
// @Router /companies/{id} [get]
func (h *CompanyHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid company ID")
		return
	}

	company, err := h.companyService.GetByID(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Company retrieved successfully", company)
}

// Create handles creating a company
// @Summary Create Company
// @Description Create a new company with default PDF configuration
// @Tags companies
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CompanyRequest true "Company data"
// @Success 201 {object} response.APIResponse
// @Router /companies [post]
func (h *CompanyHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	company, err := h.companyService.Create(c.Request.Context(), req.toInput(*userID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Company created successfully", company)
}

// Update handles updating a company
// @Summary Update Company
// @Description Update an existing company
// @Tags companies
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Company ID"
// @Param request body CompanyRequest true "Company data"
// @Success 200 {object} response.APIResponse
// @Router /companies/{id} [put]
func (h *CompanyHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid company ID")
		return
	}

	var req CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	company, err := h.companyService.Update(c.Request.Context(), id, req.toInput(*userID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Company updated successfully", company)
}

// Delete handles deleting a company
// @Summary Delete Company
// @Description Delete a company by ID
// @Tags companies
// @Security BearerAuth
// @Param id path string true "Company ID"
// @Success 204
// @Router /companies/{id} [delete]
func (h *CompanyHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid company ID")
		return
	}

	if err := h.companyService.Delete(c.Request.Context(), *userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// GetPDFConfig handles fetching a company's PDF configuration
// @Summary Get PDF Config
// @Description Get the PDF labels and style of a company
// @Tags companies
// @Security BearerAuth
// @Produce json
// @Param id path string true "Company ID"
// @Success 200 {object} response.APIResponse
// @Router /companies/{id}/pdf-config [get]
func (h *CompanyHandler) GetPDFConfig(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid company ID")
		return
	}

	config, err := h.companyService.GetPDFConfig(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "PDF configuration retrieved successfully", config)
}

// UpdatePDFConfig handles replacing a company's PDF configuration
// @Summary Update PDF Config
// @Description Replace the PDF labels and style of a company
// @Tags companies
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Company ID"
// @Param request body entity.PDFConfig true "PDF configuration"
// @Success 200 {object} response.APIResponse
// @Router /companies/{id}/pdf-config [put]
func (h *CompanyHandler) UpdatePDFConfig(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid company ID")
		return
	}

	var req entity.PDFConfig
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	config, err := h.companyService.UpdatePDFConfig(c.Request.Context(), *userID, id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "PDF configuration updated successfully", config)
}
