package handler

import (
	"github.com/facturio/facturio-api/internal/application/service"
	"github.com/facturio/facturio-api/internal/domain/enum"
	"github.com/facturio/facturio-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PaymentMethodHandler handles saved payment method HTTP requests
type PaymentMethodHandler struct {
	methodService *service.PaymentMethodService
}

// NewPaymentMethodHandler creates a new payment method handler
func NewPaymentMethodHandler(methodService *service.PaymentMethodService) *PaymentMethodHandler {
	return &PaymentMethodHandler{methodService: methodService}
}

// PaymentMethodRequest is the payload for creating or updating a payment method
type PaymentMethodRequest struct {
	Name    string `json:"name" binding:"required"`
	Type    string `json:"type" binding:"required"`
	Details string `json:"details"`
}

// List handles listing payment methods
// @Summary List Payment Methods
// @Description Get all payment methods of the current user
// @Tags payment-methods
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /payment-methods [get]
func (h *PaymentMethodHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	methods, err := h.methodService.List(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment methods retrieved successfully", methods)
}

// Get handles getting a single payment method
// @Summary Get Payment Method
// @Description Get a payment method by ID
// @Tags payment-methods
// @Security BearerAuth
// @Produce json
// @Param id path string true "Payment method ID"
// @Success 200 {object} response.APIResponse
// @Router /payment-methods/{id} [get]
func (h *PaymentMethodHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid payment method ID")
		return
	}

	method, err := h.methodService.GetByID(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment method retrieved successfully", method)
}

// Create handles creating a payment method
// @Summary Create Payment Method
// @Description Create a new payment method
// @Tags payment-methods
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body PaymentMethodRequest true "Payment method data"
// @Success 201 {object} response.APIResponse
// @Router /payment-methods [post]
func (h *PaymentMethodHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	method, err := h.methodService.Create(c.Request.Context(), &service.PaymentMethodInput{
		UserID:  *userID,
		Name:    req.Name,
		Type:    enum.PaymentMethodType(req.Type),
		Details: req.Details,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Payment method created successfully", method)
}

// Update handles updating a payment method
// @Summary Update Payment Method
// @Description Update an existing payment method
// @Tags payment-methods
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Payment method ID"
// @Param request body PaymentMethodRequest true "Payment method data"
// @Success 200 {object} response.APIResponse
// @Router /payment-methods/{id} [put]
func (h *PaymentMethodHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid payment method ID")
		return
	}

	var req PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	method, err := h.methodService.Update(c.Request.Context(), id, &service.PaymentMethodInput{
		UserID:  *userID,
		Name:    req.Name,
		Type:    enum.PaymentMethodType(req.Type),
		Details: req.Details,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment method updated successfully", method)
}

// Delete handles deleting a payment method
// @Summary Delete Payment Method
// @Description Delete a payment method by ID
// @Tags payment-methods
// @Security BearerAuth
// @Param id path string true "Payment method ID"
// @Success 204
// @Router /payment-methods/{id} [delete]
func (h *PaymentMethodHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid payment method ID")
		return
	}

	if err := h.methodService.Delete(c.Request.Context(), *userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
