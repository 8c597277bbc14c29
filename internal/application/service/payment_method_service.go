package service

import (
	"context"

	"github.com/facturio/facturio-api/internal/domain/entity"
	"github.com/facturio/facturio-api/internal/domain/enum"
	"github.com/facturio/facturio-api/internal/domain/repository"
	"github.com/facturio/facturio-api/pkg/apperror"
	"github.com/google/uuid"
)

// PaymentMethodService handles saved payment method operations
type PaymentMethodService struct {
	methodRepo repository.PaymentMethodRepository
}

// NewPaymentMethodService creates a new payment method service
func NewPaymentMethodService(methodRepo repository.PaymentMethodRepository) *PaymentMethodService {
	return &PaymentMethodService{methodRepo: methodRepo}
}

// PaymentMethodInput represents the fields accepted when creating or
// updating a payment method
type PaymentMethodInput struct {
	UserID  uuid.UUID
	Name    string
	Type    enum.PaymentMethodType
	Details string
}

// Create creates a saved payment method
func (s *PaymentMethodService) Create(ctx context.Context, input *PaymentMethodInput) (*entity.PaymentMethod, error) {
	if !input.Type.Valid() {
		return nil, apperror.NewBadRequestError("Invalid payment method type")
	}

	method := &entity.PaymentMethod{
		UserID:  input.UserID,
		Name:    input.Name,
		Type:    input.Type,
		Details: input.Details,
	}

	if err := s.methodRepo.Create(ctx, method); err != nil {
		return nil, err
	}
	return method, nil
}

// GetByID retrieves a payment method owned by the user
func (s *PaymentMethodService) GetByID(ctx context.Context, userID, methodID uuid.UUID) (*entity.PaymentMethod, error) {
	method, err := s.methodRepo.GetByID(ctx, methodID)
	if err != nil {
		return nil, err
	}
	if method == nil || method.UserID != userID {
		return nil, apperror.NewNotFoundError("Payment method")
	}
	return method, nil
}

// Update updates a payment method owned by the user
func (s *PaymentMethodService) Update(ctx context.Context, methodID uuid.UUID, input *PaymentMethodInput) (*entity.PaymentMethod, error) {
	method, err := s.GetByID(ctx, input.UserID, methodID)
	if err != nil {
		return nil, err
	}

	if !input.Type.Valid() {
		return nil, apperror.NewBadRequestError("Invalid payment method type")
	}

	method.Name = input.Name
	method.Type = input.Type
	method.Details = input.Details

	if err := s.methodRepo.Update(ctx, method); err != nil {
		return nil, err
	}
	return method, nil
}

// Delete removes a payment method owned by the user. Documents referencing
// it keep rendering through their denormalized payment fields.
func (s *PaymentMethodService) Delete(ctx context.Context, userID, methodID uuid.UUID) error {
	if _, err := s.GetByID(ctx, userID, methodID); err != nil {
		return err
	}
	return s.methodRepo.Delete(ctx, methodID)
}

// List returns all payment methods owned by the user
func (s *PaymentMethodService) List(ctx context.Context, userID uuid.UUID) ([]entity.PaymentMethod, error) {
	return s.methodRepo.ListByUser(ctx, userID)
}
