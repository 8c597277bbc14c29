package service

import (
	"context"

	"github.com/facturio/facturio-api/internal/domain/entity"
	"github.com/facturio/facturio-api/internal/domain/repository"
	"github.com/facturio/facturio-api/pkg/apperror"
	"github.com/facturio/facturio-api/pkg/pagination"
	"github.com/google/uuid"
)

// ClientService handles client-related operations
type ClientService struct {
	clientRepo repository.ClientRepository
}

// NewClientService creates a new client service
func NewClientService(clientRepo repository.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

// ClientInput represents the fields accepted when creating or updating a client
type ClientInput struct {
	UserID           uuid.UUID
	Name             string
	ContactFirstname string
	ContactLastname  string
	Address          string
	PostalCode       string
	City             string
	Country          string
	Email            *string
	Phone            *string
}

// Create creates a new client. A client needs either a company name or a
// contact name to be identifiable on documents.
func (s *ClientService) Create(ctx context.Context, input *ClientInput) (*entity.Client, error) {
	client := &entity.Client{
		UserID:           input.UserID,
		Name:             input.Name,
		ContactFirstname: input.ContactFirstname,
		ContactLastname:  input.ContactLastname,
		Address:          input.Address,
		PostalCode:       input.PostalCode,
		City:             input.City,
		Country:          input.Country,
		Email:            input.Email,
		Phone:            input.Phone,
	}

	if client.DisplayName() == "" {
		return nil, apperror.NewBadRequestError("Client needs a name or a contact name")
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// GetByID retrieves a client owned by the user
func (s *ClientService) GetByID(ctx context.Context, userID, clientID uuid.UUID) (*entity.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil || client.UserID != userID {
		return nil, apperror.NewNotFoundError("Client")
	}
	return client, nil
}

// Update updates a client owned by the user
func (s *ClientService) Update(ctx context.Context, clientID uuid.UUID, input *ClientInput) (*entity.Client, error) {
	client, err := s.GetByID(ctx, input.UserID, clientID)
	if err != nil {
		return nil, err
	}

	client.Name = input.Name
	client.ContactFirstname = input.ContactFirstname
	client.ContactLastname = input.ContactLastname
	client.Address = input.Address
	client.PostalCode = input.PostalCode
	client.City = input.City
	client.Country = input.Country
	client.Email = input.Email
	client.Phone = input.Phone

	if client.DisplayName() == "" {
		return nil, apperror.NewBadRequestError("Client needs a name or a contact name")
	}

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// Delete removes a client owned by the user
func (s *ClientService) Delete(ctx context.Context, userID, clientID uuid.UUID) error {
	if _, err := s.GetByID(ctx, userID, clientID); err != nil {
		return err
	}
	return s.clientRepo.Delete(ctx, clientID)
}

// List returns the user's clients with pagination and search
func (s *ClientService) List(ctx context.Context, userID uuid.UUID, params *repository.ClientFilterParams) (*pagination.PaginatedResult[entity.Client], error) {
	if params == nil {
		params = &repository.ClientFilterParams{}
	}
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	clients, total, err := s.clientRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	p := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(clients, p), nil
}
