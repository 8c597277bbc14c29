package repository

import (
	"context"

	"github.com/facturio/facturio-api/internal/domain/entity"
	"github.com/facturio/facturio-api/internal/domain/enum"
	"github.com/facturio/facturio-api/pkg/pagination"
	"github.com/google/uuid"
)

// DocumentFilterParams contains filtering parameters for document queries
type DocumentFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	ClientID   *uuid.UUID
	SortBy     string
	SortOrder  string
}

// DocumentRepository defines the interface for quote/invoice data operations
type DocumentRepository interface {
	Create(ctx context.Context, document *entity.Document) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	// GetWithRelations loads a document with its items (ordered), client,
	// company (including PDF config) and referenced payment method
	GetWithRelations(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	Update(ctx context.Context, document *entity.Document) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, docType enum.DocumentType, params *DocumentFilterParams) ([]entity.Document, int64, error)
	// ReplaceItems swaps the full item set of a document atomically
	ReplaceItems(ctx context.Context, documentID uuid.UUID, items []entity.LineItem) error
	// NextNumber returns the next sequence number for the user and type
	NextNumber(ctx context.Context, userID uuid.UUID, docType enum.DocumentType) (int, error)
}
