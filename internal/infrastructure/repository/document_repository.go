package repository

import (
	"context"
	"errors"

	"github.com/facturio/facturio-api/internal/domain/entity"
	"github.com/facturio/facturio-api/internal/domain/enum"
	domainRepo "github.com/facturio/facturio-api/internal/domain/repository"
	"github.com/facturio/facturio-api/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *gorm.DB) domainRepo.DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(ctx context.Context, document *entity.Document) error {
	return r.db.WithContext(ctx).Create(document).Error
}

func (r *documentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	var document entity.Document
	err := r.db.WithContext(ctx).First(&document, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &document, err
}

func (r *documentRepository) GetWithRelations(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	var document entity.Document
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Company").
		Preload("Company.PDFConfig").
		Preload("ResolvedPayment").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		First(&document, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &document, err
}

func (r *documentRepository) Update(ctx context.Context, document *entity.Document) error {
	return r.db.WithContext(ctx).Save(document).Error
}

func (r *documentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.LineItem{}, "document_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Document{}, "id = ?", id).Error
	})
}

func (r *documentRepository) List(ctx context.Context, userID uuid.UUID, docType enum.DocumentType, params *domainRepo.DocumentFilterParams) ([]entity.Document, int64, error) {
	var documents []entity.Document
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Document{}).
		Where("user_id = ? AND type = ?", userID, docType)

	if params.Search != "" {
		query = query.Where("raw_number ILIKE ? OR title ILIKE ? OR notes ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.ClientID != nil {
		query = query.Where("client_id = ?", *params.ClientID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	p := params.Pagination
	if p == nil {
		p = pagination.DefaultPagination()
	}
	p.Validate()

	order := "number DESC"
	if params.SortBy != "" {
		dir := "ASC"
		if params.SortOrder == "desc" {
			dir = "DESC"
		}
		switch params.SortBy {
		case "number", "created_at", "total_ttc":
			order = params.SortBy + " " + dir
		}
	}

	err := query.Preload("Client").
		Offset(p.Offset()).Limit(p.PerPage).
		Order(order).
		Find(&documents).Error

	return documents, total, err
}

func (r *documentRepository) ReplaceItems(ctx context.Context, documentID uuid.UUID, items []entity.LineItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Delete(&entity.LineItem{}, "document_id = ?", documentID).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		for i := range items {
			items[i].DocumentID = documentID
		}
		return tx.Create(&items).Error
	})
}

func (r *documentRepository) NextNumber(ctx context.Context, userID uuid.UUID, docType enum.DocumentType) (int, error) {
	var max int
	err := r.db.WithContext(ctx).Model(&entity.Document{}).
		Where("user_id = ? AND type = ?", userID, docType).
		Select("COALESCE(MAX(number), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}
