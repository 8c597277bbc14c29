package entity

import (
	"time"

	"github.com/facturio/facturio-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LineItem represents one row of a document. Descriptions are authored as
// markdown in the editor and converted to HTML at render time. Order defines
// the display sequence and is kept contiguous per document by the service.
type LineItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	DocumentID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"document_id"`
	Description string         `gorm:"type:text" json:"description"`
	Quantity    float64        `gorm:"type:decimal(15,2);default:1" json:"quantity"`
	UnitPrice   float64        `gorm:"type:decimal(15,2);default:0" json:"unit_price"`
	VatRate     float64        `gorm:"type:decimal(5,2);default:0" json:"vat_rate"`
	Type        enum.ItemType  `gorm:"size:20;not null;default:'SERVICE'" json:"type"`
	Order       int            `gorm:"column:sort_order;not null;default:0" json:"order"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Document Document `gorm:"foreignKey:DocumentID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new line item
func (l *LineItem) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the LineItem model
func (LineItem) TableName() string {
	return "line_items"
}
