package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Company represents an issuing business (the seller on a document).
// A user may own several companies; each carries its own PDF configuration.
type Company struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Address     string         `gorm:"size:255" json:"address"`
	PostalCode  string         `gorm:"size:20" json:"postal_code"`
	City        string         `gorm:"size:100" json:"city"`
	Country     string         `gorm:"size:100" json:"country"`
	Email       *string        `gorm:"size:255" json:"email,omitempty"`
	Phone       *string        `gorm:"size:50" json:"phone,omitempty"`
	LegalID     string         `gorm:"size:50" json:"legal_id"`
	VatID       string         `gorm:"size:50" json:"vat_id"`
	ExemptVat   bool           `gorm:"default:false" json:"exempt_vat"`
	DateFormat  string         `gorm:"size:20;default:'02/01/2006'" json:"date_format"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User      User       `gorm:"foreignKey:UserID" json:"-"`
	PDFConfig *PDFConfig `gorm:"foreignKey:CompanyID" json:"pdf_config,omitempty"`
	Documents []Document `gorm:"foreignKey:CompanyID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new company
func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Company model
func (Company) TableName() string {
	return "companies"
}
