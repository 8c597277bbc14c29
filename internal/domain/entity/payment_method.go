package entity

import (
	"time"

	"github.com/facturio/facturio-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentMethod represents a reusable, named way of getting paid
// (an IBAN, a PayPal address, ...). Documents reference one by ID and the
// type/details are resolved at render time so edits propagate to new exports.
type PaymentMethod struct {
	ID        uuid.UUID              `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID              `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string                 `gorm:"size:255;not null" json:"name"`
	Type      enum.PaymentMethodType `gorm:"size:30;not null" json:"type"`
	Details   string                 `gorm:"type:text" json:"details"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
	DeletedAt gorm.DeletedAt         `gorm:"index" json:"-"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new payment method
func (p *PaymentMethod) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PaymentMethod model
func (PaymentMethod) TableName() string {
	return "payment_methods"
}
