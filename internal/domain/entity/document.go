package entity

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/facturio/facturio-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Document represents a quote or an invoice together with its line items.
// Totals are persisted for listing purposes but are always recomputed from
// the items on write and again at render time.
type Document struct {
	ID        uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	CompanyID uuid.UUID         `gorm:"type:uuid;not null;index" json:"company_id"`
	ClientID  uuid.UUID         `gorm:"type:uuid;not null;index" json:"client_id"`
	Type      enum.DocumentType `gorm:"size:10;not null;index" json:"type"`

	Number    int     `gorm:"not null" json:"number"`
	RawNumber string  `gorm:"size:100" json:"raw_number"`
	Title     *string `gorm:"size:255" json:"title,omitempty"`
	Currency  string  `gorm:"size:10;default:'EUR'" json:"currency"`

	ValidUntil *time.Time `gorm:"type:date" json:"valid_until,omitempty"`
	DueDate    *time.Time `gorm:"type:date" json:"due_date,omitempty"`

	Notes      string `gorm:"type:text" json:"notes"`
	FooterText string `gorm:"type:text" json:"footer_text"`

	VatExemptionReason enum.VatExemptionReason `gorm:"size:30;default:'none'" json:"vat_exemption_reason"`
	VatExemptionText   string                  `gorm:"size:500" json:"vat_exemption_text"`

	PaymentMethodID *uuid.UUID `gorm:"type:uuid;index" json:"payment_method_id,omitempty"`
	// Legacy denormalized pair, used when no PaymentMethodID is set
	PaymentMethod  string `gorm:"size:255" json:"payment_method"`
	PaymentDetails string `gorm:"type:text" json:"payment_details"`

	// Serialized option blobs kept as stored for frontend compatibility;
	// parse through Options(), never directly
	ComplementaryOptions string `gorm:"type:text" json:"complementary_options"`
	ClientOptions        string `gorm:"type:text" json:"client_options"`

	TotalHT  float64 `gorm:"type:decimal(15,2);default:0" json:"total_ht"`
	TotalVAT float64 `gorm:"type:decimal(15,2);default:0" json:"total_vat"`
	TotalTTC float64 `gorm:"type:decimal(15,2);default:0" json:"total_ttc"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User            User           `gorm:"foreignKey:UserID" json:"-"`
	Company         Company        `gorm:"foreignKey:CompanyID" json:"-"`
	Client          *Client        `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	ResolvedPayment *PaymentMethod `gorm:"foreignKey:PaymentMethodID" json:"resolved_payment,omitempty"`
	Items           []LineItem     `gorm:"foreignKey:DocumentID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new document
func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Document model
func (Document) TableName() string {
	return "documents"
}

// DisplayNumber returns the free-form number when set, otherwise the
// generated sequence number as a string
func (d *Document) DisplayNumber() string {
	if d.RawNumber != "" {
		return d.RawNumber
	}
	return strconv.Itoa(d.Number)
}

// DocumentOptions is the parsed form of the complementary-options blob
type DocumentOptions struct {
	Signature  bool `json:"signature"`
	Acceptance bool `json:"acceptance"`
	Title      bool `json:"title"`
}

// Options parses the serialized complementary options. These toggles are
// cosmetic, so a missing or malformed blob falls back to showing everything
// rather than failing the render.
func (d *Document) Options() DocumentOptions {
	opts := DocumentOptions{Signature: true, Acceptance: true, Title: true}
	if d.ComplementaryOptions == "" {
		return opts
	}
	if err := json.Unmarshal([]byte(d.ComplementaryOptions), &opts); err != nil {
		return DocumentOptions{Signature: true, Acceptance: true, Title: true}
	}
	return opts
}
