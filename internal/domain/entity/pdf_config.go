package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PDFConfig holds the visual style and every display label used when a
// company's documents are rendered to PDF. Labels are data, not code, so
// each company can localize its documents without a deployment.
type PDFConfig struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CompanyID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"company_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Visual style
	FontFamily     string `gorm:"size:100;default:'Helvetica'" json:"font_family"`
	Padding        int    `gorm:"default:40" json:"padding"`
	PrimaryColor   string `gorm:"size:20;default:'#000000'" json:"primary_color"`
	SecondaryColor string `gorm:"size:20;default:'#f5f5f5'" json:"secondary_color"`
	LogoB64        string `gorm:"type:text" json:"logo_b64"`
	IncludeLogo    bool   `gorm:"default:false" json:"include_logo"`

	// Document labels
	Quote          string `gorm:"size:100;default:'Devis'" json:"quote"`
	Invoice        string `gorm:"size:100;default:'Facture'" json:"invoice"`
	QuoteFor       string `gorm:"size:100;default:'Pour'" json:"quote_for"`
	Description    string `gorm:"size:100;default:'Description'" json:"description"`
	Type           string `gorm:"size:100;default:'Type'" json:"type"`
	Quantity       string `gorm:"size:100;default:'Quantité'" json:"quantity"`
	UnitPrice      string `gorm:"size:100;default:'Prix unitaire'" json:"unit_price"`
	VatRate        string `gorm:"size:100;default:'TVA'" json:"vat_rate"`
	Subtotal       string `gorm:"size:100;default:'Sous-total'" json:"subtotal"`
	Total          string `gorm:"size:100;default:'Total HT'" json:"total"`
	Vat            string `gorm:"size:100;default:'TVA'" json:"vat"`
	GrandTotal     string `gorm:"size:100;default:'Total TTC'" json:"grand_total"`
	ValidUntil     string `gorm:"size:100;default:'Valable jusqu''au'" json:"valid_until"`
	Date           string `gorm:"size:100;default:'Date'" json:"date"`
	Notes          string `gorm:"size:100;default:'Notes'" json:"notes"`
	PaymentMethod  string `gorm:"size:100;default:'Règlement'" json:"payment_method"`
	PaymentDetails string `gorm:"size:100;default:'Détails de paiement'" json:"payment_details"`
	LegalID        string `gorm:"size:100;default:'SIREN'" json:"legal_id"`
	VatID          string `gorm:"size:100;default:'SIRET'" json:"vat_id"`

	// Item type labels
	Hour    string `gorm:"size:100;default:'Heure'" json:"hour"`
	Day     string `gorm:"size:100;default:'Jour'" json:"day"`
	Deposit string `gorm:"size:100;default:'Acompte'" json:"deposit"`
	Service string `gorm:"size:100;default:'Prestation'" json:"service"`
	Product string `gorm:"size:100;default:'Produit'" json:"product"`

	// Payment method type labels
	PaymentMethodBankTransfer string `gorm:"size:100;default:'Virement bancaire'" json:"payment_method_bank_transfer"`
	PaymentMethodPayPal       string `gorm:"size:100;default:'PayPal'" json:"payment_method_paypal"`
	PaymentMethodCash         string `gorm:"size:100;default:'Espèces'" json:"payment_method_cash"`
	PaymentMethodCheck        string `gorm:"size:100;default:'Chèque'" json:"payment_method_check"`
	PaymentMethodOther        string `gorm:"size:100;default:'Autre'" json:"payment_method_other"`

	// Relationships
	Company Company `gorm:"foreignKey:CompanyID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new PDF config
func (p *PDFConfig) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PDFConfig model
func (PDFConfig) TableName() string {
	return "pdf_configs"
}

// DefaultPDFConfig returns a config carrying the French default labels,
// attached to the given company
func DefaultPDFConfig(companyID uuid.UUID) *PDFConfig {
	return &PDFConfig{
		CompanyID:      companyID,
		FontFamily:     "Helvetica",
		Padding:        40,
		PrimaryColor:   "#000000",
		SecondaryColor: "#f5f5f5",

		Quote:          "Devis",
		Invoice:        "Facture",
		QuoteFor:       "Pour",
		Description:    "Description",
		Type:           "Type",
		Quantity:       "Quantité",
		UnitPrice:      "Prix unitaire",
		VatRate:        "TVA",
		Subtotal:       "Sous-total",
		Total:          "Total HT",
		Vat:            "TVA",
		GrandTotal:     "Total TTC",
		ValidUntil:     "Valable jusqu'au",
		Date:           "Date",
		Notes:          "Notes",
		PaymentMethod:  "Règlement",
		PaymentDetails: "Détails de paiement",
		LegalID:        "SIREN",
		VatID:          "SIRET",

		Hour:    "Heure",
		Day:     "Jour",
		Deposit: "Acompte",
		Service: "Prestation",
		Product: "Produit",

		PaymentMethodBankTransfer: "Virement bancaire",
		PaymentMethodPayPal:       "PayPal",
		PaymentMethodCash:         "Espèces",
		PaymentMethodCheck:        "Chèque",
		PaymentMethodOther:        "Autre",
	}
}
