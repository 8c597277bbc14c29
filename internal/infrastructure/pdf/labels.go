package pdf

import (
	"strings"

	"github.com/facturio/facturio-api/internal/domain/entity"
	"github.com/facturio/facturio-api/internal/domain/enum"
)

// franceExemptionText is the statutory mention required on documents issued
// by VAT-exempt French micro-entreprises
const franceExemptionText = "TVA non applicable, art. 293 B du CGI"

// PaymentMethodLabel maps a payment method type to its configured display
// label, falling back to the raw type name when no label is configured
func PaymentMethodLabel(cfg *entity.PDFConfig, t enum.PaymentMethodType) string {
	var label string
	switch t {
	case enum.PaymentMethodBankTransfer:
		label = cfg.PaymentMethodBankTransfer
	case enum.PaymentMethodPayPal:
		label = cfg.PaymentMethodPayPal
	case enum.PaymentMethodCash:
		label = cfg.PaymentMethodCash
	case enum.PaymentMethodCheck:
		label = cfg.PaymentMethodCheck
	case enum.PaymentMethodOther:
		label = cfg.PaymentMethodOther
	}
	if label == "" {
		return string(t)
	}
	return label
}

// ItemTypeLabel maps an item type to its configured display label, falling
// back to the raw type name when no label is configured
func ItemTypeLabel(cfg *entity.PDFConfig, t enum.ItemType) string {
	var label string
	switch t {
	case enum.ItemTypeHour:
		label = cfg.Hour
	case enum.ItemTypeDay:
		label = cfg.Day
	case enum.ItemTypeDeposit:
		label = cfg.Deposit
	case enum.ItemTypeService:
		label = cfg.Service
	case enum.ItemTypeProduct:
		label = cfg.Product
	}
	if label == "" {
		return string(t)
	}
	return label
}

// VatExemptionMention resolves the exemption sentence shown under the
// totals. An explicit text on the document always wins; otherwise the
// statutory French sentence applies to exempt companies based in France.
func VatExemptionMention(doc *entity.Document, company *entity.Company) string {
	if doc.VatExemptionText != "" {
		return doc.VatExemptionText
	}
	if company.ExemptVat && strings.EqualFold(strings.TrimSpace(company.Country), "France") {
		return franceExemptionText
	}
	return ""
}

// DocumentLabel returns the configured heading for the document type
func DocumentLabel(cfg *entity.PDFConfig, t enum.DocumentType) string {
	if t == enum.DocumentTypeInvoice {
		return cfg.Invoice
	}
	return cfg.Quote
}
