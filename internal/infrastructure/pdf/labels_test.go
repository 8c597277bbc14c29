package pdf

import (
	"testing"

	"github.com/facturio/facturio-api/internal/domain/entity"
	"github.com/facturio/facturio-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPaymentMethodLabel(t *testing.T) {
	cfg := entity.DefaultPDFConfig(uuid.New())

	assert.Equal(t, "Virement bancaire", PaymentMethodLabel(cfg, enum.PaymentMethodBankTransfer))
	assert.Equal(t, "Chèque", PaymentMethodLabel(cfg, enum.PaymentMethodCheck))
	assert.Equal(t, "Espèces", PaymentMethodLabel(cfg, enum.PaymentMethodCash))

	// Unconfigured label falls back to the raw type
	cfg.PaymentMethodPayPal = ""
	assert.Equal(t, "PAYPAL", PaymentMethodLabel(cfg, enum.PaymentMethodPayPal))
}

func TestItemTypeLabel(t *testing.T) {
	cfg := entity.DefaultPDFConfig(uuid.New())

	assert.Equal(t, "Heure", ItemTypeLabel(cfg, enum.ItemTypeHour))
	assert.Equal(t, "Jour", ItemTypeLabel(cfg, enum.ItemTypeDay))
	assert.Equal(t, "Prestation", ItemTypeLabel(cfg, enum.ItemTypeService))

	cfg.Deposit = ""
	assert.Equal(t, "DEPOSIT", ItemTypeLabel(cfg, enum.ItemTypeDeposit))
}

func TestVatExemptionMention(t *testing.T) {
	tests := []struct {
		name    string
		doc     entity.Document
		company entity.Company
		want    string
	}{
		{
			name: "explicit text wins",
			doc:  entity.Document{VatExemptionText: "Exonération art. 262 ter"},
			company: entity.Company{
				ExemptVat: true,
				Country:   "France",
			},
			want: "Exonération art. 262 ter",
		},
		{
			name:    "french exempt company gets statutory sentence",
			doc:     entity.Document{},
			company: entity.Company{ExemptVat: true, Country: "France"},
			want:    "TVA non applicable, art. 293 B du CGI",
		},
		{
			name:    "country match is case insensitive",
			doc:     entity.Document{},
			company: entity.Company{ExemptVat: true, Country: "FRANCE"},
			want:    "TVA non applicable, art. 293 B du CGI",
		},
		{
			name:    "non french company gets nothing",
			doc:     entity.Document{},
			company: entity.Company{ExemptVat: true, Country: "Belgique"},
			want:    "",
		},
		{
			name:    "non exempt company gets nothing",
			doc:     entity.Document{},
			company: entity.Company{ExemptVat: false, Country: "France"},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VatExemptionMention(&tt.doc, &tt.company))
		})
	}
}

func TestDocumentLabel(t *testing.T) {
	cfg := entity.DefaultPDFConfig(uuid.New())
	assert.Equal(t, "Devis", DocumentLabel(cfg, enum.DocumentTypeQuote))
	assert.Equal(t, "Facture", DocumentLabel(cfg, enum.DocumentTypeInvoice))
}
