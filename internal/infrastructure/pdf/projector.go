package pdf

import (
	"html/template"
	"sort"
	"strings"

	"github.com/facturio/facturio-api/internal/domain/billing"
	"github.com/facturio/facturio-api/internal/domain/entity"
	"github.com/facturio/facturio-api/internal/domain/enum"
	"github.com/facturio/facturio-api/pkg/apperror"
)

// PartyModel carries the fields of one party shown in the document header
type PartyModel struct {
	Name        string
	Description string
	Address     string
	PostalCode  string
	City        string
	Country     string
	Email       string
	Phone       string
	LegalID     string
	VatID       string
}

// ItemModel is a single prepared table row
type ItemModel struct {
	Description template.HTML
	Quantity    string
	UnitPrice   string
	VatRate     string
	TotalPrice  string
	Type        string
	IsSection   bool
}

// RenderModel is the flat, fully resolved view of a document handed to the
// HTML templates. Every amount and date is already formatted; templates only
// place values.
type RenderModel struct {
	DocLabel string
	Number   string
	Title    string

	Date       string
	ValidUntil string
	DueDate    string

	Company  PartyModel
	Client   PartyModel
	Currency string

	Items []ItemModel

	TotalHT  string
	TotalVAT string
	TotalTTC string

	ShowVAT bool
	ColSpan int

	VatExemptText string
	FooterText    string

	NoteExists bool
	Notes      template.HTML

	PaymentMethod  string
	PaymentDetails string

	ShowSignature        bool
	ShowAcceptance       bool
	ShowSignatureSection bool

	FontFamily     string
	Padding        int
	PrimaryColor   string
	SecondaryColor string
	TableTextColor string
	IncludeLogo    bool
	LogoB64        string

	Labels *entity.PDFConfig
}

// Project resolves a loaded document into a RenderModel. The document must
// carry its relations: client, company with PDF config, items, and the
// referenced payment method when one is set.
func Project(doc *entity.Document) (*RenderModel, error) {
	cfg := doc.Company.PDFConfig
	if cfg == nil {
		return nil, apperror.ErrPDFConfigMissing
	}
	if doc.Client == nil {
		return nil, apperror.NewBadRequestError("Document has no client")
	}

	company := &doc.Company
	exempt := doc.VatExemptionReason.Exempt()
	showVAT := !exempt
	colSpan := 2
	if showVAT {
		colSpan = 3
	}

	totals := billing.ComputeTotals(doc.Items)

	opts := doc.Options()

	paymentMethod := doc.PaymentMethod
	paymentDetails := doc.PaymentDetails
	if doc.ResolvedPayment != nil {
		paymentMethod = PaymentMethodLabel(cfg, doc.ResolvedPayment.Type)
		if doc.ResolvedPayment.Details != "" {
			paymentDetails = doc.ResolvedPayment.Details
		}
	}

	title := ""
	if opts.Title && doc.Title != nil {
		title = *doc.Title
	}

	// Rows render in display order regardless of how the caller loaded them
	sorted := make([]entity.LineItem, len(doc.Items))
	copy(sorted, doc.Items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})

	items := make([]ItemModel, 0, len(sorted))
	for _, item := range sorted {
		lineTTC := item.Quantity * item.UnitPrice * (1 + item.VatRate/100)
		items = append(items, ItemModel{
			Description: RenderMarkdown(item.Description),
			Quantity:    FormatRate(item.Quantity),
			UnitPrice:   FormatMoney(item.UnitPrice),
			VatRate:     FormatRate(item.VatRate),
			TotalPrice:  FormatMoney(lineTTC),
			Type:        ItemTypeLabel(cfg, item.Type),
			IsSection:   item.Type.IsSection(),
		})
	}

	createdAt := doc.CreatedAt
	model := &RenderModel{
		DocLabel: DocumentLabel(cfg, doc.Type),
		Number:   doc.DisplayNumber(),
		Title:    title,

		Date:       FormatDate(company, &createdAt),
		ValidUntil: FormatDate(company, doc.ValidUntil),
		DueDate:    FormatDate(company, doc.DueDate),

		Company: PartyModel{
			Name:        company.Name,
			Description: company.Description,
			Address:     company.Address,
			PostalCode:  company.PostalCode,
			City:        company.City,
			Country:     company.Country,
			Email:       derefString(company.Email),
			Phone:       derefString(company.Phone),
			LegalID:     company.LegalID,
			VatID:       company.VatID,
		},
		Client: PartyModel{
			Name:       doc.Client.DisplayName(),
			Address:    doc.Client.Address,
			PostalCode: doc.Client.PostalCode,
			City:       doc.Client.City,
			Country:    doc.Client.Country,
			Email:      derefString(doc.Client.Email),
			Phone:      derefString(doc.Client.Phone),
		},
		Currency: doc.Currency,

		Items: items,

		TotalHT:  FormatMoney(totals.TotalHT),
		TotalVAT: FormatMoney(totals.TotalVAT),
		TotalTTC: FormatMoney(totals.DisplayTTC(exempt)),

		ShowVAT: showVAT,
		ColSpan: colSpan,

		VatExemptText: VatExemptionMention(doc, company),
		FooterText:    doc.FooterText,

		NoteExists: doc.Notes != "",
		Notes:      notesHTML(doc.Notes),

		PaymentMethod:  paymentMethod,
		PaymentDetails: paymentDetails,

		ShowSignature:        doc.Type == enum.DocumentTypeQuote && opts.Signature,
		ShowAcceptance:       doc.Type == enum.DocumentTypeQuote && opts.Acceptance,
		ShowSignatureSection: doc.Type == enum.DocumentTypeQuote && (opts.Signature || opts.Acceptance),

		FontFamily:     cfg.FontFamily,
		Padding:        cfg.Padding,
		PrimaryColor:   cfg.PrimaryColor,
		SecondaryColor: cfg.SecondaryColor,
		TableTextColor: InvertColor(cfg.SecondaryColor),
		IncludeLogo:    cfg.IncludeLogo && cfg.LogoB64 != "",
		LogoB64:        cfg.LogoB64,

		Labels: cfg,
	}

	return model, nil
}

// notesHTML escapes free-form notes and turns newlines into line breaks
func notesHTML(notes string) template.HTML {
	if notes == "" {
		return ""
	}
	escaped := template.HTMLEscapeString(notes)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
