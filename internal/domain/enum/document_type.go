package enum

// DocumentType distinguishes quotes from invoices
type DocumentType string

const (
	DocumentTypeQuote   DocumentType = "QUOTE"
	DocumentTypeInvoice DocumentType = "INVOICE"
)

// Valid reports whether the value is a known document type
func (t DocumentType) Valid() bool {
	return t == DocumentTypeQuote || t == DocumentTypeInvoice
}

func (t DocumentType) String() string {
	return string(t)
}
