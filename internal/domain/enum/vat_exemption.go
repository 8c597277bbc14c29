package enum

// VatExemptionReason represents why a document carries no VAT.
// Anything other than VatExemptionNone suppresses the VAT column in
// rendered output; item-level rates are untouched.
type VatExemptionReason string

const (
	VatExemptionNone        VatExemptionReason = "none"
	VatExemptionNotSubject  VatExemptionReason = "not-subject"
	VatExemptionFranceNoVat VatExemptionReason = "france-no-vat"
	VatExemptionEUNoVat     VatExemptionReason = "eu-no-vat"
)

// Valid reports whether the value is a known exemption reason.
// The empty string is accepted and treated as VatExemptionNone.
func (r VatExemptionReason) Valid() bool {
	switch r {
	case "", VatExemptionNone, VatExemptionNotSubject, VatExemptionFranceNoVat, VatExemptionEUNoVat:
		return true
	}
	return false
}

// Exempt reports whether the reason disables VAT display
func (r VatExemptionReason) Exempt() bool {
	return r != "" && r != VatExemptionNone
}

func (r VatExemptionReason) String() string {
	return string(r)
}
