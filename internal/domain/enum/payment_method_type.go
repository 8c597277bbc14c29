package enum

// PaymentMethodType represents how a document is expected to be paid
type PaymentMethodType string

const (
	PaymentMethodBankTransfer PaymentMethodType = "BANK_TRANSFER"
	PaymentMethodPayPal       PaymentMethodType = "PAYPAL"
	PaymentMethodCash         PaymentMethodType = "CASH"
	PaymentMethodCheck        PaymentMethodType = "CHECK"
	PaymentMethodOther        PaymentMethodType = "OTHER"
)

// Valid reports whether the value is a known payment method type
func (t PaymentMethodType) Valid() bool {
	switch t {
	case PaymentMethodBankTransfer, PaymentMethodPayPal, PaymentMethodCash, PaymentMethodCheck, PaymentMethodOther:
		return true
	}
	return false
}

func (t PaymentMethodType) String() string {
	return string(t)
}
