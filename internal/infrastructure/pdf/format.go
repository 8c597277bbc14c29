package pdf

import (
	"strconv"
	"strings"
	"time"

	"github.com/facturio/facturio-api/internal/domain/entity"
)

// FormatMoney renders an amount with two decimals and a comma separator,
// the French convention
func FormatMoney(v float64) string {
	return strings.Replace(strconv.FormatFloat(v, 'f', 2, 64), ".", ",", 1)
}

// FormatRate renders a VAT rate without trailing zeros
func FormatRate(v float64) string {
	return strings.Replace(strconv.FormatFloat(v, 'f', -1, 64), ".", ",", 1)
}

// FormatDate renders a date using the company's configured layout. A nil
// date renders as an empty string.
func FormatDate(company *entity.Company, t *time.Time) string {
	if t == nil {
		return ""
	}
	layout := "02/01/2006"
	if company != nil && company.DateFormat != "" {
		layout = company.DateFormat
	}
	return t.Format(layout)
}

// InvertColor picks black or white for readable text over the given hex
// background color
func InvertColor(hex string) string {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return "#000000"
	}
	r, err1 := strconv.ParseInt(hex[0:2], 16, 32)
	g, err2 := strconv.ParseInt(hex[2:4], 16, 32)
	b, err3 := strconv.ParseInt(hex[4:6], 16, 32)
	if err1 != nil || err2 != nil || err3 != nil {
		return "#000000"
	}
	// Perceived luminance, ITU-R BT.709
	luma := 0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)
	if luma > 150 {
		return "#000000"
	}
	return "#ffffff"
}
