package pdf

import (
	"testing"
	"time"

	"github.com/facturio/facturio-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{name: "integer amount", in: 200, want: "200,00"},
		{name: "two decimals", in: 40.5, want: "40,50"},
		{name: "rounds to nearest cent", in: 19.996, want: "20,00"},
		{name: "zero", in: 0, want: "0,00"},
		{name: "negative", in: -12.3, want: "-12,30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMoney(tt.in))
		})
	}
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "20", FormatRate(20))
	assert.Equal(t, "5,5", FormatRate(5.5))
	assert.Equal(t, "0", FormatRate(0))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	company := &entity.Company{DateFormat: "02/01/2006"}
	assert.Equal(t, "14/03/2026", FormatDate(company, &d))

	company.DateFormat = "2006-01-02"
	assert.Equal(t, "2026-03-14", FormatDate(company, &d))

	assert.Equal(t, "", FormatDate(company, nil))

	// Missing layout falls back to the French default
	assert.Equal(t, "14/03/2026", FormatDate(&entity.Company{}, &d))
}

func TestInvertColor(t *testing.T) {
	assert.Equal(t, "#ffffff", InvertColor("#000000"))
	assert.Equal(t, "#000000", InvertColor("#ffffff"))
	assert.Equal(t, "#000000", InvertColor("#f5f5f5"))
	assert.Equal(t, "#ffffff", InvertColor("#1e3a8a"))
	assert.Equal(t, "#000000", InvertColor("#fff"))
	assert.Equal(t, "#000000", InvertColor("not-a-color"))
}
