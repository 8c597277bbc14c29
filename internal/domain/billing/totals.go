// Package billing holds the pure monetary arithmetic shared by document
// persistence and PDF rendering. Sums are accumulated unrounded; rounding
// happens once, at display-formatting time.
package billing

import (
	"github.com/facturio/facturio-api/internal/domain/entity"
)

// Totals holds the three document-level aggregates
type Totals struct {
	TotalHT  float64
	TotalVAT float64
	TotalTTC float64
}

// ComputeTotals sums pre-tax, VAT and gross amounts over the given items.
// Section items are heading rows and never contribute. Negative quantities
// or prices are legitimate (discounts, credits) and pass through unchanged.
func ComputeTotals(items []entity.LineItem) Totals {
	var t Totals
	for _, item := range items {
		if item.Type.IsSection() {
			continue
		}
		line := item.Quantity * item.UnitPrice
		t.TotalHT += line
		t.TotalVAT += line * item.VatRate / 100
	}
	t.TotalTTC = t.TotalHT + t.TotalVAT
	return t
}

// DisplayTTC returns the gross amount a reader should see: with an active
// VAT exemption no VAT is charged, so the displayed TTC collapses to HT
func (t Totals) DisplayTTC(exempt bool) float64 {
	if exempt {
		return t.TotalHT
	}
	return t.TotalTTC
}
