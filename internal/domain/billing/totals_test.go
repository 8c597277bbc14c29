package billing

import (
	"testing"

	"github.com/facturio/facturio-api/internal/domain/entity"
	"github.com/facturio/facturio-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
)

func item(qty, price, vat float64, t enum.ItemType) entity.LineItem {
	return entity.LineItem{Quantity: qty, UnitPrice: price, VatRate: vat, Type: t}
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name    string
		items   []entity.LineItem
		wantHT  float64
		wantVAT float64
		wantTTC float64
	}{
		{
			name: "empty list is zero",
		},
		{
			name: "single item",
			items: []entity.LineItem{
				item(2, 100, 20, enum.ItemTypeService),
			},
			wantHT:  200,
			wantVAT: 40,
			wantTTC: 240,
		},
		{
			name: "mixed rates",
			items: []entity.LineItem{
				item(1, 100, 20, enum.ItemTypeService),
				item(3, 50, 10, enum.ItemTypeProduct),
				item(2, 80, 0, enum.ItemTypeHour),
			},
			wantHT:  410,
			wantVAT: 35,
			wantTTC: 445,
		},
		{
			name: "negative line acts as discount",
			items: []entity.LineItem{
				item(1, 500, 20, enum.ItemTypeService),
				item(1, -100, 20, enum.ItemTypeService),
			},
			wantHT:  400,
			wantVAT: 80,
			wantTTC: 480,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotals(tt.items)
			assert.InDelta(t, tt.wantHT, got.TotalHT, 0.01)
			assert.InDelta(t, tt.wantVAT, got.TotalVAT, 0.01)
			assert.InDelta(t, tt.wantTTC, got.TotalTTC, 0.01)
		})
	}
}

func TestComputeTotalsIgnoresSections(t *testing.T) {
	base := []entity.LineItem{
		item(2, 100, 20, enum.ItemTypeService),
	}
	withSection := append([]entity.LineItem{
		item(99, 9999, 55, enum.ItemTypeSection),
	}, base...)

	assert.Equal(t, ComputeTotals(base), ComputeTotals(withSection))
}

func TestDisplayTTC(t *testing.T) {
	totals := ComputeTotals([]entity.LineItem{item(2, 100, 20, enum.ItemTypeService)})

	assert.InDelta(t, 240, totals.DisplayTTC(false), 0.01)
	// an active exemption charges no VAT, so the shown TTC is the HT
	assert.InDelta(t, 200, totals.DisplayTTC(true), 0.01)
}

func TestComputeTotalsManyItemsNoCompoundedRounding(t *testing.T) {
	// 0.1 * 3 style float residue must not be rounded away during
	// accumulation; only the final aggregate is rounded for display
	items := make([]entity.LineItem, 0, 100)
	for i := 0; i < 100; i++ {
		items = append(items, item(1, 0.1, 20, enum.ItemTypeService))
	}
	got := ComputeTotals(items)
	assert.InDelta(t, 10, got.TotalHT, 0.001)
	assert.InDelta(t, 2, got.TotalVAT, 0.001)
	assert.InDelta(t, 12, got.TotalTTC, 0.001)
}
