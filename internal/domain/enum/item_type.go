package enum

// ItemType represents the billing unit of a line item.
// Section items are non-priced heading rows and never contribute to totals.
type ItemType string

const (
	ItemTypeHour    ItemType = "HOUR"
	ItemTypeDay     ItemType = "DAY"
	ItemTypeDeposit ItemType = "DEPOSIT"
	ItemTypeService ItemType = "SERVICE"
	ItemTypeProduct ItemType = "PRODUCT"
	ItemTypeSection ItemType = "SECTION"
)

// Valid reports whether the value is a known item type
func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeHour, ItemTypeDay, ItemTypeDeposit, ItemTypeService, ItemTypeProduct, ItemTypeSection:
		return true
	}
	return false
}

// IsSection reports whether the item is a heading row
func (t ItemType) IsSection() bool {
	return t == ItemTypeSection
}

func (t ItemType) String() string {
	return string(t)
}
