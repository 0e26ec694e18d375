package models

// DefaultItemSource is applied when an item is created without a provenance tag.
const DefaultItemSource = "purchased"

// Purchase is an immutable stock-in record embedded in an item.
// Date is a calendar date in YYYY-MM-DD form.
type Purchase struct {
	Date  string  `json:"date"`
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
}

// UsageHistory is an immutable stock-out record embedded in an item.
type UsageHistory struct {
	Date string `json:"date"`
	Qty  int    `json:"qty"`
}

// Item is a consumable good owned by a resident. Quantity is the current
// stock on hand; Used accumulates everything consumed over the item's
// lifetime. Purchases and UsageHistory are append-only and stored embedded
// with the item (JSONB columns), so they have no identity of their own.
type Item struct {
	ID           string         `json:"id" db:"id"`
	ResidentID   string         `json:"residentId" db:"resident_id"`
	Name         string         `json:"name" db:"name"`
	Quantity     int            `json:"quantity" db:"quantity"`
	Used         int            `json:"used" db:"used"`
	Min          int            `json:"min" db:"min_quantity"`
	Source       string         `json:"source" db:"source"`
	Purchases    []Purchase     `json:"purchases" db:"purchases"`
	UsageHistory []UsageHistory `json:"usageHistory" db:"usage_history"`
}
