package models

// ProgressItem is a single line of a progress-payment (hakediş) schedule.
// Total is the product of quantity and unit price captured at creation; it
// is a snapshot, not a live recomputation, and there is no edit path that
// changes quantity or unit price afterwards.
type ProgressItem struct {
	ID          int64   `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
	Paid        bool    `json:"paid"`
	Date        string  `json:"date"`
}
