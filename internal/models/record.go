package models

import "time"

// RecordType classifies a finance record as money in or money out.
type RecordType string

const (
	RecordTypeIncome  RecordType = "income"
	RecordTypeExpense RecordType = "expense"
)

// Record categories. The set is fixed; the mobile client renders it as
// a row of filter chips.
const (
	CategorySalary    = "Salary"
	CategoryGroceries = "Groceries"
	CategoryTransport = "Transport"
	CategoryOther     = "Other"
)

// Categories returns all valid record categories.
func Categories() []string {
	return []string{CategorySalary, CategoryGroceries, CategoryTransport, CategoryOther}
}

// ValidCategory reports whether name is one of the fixed categories.
func ValidCategory(name string) bool {
	switch name {
	case CategorySalary, CategoryGroceries, CategoryTransport, CategoryOther:
		return true
	}
	return false
}

// FinanceRecord is a single income or expense entry in the ledger.
// ID is the unix-milli timestamp assigned at creation and is never reused.
// Date is set at creation with minute precision and never changes; every
// other field except ID may be rewritten by an edit.
type FinanceRecord struct {
	ID          int64      `json:"id"`
	Type        RecordType `json:"type"`
	Category    string     `json:"category"`
	Amount      float64    `json:"amount"`
	Description string     `json:"description"`
	Date        time.Time  `json:"date"`
}
