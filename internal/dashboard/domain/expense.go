package domain

import "time"

// Expense is a flat ledger row. Expenses are the one collection that is
// never role-filtered: every authenticated user sees all of them.
type Expense struct {
	ID        string    `json:"id"`
	Amount    float64   `json:"amount"`
	Date      time.Time `json:"date"`
	AccountID string    `json:"accountId,omitempty"`
	Category  string    `json:"category,omitempty"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}
