package domain

import "time"

// Expense is a cost recorded against an owner (provider fees, concierge
// charges). The ledger feeds the net revenue report.
type Expense struct {
	ID         int64     `json:"id"`
	OwnerID    int64     `json:"owner_id"`
	Label      string    `json:"label"`
	Amount     float64   `json:"amount"`
	IncurredAt time.Time `json:"incurred_at"`
	CreatedAt  time.Time `json:"created_at"`
}
