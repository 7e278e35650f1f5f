package models

import "github.com/divvyhq/divvy/internal/money"

// Expense represents a single recorded outlay within a group.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// GroupID is the group this expense belongs to.
	GroupID string

	// PayerID is the user who paid the full amount.
	PayerID string

	// Amount is the full amount paid, in cents. Always positive.
	Amount money.Cents

	// Description is a short human-readable label (e.g., "Groceries").
	Description string

	// SplitBetween is the ordered list of user IDs the expense is split
	// between. The order matters: when the amount does not divide evenly,
	// the leftover cents go to the earliest entries.
	SplitBetween []string

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}
