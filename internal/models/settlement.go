package models

import "github.com/divvyhq/divvy/internal/money"

// Settlement represents a confirmed payment between group members. Once
// recorded it is immutable and reduces the live balance between the two
// members in every subsequent ledger computation.
type Settlement struct {
	// ID is the unique identifier for the settlement (UUID format).
	ID string

	// GroupID is the group this settlement belongs to.
	GroupID string

	// FromUserID is the user who paid (debtor settling up).
	FromUserID string

	// ToUserID is the user who received payment (creditor being paid).
	ToUserID string

	// Amount is the payment amount, in cents. Always positive.
	Amount money.Cents

	// Note is an optional description for the settlement.
	Note string

	// CreatedBy is the user ID who recorded this settlement.
	CreatedBy string

	// CreatedAt is the Unix timestamp when the settlement was recorded.
	CreatedAt int64
}
