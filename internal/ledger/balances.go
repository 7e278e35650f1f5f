// Package ledger implements the settlement reconciliation engine: it turns a
// group's recorded expenses and confirmed settlements into per-member net
// balances, and computes a minimal set of transfers that zeroes them out.
//
// The engine is pure: it owns no state, performs no I/O, and may be invoked
// concurrently. All arithmetic is on integer cents, so balances are exact and
// the same inputs always produce the same outputs.
package ledger

import (
	"errors"
	"fmt"

	"github.com/divvyhq/divvy/internal/money"
)

// Epsilon is the minimum reportable amount: one cent. Residual imbalances at
// or below it are treated as settled dust rather than matched.
const Epsilon money.Cents = 1

var (
	ErrEmptyRoster     = errors.New("group roster is empty")
	ErrDuplicateMember = errors.New("duplicate member in roster")
	ErrUnknownMember   = errors.New("record references a member outside the roster")
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrEmptySplit      = errors.New("expense has no beneficiaries")
	ErrSelfSettlement  = errors.New("settlement from and to the same member")
)

// Expense is the minimal view of a recorded outlay the engine needs.
type Expense struct {
	// PayerID is the member who paid the full amount.
	PayerID string

	// Amount is the full amount paid, in cents.
	Amount money.Cents

	// SplitBetween lists the beneficiaries in split order. When the amount
	// does not divide evenly, the leftover cents are assigned one each to the
	// earliest entries, so the shares always sum to Amount exactly.
	SplitBetween []string
}

// SettlementRecord is an already-executed transfer between two members.
type SettlementRecord struct {
	FromUserID string
	ToUserID   string
	Amount     money.Cents
}

// Balance is a member's derived net position in a group.
// Positive = owed money (creditor), negative = owes money (debtor).
type Balance struct {
	MemberID string
	Net      money.Cents
}

// AggregateBalances computes one net balance per roster member from the
// group's expenses and settlement records.
//
// For each expense the payer is credited the full amount and every
// beneficiary is debited their share. For each settlement record the payer's
// balance improves and the receiver's decreases, because the transfer already
// happened outside the derived ledger.
//
// Balances are returned in roster order and always sum to exactly zero.
// Malformed input (empty roster, unknown members, non-positive amounts,
// empty splits) is rejected outright; no partial result is produced.
func AggregateBalances(memberIDs []string, expenses []Expense, settlements []SettlementRecord) ([]Balance, error) {
	if len(memberIDs) == 0 {
		return nil, ErrEmptyRoster
	}

	roster := make(map[string]bool, len(memberIDs))
	for _, id := range memberIDs {
		if roster[id] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateMember, id)
		}
		roster[id] = true
	}

	net := make(map[string]money.Cents, len(memberIDs))

	for i, e := range expenses {
		if err := validateExpense(e, roster); err != nil {
			return nil, fmt.Errorf("expense %d: %w", i, err)
		}

		// Even split: base share for everyone, with the remainder cents
		// assigned one each to the earliest beneficiaries.
		n := money.Cents(len(e.SplitBetween))
		base := e.Amount / n
		remainder := e.Amount % n

		net[e.PayerID] += e.Amount
		for j, memberID := range e.SplitBetween {
			share := base
			if money.Cents(j) < remainder {
				share++
			}
			net[memberID] -= share
		}
	}

	for i, s := range settlements {
		if err := validateSettlement(s, roster); err != nil {
			return nil, fmt.Errorf("settlement %d: %w", i, err)
		}
		net[s.FromUserID] += s.Amount
		net[s.ToUserID] -= s.Amount
	}

	balances := make([]Balance, len(memberIDs))
	for i, id := range memberIDs {
		balances[i] = Balance{MemberID: id, Net: net[id]}
	}
	return balances, nil
}

func validateExpense(e Expense, roster map[string]bool) error {
	if e.Amount <= 0 {
		return ErrInvalidAmount
	}
	if len(e.SplitBetween) == 0 {
		return ErrEmptySplit
	}
	if !roster[e.PayerID] {
		return fmt.Errorf("%w: payer %s", ErrUnknownMember, e.PayerID)
	}
	seen := make(map[string]bool, len(e.SplitBetween))
	for _, id := range e.SplitBetween {
		if !roster[id] {
			return fmt.Errorf("%w: beneficiary %s", ErrUnknownMember, id)
		}
		if seen[id] {
			return fmt.Errorf("duplicate beneficiary %s", id)
		}
		seen[id] = true
	}
	return nil
}

func validateSettlement(s SettlementRecord, roster map[string]bool) error {
	if s.Amount <= 0 {
		return ErrInvalidAmount
	}
	if !roster[s.FromUserID] {
		return fmt.Errorf("%w: from %s", ErrUnknownMember, s.FromUserID)
	}
	if !roster[s.ToUserID] {
		return fmt.Errorf("%w: to %s", ErrUnknownMember, s.ToUserID)
	}
	if s.FromUserID == s.ToUserID {
		return ErrSelfSettlement
	}
	return nil
}
