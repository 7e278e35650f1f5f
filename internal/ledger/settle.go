package ledger

import (
	"errors"
	"fmt"
	"sort"

	"github.com/divvyhq/divvy/internal/money"
)

// ErrUnbalanced is returned when the input balances do not sum to zero
// within Epsilon. That indicates a bug upstream of the matcher (the
// aggregator guarantees an exact zero sum), so no partial plan is emitted.
var ErrUnbalanced = errors.New("balances do not sum to zero")

// Instruction is a proposed, not-yet-executed transfer. Instructions are
// recomputed from scratch on every invocation and never persisted by the
// engine; confirming one is the caller's job.
type Instruction struct {
	FromUserID string
	ToUserID   string
	Amount     money.Cents
}

// MatchSettlements computes a minimal set of directed transfers that brings
// every balance to zero.
//
// Greedy two-pointer matching: creditors are sorted by balance descending and
// debtors by balance ascending (most negative first), ties broken by member
// ID so the plan is deterministic. The current debtor pays the current
// creditor min(credit, debt); whichever side reaches zero advances. The plan
// has at most len(creditors)+len(debtors)-1 instructions.
//
// A group whose balances are all within Epsilon of zero yields an empty plan.
func MatchSettlements(balances []Balance) ([]Instruction, error) {
	var sum money.Cents
	for _, b := range balances {
		sum += b.Net
	}
	if sum.Abs() > Epsilon {
		return nil, fmt.Errorf("%w: residual %s", ErrUnbalanced, sum.String())
	}

	// Working copies; the caller's balances are never mutated.
	var creditors, debtors []Balance
	for _, b := range balances {
		switch {
		case b.Net > Epsilon:
			creditors = append(creditors, b)
		case b.Net < -Epsilon:
			debtors = append(debtors, b)
		}
	}

	sort.Slice(creditors, func(i, j int) bool {
		if creditors[i].Net != creditors[j].Net {
			return creditors[i].Net > creditors[j].Net
		}
		return creditors[i].MemberID < creditors[j].MemberID
	})
	sort.Slice(debtors, func(i, j int) bool {
		if debtors[i].Net != debtors[j].Net {
			return debtors[i].Net < debtors[j].Net
		}
		return debtors[i].MemberID < debtors[j].MemberID
	})

	var plan []Instruction
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debt := -debtors[i].Net
		credit := creditors[j].Net

		amount := debt
		if credit < amount {
			amount = credit
		}

		if amount >= Epsilon {
			plan = append(plan, Instruction{
				FromUserID: debtors[i].MemberID,
				ToUserID:   creditors[j].MemberID,
				Amount:     amount,
			})
		}

		debtors[i].Net += amount
		creditors[j].Net -= amount

		if -debtors[i].Net <= Epsilon {
			i++
		}
		if creditors[j].Net <= Epsilon {
			j++
		}
	}

	return plan, nil
}
