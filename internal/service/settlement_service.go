package service

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/divvyhq/divvy/internal/ledger"
	"github.com/divvyhq/divvy/internal/models"
	"github.com/divvyhq/divvy/internal/money"
	"github.com/divvyhq/divvy/internal/storage"
)

// SettlementService computes balances and settlement plans, and records
// confirmed settlements. Balances are recomputed from scratch on every call;
// the service keeps no incremental state.
type SettlementService struct {
	store  storage.Store
	groups *GroupService
}

// NewSettlementService creates a new SettlementService with the given storage backend.
func NewSettlementService(store storage.Store, groups *GroupService) *SettlementService {
	return &SettlementService{store: store, groups: groups}
}

// BalanceSheet is the result of one reconciliation pass over a group.
type BalanceSheet struct {
	Group *models.Group

	// Balances holds one net position per roster member, in roster order.
	Balances []ledger.Balance

	// Plan is the proposed set of transfers that would settle the group.
	Plan []ledger.Instruction

	// Snapshot fingerprints the ledger state the plan was computed from.
	// Confirmations must echo it back; see Confirm.
	Snapshot string
}

// GroupBalances loads the group's ledger and runs the reconciliation engine
// over it. Expenses and settlement records are fetched concurrently.
func (s *SettlementService) GroupBalances(ctx context.Context, requesterID, groupID string) (*BalanceSheet, error) {
	group, err := s.groups.memberGroup(ctx, requesterID, groupID)
	if err != nil {
		return nil, err
	}

	expenses, settlements, err := s.loadLedger(ctx, groupID)
	if err != nil {
		return nil, err
	}

	balances, err := ledger.AggregateBalances(group.MemberIDs, toLedgerExpenses(expenses), toLedgerSettlements(settlements))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate balances: %w", err)
	}

	plan, err := ledger.MatchSettlements(balances)
	if err != nil {
		// The aggregator guarantees a zero sum, so this indicates corrupted
		// stored data rather than bad user input.
		return nil, fmt.Errorf("failed to compute settlement plan: %w", err)
	}

	slog.Debug("Balances computed",
		"group_id", groupID,
		"expenses", len(expenses),
		"settlements", len(settlements),
		"instructions", len(plan),
	)

	return &BalanceSheet{
		Group:    group,
		Balances: balances,
		Plan:     plan,
		Snapshot: snapshotOf(expenses, settlements),
	}, nil
}

// Confirm records a settlement a user has marked as paid. The snapshot must
// match the group's current ledger state: if any expense or settlement was
// added or removed since the plan was computed, the confirmation is rejected
// with ErrStaleSnapshot so the client recomputes instead of double-paying.
func (s *SettlementService) Confirm(ctx context.Context, requesterID, groupID, fromUserID, toUserID string, amount money.Cents, note, snapshot string) (*models.Settlement, error) {
	group, err := s.groups.memberGroup(ctx, requesterID, groupID)
	if err != nil {
		return nil, err
	}

	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	if fromUserID == toUserID {
		return nil, fmt.Errorf("%w: from and to must differ", ErrInvalidInput)
	}
	if !group.HasMember(fromUserID) || !group.HasMember(toUserID) {
		return nil, fmt.Errorf("%w: both parties must be group members", ErrInvalidInput)
	}
	if snapshot == "" {
		return nil, fmt.Errorf("%w: snapshot required", ErrInvalidInput)
	}

	expenses, settlements, err := s.loadLedger(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if current := snapshotOf(expenses, settlements); current != snapshot {
		slog.Warn("Stale settlement confirmation rejected",
			"group_id", groupID,
			"submitted", snapshot,
			"current", current,
		)
		return nil, ErrStaleSnapshot
	}

	settlement := &models.Settlement{
		GroupID:    groupID,
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Amount:     amount,
		Note:       note,
		CreatedBy:  requesterID,
	}
	if err := s.store.CreateSettlement(ctx, settlement); err != nil {
		return nil, err
	}

	slog.Info("Settlement recorded",
		"settlement_id", settlement.ID,
		"group_id", groupID,
		"from", fromUserID,
		"to", toUserID,
		"amount", amount.String(),
	)
	return settlement, nil
}

// History retrieves a group's confirmed settlements, newest first.
func (s *SettlementService) History(ctx context.Context, requesterID, groupID string) ([]*models.Settlement, error) {
	if _, err := s.groups.memberGroup(ctx, requesterID, groupID); err != nil {
		return nil, err
	}
	return s.store.ListSettlementsByGroup(ctx, groupID)
}

func (s *SettlementService) loadLedger(ctx context.Context, groupID string) ([]*models.Expense, []*models.Settlement, error) {
	var (
		expenses    []*models.Expense
		settlements []*models.Settlement
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		expenses, err = s.store.ListExpensesByGroup(ctx, groupID)
		return err
	})
	g.Go(func() error {
		var err error
		settlements, err = s.store.ListSettlementsByGroup(ctx, groupID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return expenses, settlements, nil
}

func snapshotOf(expenses []*models.Expense, settlements []*models.Settlement) string {
	expenseIDs := make([]string, len(expenses))
	for i, e := range expenses {
		expenseIDs[i] = e.ID
	}
	settlementIDs := make([]string, len(settlements))
	for i, s := range settlements {
		settlementIDs[i] = s.ID
	}
	return ledger.Version(expenseIDs, settlementIDs)
}

func toLedgerExpenses(expenses []*models.Expense) []ledger.Expense {
	out := make([]ledger.Expense, len(expenses))
	for i, e := range expenses {
		out[i] = ledger.Expense{
			PayerID:      e.PayerID,
			Amount:       e.Amount,
			SplitBetween: e.SplitBetween,
		}
	}
	return out
}

func toLedgerSettlements(settlements []*models.Settlement) []ledger.SettlementRecord {
	out := make([]ledger.SettlementRecord, len(settlements))
	for i, s := range settlements {
		out[i] = ledger.SettlementRecord{
			FromUserID: s.FromUserID,
			ToUserID:   s.ToUserID,
			Amount:     s.Amount,
		}
	}
	return out
}
