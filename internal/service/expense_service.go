package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/divvyhq/divvy/internal/models"
	"github.com/divvyhq/divvy/internal/money"
	"github.com/divvyhq/divvy/internal/storage"
)

// ExpenseService records and lists shared expenses.
type ExpenseService struct {
	store  storage.Store
	groups *GroupService
}

// NewExpenseService creates a new ExpenseService with the given storage backend.
func NewExpenseService(store storage.Store, groups *GroupService) *ExpenseService {
	return &ExpenseService{store: store, groups: groups}
}

// AddExpense records a new expense in a group. The payer and every
// beneficiary must be group members; the split order is preserved because it
// decides who absorbs the leftover cents of an uneven division.
func (s *ExpenseService) AddExpense(ctx context.Context, requesterID, groupID, payerID string, amount money.Cents, description string, splitBetween []string) (*models.Expense, error) {
	group, err := s.groups.memberGroup(ctx, requesterID, groupID)
	if err != nil {
		return nil, err
	}

	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	if len(splitBetween) == 0 {
		return nil, fmt.Errorf("%w: split_between must not be empty", ErrInvalidInput)
	}
	if !group.HasMember(payerID) {
		return nil, fmt.Errorf("%w: payer %s is not a group member", ErrInvalidInput, payerID)
	}
	seen := make(map[string]bool, len(splitBetween))
	for _, id := range splitBetween {
		if !group.HasMember(id) {
			return nil, fmt.Errorf("%w: beneficiary %s is not a group member", ErrInvalidInput, id)
		}
		if seen[id] {
			return nil, fmt.Errorf("%w: duplicate beneficiary %s", ErrInvalidInput, id)
		}
		seen[id] = true
	}

	expense := &models.Expense{
		GroupID:      groupID,
		PayerID:      payerID,
		Amount:       amount,
		Description:  description,
		SplitBetween: splitBetween,
	}
	if err := s.store.CreateExpense(ctx, expense); err != nil {
		return nil, err
	}

	slog.Info("Expense recorded",
		"expense_id", expense.ID,
		"group_id", groupID,
		"payer_id", payerID,
		"amount", amount.String(),
	)
	return expense, nil
}

// ListExpenses retrieves a group's expenses, newest first.
func (s *ExpenseService) ListExpenses(ctx context.Context, requesterID, groupID string) ([]*models.Expense, error) {
	if _, err := s.groups.memberGroup(ctx, requesterID, groupID); err != nil {
		return nil, err
	}
	return s.store.ListExpensesByGroup(ctx, groupID)
}

// DeleteExpense removes an expense. It must belong to the given group, and
// the requester must be a member.
func (s *ExpenseService) DeleteExpense(ctx context.Context, requesterID, groupID, expenseID string) error {
	if _, err := s.groups.memberGroup(ctx, requesterID, groupID); err != nil {
		return err
	}

	expense, err := s.store.GetExpense(ctx, expenseID)
	if err != nil {
		return err
	}
	if expense.GroupID != groupID {
		return fmt.Errorf("%w: expense %s", storage.ErrNotFound, expenseID)
	}

	if err := s.store.DeleteExpense(ctx, expenseID); err != nil {
		return err
	}
	slog.Info("Expense deleted", "expense_id", expenseID, "group_id", groupID)
	return nil
}
