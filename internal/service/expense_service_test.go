package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/divvyhq/divvy/internal/money"
	"github.com/divvyhq/divvy/internal/storage"
)

func TestExpenseService(t *testing.T) {
	store := newTestStore(t)
	groups := NewGroupService(store)
	svc := NewExpenseService(store, groups)
	ctx := context.Background()

	alice := seedUser(t, store, "alice@example.com", "Alice")
	bob := seedUser(t, store, "bob@example.com", "Bob")
	outsider := seedUser(t, store, "mallory@example.com", "Mallory")

	group, err := groups.CreateGroup(ctx, alice.ID, "Roommates", []string{bob.ID})
	require.NoError(t, err)

	t.Run("records expense with split order", func(t *testing.T) {
		expense, err := svc.AddExpense(ctx, alice.ID, group.ID, alice.ID, money.Cents(4550), "Groceries", []string{bob.ID, alice.ID})
		require.NoError(t, err)
		assert.NotEmpty(t, expense.ID)
		assert.Equal(t, []string{bob.ID, alice.ID}, expense.SplitBetween)

		listed, err := svc.ListExpenses(ctx, bob.ID, group.ID)
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, money.Cents(4550), listed[0].Amount)
	})

	t.Run("rejects bad input", func(t *testing.T) {
		_, err := svc.AddExpense(ctx, alice.ID, group.ID, alice.ID, 0, "Free lunch", []string{alice.ID})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = svc.AddExpense(ctx, alice.ID, group.ID, alice.ID, 100, "No one", nil)
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = svc.AddExpense(ctx, alice.ID, group.ID, outsider.ID, 100, "Stranger paid", []string{alice.ID})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = svc.AddExpense(ctx, alice.ID, group.ID, alice.ID, 100, "Stranger owes", []string{outsider.ID})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = svc.AddExpense(ctx, alice.ID, group.ID, alice.ID, 100, "Twice", []string{bob.ID, bob.ID})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("non-member cannot record", func(t *testing.T) {
		_, err := svc.AddExpense(ctx, outsider.ID, group.ID, alice.ID, 100, "Sneaky", []string{alice.ID})
		assert.ErrorIs(t, err, ErrNotGroupMember)
	})

	t.Run("delete checks group ownership", func(t *testing.T) {
		expense, err := svc.AddExpense(ctx, alice.ID, group.ID, alice.ID, 500, "Coffee", []string{bob.ID})
		require.NoError(t, err)

		other, err := groups.CreateGroup(ctx, alice.ID, "Other", nil)
		require.NoError(t, err)

		err = svc.DeleteExpense(ctx, alice.ID, other.ID, expense.ID)
		assert.ErrorIs(t, err, storage.ErrNotFound)

		require.NoError(t, svc.DeleteExpense(ctx, alice.ID, group.ID, expense.ID))
		err = svc.DeleteExpense(ctx, alice.ID, group.ID, expense.ID)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}
