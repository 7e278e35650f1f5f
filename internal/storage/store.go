// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/divvyhq/divvy/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
// Implementations wrap it with the record's ID.
var ErrNotFound = errors.New("record not found")

// Store defines the interface for ledger storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
//
// The engine never writes through this interface except to append settlement
// records once a user confirms a proposed transfer; balances are always
// recomputed from the stored expenses and settlements.
type Store interface {
	// CreateUser persists a new user. The user's ID must already be set.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email address.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// CreateGroup persists a new group with its initial roster.
	// The group's ID and CreatedAt are populated by the store.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a group with its roster, in join order.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// ListGroupsForUser retrieves every group the user is a member of.
	ListGroupsForUser(ctx context.Context, userID string) ([]*models.Group, error)

	// AddGroupMembers appends users to the group roster, skipping any that
	// are already members.
	AddGroupMembers(ctx context.Context, groupID string, userIDs []string) error

	// DeleteGroup removes a group and everything recorded under it.
	DeleteGroup(ctx context.Context, groupID string) error

	// CreateExpense persists a new expense with its ordered split list.
	// The expense's ID and CreatedAt are populated by the store.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// GetExpense retrieves an expense by ID, including its split list.
	GetExpense(ctx context.Context, expenseID string) (*models.Expense, error)

	// ListExpensesByGroup retrieves a group's expenses, newest first.
	ListExpensesByGroup(ctx context.Context, groupID string) ([]*models.Expense, error)

	// DeleteExpense removes an expense by ID.
	DeleteExpense(ctx context.Context, expenseID string) error

	// CreateSettlement appends a confirmed settlement record.
	// The settlement's ID and CreatedAt are populated by the store.
	CreateSettlement(ctx context.Context, settlement *models.Settlement) error

	// ListSettlementsByGroup retrieves a group's settlements, newest first.
	ListSettlementsByGroup(ctx context.Context, groupID string) ([]*models.Settlement, error)

	// Close releases any resources held by the store.
	Close() error
}
