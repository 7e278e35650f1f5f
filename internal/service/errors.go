// Package service implements the application's business operations on top of
// the storage layer and the ledger engine. Services are transport-agnostic;
// the HTTP layer translates their typed errors into status codes.
package service

import "errors"

var (
	// ErrInvalidInput marks malformed or incomplete request data.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotGroupMember is returned when the requester does not belong to
	// the group they are operating on.
	ErrNotGroupMember = errors.New("you must be a member of this group")

	// ErrUnknownUser is returned when a referenced user does not exist.
	ErrUnknownUser = errors.New("user does not exist")

	// ErrStaleSnapshot is returned when a settlement confirmation carries a
	// ledger snapshot that no longer matches the stored state. The client
	// must refetch balances and let the user re-confirm.
	ErrStaleSnapshot = errors.New("ledger changed since balances were computed, please recompute")
)
