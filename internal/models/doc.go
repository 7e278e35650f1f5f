// Package models defines the core domain models for Divvy.
//
// The model set mirrors what the ledger needs:
//   - User: a registered account; group members are user IDs
//   - Group: a roster of users who split expenses together
//   - Expense: one recorded outlay with a payer and an ordered split list
//   - Settlement: a confirmed, already-executed transfer between two members
//
// All monetary amounts are stored as integer cents (money.Cents); decimal
// strings exist only at the HTTP boundary. Models reference each other by ID
// string rather than by pointer to keep them cheap to copy and trivially
// serializable.
package models
