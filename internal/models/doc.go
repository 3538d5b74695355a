// Package models defines the core domain records for splitledger.
//
// # Records
//
//   - User: a group member with a running signed balance
//   - Expense: an immutable shared expense with its computed shares
//   - Transaction: one entry in a group's append-only history
//   - GroupInfo: the persisted identity of a group
//   - Split: the closed set of split strategies (equal/exact/percentage)
//
// # Invariants
//
// The sum of an Expense's share values equals its rounded amount, to the
// cent. Every user id referenced by an Expense's shares or payer, or by a
// Transaction's endpoints, is a member of the owning group. Balances are
// the only mutable numeric state and are mutated exclusively through
// ledger operations.
//
// # Design principles
//
//  1. Records reference each other by ID strings, never pointers
//  2. Split strategies are a closed variant set, not string dispatch;
//     adding a strategy means adding a type, and the allocator's type
//     switch fails closed on anything unknown
//  3. All domain failures are sentinel errors matched via errors.Is
package models
