// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/splitledger/splitledger/internal/ledger"
	"github.com/splitledger/splitledger/internal/models"
)

// ErrNotFound is returned when a requested group does not exist.
var ErrNotFound = errors.New("group not found")

// Store defines the interface for group persistence. The ledger core is
// purely in-memory; a Store is the append-only log collaborator that
// keeps groups, expenses, and transaction history across runs. This
// abstraction allows swapping storage backends without changing the
// service layer.
type Store interface {
	// CreateGroup persists a new, empty group.
	CreateGroup(ctx context.Context, info models.GroupInfo) error

	// GetGroup rehydrates the full group aggregate: members with their
	// stored balances, expenses with shares, and the transaction history
	// in insertion order. Returns ErrNotFound if the group does not exist.
	GetGroup(ctx context.Context, groupID string) (*ledger.Group, error)

	// ListGroups returns the identity records of all groups.
	ListGroups(ctx context.Context) ([]models.GroupInfo, error)

	// AddUser persists a new group member.
	AddUser(ctx context.Context, groupID string, user *models.User) error

	// SaveExpense persists an applied expense, its audit transaction, and
	// the resulting balances in a single database transaction.
	SaveExpense(ctx context.Context, groupID string, expense *models.Expense, audit *models.Transaction, balances map[string]float64) error

	// SaveSettlements persists settlement or simplification transactions
	// and the resulting balances in a single database transaction.
	SaveSettlements(ctx context.Context, groupID string, transactions []*models.Transaction, balances map[string]float64) error

	// Close releases any resources held by the store.
	Close() error
}
