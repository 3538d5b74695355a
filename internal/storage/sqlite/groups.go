package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/splitledger/splitledger/internal/ledger"
	"github.com/splitledger/splitledger/internal/models"
	"github.com/splitledger/splitledger/internal/storage"
)

// CreateGroup persists a new, empty group.
func (s *SQLiteStore) CreateGroup(ctx context.Context, info models.GroupInfo) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO groups (id, name, currency, created_at) VALUES (?, ?, ?, ?)",
		info.ID, info.Name, info.Currency, info.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert group: %w", err)
	}
	return nil
}

// GetGroup rehydrates a full group aggregate from the database.
func (s *SQLiteStore) GetGroup(ctx context.Context, groupID string) (*ledger.Group, error) {
	var info models.GroupInfo
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, currency, created_at FROM groups WHERE id = ?",
		groupID,
	).Scan(&info.ID, &info.Name, &info.Currency, &info.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, groupID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	users, err := s.groupUsers(ctx, groupID)
	if err != nil {
		return nil, err
	}
	expenses, err := s.groupExpenses(ctx, groupID)
	if err != nil {
		return nil, err
	}
	transactions, err := s.groupTransactions(ctx, groupID)
	if err != nil {
		return nil, err
	}

	return ledger.Restore(info, users, expenses, transactions), nil
}

// ListGroups returns the identity records of all groups in creation order.
func (s *SQLiteStore) ListGroups(ctx context.Context) ([]models.GroupInfo, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, currency, created_at FROM groups ORDER BY rowid",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	var groups []models.GroupInfo
	for rows.Next() {
		var info models.GroupInfo
		if err := rows.Scan(&info.ID, &info.Name, &info.Currency, &info.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate groups: %w", err)
	}
	return groups, nil
}

// AddUser persists a new group member.
func (s *SQLiteStore) AddUser(ctx context.Context, groupID string, user *models.User) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users (id, group_id, name, currency, balance, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		user.ID, groupID, user.Name, user.Currency, user.Balance, user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// groupUsers loads group members in insertion order.
func (s *SQLiteStore) groupUsers(ctx context.Context, groupID string) ([]*models.User, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, currency, balance, created_at FROM users WHERE group_id = ? ORDER BY rowid",
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(&user.ID, &user.Name, &user.Currency, &user.Balance, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}
	return users, nil
}

// groupExpenses loads expenses with their shares in insertion order.
func (s *SQLiteStore) groupExpenses(ctx context.Context, groupID string) ([]*models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, description, amount, currency, split_type, paid_by, created_at
		 FROM expenses WHERE group_id = ? ORDER BY rowid`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		expense := &models.Expense{}
		var paidBy sql.NullString
		var splitType string
		if err := rows.Scan(&expense.ID, &expense.Description, &expense.Amount,
			&expense.Currency, &splitType, &paidBy, &expense.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expense.SplitType = models.SplitType(splitType)
		if paidBy.Valid {
			expense.PaidBy = paidBy.String
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	for _, expense := range expenses {
		shares, err := s.expenseShares(ctx, expense.ID)
		if err != nil {
			return nil, err
		}
		expense.Shares = shares
	}
	return expenses, nil
}

func (s *SQLiteStore) expenseShares(ctx context.Context, expenseID string) (map[string]float64, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT user_id, amount FROM expense_shares WHERE expense_id = ?",
		expenseID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense shares: %w", err)
	}
	defer rows.Close()

	shares := make(map[string]float64)
	for rows.Next() {
		var userID string
		var amount float64
		if err := rows.Scan(&userID, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan expense share: %w", err)
		}
		shares[userID] = amount
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expense shares: %w", err)
	}
	return shares, nil
}
