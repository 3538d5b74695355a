package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/splitledger/splitledger/internal/models"
)

// SaveExpense persists an applied expense, its shares, its audit
// transaction, and the resulting balances atomically.
func (s *SQLiteStore) SaveExpense(ctx context.Context, groupID string, expense *models.Expense, audit *models.Transaction, balances map[string]float64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO expenses (id, group_id, description, amount, currency, split_type, paid_by, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		expense.ID, groupID, expense.Description, expense.Amount, expense.Currency,
		string(expense.SplitType), nullable(expense.PaidBy), expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	for userID, amount := range expense.Shares {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO expense_shares (expense_id, user_id, amount) VALUES (?, ?, ?)",
			expense.ID, userID, amount,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense share: %w", err)
		}
	}

	if err := insertTransaction(ctx, tx, groupID, audit); err != nil {
		return err
	}
	if err := updateBalances(ctx, tx, groupID, balances); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// SaveSettlements persists settlement or simplification transactions and
// the resulting balances atomically.
func (s *SQLiteStore) SaveSettlements(ctx context.Context, groupID string, transactions []*models.Transaction, balances map[string]float64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, t := range transactions {
		if err := insertTransaction(ctx, tx, groupID, t); err != nil {
			return err
		}
	}
	if err := updateBalances(ctx, tx, groupID, balances); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func insertTransaction(ctx context.Context, tx *sql.Tx, groupID string, t *models.Transaction) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO transactions (id, group_id, from_user, to_user, amount, currency, note, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, groupID, nullable(t.FromUser), nullable(t.ToUser), t.Amount, t.Currency, t.Note, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

func updateBalances(ctx context.Context, tx *sql.Tx, groupID string, balances map[string]float64) error {
	for userID, balance := range balances {
		_, err := tx.ExecContext(ctx,
			"UPDATE users SET balance = ? WHERE id = ? AND group_id = ?",
			balance, userID, groupID,
		)
		if err != nil {
			return fmt.Errorf("failed to update balance: %w", err)
		}
	}
	return nil
}

// groupTransactions loads the transaction history in insertion order.
func (s *SQLiteStore) groupTransactions(ctx context.Context, groupID string) ([]*models.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, from_user, to_user, amount, currency, note, created_at
		 FROM transactions WHERE group_id = ? ORDER BY rowid`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*models.Transaction
	for rows.Next() {
		t := &models.Transaction{}
		var from, to sql.NullString
		if err := rows.Scan(&t.ID, &from, &to, &t.Amount, &t.Currency, &t.Note, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		if from.Valid {
			t.FromUser = from.String
		}
		if to.Valid {
			t.ToUser = to.String
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return transactions, nil
}
