// Package ledger implements the balance-accounting core: a Group aggregate
// that owns its members' running balances and funnels every mutation
// through expense application, settlement, and debt simplification.
package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/splitledger/splitledger/internal/calculator"
	"github.com/splitledger/splitledger/internal/models"
)

// DefaultCurrency is used when a group is created without one.
const DefaultCurrency = "USD"

// Group is an expense-sharing group: its members with running balances,
// an append-only sequence of expenses, and an append-only transaction
// history. All balance mutation goes through Group methods; validation
// precedes mutation in every operation, so a failed call leaves the group
// exactly as it was.
//
// A Group is not safe for concurrent use. Operations are read-modify-write
// sequences on shared per-user state; callers that share a Group across
// goroutines must serialize access themselves.
type Group struct {
	info         models.GroupInfo
	users        map[string]*models.User
	userOrder    []string
	expenses     []*models.Expense
	transactions []*models.Transaction
}

// NewGroup creates an empty group. An empty currency defaults to
// DefaultCurrency.
func NewGroup(name, currency string) *Group {
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Group{
		info: models.GroupInfo{
			ID:        uuid.New().String(),
			Name:      name,
			Currency:  currency,
			CreatedAt: time.Now().Unix(),
		},
		users: make(map[string]*models.User),
	}
}

// Restore rebuilds a group from persisted state. Users keep their stored
// balances and ordering; expenses and transactions keep their stored
// insertion order.
func Restore(info models.GroupInfo, users []*models.User, expenses []*models.Expense, transactions []*models.Transaction) *Group {
	g := &Group{
		info:         info,
		users:        make(map[string]*models.User, len(users)),
		expenses:     expenses,
		transactions: transactions,
	}
	for _, u := range users {
		g.users[u.ID] = u
		g.userOrder = append(g.userOrder, u.ID)
	}
	return g
}

// Info returns the group's identity record.
func (g *Group) Info() models.GroupInfo { return g.info }

// ID returns the group's unique identifier.
func (g *Group) ID() string { return g.info.ID }

// Currency returns the group's home currency.
func (g *Group) Currency() string { return g.info.Currency }

// AddUser creates a new member with a zero balance. An empty currency
// defaults to the group's currency.
func (g *Group) AddUser(name, currency string) *models.User {
	if currency == "" {
		currency = g.info.Currency
	}
	user := &models.User{
		ID:        uuid.New().String(),
		Name:      name,
		Currency:  currency,
		CreatedAt: time.Now().Unix(),
	}
	g.users[user.ID] = user
	g.userOrder = append(g.userOrder, user.ID)
	return user
}

// Users returns the members in insertion order.
func (g *Group) Users() []*models.User {
	users := make([]*models.User, 0, len(g.userOrder))
	for _, id := range g.userOrder {
		users = append(users, g.users[id])
	}
	return users
}

// Expenses returns the applied expenses in insertion order.
func (g *Group) Expenses() []*models.Expense {
	return append([]*models.Expense(nil), g.expenses...)
}

// History returns the full transaction history in insertion order.
func (g *Group) History() []*models.Transaction {
	return append([]*models.Transaction(nil), g.transactions...)
}

// Balances returns a snapshot of every member's balance, rounded to 2
// decimals. Positive means the user owes net money into the group,
// negative means the user is net owed.
func (g *Group) Balances() map[string]float64 {
	balances := make(map[string]float64, len(g.users))
	for id, u := range g.users {
		balances[id] = calculator.Round2(u.Balance)
	}
	return balances
}

// AddExpense allocates the amount across members under the given split
// strategy and applies the shares: each participant's balance increases by
// their share, and the payer (if any) is debited the full amount — they
// fronted the money, so they are owed it back. Also records an
// endpoint-less audit transaction, which is returned alongside the
// expense.
//
// An empty currency defaults to the group's currency; a differing one
// fails with models.ErrCurrencyMismatch. Unknown participants or payer
// fail with models.ErrUnknownUser. All validation happens before any
// balance is touched.
func (g *Group) AddExpense(amount float64, split models.Split, description, paidBy, currency string) (*models.Expense, *models.Transaction, error) {
	if currency == "" {
		currency = g.info.Currency
	}
	if currency != g.info.Currency {
		return nil, nil, fmt.Errorf("%w: group currency is %s, expense is %s",
			models.ErrCurrencyMismatch, g.info.Currency, currency)
	}

	shares, err := calculator.Allocate(amount, split)
	if err != nil {
		return nil, nil, err
	}

	for uid := range shares {
		if _, ok := g.users[uid]; !ok {
			return nil, nil, fmt.Errorf("%w: %s", models.ErrUnknownUser, uid)
		}
	}
	if paidBy != "" {
		if _, ok := g.users[paidBy]; !ok {
			return nil, nil, fmt.Errorf("%w: payer %s", models.ErrUnknownUser, paidBy)
		}
	}

	expense := &models.Expense{
		ID:          uuid.New().String(),
		Description: description,
		Amount:      calculator.Round2(amount),
		Currency:    currency,
		SplitType:   split.Type(),
		Shares:      shares,
		PaidBy:      paidBy,
		CreatedAt:   time.Now().Unix(),
	}

	for uid, share := range shares {
		user := g.users[uid]
		user.Balance = calculator.Round2(user.Balance + share)
	}
	if paidBy != "" {
		payer := g.users[paidBy]
		payer.Balance = calculator.Round2(payer.Balance - expense.Amount)
	}

	tx := g.record("", "", expense.Amount,
		fmt.Sprintf("Expense: %s (%s)", description, split.Type()))
	g.expenses = append(g.expenses, expense)

	return expense, tx, nil
}

// SettleDebt decreases the user's balance by amount and records a
// settlement transaction with an optional recipient. Fails with
// models.ErrInvalidAmount for a negative amount, models.ErrOverSettlement
// when the amount exceeds the user's current debt, and
// models.ErrNothingOwed when a positive amount is settled against a
// non-positive balance.
func (g *Group) SettleDebt(userID string, amount float64, toUserID string) (*models.Transaction, error) {
	user, ok := g.users[userID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrUnknownUser, userID)
	}
	if toUserID != "" {
		if _, ok := g.users[toUserID]; !ok {
			return nil, fmt.Errorf("%w: recipient %s", models.ErrUnknownUser, toUserID)
		}
	}

	amount = calculator.Round2(amount)
	if amount < 0 {
		return nil, fmt.Errorf("%w: got %.2f", models.ErrInvalidAmount, amount)
	}
	if user.Balance > 0 && amount > user.Balance+1e-9 {
		return nil, fmt.Errorf("%w: user owes %.2f, tried to settle %.2f",
			models.ErrOverSettlement, user.Balance, amount)
	}
	if user.Balance <= 0 && amount > 0 {
		return nil, fmt.Errorf("%w: balance is %.2f", models.ErrNothingOwed, user.Balance)
	}

	user.Balance = calculator.Round2(user.Balance - amount)
	return g.record(userID, toUserID, amount, models.NoteSettlement), nil
}

// SimplifyDebts matches debtors to creditors and applies the resulting
// transfers: each debtor's balance decreases and each creditor's increases
// by the transfer amount, and every transfer is appended to the history.
// Afterwards every balance that was non-zero is zero. Cannot fail; on a
// group with no outstanding debts it returns an empty sequence.
func (g *Group) SimplifyDebts() []*models.Transaction {
	transfers := calculator.Simplify(g.Balances())

	settlements := make([]*models.Transaction, 0, len(transfers))
	for _, t := range transfers {
		debtor := g.users[t.FromUser]
		creditor := g.users[t.ToUser]
		debtor.Balance = calculator.Round2(debtor.Balance - t.Amount)
		creditor.Balance = calculator.Round2(creditor.Balance + t.Amount)
		settlements = append(settlements, g.record(t.FromUser, t.ToUser, t.Amount, models.NoteSimplified))
	}
	return settlements
}

// record appends a transaction to the history and returns it.
func (g *Group) record(from, to string, amount float64, note string) *models.Transaction {
	tx := &models.Transaction{
		ID:        uuid.New().String(),
		FromUser:  from,
		ToUser:    to,
		Amount:    amount,
		Currency:  g.info.Currency,
		Note:      note,
		CreatedAt: time.Now().Unix(),
	}
	g.transactions = append(g.transactions, tx)
	return tx
}
