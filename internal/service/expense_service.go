package service

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/splitledger/splitledger/internal/models"
)

type addExpenseRequest struct {
	Amount       *float64              `json:"amount" binding:"required"`
	SplitType    string                `json:"split_type" binding:"required"`
	Users        []string              `json:"users"`
	ExactAmounts []models.ExactShare   `json:"exact_amounts"`
	Percentages  []models.PercentShare `json:"percentages"`
	Description  string                `json:"description"`
	PaidBy       string                `json:"paid_by"`
	Currency     string                `json:"currency"`
}

type settleRequest struct {
	UserID   string   `json:"user_id" binding:"required"`
	Amount   *float64 `json:"amount" binding:"required"`
	ToUserID string   `json:"to_user_id"`
}

// buildSplit converts the request's strategy tag and parameters into the
// matching split variant. Parameter presence is validated by the
// allocator, not here.
func buildSplit(req addExpenseRequest) (models.Split, error) {
	splitType, err := models.ParseSplitType(req.SplitType)
	if err != nil {
		return nil, err
	}
	switch splitType {
	case models.SplitTypeEqual:
		return models.EqualSplit{UserIDs: req.Users}, nil
	case models.SplitTypeExact:
		return models.ExactSplit{Shares: req.ExactAmounts}, nil
	default:
		return models.PercentageSplit{Shares: req.Percentages}, nil
	}
}

// addExpense applies an expense to a group and persists the result.
func (s *GroupService) addExpense(c *gin.Context) {
	var req addExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	split, err := buildSplit(req)
	if err != nil {
		slog.Warn("AddExpense rejected", "split_type", req.SplitType, "error", err)
		fail(c, err)
		return
	}

	groupID := c.Param("id")
	unlock := s.mu.lock(groupID)
	defer unlock()

	group, err := s.store.GetGroup(c.Request.Context(), groupID)
	if err != nil {
		slog.Warn("AddExpense failed - group not found", "group_id", groupID, "error", err)
		fail(c, err)
		return
	}

	expense, audit, err := group.AddExpense(*req.Amount, split, req.Description, req.PaidBy, req.Currency)
	if err != nil {
		slog.Warn("AddExpense rejected", "group_id", groupID, "error", err)
		fail(c, err)
		return
	}

	if err := s.store.SaveExpense(c.Request.Context(), groupID, expense, audit, group.Balances()); err != nil {
		slog.Error("AddExpense failed to persist", "group_id", groupID, "expense_id", expense.ID, "error", err)
		fail(c, err)
		return
	}

	slog.Info("Expense applied",
		"group_id", groupID,
		"expense_id", expense.ID,
		"amount", expense.Amount,
		"split_type", expense.SplitType,
	)
	c.JSON(http.StatusCreated, expense)
}

// settleDebt records a manual balance-reducing payment for one user.
func (s *GroupService) settleDebt(c *gin.Context) {
	var req settleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	groupID := c.Param("id")
	unlock := s.mu.lock(groupID)
	defer unlock()

	group, err := s.store.GetGroup(c.Request.Context(), groupID)
	if err != nil {
		slog.Warn("SettleDebt failed - group not found", "group_id", groupID, "error", err)
		fail(c, err)
		return
	}

	tx, err := group.SettleDebt(req.UserID, *req.Amount, req.ToUserID)
	if err != nil {
		slog.Warn("SettleDebt rejected", "group_id", groupID, "user_id", req.UserID, "error", err)
		fail(c, err)
		return
	}

	if err := s.store.SaveSettlements(c.Request.Context(), groupID, []*models.Transaction{tx}, group.Balances()); err != nil {
		slog.Error("SettleDebt failed to persist", "group_id", groupID, "error", err)
		fail(c, err)
		return
	}

	slog.Info("Debt settled", "group_id", groupID, "user_id", req.UserID, "amount", tx.Amount)
	c.JSON(http.StatusCreated, tx)
}

// simplifyDebts computes and applies the greedy transfer matching that
// zeroes all outstanding balances.
func (s *GroupService) simplifyDebts(c *gin.Context) {
	groupID := c.Param("id")
	unlock := s.mu.lock(groupID)
	defer unlock()

	group, err := s.store.GetGroup(c.Request.Context(), groupID)
	if err != nil {
		slog.Warn("SimplifyDebts failed - group not found", "group_id", groupID, "error", err)
		fail(c, err)
		return
	}

	settlements := group.SimplifyDebts()
	if err := s.store.SaveSettlements(c.Request.Context(), groupID, settlements, group.Balances()); err != nil {
		slog.Error("SimplifyDebts failed to persist", "group_id", groupID, "error", err)
		fail(c, err)
		return
	}

	slog.Info("Debts simplified", "group_id", groupID, "transfers", len(settlements))
	c.JSON(http.StatusOK, gin.H{"transactions": settlements})
}

// getBalances returns the balance snapshot for every member.
func (s *GroupService) getBalances(c *gin.Context) {
	group, err := s.store.GetGroup(c.Request.Context(), c.Param("id"))
	if err != nil {
		slog.Warn("GetBalances failed", "group_id", c.Param("id"), "error", err)
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"balances": group.Balances()})
}

// listTransactions returns the full insertion-ordered history.
func (s *GroupService) listTransactions(c *gin.Context) {
	group, err := s.store.GetGroup(c.Request.Context(), c.Param("id"))
	if err != nil {
		slog.Warn("ListTransactions failed", "group_id", c.Param("id"), "error", err)
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": group.History()})
}
