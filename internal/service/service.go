// Package service exposes the ledger's programmatic interface over
// HTTP/JSON: group and member management, expense application,
// settlements, debt simplification, balances, and transaction history.
package service

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/splitledger/splitledger/internal/models"
	"github.com/splitledger/splitledger/internal/storage"
)

// GroupService handles all group-scoped endpoints backed by a Store.
//
// Ledger aggregates expect a single logical owner: every mutation is a
// load-modify-save sequence, so the service serializes them with a mutex
// rather than interleaving concurrent read-modify-writes on the same
// balances.
type GroupService struct {
	store storage.Store
	mu    groupLocker
}

// NewGroupService creates a new GroupService with the given storage backend.
func NewGroupService(store storage.Store) *GroupService {
	return &GroupService{store: store}
}

// Register attaches all routes under /v1.
func (s *GroupService) Register(r gin.IRouter) {
	v1 := r.Group("/v1")
	v1.POST("/groups", s.createGroup)
	v1.GET("/groups", s.listGroups)
	v1.GET("/groups/:id", s.getGroup)
	v1.POST("/groups/:id/users", s.addUser)
	v1.POST("/groups/:id/expenses", s.addExpense)
	v1.POST("/groups/:id/settlements", s.settleDebt)
	v1.POST("/groups/:id/simplify", s.simplifyDebts)
	v1.GET("/groups/:id/balances", s.getBalances)
	v1.GET("/groups/:id/transactions", s.listTransactions)
}

// statusFor maps domain errors to HTTP status codes. Everything in the
// taxonomy is a caller-input validation failure; anything else is a
// storage fault.
func statusFor(err error) int {
	switch {
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, models.ErrUnknownUser):
		return http.StatusNotFound
	case errors.Is(err, models.ErrInvalidSplit),
		errors.Is(err, models.ErrCurrencyMismatch),
		errors.Is(err, models.ErrInvalidAmount),
		errors.Is(err, models.ErrOverSettlement),
		errors.Is(err, models.ErrNothingOwed):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func fail(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}
