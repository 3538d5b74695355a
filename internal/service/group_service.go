package service

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/splitledger/splitledger/internal/ledger"
)

type createGroupRequest struct {
	Name     string `json:"name" binding:"required"`
	Currency string `json:"currency"`
}

type addUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Currency string `json:"currency"`
}

// createGroup creates a new, empty group. Currency defaults to USD.
func (s *GroupService) createGroup(c *gin.Context) {
	var req createGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group := ledger.NewGroup(req.Name, req.Currency)
	if err := s.store.CreateGroup(c.Request.Context(), group.Info()); err != nil {
		slog.Error("CreateGroup failed", "error", err)
		fail(c, err)
		return
	}

	slog.Info("Group created", "group_id", group.ID(), "name", req.Name, "currency", group.Currency())
	c.JSON(http.StatusCreated, group.Info())
}

// listGroups returns the identity records of all groups.
func (s *GroupService) listGroups(c *gin.Context) {
	groups, err := s.store.ListGroups(c.Request.Context())
	if err != nil {
		slog.Error("ListGroups failed", "error", err)
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

// getGroup returns a group's identity and members.
func (s *GroupService) getGroup(c *gin.Context) {
	group, err := s.store.GetGroup(c.Request.Context(), c.Param("id"))
	if err != nil {
		slog.Warn("GetGroup failed", "group_id", c.Param("id"), "error", err)
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"group": group.Info(),
		"users": group.Users(),
	})
}

// addUser adds a member to a group. Currency defaults to the group's.
func (s *GroupService) addUser(c *gin.Context) {
	var req addUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	groupID := c.Param("id")
	unlock := s.mu.lock(groupID)
	defer unlock()

	group, err := s.store.GetGroup(c.Request.Context(), groupID)
	if err != nil {
		slog.Warn("AddUser failed - group not found", "group_id", groupID, "error", err)
		fail(c, err)
		return
	}

	user := group.AddUser(req.Name, req.Currency)
	if err := s.store.AddUser(c.Request.Context(), groupID, user); err != nil {
		slog.Error("AddUser failed", "group_id", groupID, "error", err)
		fail(c, err)
		return
	}

	slog.Info("User added", "group_id", groupID, "user_id", user.ID, "name", user.Name)
	c.JSON(http.StatusCreated, user)
}
