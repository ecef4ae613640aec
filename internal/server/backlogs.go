package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sprintboard/internal/validation"
)

type backlogRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type itemRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Assignees   []string `json:"assignees"`
}

type transferRequest struct {
	SprintID int64 `json:"sprint_id"`
}

// handleListBacklogs returns every backlog with its items.
func (s *Server) handleListBacklogs(c *gin.Context) {
	respondSuccess(c, http.StatusOK, gin.H{"backlogs": s.board.ListBacklogs(c.Request.Context())})
}

// handleGetBacklog returns a single backlog.
func (s *Server) handleGetBacklog(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	backlog, err := s.board.GetBacklog(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"backlog": backlog})
}

// handleCreateBacklog creates a backlog. A blank name is allowed.
func (s *Server) handleCreateBacklog(c *gin.Context) {
	var req backlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}

	backlog, err := s.board.CreateBacklog(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		s.fail(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, gin.H{"backlog": backlog})
}

// handleUpdateBacklog renames or redescribes a backlog.
func (s *Server) handleUpdateBacklog(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req backlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}

	backlog, err := s.board.UpdateBacklog(c.Request.Context(), id, req.Name, req.Description)
	if err != nil {
		s.fail(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"backlog": backlog})
}

// handleAddItem appends an item to a backlog.
func (s *Server) handleAddItem(c *gin.Context) {
	backlogID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	title, err := validation.Required("title", req.Title)
	if err != nil {
		s.fail(c, err)
		return
	}

	item, err := s.board.AddItem(c.Request.Context(), backlogID, title, req.Description, validation.Assignees(req.Assignees))
	if err != nil {
		s.fail(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, gin.H{"item": item})
}

// handleUpdateItem replaces the fields of a backlog item.
func (s *Server) handleUpdateItem(c *gin.Context) {
	backlogID, ok := parseID(c, "id")
	if !ok {
		return
	}
	itemID, ok := parseID(c, "itemId")
	if !ok {
		return
	}

	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	title, err := validation.Required("title", req.Title)
	if err != nil {
		s.fail(c, err)
		return
	}

	item, err := s.board.UpdateItem(c.Request.Context(), backlogID, itemID, title, req.Description, validation.Assignees(req.Assignees))
	if err != nil {
		s.fail(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"item": item})
}

// handleDeleteItem removes an item from a backlog. Repeating the call succeeds.
func (s *Server) handleDeleteItem(c *gin.Context) {
	backlogID, ok := parseID(c, "id")
	if !ok {
		return
	}
	itemID, ok := parseID(c, "itemId")
	if !ok {
		return
	}
	if err := s.board.DeleteItem(c.Request.Context(), backlogID, itemID); err != nil {
		s.fail(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"status": "deleted"})
}

// handleTransferItem copies a backlog item into a sprint.
func (s *Server) handleTransferItem(c *gin.Context) {
	backlogID, ok := parseID(c, "id")
	if !ok {
		return
	}
	itemID, ok := parseID(c, "itemId")
	if !ok {
		return
	}

	var req transferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	if req.SprintID <= 0 {
		s.fail(c, validation.Invalid("sprint_id", "is required"))
		return
	}

	item, err := s.board.TransferItem(c.Request.Context(), backlogID, itemID, req.SprintID)
	if err != nil {
		s.fail(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, gin.H{"sprint_item": item})
}
