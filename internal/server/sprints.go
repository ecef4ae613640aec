package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sprintboard/internal/validation"
)

type sprintRequest struct {
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type statusRequest struct {
	Status string `json:"status"`
}

// handleListSprints returns every sprint. ?active=true limits the list to
// active sprints.
func (s *Server) handleListSprints(c *gin.Context) {
	ctx := c.Request.Context()
	if c.Query("active") == "true" {
		respondSuccess(c, http.StatusOK, gin.H{"sprints": s.board.ActiveSprints(ctx)})
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"sprints": s.board.ListSprints(ctx)})
}

// handleGetSprint returns a single sprint with its items.
func (s *Server) handleGetSprint(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	sprint, err := s.board.GetSprint(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"sprint": sprint})
}

// handleCreateSprint creates an inactive sprint.
func (s *Server) handleCreateSprint(c *gin.Context) {
	var req sprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	name, err := validation.Required("name", req.Name)
	if err != nil {
		s.fail(c, err)
		return
	}
	start, end, err := validation.SprintDates(req.StartDate, req.EndDate)
	if err != nil {
		s.fail(c, err)
		return
	}

	sprint, err := s.board.CreateSprint(c.Request.Context(), name, start, end)
	if err != nil {
		s.fail(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, gin.H{"sprint": sprint})
}

// handleUpdateSprint renames or reschedules a sprint.
func (s *Server) handleUpdateSprint(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req sprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	name, err := validation.Required("name", req.Name)
	if err != nil {
		s.fail(c, err)
		return
	}
	start, end, err := validation.SprintDates(req.StartDate, req.EndDate)
	if err != nil {
		s.fail(c, err)
		return
	}

	sprint, err := s.board.UpdateSprint(c.Request.Context(), id, name, start, end)
	if err != nil {
		s.fail(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"sprint": sprint})
}

// handleToggleSprint flips a sprint's active flag.
func (s *Server) handleToggleSprint(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	sprint, err := s.board.ToggleActive(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"sprint": sprint})
}

// handleSprintSummary reports item counts per column for one sprint.
func (s *Server) handleSprintSummary(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	summary, err := s.board.Summary(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"summary": summary})
}

// handleUpdateItemStatus moves a sprint item between board columns.
func (s *Server) handleUpdateItemStatus(c *gin.Context) {
	sprintID, ok := parseID(c, "id")
	if !ok {
		return
	}
	itemID, ok := parseID(c, "itemId")
	if !ok {
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	status, err := validation.Status(req.Status)
	if err != nil {
		s.fail(c, err)
		return
	}

	item, err := s.board.UpdateItemStatus(c.Request.Context(), sprintID, itemID, status)
	if err != nil {
		s.fail(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"sprint_item": item})
}

// handleRemoveSprintItem drops an item from a sprint.
func (s *Server) handleRemoveSprintItem(c *gin.Context) {
	sprintID, ok := parseID(c, "id")
	if !ok {
		return
	}
	itemID, ok := parseID(c, "itemId")
	if !ok {
		return
	}
	if err := s.board.RemoveItem(c.Request.Context(), sprintID, itemID); err != nil {
		s.fail(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"status": "removed"})
}
