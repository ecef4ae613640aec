package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sprintboard/internal/board"
	"sprintboard/internal/validation"
)

// Server provides HTTP handlers for the agile board backend.
type Server struct {
	engine    *gin.Engine
	board     *board.Board
	logger    *slog.Logger
	staticDir string
}

// New constructs the HTTP server with routes and middleware configured.
func New(b *board.Board, logger *slog.Logger, staticDir string) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(requestLogger(logger, "/api/healthz"))

	srv := &Server{
		engine:    router,
		board:     b,
		logger:    logger,
		staticDir: staticDir,
	}

	srv.registerRoutes()
	return srv
}

// Engine exposes the underlying Gin engine.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// registerRoutes wires all API and static handlers together.
func (s *Server) registerRoutes() {
	api := s.engine.Group("/api")
	{
		api.GET("/healthz", s.handleHealth)
		api.GET("/board", s.handleBoard)

		backlogs := api.Group("/backlogs")
		{
			backlogs.GET("", s.handleListBacklogs)
			backlogs.POST("", s.handleCreateBacklog)
			backlogs.GET(":id", s.handleGetBacklog)
			backlogs.PUT(":id", s.handleUpdateBacklog)
			backlogs.POST(":id/items", s.handleAddItem)
			backlogs.PUT(":id/items/:itemId", s.handleUpdateItem)
			backlogs.DELETE(":id/items/:itemId", s.handleDeleteItem)
			backlogs.POST(":id/items/:itemId/transfer", s.handleTransferItem)
		}

		sprints := api.Group("/sprints")
		{
			sprints.GET("", s.handleListSprints)
			sprints.POST("", s.handleCreateSprint)
			sprints.GET(":id", s.handleGetSprint)
			sprints.PUT(":id", s.handleUpdateSprint)
			sprints.POST(":id/toggle", s.handleToggleSprint)
			sprints.GET(":id/summary", s.handleSprintSummary)
			sprints.PUT(":id/items/:itemId/status", s.handleUpdateItemStatus)
			sprints.DELETE(":id/items/:itemId", s.handleRemoveSprintItem)
		}
	}

	s.mountStatic()
}

// handleHealth provides a basic readiness endpoint.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleBoard returns both collections so the frontend can hydrate in one call.
func (s *Server) handleBoard(c *gin.Context) {
	ctx := c.Request.Context()
	respondSuccess(c, http.StatusOK, gin.H{
		"backlogs": s.board.ListBacklogs(ctx),
		"sprints":  s.board.ListSprints(ctx),
	})
}

// parseID converts a path parameter to int64 with error handling.
func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid identifier"})
		return 0, false
	}
	return id, true
}

// statusFor maps board and validation errors onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, board.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, validation.ErrValidation), errors.Is(err, board.ErrInvalidStatus):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail responds with the status that matches err.
func (s *Server) fail(c *gin.Context, err error) {
	s.respondError(c, statusFor(err), err)
}

// respondError logs the error and returns a JSON payload.
func (s *Server) respondError(c *gin.Context, status int, err error) {
	attrs := []any{
		slog.String("path", c.FullPath()),
		slog.String("request_id", c.GetString(requestIDKey)),
		slog.String("error", err.Error()),
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", attrs...)
	} else {
		s.logger.Warn("request rejected", attrs...)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// respondSuccess wraps a payload in a JSON envelope for consistency.
func respondSuccess(c *gin.Context, status int, payload any) {
	if payload == nil {
		c.Status(status)
		return
	}
	c.JSON(status, payload)
}
