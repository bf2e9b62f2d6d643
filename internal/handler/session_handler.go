package handler

import (
	"errors"
	"net/http"

	"design-service/internal/chat"
	"design-service/internal/store"
	"design-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// SessionHandler serves session lifecycle and chat endpoints.
type SessionHandler struct {
	sessions *store.SessionStore
	chat     *chat.Service
}

func NewSessionHandler(sessions *store.SessionStore, chatSvc *chat.Service) *SessionHandler {
	return &SessionHandler{sessions: sessions, chat: chatSvc}
}

// Start handles POST /api/sessions/start
func (h *SessionHandler) Start(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Starting session", zap.String("client_ip", c.RealIP()))

	result, err := h.chat.Start(c.Request().Context(), c.RealIP())
	if err != nil {
		log.Error("Failed to start session", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to start session",
		})
	}

	status := http.StatusCreated
	if result.Reused {
		status = http.StatusOK
	}
	return c.JSON(status, result)
}

// Get handles GET /api/sessions/:id
func (h *SessionHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid session ID",
		})
	}

	session, err := h.sessions.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "Session not found",
			})
		}
		log.Error("Failed to load session", zap.Uint("session_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve session",
		})
	}

	return c.JSON(http.StatusOK, session)
}

// ChatRequest is the payload of POST /api/chat
type ChatRequest struct {
	SessionID uint   `json:"session_id"`
	Message   string `json:"message"`
}

// Chat handles POST /api/chat
func (h *SessionHandler) Chat(c echo.Context) error {
	log := logger.FromContext(c)

	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}
	if req.SessionID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "session_id is required",
		})
	}
	if req.Message == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "message is required",
		})
	}

	response, err := h.chat.ProcessMessage(c.Request().Context(), req.SessionID, req.Message)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "Session not found",
			})
		}
		log.Error("Failed to process message",
			zap.Uint("session_id", req.SessionID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to process message",
		})
	}

	log.Info("Chat message processed",
		zap.Uint("session_id", req.SessionID),
		zap.String("phase", response.SessionPhase),
		zap.Int("progress", response.Progress))
	return c.JSON(http.StatusOK, response)
}
