package message

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/emberhq/ember-api/internal/httputil"
	"github.com/emberhq/ember-api/internal/logging"
)

// Handler contains HTTP handlers for message endpoints
type Handler struct {
	service *Service
	logger  *logging.Logger
}

func NewHandler(service *Service, logger *logging.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// SendMessageRequest represents the send-message request body
type SendMessageRequest struct {
	Message map[string]any `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SendMessage stores one message
// @Summary      Send a message
// @Description  Persist the supplied message payload verbatim. The payload must carry from_user_id and to_user_id.
// @Tags         message
// @Accept       json
// @Produce      json
// @Param        request body SendMessageRequest true "Message payload"
// @Success      200 {object} Message
// @Failure      400 {object} ErrorResponse "Invalid request body or missing participants"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /message [post]
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid send-message request body", "error", err.Error())
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}
	if req.Message == nil {
		httputil.RespondErrorWithCode(w, "message is required", httputil.CodeMissingParameter, http.StatusBadRequest)
		return
	}

	msg, err := h.service.Send(r.Context(), req.Message)
	if err != nil {
		if errors.Is(err, ErrMissingParticipants) {
			logger.Warn("send message failed: missing participants")
			httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeMissingParameter, http.StatusBadRequest)
			return
		}
		logger.Error("send message failed: internal error", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to send message", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	logger.Info("message stored",
		"message_id", msg.ID,
		"from_user_id", msg.FromUserID,
		"to_user_id", msg.ToUserID,
	)

	httputil.RespondJSON(w, msg, http.StatusOK)
}

// GetMessages returns the messages sent from one user to another
// @Summary      Get messages between users
// @Description  Fetch all messages sent from userId to correspondingUserId, in insertion order. Directional only.
// @Tags         message
// @Produce      json
// @Param        userId query string true "Sender user id"
// @Param        correspondingUserId query string true "Recipient user id"
// @Success      200 {array} Message
// @Failure      400 {object} ErrorResponse "Missing ids"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /messages [get]
func (h *Handler) GetMessages(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	userID := r.URL.Query().Get("userId")
	correspondingUserID := r.URL.Query().Get("correspondingUserId")
	if userID == "" || correspondingUserID == "" {
		httputil.RespondErrorWithCode(w, "userId and correspondingUserId are required", httputil.CodeMissingParameter, http.StatusBadRequest)
		return
	}

	messages, err := h.service.Between(r.Context(), userID, correspondingUserID)
	if err != nil {
		logger.Error("failed to fetch messages", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to fetch messages", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, messages, http.StatusOK)
}
