package match

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/emberhq/ember-api/internal/httputil"
	"github.com/emberhq/ember-api/internal/logging"
)

// Handler contains HTTP handlers for match endpoints
type Handler struct {
	service *Service
	logger  *logging.Logger
}

func NewHandler(service *Service, logger *logging.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// AddMatchRequest represents the add-match request body
type AddMatchRequest struct {
	UserID        string `json:"userId"`
	MatchedUserID string `json:"matchedUserId"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ConfirmationResponse represents a bare success confirmation
type ConfirmationResponse struct {
	Message string `json:"message"`
}

// AddMatch appends a match edge to the caller's match list
// @Summary      Record a match
// @Description  Append matchedUserId onto userId's match list. One-directional; no dedup.
// @Tags         match
// @Accept       json
// @Produce      json
// @Param        request body AddMatchRequest true "User id and matched user id"
// @Success      200 {object} ConfirmationResponse
// @Failure      400 {object} ErrorResponse "Invalid request body"
// @Failure      404 {object} ErrorResponse "Unknown user"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /addmatch [put]
func (h *Handler) AddMatch(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	var req AddMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid add-match request body", "error", err.Error())
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}
	if req.UserID == "" || req.MatchedUserID == "" {
		httputil.RespondErrorWithCode(w, "userId and matchedUserId are required", httputil.CodeMissingParameter, http.StatusBadRequest)
		return
	}

	logger = logger.WithFields(map[string]any{
		"user_id":         req.UserID,
		"matched_user_id": req.MatchedUserID,
	})

	if err := h.service.Add(r.Context(), req.UserID, req.MatchedUserID); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			logger.Warn("add match failed: unknown user")
			httputil.RespondErrorWithCode(w, "user not found", httputil.CodeUserNotFound, http.StatusNotFound)
			return
		}
		logger.Error("add match failed: internal error", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to add match", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	logger.Info("match recorded")

	httputil.RespondJSON(w, ConfirmationResponse{Message: "match added"}, http.StatusOK)
}
