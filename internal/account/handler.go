package account

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/emberhq/ember-api/internal/httputil"
	"github.com/emberhq/ember-api/internal/logging"
)

// Handler contains HTTP handlers for account endpoints
type Handler struct {
	service *Service
	logger  *logging.Logger
}

func NewHandler(service *Service, logger *logging.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// CredentialsRequest represents the signup and login request body
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateRequest represents the profile update request body
type UpdateRequest struct {
	UserID     string         `json:"user_id"`
	UpdateData map[string]any `json:"updateData"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ConfirmationResponse represents a bare success confirmation
type ConfirmationResponse struct {
	Message string `json:"message"`
}

// SignUp handles account creation
// @Summary      Create an account
// @Description  Create a new account with email and password and receive a session token.
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        request body CredentialsRequest true "Signup credentials"
// @Success      201 {object} Session
// @Failure      400 {object} ErrorResponse "Invalid request or validation error"
// @Failure      409 {object} ErrorResponse "Email already exists"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /signup [post]
func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid signup request body", "error", err.Error())
		respondError(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	logger = logger.WithFields(map[string]any{"email": req.Email})

	session, err := h.service.SignUp(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			logger.Warn("signup failed: email already exists")
			respondError(w, "user already exists, please login", httputil.CodeEmailAlreadyExists, http.StatusConflict)
			return
		}
		if errors.Is(err, ErrEmailRequired) {
			logger.Warn("signup failed: validation error", "error", err.Error())
			respondError(w, err.Error(), httputil.CodeEmailRequired, http.StatusBadRequest)
			return
		}
		if errors.Is(err, ErrPasswordRequired) {
			logger.Warn("signup failed: validation error", "error", err.Error())
			respondError(w, err.Error(), httputil.CodePasswordRequired, http.StatusBadRequest)
			return
		}
		if errors.Is(err, ErrPasswordTooShort) {
			logger.Warn("signup failed: validation error", "error", err.Error())
			respondError(w, err.Error(), httputil.CodePasswordTooShort, http.StatusBadRequest)
			return
		}
		if errors.Is(err, ErrInvalidEmailFormat) {
			logger.Warn("signup failed: validation error", "error", err.Error())
			respondError(w, err.Error(), httputil.CodeInvalidEmailFormat, http.StatusBadRequest)
			return
		}
		logger.Error("signup failed: internal error", "error", err.Error())
		respondError(w, "failed to sign up", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	logger.Info("account created", "user_id", session.UserID)

	respondJSON(w, session, http.StatusCreated)
}

// LogIn handles credential verification
// @Summary      Log in
// @Description  Verify credentials and receive a fresh session token.
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        request body CredentialsRequest true "Login credentials"
// @Success      201 {object} Session
// @Failure      400 {object} ErrorResponse "Invalid request body"
// @Failure      401 {object} ErrorResponse "Wrong password"
// @Failure      404 {object} ErrorResponse "Unknown email"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /login [post]
func (h *Handler) LogIn(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid login request body", "error", err.Error())
		respondError(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	logger = logger.WithFields(map[string]any{"email": req.Email})

	session, err := h.service.LogIn(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			logger.Warn("login failed: unknown email")
			respondError(w, "user not found", httputil.CodeUserNotFound, http.StatusNotFound)
			return
		}
		if errors.Is(err, ErrWrongPassword) {
			logger.Warn("login failed: wrong password")
			respondError(w, "password is incorrect", httputil.CodeWrongPassword, http.StatusUnauthorized)
			return
		}
		if errors.Is(err, ErrEmailRequired) || errors.Is(err, ErrPasswordRequired) {
			logger.Warn("login failed: validation error", "error", err.Error())
			respondError(w, err.Error(), httputil.CodeInvalidRequestBody, http.StatusBadRequest)
			return
		}
		logger.Error("login failed: internal error", "error", err.Error())
		respondError(w, "failed to log in", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	logger.Info("user logged in", "user_id", session.UserID)

	respondJSON(w, session, http.StatusCreated)
}

// GetUser returns a single account
// @Summary      Get an account
// @Description  Fetch one account by user id. The password hash is never serialized.
// @Tags         account
// @Produce      json
// @Param        userId query string true "User id"
// @Success      200 {object} Account
// @Failure      400 {object} ErrorResponse "Missing userId"
// @Failure      404 {object} ErrorResponse "Unknown user"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /user [get]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	userID := r.URL.Query().Get("userId")
	if userID == "" {
		respondError(w, "userId is required", httputil.CodeMissingParameter, http.StatusBadRequest)
		return
	}

	acc, err := h.service.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			logger.Warn("account not found", "user_id", userID)
			respondError(w, "user not found", httputil.CodeUserNotFound, http.StatusNotFound)
			return
		}
		logger.Error("failed to fetch account", "user_id", userID, "error", err.Error())
		respondError(w, "failed to fetch user", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	respondJSON(w, acc, http.StatusOK)
}

// GetUsers returns every account whose id is in the given set
// @Summary      Get accounts by id set
// @Description  Fetch all accounts whose ids appear in the JSON-encoded userIds array. Missing ids are omitted.
// @Tags         account
// @Produce      json
// @Param        userIds query string true "JSON-encoded array of user ids"
// @Success      200 {array} Account
// @Failure      400 {object} ErrorResponse "Unparsable id list"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /users [get]
func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	var userIDs []string
	if err := json.Unmarshal([]byte(r.URL.Query().Get("userIds")), &userIDs); err != nil {
		logger.Warn("unparsable userIds list", "error", err.Error())
		respondError(w, "userIds must be a JSON array of ids", httputil.CodeInvalidUserIDList, http.StatusBadRequest)
		return
	}

	accounts, err := h.service.GetMany(r.Context(), userIDs)
	if err != nil {
		logger.Error("failed to fetch accounts", "error", err.Error())
		respondError(w, "failed to fetch users", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	respondJSON(w, accounts, http.StatusOK)
}

// GetGenderedUsers returns accounts filtered by gender identity
// @Summary      Get accounts by gender identity
// @Description  Fetch all accounts whose profile gender_identity equals the given value.
// @Tags         account
// @Produce      json
// @Param        gender query string true "Gender identity value"
// @Success      200 {array} Account
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /gendered-users [get]
func (h *Handler) GetGenderedUsers(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	gender := r.URL.Query().Get("gender")

	accounts, err := h.service.GetByAttribute(r.Context(), "gender_identity", gender)
	if err != nil {
		logger.Error("failed to fetch gendered accounts", "error", err.Error())
		respondError(w, "failed to fetch users", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	respondJSON(w, accounts, http.StatusOK)
}

// UpdateUser merges profile fields into an account
// @Summary      Update an account's profile
// @Description  Merge the given fields into the account's profile map. Null-valued fields are dropped.
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        request body UpdateRequest true "User id and update data"
// @Success      200 {object} ConfirmationResponse
// @Failure      400 {object} ErrorResponse "Invalid request body"
// @Failure      404 {object} ErrorResponse "No document modified"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /user [put]
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid update request body", "error", err.Error())
		respondError(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}
	if req.UserID == "" {
		respondError(w, "user_id is required", httputil.CodeMissingParameter, http.StatusBadRequest)
		return
	}

	logger = logger.WithFields(map[string]any{"user_id": req.UserID})

	if err := h.service.Update(r.Context(), req.UserID, req.UpdateData); err != nil {
		if errors.Is(err, ErrNotFound) {
			logger.Warn("update modified no document")
			respondError(w, "user not found", httputil.CodeUserNotFound, http.StatusNotFound)
			return
		}
		logger.Error("failed to update account", "error", err.Error())
		respondError(w, "failed to update user", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	logger.Info("account updated")

	respondJSON(w, ConfirmationResponse{Message: "user updated"}, http.StatusOK)
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, data any, statusCode int) {
	httputil.RespondJSON(w, data, statusCode)
}

// respondError sends an error response with a machine-readable code
func respondError(w http.ResponseWriter, message string, code string, statusCode int) {
	httputil.RespondErrorWithCode(w, message, code, statusCode)
}
