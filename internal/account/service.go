package account

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/emberhq/ember-api/internal/auth"
	"github.com/emberhq/ember-api/internal/logging"
)

var (
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrWrongPassword      = errors.New("password is incorrect")
)

// Store defines the persistence operations the account service needs.
// Repository is the bun-backed implementation.
type Store interface {
	Insert(ctx context.Context, acc *Account) error
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByID(ctx context.Context, userID string) (*Account, error)
	GetByIDs(ctx context.Context, userIDs []string) ([]*Account, error)
	GetByProfileField(ctx context.Context, attribute, value string) ([]*Account, error)
	MergeProfile(ctx context.Context, userID string, fields map[string]any) error
}

// Service handles account business logic: signup, login, lookup and
// profile updates. It never retries; store failures propagate immediately.
type Service struct {
	store           Store
	tokenService    auth.TokenService
	logger          *logging.Logger
	sessionDuration time.Duration
}

func NewService(store Store, tokenService auth.TokenService, logger *logging.Logger, sessionDuration time.Duration) *Service {
	return &Service{
		store:           store,
		tokenService:    tokenService,
		logger:          logger,
		sessionDuration: sessionDuration,
	}
}

// SignUp creates a new account and issues a session token bound to the
// freshly generated user id. The email is normalized to lower case before
// the uniqueness check; a duplicate surfaces ErrDuplicateEmail.
func (s *Service) SignUp(ctx context.Context, email, password string) (*Session, error) {
	// Validate input
	if email == "" {
		return nil, ErrEmailRequired
	}
	if len(email) > 254 {
		return nil, ErrInvalidEmailFormat
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidEmailFormat
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}
	if len(password) < 8 {
		return nil, ErrPasswordTooShort
	}

	sanitizedEmail := strings.ToLower(email)

	passwordHash, err := hashPassword(password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err.Error())
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	userID := uuid.New()

	acc := &Account{
		UserID:       userID.String(),
		Email:        sanitizedEmail,
		PasswordHash: passwordHash,
		Profile:      map[string]any{},
		Matches:      []MatchEdge{},
	}

	if err := s.store.Insert(ctx, acc); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	token, err := s.tokenService.CreateToken(userID, s.sessionDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to create session token: %w", err)
	}

	return &Session{Token: token, UserID: userID.String()}, nil
}

// LogIn verifies credentials against the stored hash and issues a fresh
// session token. Unknown email and wrong password are reported as distinct
// errors, matching the boundary contract.
func (s *Service) LogIn(ctx context.Context, email, password string) (*Session, error) {
	if email == "" {
		return nil, ErrEmailRequired
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}

	sanitizedEmail := strings.ToLower(email)

	acc, err := s.store.GetByEmail(ctx, sanitizedEmail)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	if !verifyPassword(acc.PasswordHash, password) {
		return nil, ErrWrongPassword
	}

	userID, err := uuid.Parse(acc.UserID)
	if err != nil {
		s.logger.Error("stored user id is not a valid uuid", "user_id", acc.UserID, "error", err.Error())
		return nil, fmt.Errorf("stored user id is not a valid uuid: %w", err)
	}

	token, err := s.tokenService.CreateToken(userID, s.sessionDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to create session token: %w", err)
	}

	return &Session{Token: token, UserID: acc.UserID}, nil
}

// Get returns the full account record, hash included; the boundary strips
// sensitive fields during serialization.
func (s *Service) Get(ctx context.Context, userID string) (*Account, error) {
	acc, err := s.store.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return acc, nil
}

// GetMany returns every stored account whose id is in the given set;
// missing ids are silently omitted.
func (s *Service) GetMany(ctx context.Context, userIDs []string) ([]*Account, error) {
	accounts, err := s.store.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get accounts: %w", err)
	}
	return accounts, nil
}

// GetByAttribute returns every account whose profile attribute equals value.
// An empty result is not an error.
func (s *Service) GetByAttribute(ctx context.Context, attribute, value string) ([]*Account, error) {
	accounts, err := s.store.GetByProfileField(ctx, attribute, value)
	if err != nil {
		return nil, fmt.Errorf("failed to get accounts by attribute: %w", err)
	}
	return accounts, nil
}

// Update merges the given fields into the account's profile. Nil-valued
// fields are dropped before applying, so a null never erases an existing
// value. An unknown id and an update set that sanitizes down to nothing are
// indistinguishable (no document modified) and both surface ErrNotFound.
func (s *Service) Update(ctx context.Context, userID string, fields map[string]any) error {
	sanitized := make(map[string]any, len(fields))
	for k, v := range fields {
		if v == nil {
			continue
		}
		// user_id is the row selector clients tend to echo back; it is not
		// a profile field and must stay immutable.
		if k == "user_id" {
			continue
		}
		sanitized[k] = v
	}

	if dropped := len(fields) - len(sanitized); dropped > 0 {
		s.logger.Debug("dropped null or immutable update fields",
			"user_id", userID,
			"dropped", dropped,
		)
	}

	if len(sanitized) == 0 {
		return ErrNotFound
	}

	err := s.store.MergeProfile(ctx, userID, sanitized)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update account: %w", err)
	}

	return nil
}
