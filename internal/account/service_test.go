package account

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/emberhq/ember-api/internal/auth"
	"github.com/emberhq/ember-api/internal/logging"
)

// MockStore is a mock implementation of Store
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Insert(ctx context.Context, acc *Account) error {
	args := m.Called(ctx, acc)
	return args.Error(0)
}

func (m *MockStore) GetByEmail(ctx context.Context, email string) (*Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Account), args.Error(1)
}

func (m *MockStore) GetByID(ctx context.Context, userID string) (*Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Account), args.Error(1)
}

func (m *MockStore) GetByIDs(ctx context.Context, userIDs []string) ([]*Account, error) {
	args := m.Called(ctx, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Account), args.Error(1)
}

func (m *MockStore) GetByProfileField(ctx context.Context, attribute, value string) ([]*Account, error) {
	args := m.Called(ctx, attribute, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Account), args.Error(1)
}

func (m *MockStore) MergeProfile(ctx context.Context, userID string, fields map[string]any) error {
	args := m.Called(ctx, userID, fields)
	return args.Error(0)
}

func newTestService(t *testing.T, store Store) *Service {
	t.Helper()
	tokens, err := auth.NewPasetoService([]byte("0123456789abcdef0123456789abcdef"))
	require.NoError(t, err)
	return NewService(store, tokens, logging.NewLogger(true), 24*time.Hour)
}

func TestSignUpThenLogIn_SameUserID(t *testing.T) {
	store := new(MockStore)
	svc := newTestService(t, store)
	tokens, _ := auth.NewPasetoService([]byte("0123456789abcdef0123456789abcdef"))

	var stored *Account
	store.On("Insert", mock.Anything, mock.AnythingOfType("*account.Account")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*Account)
		}).
		Return(nil).Once()

	signupSession, err := svc.SignUp(context.Background(), "Alice@Example.com", "secret123")
	require.NoError(t, err)
	require.NotNil(t, stored)

	// Email normalized, hash computed, empty profile and matches
	assert.Equal(t, "alice@example.com", stored.Email)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.Empty(t, stored.Profile)
	assert.Empty(t, stored.Matches)

	store.On("GetByEmail", mock.Anything, "alice@example.com").Return(stored, nil).Once()

	loginSession, err := svc.LogIn(context.Background(), "ALICE@example.com", "secret123")
	require.NoError(t, err)

	// Both tokens decode to the same user id
	signupClaims, err := tokens.VerifyToken(signupSession.Token)
	require.NoError(t, err)
	loginClaims, err := tokens.VerifyToken(loginSession.Token)
	require.NoError(t, err)
	assert.Equal(t, signupClaims.UserID, loginClaims.UserID)
	assert.Equal(t, signupSession.UserID, loginSession.UserID)

	store.AssertExpectations(t)
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	store := new(MockStore)
	svc := newTestService(t, store)

	store.On("Insert", mock.Anything, mock.Anything).Return(ErrDuplicateEmail).Once()

	_, err := svc.SignUp(context.Background(), "alice@example.com", "secret123")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	store.AssertExpectations(t)
}

func TestSignUp_Validation(t *testing.T) {
	store := new(MockStore)
	svc := newTestService(t, store)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"empty email", "", "secret123", ErrEmailRequired},
		{"bad email format", "not-an-email", "secret123", ErrInvalidEmailFormat},
		{"empty password", "alice@example.com", "", ErrPasswordRequired},
		{"short password", "alice@example.com", "short", ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SignUp(context.Background(), tt.email, tt.password)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// No store round trips on validation failures
	store.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestLogIn_UnknownEmail(t *testing.T) {
	store := new(MockStore)
	svc := newTestService(t, store)

	store.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, ErrNotFound).Once()

	_, err := svc.LogIn(context.Background(), "ghost@example.com", "secret123")
	assert.ErrorIs(t, err, ErrNotFound)
	store.AssertExpectations(t)
}

func TestLogIn_WrongPassword(t *testing.T) {
	store := new(MockStore)
	svc := newTestService(t, store)

	hash, err := hashPassword("secret123")
	require.NoError(t, err)
	acc := &Account{
		UserID:       "4bc1f7e0-8a50-4e6f-9f38-0a1b2c3d4e5f",
		Email:        "alice@example.com",
		PasswordHash: hash,
	}
	store.On("GetByEmail", mock.Anything, "alice@example.com").Return(acc, nil).Once()

	_, err = svc.LogIn(context.Background(), "alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrWrongPassword)
	store.AssertExpectations(t)
}

func TestUpdate_DropsNullFieldsAndUserID(t *testing.T) {
	store := new(MockStore)
	svc := newTestService(t, store)

	store.On("MergeProfile", mock.Anything, "u1", map[string]any{
		"about": "hiker",
	}).Return(nil).Once()

	err := svc.Update(context.Background(), "u1", map[string]any{
		"about":   "hiker",
		"dob_day": nil, // null must not erase an existing value
		"user_id": "u1",
	})
	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestUpdate_AllNullFieldsIsNotFound(t *testing.T) {
	store := new(MockStore)
	svc := newTestService(t, store)

	err := svc.Update(context.Background(), "u1", map[string]any{
		"about": nil,
	})
	assert.ErrorIs(t, err, ErrNotFound)
	store.AssertNotCalled(t, "MergeProfile", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdate_UnknownUser(t *testing.T) {
	store := new(MockStore)
	svc := newTestService(t, store)

	store.On("MergeProfile", mock.Anything, "ghost", mock.Anything).Return(ErrNotFound).Once()

	err := svc.Update(context.Background(), "ghost", map[string]any{"about": "hiker"})
	assert.ErrorIs(t, err, ErrNotFound)
	store.AssertExpectations(t)
}

func TestVerifyPassword_RoundTrip(t *testing.T) {
	hash, err := hashPassword("secret123")
	require.NoError(t, err)

	assert.True(t, verifyPassword(hash, "secret123"))
	assert.False(t, verifyPassword(hash, "secret124"))
	assert.False(t, verifyPassword("not-an-encoded-hash", "secret123"))
}
