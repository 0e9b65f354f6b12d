package match

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/emberhq/ember-api/internal/logging"
)

// MockStore is a mock implementation of Store
type MockStore struct {
	mock.Mock
}

func (m *MockStore) AppendEdge(ctx context.Context, userID, matchedUserID string) error {
	args := m.Called(ctx, userID, matchedUserID)
	return args.Error(0)
}

func TestAdd_AppendsOneEdgeForCallerOnly(t *testing.T) {
	store := new(MockStore)
	svc := NewService(store, logging.NewLogger(true))

	// Exactly one edge, on u1 only; u2 is never written to
	store.On("AppendEdge", mock.Anything, "u1", "u2").Return(nil).Once()

	err := svc.Add(context.Background(), "u1", "u2")
	require.NoError(t, err)

	store.AssertExpectations(t)
	store.AssertNotCalled(t, "AppendEdge", mock.Anything, "u2", "u1")
}

func TestAdd_RepeatedCallsAppendRepeatedEdges(t *testing.T) {
	store := new(MockStore)
	svc := NewService(store, logging.NewLogger(true))

	// No dedup: the same edge is appended twice
	store.On("AppendEdge", mock.Anything, "u1", "u2").Return(nil).Twice()

	require.NoError(t, svc.Add(context.Background(), "u1", "u2"))
	require.NoError(t, svc.Add(context.Background(), "u1", "u2"))

	store.AssertExpectations(t)
}

func TestAdd_UnknownUser(t *testing.T) {
	store := new(MockStore)
	svc := NewService(store, logging.NewLogger(true))

	store.On("AppendEdge", mock.Anything, "ghost", "u2").Return(ErrUserNotFound).Once()

	err := svc.Add(context.Background(), "ghost", "u2")
	assert.ErrorIs(t, err, ErrUserNotFound)
	store.AssertExpectations(t)
}
