package match

import (
	"context"
	"errors"
	"fmt"

	"github.com/emberhq/ember-api/internal/logging"
)

// Store defines the persistence operation the matching service needs.
type Store interface {
	AppendEdge(ctx context.Context, userID, matchedUserID string) error
}

// Service records one-directional match edges. Recording A matched B says
// nothing about B; the other account is never touched.
type Service struct {
	store  Store
	logger *logging.Logger
}

func NewService(store Store, logger *logging.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Add appends a match edge to userID's matches sequence.
func (s *Service) Add(ctx context.Context, userID, matchedUserID string) error {
	s.logger.Debug("appending match edge",
		"user_id", userID,
		"matched_user_id", matchedUserID,
	)

	err := s.store.AppendEdge(ctx, userID, matchedUserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to add match: %w", err)
	}
	return nil
}
