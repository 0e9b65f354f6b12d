package message

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/emberhq/ember-api/internal/logging"
)

var ErrMissingParticipants = errors.New("message must carry from_user_id and to_user_id")

// Store defines the persistence operations the messaging service needs.
type Store interface {
	Insert(ctx context.Context, msg *Message) error
	GetDirectional(ctx context.Context, fromUserID, toUserID string) ([]*Message, error)
}

// Service appends and retrieves messages between two accounts. Payloads are
// stored verbatim and participants are not checked against the accounts
// collection.
type Service struct {
	store  Store
	logger *logging.Logger
}

func NewService(store Store, logger *logging.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Send persists the supplied message payload verbatim and returns the
// stored message with its generated id. The payload must carry string
// from_user_id and to_user_id fields; everything else is opaque.
func (s *Service) Send(ctx context.Context, payload map[string]any) (*Message, error) {
	from, ok := payload["from_user_id"].(string)
	if !ok || from == "" {
		return nil, ErrMissingParticipants
	}
	to, ok := payload["to_user_id"].(string)
	if !ok || to == "" {
		return nil, ErrMissingParticipants
	}

	msg := &Message{
		ID:         uuid.NewString(),
		FromUserID: from,
		ToUserID:   to,
		Payload:    payload,
	}

	s.logger.Debug("storing message",
		"message_id", msg.ID,
		"from_user_id", from,
		"to_user_id", to,
	)

	if err := s.store.Insert(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	return msg, nil
}

// Between returns all messages where from equals userID and to equals
// correspondingUserID, in insertion order. Strictly directional: the
// reverse direction is not included.
func (s *Service) Between(ctx context.Context, userID, correspondingUserID string) ([]*Message, error) {
	messages, err := s.store.GetDirectional(ctx, userID, correspondingUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}
	return messages, nil
}
