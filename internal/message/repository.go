package message

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/emberhq/ember-api/internal/database"
)

// Repository handles message persistence
type Repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) *Repository {
	return &Repository{db: db}
}

// Insert stores a message
func (r *Repository) Insert(ctx context.Context, msg *Message) error {
	dbMsg := &database.Message{
		ID:         msg.ID,
		FromUserID: msg.FromUserID,
		ToUserID:   msg.ToUserID,
		Payload:    msg.Payload,
	}

	_, err := r.db.NewInsert().
		Model(dbMsg).
		Returning("created_at").
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}

	msg.CreatedAt = dbMsg.CreatedAt
	return nil
}

// GetDirectional returns all messages sent from one user to another, in
// insertion order. The reverse direction is a separate query by contract.
func (r *Repository) GetDirectional(ctx context.Context, fromUserID, toUserID string) ([]*Message, error) {
	var dbMsgs []database.Message
	err := r.db.NewSelect().
		Model(&dbMsgs).
		Where("from_user_id = ?", fromUserID).
		Where("to_user_id = ?", toUserID).
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}

	messages := make([]*Message, 0, len(dbMsgs))
	for i := range dbMsgs {
		m := &dbMsgs[i]
		messages = append(messages, &Message{
			ID:         m.ID,
			FromUserID: m.FromUserID,
			ToUserID:   m.ToUserID,
			Payload:    m.Payload,
			CreatedAt:  m.CreatedAt,
		})
	}
	return messages, nil
}
