package message

import (
	"time"
)

// Message is a stored chat message. The caller's document is kept verbatim
// in Payload; FromUserID/ToUserID are lifted out for the pair query and are
// never validated against the accounts collection. Messages are immutable
// and undeletable once stored.
type Message struct {
	ID         string         `json:"id"`
	FromUserID string         `json:"from_user_id"`
	ToUserID   string         `json:"to_user_id"`
	Payload    map[string]any `json:"payload"`
	CreatedAt  time.Time      `json:"created_at"`
}
