package database

import (
	"time"

	"github.com/uptrace/bun"
)

// Account is the accounts row. The row is document-shaped: identity and
// credentials are fixed columns, everything profile-related lives in the
// open JSONB profile map and matches is an append-only JSONB array.
type Account struct {
	bun.BaseModel `bun:"table:accounts,alias:a"`

	UserID       string         `bun:"user_id,pk"`
	Email        string         `bun:"email,notnull,unique"`
	PasswordHash string         `bun:"password_hash,notnull"`
	Profile      map[string]any `bun:"profile,type:jsonb,notnull,default:'{}'"`
	Matches      []MatchEdge    `bun:"matches,type:jsonb,notnull,default:'[]'"`
	CreatedAt    time.Time      `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt    time.Time      `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// MatchEdge records that the owning account matched with another account.
// One-directional: inserting an edge on A says nothing about B.
type MatchEdge struct {
	MatchedUserID string `json:"matched_user_id"`
}

// Message is the messages row. The caller's message document is stored
// verbatim in payload; from/to are lifted into columns for the directional
// pair query and are not validated against accounts.
type Message struct {
	bun.BaseModel `bun:"table:messages,alias:m"`

	ID         string         `bun:"id,pk"`
	FromUserID string         `bun:"from_user_id,notnull"`
	ToUserID   string         `bun:"to_user_id,notnull"`
	Payload    map[string]any `bun:"payload,type:jsonb,notnull"`
	CreatedAt  time.Time      `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}
