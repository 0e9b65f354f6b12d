package account

import (
	"time"
)

// Account is a registered user record keyed by UserID.
//
// Identity and credentials are strongly typed; everything else a client
// stores about a user (name, gender identity, photos, bio, preferences)
// lives in the open Profile map, which the service deliberately does not
// enumerate or validate.
type Account struct {
	UserID       string         `json:"user_id"`
	Email        string         `json:"email"`
	PasswordHash string         `json:"-"` // Never expose password hash in JSON
	Profile      map[string]any `json:"profile_fields"`
	Matches      []MatchEdge    `json:"matches"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// MatchEdge records that this account matched with another. Edges are
// one-directional and append-only; no symmetry or dedup is enforced.
type MatchEdge struct {
	MatchedUserID string `json:"matched_user_id"`
}

// Session is a freshly issued bearer credential bound to a user id.
type Session struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}
