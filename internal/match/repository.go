package match

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/emberhq/ember-api/internal/database"
)

var ErrUserNotFound = errors.New("user not found")

// Repository appends match edges to the accounts collection
type Repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) *Repository {
	return &Repository{db: db}
}

// AppendEdge appends one match edge to the account's matches array in a
// single round trip. Edges are not deduplicated; repeated calls append
// repeated edges. ErrUserNotFound when userID resolves to no account.
func (r *Repository) AppendEdge(ctx context.Context, userID, matchedUserID string) error {
	edge, err := json.Marshal([]database.MatchEdge{{MatchedUserID: matchedUserID}})
	if err != nil {
		return fmt.Errorf("failed to encode match edge: %w", err)
	}

	result, err := r.db.NewUpdate().
		Model((*database.Account)(nil)).
		Set("matches = matches || ?::jsonb", string(edge)).
		Set("updated_at = NOW()").
		Where("user_id = ?", userID).
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("failed to append match edge: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}
