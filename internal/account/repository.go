package account

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/uptrace/bun"

	"github.com/emberhq/ember-api/internal/database"
)

var (
	ErrNotFound       = errors.New("account not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

// Repository handles account persistence
type Repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) *Repository {
	return &Repository{db: db}
}

// Insert creates a new account row. Email uniqueness is enforced by the
// store's unique constraint, so concurrent signups with the same email
// cannot both succeed; the losing insert surfaces ErrDuplicateEmail.
func (r *Repository) Insert(ctx context.Context, acc *Account) error {
	dbAcc := &database.Account{
		UserID:       acc.UserID,
		Email:        acc.Email,
		PasswordHash: acc.PasswordHash,
		Profile:      acc.Profile,
		Matches:      mapEdgesToDB(acc.Matches),
	}

	_, err := r.db.NewInsert().
		Model(dbAcc).
		Exec(ctx)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key value violates unique constraint") {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to insert account: %w", err)
	}

	return nil
}

// GetByEmail retrieves an account by its normalized email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*Account, error) {
	dbAcc := new(database.Account)
	err := r.db.NewSelect().
		Model(dbAcc).
		Where("email = ?", email).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account by email: %w", err)
	}

	return mapDBAccountToModel(dbAcc), nil
}

// GetByID retrieves an account by user id
func (r *Repository) GetByID(ctx context.Context, userID string) (*Account, error) {
	dbAcc := new(database.Account)
	err := r.db.NewSelect().
		Model(dbAcc).
		Where("user_id = ?", userID).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account by id: %w", err)
	}

	return mapDBAccountToModel(dbAcc), nil
}

// GetByIDs retrieves every account whose id is in the given set.
// Ids with no account are silently omitted from the result.
func (r *Repository) GetByIDs(ctx context.Context, userIDs []string) ([]*Account, error) {
	if len(userIDs) == 0 {
		return []*Account{}, nil
	}

	var dbAccs []database.Account
	err := r.db.NewSelect().
		Model(&dbAccs).
		Where("user_id IN (?)", bun.In(userIDs)).
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to get accounts by ids: %w", err)
	}

	return mapDBAccountsToModels(dbAccs), nil
}

// GetByProfileField retrieves every account whose profile attribute equals
// the given value. Returns an empty slice when none match.
func (r *Repository) GetByProfileField(ctx context.Context, attribute, value string) ([]*Account, error) {
	var dbAccs []database.Account
	err := r.db.NewSelect().
		Model(&dbAccs).
		Where("profile->>? = ?", attribute, value).
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to get accounts by profile field: %w", err)
	}

	return mapDBAccountsToModels(dbAccs), nil
}

// MergeProfile applies the given fields on top of the account's profile map
// in a single round trip (existing keys not in fields are preserved).
// ErrNotFound when no row was modified.
func (r *Repository) MergeProfile(ctx context.Context, userID string, fields map[string]any) error {
	payload, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("failed to encode profile fields: %w", err)
	}

	result, err := r.db.NewUpdate().
		Model((*database.Account)(nil)).
		Set("profile = profile || ?::jsonb", string(payload)).
		Set("updated_at = NOW()").
		Where("user_id = ?", userID).
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// mapDBAccountToModel converts database model to domain model
func mapDBAccountToModel(dba *database.Account) *Account {
	return &Account{
		UserID:       dba.UserID,
		Email:        dba.Email,
		PasswordHash: dba.PasswordHash,
		Profile:      dba.Profile,
		Matches:      mapEdgesToModel(dba.Matches),
		CreatedAt:    dba.CreatedAt,
		UpdatedAt:    dba.UpdatedAt,
	}
}

func mapDBAccountsToModels(dbAccs []database.Account) []*Account {
	accounts := make([]*Account, 0, len(dbAccs))
	for i := range dbAccs {
		accounts = append(accounts, mapDBAccountToModel(&dbAccs[i]))
	}
	return accounts
}

func mapEdgesToDB(edges []MatchEdge) []database.MatchEdge {
	out := make([]database.MatchEdge, 0, len(edges))
	for _, e := range edges {
		out = append(out, database.MatchEdge{MatchedUserID: e.MatchedUserID})
	}
	return out
}

func mapEdgesToModel(edges []database.MatchEdge) []MatchEdge {
	out := make([]MatchEdge, 0, len(edges))
	for _, e := range edges {
		out = append(out, MatchEdge{MatchedUserID: e.MatchedUserID})
	}
	return out
}
