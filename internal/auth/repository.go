// AcessoHub | 2026
// repository.go

package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/acessohub/go-backend/internal/core"
)

// Repository is the token store. Every mutation is a single statement, so
// issue and revoke-all are atomic per user: a concurrent validator sees
// either all of a user's tokens or none of them.
type Repository interface {
	Create(ctx context.Context, token *AccessToken) error
	FindByHash(ctx context.Context, tokenHash string) (*AccessToken, error)
	RevokeAllForUser(ctx context.Context, userID string) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, token *AccessToken) error {
	query := `
		INSERT INTO access_tokens (id, user_id, token_hash)
		VALUES ($1, $2, $3)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &token.CreatedAt, query,
		token.ID,
		token.UserID,
		token.TokenHash,
	)
	if err != nil {
		return fmt.Errorf("create access token: %w", err)
	}

	return nil
}

func (r *repository) FindByHash(
	ctx context.Context,
	tokenHash string,
) (*AccessToken, error) {
	query := `
		SELECT id, user_id, token_hash, created_at
		FROM access_tokens
		WHERE token_hash = $1`

	var token AccessToken
	err := r.db.GetContext(ctx, &token, query, tokenHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("find access token: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find access token: %w", err)
	}

	return &token, nil
}

func (r *repository) RevokeAllForUser(
	ctx context.Context,
	userID string,
) error {
	query := `DELETE FROM access_tokens WHERE user_id = $1`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("revoke all user tokens: %w", err)
	}

	return nil
}
