// AcessoHub | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/acessohub/go-backend/internal/core"
	"github.com/acessohub/go-backend/internal/middleware"
	"github.com/acessohub/go-backend/internal/user"
)

// UserProvider is the credential-store surface the auth service needs.
// *user.Service satisfies it.
type UserProvider interface {
	Create(ctx context.Context, req user.CreateUserRequest) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	GetByID(ctx context.Context, id string) (*user.User, error)
}

type Service struct {
	users  UserProvider
	tokens Repository
}

func NewService(users UserProvider, tokens Repository) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
	}
}

// Register creates the user and issues its first token. Validation happens
// at the handler, before any store access; uniqueness conflicts surface as
// user.ErrEmailTaken / user.ErrNationalIDTaken.
func (s *Service) Register(
	ctx context.Context,
	req RegisterRequest,
) (*user.User, string, error) {
	u, err := s.users.Create(ctx, user.CreateUserRequest{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		NationalID:  req.NationalID,
		AccessLevel: req.AccessLevel,
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(ctx, u.ID)
	if err != nil {
		return nil, "", err
	}

	return u, token, nil
}

// Login verifies credentials and issues a fresh token without touching any
// previously issued ones, so concurrent sessions stay valid. Unknown email
// and wrong password collapse into the same error, and the unknown-email
// path still pays for a hash verification.
func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
) (*user.User, string, error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // timing equalization only
			_, _ = core.VerifyPasswordTimingSafe(req.Password, nil)
			return nil, "", core.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("get user: %w", err)
	}

	valid, err := core.VerifyPasswordTimingSafe(req.Password, &u.PasswordHash)
	if err != nil {
		return nil, "", fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		return nil, "", core.ErrInvalidCredentials
	}

	token, err := s.issueToken(ctx, u.ID)
	if err != nil {
		return nil, "", err
	}

	return u, token, nil
}

func (s *Service) Profile(
	ctx context.Context,
	userID string,
) (*user.User, error) {
	return s.users.GetByID(ctx, userID)
}

// Logout revokes every token bound to the user, not just the presented one:
// ending one session ends them all. That is the published behavior and it
// is preserved exactly.
func (s *Service) Logout(ctx context.Context, userID string) error {
	if err := s.tokens.RevokeAllForUser(ctx, userID); err != nil {
		return fmt.Errorf("revoke all tokens: %w", err)
	}
	return nil
}

// ValidateToken resolves a bearer token to its owner. A token whose user no
// longer exists is rejected the same way as an unknown token.
func (s *Service) ValidateToken(
	ctx context.Context,
	token string,
) (*middleware.Identity, error) {
	stored, err := s.tokens.FindByHash(ctx, core.HashToken(token))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.ErrTokenInvalid
		}
		return nil, fmt.Errorf("find token: %w", err)
	}

	u, err := s.users.GetByID(ctx, stored.UserID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.ErrTokenInvalid
		}
		return nil, fmt.Errorf("get token owner: %w", err)
	}

	return &middleware.Identity{
		UserID:      u.ID,
		AccessLevel: u.AccessLevel,
	}, nil
}

func (s *Service) issueToken(ctx context.Context, userID string) (string, error) {
	plain, err := core.GenerateAccessToken()
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	token := &AccessToken{
		ID:        uuid.New().String(),
		UserID:    userID,
		TokenHash: core.HashToken(plain),
	}

	if err := s.tokens.Create(ctx, token); err != nil {
		return "", fmt.Errorf("store token: %w", err)
	}

	return plain, nil
}

var _ middleware.TokenValidator = (*Service)(nil)
