// AcessoHub | 2026
// service.go

package user

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/acessohub/go-backend/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// NormalizeNationalID strips every non-digit rune, so "123.456.789-00" and
// "12345678900" store and compare identically.
func NormalizeNationalID(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (s *Service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByEmail(
	ctx context.Context,
	email string,
) (*User, error) {
	return s.repo.GetByEmail(ctx, strings.ToLower(email))
}

// Create persists a new user. Inputs are assumed syntactically validated by
// the caller; this layer normalizes, hashes the password and enforces
// uniqueness. The uniqueness pre-checks are advisory; the store's unique
// constraints remain the authority under concurrency.
func (s *Service) Create(
	ctx context.Context,
	req CreateUserRequest,
) (*User, error) {
	email := strings.ToLower(req.Email)
	nationalID := NormalizeNationalID(req.NationalID)

	if taken, err := s.repo.ExistsByEmail(ctx, email, ""); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrEmailTaken
	}

	if taken, err := s.repo.ExistsByNationalID(ctx, nationalID, ""); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrNationalIDTaken
	}

	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	accessLevel := DefaultAccessLevel
	if req.AccessLevel != nil {
		accessLevel = *req.AccessLevel
	}

	u := &User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        email,
		PasswordHash: passwordHash,
		NationalID:   nationalID,
		AccessLevel:  accessLevel,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// Update applies only the supplied fields. The password hash is never
// touched here.
func (s *Service) Update(
	ctx context.Context,
	id string,
	req UpdateUserRequest,
) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		u.Name = *req.Name
	}

	if req.Email != nil {
		email := strings.ToLower(*req.Email)
		if email != u.Email {
			taken, err := s.repo.ExistsByEmail(ctx, email, id)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, ErrEmailTaken
			}
		}
		u.Email = email
	}

	if req.NationalID != nil {
		nationalID := NormalizeNationalID(*req.NationalID)
		if nationalID != u.NationalID {
			taken, err := s.repo.ExistsByNationalID(ctx, nationalID, id)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, ErrNationalIDTaken
			}
		}
		u.NationalID = nationalID
	}

	if req.AccessLevel != nil {
		u.AccessLevel = *req.AccessLevel
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// Delete removes the user row. It intentionally leaves the token store
// untouched: that matches the published API, where deleting a user does not
// revoke previously issued tokens. The access gate still rejects those
// tokens because the owning user no longer resolves.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// List returns every user to any authenticated caller, regardless of the
// caller's own access level. Preserved from the published API even though it
// over-exposes; changing it is a product decision.
func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}
