// AcessoHub | 2026
// service_test.go

package auth

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/acessohub/go-backend/internal/core"
	"github.com/acessohub/go-backend/internal/user"
)

// fakeUsers implements UserProvider with real password hashing, so login
// flows exercise the same credential path as production.
type fakeUsers struct {
	users map[string]*user.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: make(map[string]*user.User)}
}

func (f *fakeUsers) Create(
	_ context.Context,
	req user.CreateUserRequest,
) (*user.User, error) {
	email := strings.ToLower(req.Email)
	nationalID := user.NormalizeNationalID(req.NationalID)

	for _, existing := range f.users {
		if existing.Email == email {
			return nil, user.ErrEmailTaken
		}
		if existing.NationalID == nationalID {
			return nil, user.ErrNationalIDTaken
		}
	}

	hash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	accessLevel := user.DefaultAccessLevel
	if req.AccessLevel != nil {
		accessLevel = *req.AccessLevel
	}

	u := &user.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        email,
		PasswordHash: hash,
		NationalID:   nationalID,
		AccessLevel:  accessLevel,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUsers) GetByEmail(
	_ context.Context,
	email string,
) (*user.User, error) {
	for _, u := range f.users {
		if u.Email == strings.ToLower(email) {
			return u, nil
		}
	}
	return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	return u, nil
}

func (f *fakeUsers) remove(id string) {
	delete(f.users, id)
}

// fakeTokens is an in-memory token store keyed by hash.
type fakeTokens struct {
	byHash map[string]*AccessToken
}

func newFakeTokens() *fakeTokens {
	return &fakeTokens{byHash: make(map[string]*AccessToken)}
}

func (f *fakeTokens) Create(_ context.Context, token *AccessToken) error {
	token.CreatedAt = time.Now()
	stored := *token
	f.byHash[token.TokenHash] = &stored
	return nil
}

func (f *fakeTokens) FindByHash(
	_ context.Context,
	tokenHash string,
) (*AccessToken, error) {
	token, ok := f.byHash[tokenHash]
	if !ok {
		return nil, fmt.Errorf("find access token: %w", core.ErrNotFound)
	}
	copied := *token
	return &copied, nil
}

func (f *fakeTokens) RevokeAllForUser(_ context.Context, userID string) error {
	for hash, token := range f.byHash {
		if token.UserID == userID {
			delete(f.byHash, hash)
		}
	}
	return nil
}

func (f *fakeTokens) countForUser(userID string) int {
	count := 0
	for _, token := range f.byHash {
		if token.UserID == userID {
			count++
		}
	}
	return count
}

var (
	_ UserProvider = (*fakeUsers)(nil)
	_ Repository   = (*fakeTokens)(nil)
)

func newTestService() (*Service, *fakeUsers, *fakeTokens) {
	users := newFakeUsers()
	tokens := newFakeTokens()
	return NewService(users, tokens), users, tokens
}

func registerAna(t *testing.T, svc *Service) (*user.User, string) {
	t.Helper()

	u, token, err := svc.Register(context.Background(), RegisterRequest{
		Name:       "Ana",
		Email:      "ana@example.com",
		Password:   "s3cret",
		NationalID: "123.456.789-00",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	return u, token
}

func TestRegister_IssuesWorkingToken(t *testing.T) {
	svc, _, tokens := newTestService()

	u, token := registerAna(t, svc)
	require.Equal(t, "ana@example.com", u.Email)
	require.Equal(t, "12345678900", u.NationalID)

	// Only the hash is stored, never the plaintext.
	_, ok := tokens.byHash[token]
	require.False(t, ok)
	_, ok = tokens.byHash[core.HashToken(token)]
	require.True(t, ok)

	identity, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, u.ID, identity.UserID)
	require.Equal(t, u.AccessLevel, identity.AccessLevel)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService()
	registerAna(t, svc)

	_, _, err := svc.Register(context.Background(), RegisterRequest{
		Name:       "Impostor",
		Email:      "ANA@example.com",
		Password:   "pw",
		NationalID: "99988877766",
	})
	require.ErrorIs(t, err, user.ErrEmailTaken)
}

func TestLogin_Flows(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	registerAna(t, svc)

	u, token, err := svc.Login(ctx, LoginRequest{
		Email:    "ana@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, "ana@example.com", u.Email)

	// Wrong password and unknown email collapse into one error.
	_, _, err = svc.Login(ctx, LoginRequest{
		Email:    "ana@example.com",
		Password: "wrong",
	})
	require.ErrorIs(t, err, core.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, LoginRequest{
		Email:    "ghost@example.com",
		Password: "s3cret",
	})
	require.ErrorIs(t, err, core.ErrInvalidCredentials)
}

func TestLogin_KeepsExistingSessions(t *testing.T) {
	svc, _, tokens := newTestService()
	ctx := context.Background()
	u, firstToken := registerAna(t, svc)

	_, secondToken, err := svc.Login(ctx, LoginRequest{
		Email:    "ana@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)
	require.NotEqual(t, firstToken, secondToken)

	require.Equal(t, 2, tokens.countForUser(u.ID))

	// Both sessions stay valid.
	_, err = svc.ValidateToken(ctx, firstToken)
	require.NoError(t, err)
	_, err = svc.ValidateToken(ctx, secondToken)
	require.NoError(t, err)
}

func TestLogout_RevokesEverySession(t *testing.T) {
	svc, _, tokens := newTestService()
	ctx := context.Background()
	u, firstToken := registerAna(t, svc)

	_, secondToken, err := svc.Login(ctx, LoginRequest{
		Email:    "ana@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, u.ID))

	require.Zero(t, tokens.countForUser(u.ID))

	_, err = svc.ValidateToken(ctx, firstToken)
	require.ErrorIs(t, err, core.ErrTokenInvalid)
	_, err = svc.ValidateToken(ctx, secondToken)
	require.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestValidateToken_Unknown(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.ValidateToken(context.Background(), "never-issued")
	require.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestValidateToken_DeletedOwner(t *testing.T) {
	svc, users, _ := newTestService()
	ctx := context.Background()
	u, token := registerAna(t, svc)

	// The token row survives the user, but the gate rejects it.
	users.remove(u.ID)

	_, err := svc.ValidateToken(ctx, token)
	require.ErrorIs(t, err, core.ErrTokenInvalid)
}
