// AcessoHub | 2026
// security_test.go

package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword_VerifyRoundtrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$argon2id$"))

	valid, err := VerifyPassword("correct horse battery staple", hash)
	require.NoError(t, err)
	require.True(t, valid)

	valid, err = VerifyPassword("wrong password", hash)
	require.NoError(t, err)
	require.False(t, valid)
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	first, err := HashPassword("same input")
	require.NoError(t, err)

	second, err := HashPassword("same input")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	_, err := VerifyPassword("anything", "not-a-phc-string")
	require.Error(t, err)

	_, err = VerifyPassword("anything", "$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA")
	require.Error(t, err)
}

func TestVerifyPasswordTimingSafe(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)

	valid, err := VerifyPasswordTimingSafe("secret", &hash)
	require.NoError(t, err)
	require.True(t, valid)

	valid, err = VerifyPasswordTimingSafe("nope", &hash)
	require.NoError(t, err)
	require.False(t, valid)

	// No stored digest still burns a verification and still fails.
	valid, err = VerifyPasswordTimingSafe("secret", nil)
	require.NoError(t, err)
	require.False(t, valid)

	empty := ""
	valid, err = VerifyPasswordTimingSafe("secret", &empty)
	require.NoError(t, err)
	require.False(t, valid)
}

func TestGenerateAccessToken(t *testing.T) {
	first, err := GenerateAccessToken()
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := GenerateAccessToken()
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	// URL-safe: usable in headers without escaping.
	require.NotContains(t, first, "+")
	require.NotContains(t, first, "/")
}

func TestHashToken(t *testing.T) {
	token := "some-opaque-token"

	hash := HashToken(token)
	require.Len(t, hash, 64)
	require.Equal(t, hash, HashToken(token))

	require.True(t, CompareTokenHash(token, hash))
	require.False(t, CompareTokenHash("other-token", hash))
}
