// AcessoHub | 2026
// entity.go

package auth

import (
	"time"
)

// AccessToken is one issued session credential. Only the SHA-256 of the
// opaque plaintext is stored; the plaintext leaves the server exactly once,
// in the issue response. Tokens carry no expiry.
type AccessToken struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	TokenHash string    `db:"token_hash"`
	CreatedAt time.Time `db:"created_at"`
}
