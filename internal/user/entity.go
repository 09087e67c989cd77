// AcessoHub | 2026
// entity.go

package user

import (
	"time"
)

const (
	MinAccessLevel     = 1
	MaxAccessLevel     = 5
	DefaultAccessLevel = 1
)

type User struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	NationalID   string    `db:"national_id"`
	AccessLevel  int       `db:"access_level"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
