// AcessoHub | 2026
// dto.go

package user

import (
	"time"
)

type CreateUserRequest struct {
	Name        string `json:"name"         validate:"required,min=1,max=100"`
	Email       string `json:"email"        validate:"required,email,max=255"`
	Password    string `json:"password"     validate:"required,min=1,max=128"`
	NationalID  string `json:"national_id"  validate:"required,min=1,max=32"`
	AccessLevel *int   `json:"access_level" validate:"omitempty,gte=1,lte=5"`
}

// UpdateUserRequest carries partial-update semantics: nil means the field is
// untouched. Password is deliberately absent; updates never change it.
type UpdateUserRequest struct {
	Name        *string `json:"name,omitempty"         validate:"omitempty,min=1,max=100"`
	Email       *string `json:"email,omitempty"        validate:"omitempty,email,max=255"`
	NationalID  *string `json:"national_id,omitempty"  validate:"omitempty,min=1,max=32"`
	AccessLevel *int    `json:"access_level,omitempty" validate:"omitempty,gte=1,lte=5"`
}

// UserResponse is the projection exposed on every read path. The password
// digest never appears here.
type UserResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	NationalID  string    `json:"national_id"`
	AccessLevel int       `json:"access_level"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		NationalID:  u.NationalID,
		AccessLevel: u.AccessLevel,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func ToUserResponseList(users []User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, ToUserResponse(&u))
	}
	return responses
}
