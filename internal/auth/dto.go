// AcessoHub | 2026
// dto.go

package auth

type RegisterRequest struct {
	Name        string `json:"name"         validate:"required,min=1,max=100"`
	Email       string `json:"email"        validate:"required,email,max=255"`
	Password    string `json:"password"     validate:"required,min=1,max=128"`
	NationalID  string `json:"national_id"  validate:"required,min=1,max=32"`
	AccessLevel *int   `json:"access_level" validate:"omitempty,gte=1,lte=5"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required"`
}
