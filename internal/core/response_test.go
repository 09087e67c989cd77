// AcessoHub | 2026
// response_test.go

package core

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func TestValidationFailed_EnvelopeShape(t *testing.T) {
	rec := httptest.NewRecorder()
	ValidationFailed(rec, map[string][]string{
		"email": {"the email given is not valid"},
	})

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))

	// Clients parse this exact key; the spelling is load-bearing.
	require.Contains(t, raw, "erros")
	require.NotContains(t, raw, "errors")

	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Equal(t, "error", env.Status)
	require.Equal(t, "validation error", env.Message)
	require.Equal(t,
		[]string{"the email given is not valid"},
		env.Erros["email"],
	)
}

func TestSuccessWithToken(t *testing.T) {
	rec := httptest.NewRecorder()
	SuccessWithToken(rec, "user created successfully", "tok-123", map[string]any{
		"id": "u1",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Equal(t, "success", env.Status)
	require.Equal(t, "tok-123", env.Token)
	require.NotNil(t, env.Data)
}

func TestUnauthorized_DefaultMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	Unauthorized(rec, "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Equal(t, "unauthenticated", env.Message)
}

func TestFieldErrors(t *testing.T) {
	type form struct {
		Name        string `validate:"required"`
		Email       string `validate:"required,email"`
		AccessLevel int    `validate:"gte=1,lte=5"`
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.Struct(form{Email: "nope", AccessLevel: 9})
	require.Error(t, err)

	fields := FieldErrors(err)
	require.Equal(t,
		[]string{"the name field is required"},
		fields["name"],
	)
	require.Equal(t,
		[]string{"the email given is not valid"},
		fields["email"],
	)
	require.Equal(t,
		[]string{"the access level must be between 1 and 5"},
		fields["access_level"],
	)
}

func TestFieldErrors_NonValidatorError(t *testing.T) {
	fields := FieldErrors(json.Unmarshal([]byte("{"), &struct{}{}))
	require.Equal(t, []string{"invalid request"}, fields["_"])
}
