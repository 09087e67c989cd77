// AcessoHub | 2026
// handler_test.go

package user

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// passthroughAuth stands in for the bearer-token authenticator so handler
// tests exercise routing and envelopes without a token store.
func passthroughAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)
	})
}

func newTestRouter(t *testing.T) (chi.Router, *Service) {
	t.Helper()

	svc := NewService(newFakeRepository())
	handler := NewHandler(svc)

	router := chi.NewRouter()
	handler.RegisterRoutes(router, passthroughAuth)
	return router, svc
}

func doJSON(
	t *testing.T,
	router chi.Router,
	method, target string,
	body any,
) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var env map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestUserCreateEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/users/", map[string]any{
		"name":        "Ana",
		"email":       "ana@example.com",
		"password":    "s3cret",
		"national_id": "123.456.789-00",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	require.Equal(t, "success", env["status"])
	require.Equal(t, "user created successfully", env["message"])

	data, ok := env["data"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "12345678900", data["national_id"])
	require.Equal(t, float64(1), data["access_level"])
	require.NotContains(t, data, "password_hash")
	require.NotContains(t, data, "password")
}

func TestUserCreateEndpoint_MalformedBody(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(
		http.MethodPost,
		"/users/",
		bytes.NewBufferString("{not json"),
	)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// Malformed input is a validation failure, so 401 like the rest.
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	env := decodeEnvelope(t, rec)
	require.Equal(t, "error", env["status"])

	erros, ok := env["erros"].(map[string]any)
	require.True(t, ok)
	require.Contains(t, erros, "_")
}

func TestUserCreateEndpoint_ValidationError(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/users/", map[string]any{
		"name":         "Ana",
		"email":        "not-an-email",
		"password":     "pw",
		"national_id":  "123",
		"access_level": 9,
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	env := decodeEnvelope(t, rec)
	require.Equal(t, "error", env["status"])

	erros, ok := env["erros"].(map[string]any)
	require.True(t, ok)
	require.Contains(t, erros, "email")
	require.Contains(t, erros, "access_level")
}

func TestUserCreateEndpoint_DuplicateEmail(t *testing.T) {
	router, svc := newTestRouter(t)

	_, err := svc.Create(context.Background(), CreateUserRequest{
		Name:       "Ana",
		Email:      "ana@example.com",
		Password:   "pw",
		NationalID: "11122233344",
	})
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodPost, "/users/", map[string]any{
		"name":        "Impostor",
		"email":       "ana@example.com",
		"password":    "pw",
		"national_id": "99988877766",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	env := decodeEnvelope(t, rec)
	erros, ok := env["erros"].(map[string]any)
	require.True(t, ok)
	require.Contains(t, erros, "email")
}

func TestUserListEndpoint(t *testing.T) {
	router, svc := newTestRouter(t)

	_, err := svc.Create(context.Background(), CreateUserRequest{
		Name:       "Ana",
		Email:      "ana@example.com",
		Password:   "pw",
		NationalID: "11122233344",
	})
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodGet, "/users/", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	require.Equal(t, "success", env["status"])

	data, ok := env["data"].([]any)
	require.True(t, ok)
	require.Len(t, data, 1)
}

func TestUserUpdateEndpoint(t *testing.T) {
	router, svc := newTestRouter(t)

	created, err := svc.Create(context.Background(), CreateUserRequest{
		Name:       "Ana",
		Email:      "ana@example.com",
		Password:   "pw",
		NationalID: "11122233344",
	})
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodPut, "/users/"+created.ID, map[string]any{
		"name": "Ana Silva",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	require.Equal(t, "user updated successfully", env["message"])

	data, ok := env["data"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "Ana Silva", data["name"])
	require.Equal(t, "ana@example.com", data["email"])
}

func TestUserUpdateEndpoint_NotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	target := "/users/" + uuid.New().String()
	rec := doJSON(t, router, http.MethodPut, target, map[string]any{
		"name": "Nobody",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)

	env := decodeEnvelope(t, rec)
	require.Equal(t, "error", env["status"])
	require.Equal(t, "user not found", env["message"])
}

// Identifiers that cannot be UUIDs never reach the store; they 404 like any
// other unknown user.
func TestUserEndpoints_MalformedID(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPut, "/users/missing-id", map[string]any{
		"name": "Nobody",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "user not found", decodeEnvelope(t, rec)["message"])

	rec = doJSON(t, router, http.MethodDelete, "/users/missing-id", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserDeleteEndpoint(t *testing.T) {
	router, svc := newTestRouter(t)

	created, err := svc.Create(context.Background(), CreateUserRequest{
		Name:       "Ana",
		Email:      "ana@example.com",
		Password:   "pw",
		NationalID: "11122233344",
	})
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodDelete, "/users/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "user deleted successfully", decodeEnvelope(t, rec)["message"])

	rec = doJSON(t, router, http.MethodDelete, "/users/"+created.ID, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
