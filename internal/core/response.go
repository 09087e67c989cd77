// AcessoHub | 2026
// response.go

package core

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Envelope is the fixed response shape of the public API. The "erros" key
// spelling is part of the published contract; clients parse it as-is.
type Envelope struct {
	Status  string              `json:"status"`
	Message string              `json:"message,omitempty"`
	Token   string              `json:"token,omitempty"`
	Data    any                 `json:"data,omitempty"`
	Erros   map[string][]string `json:"erros,omitempty"`
	Error   string              `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	//nolint:errcheck // best-effort response write
	_ = json.NewEncoder(w).Encode(env)
}

func Success(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusOK, Envelope{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

func SuccessWithToken(w http.ResponseWriter, message, token string, data any) {
	writeJSON(w, http.StatusOK, Envelope{
		Status:  "success",
		Message: message,
		Token:   token,
		Data:    data,
	})
}

// SuccessData writes a success envelope without a message, used by list
// endpoints.
func SuccessData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, Envelope{
		Status: "success",
		Data:   data,
	})
}

// ValidationFailed reports field-keyed validation messages. The 401 status
// for validation failures is preserved from the published API contract.
func ValidationFailed(w http.ResponseWriter, fields map[string][]string) {
	writeJSON(w, http.StatusUnauthorized, Envelope{
		Status:  "error",
		Message: "validation error",
		Erros:   fields,
	})
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "unauthenticated"
	}
	writeJSON(w, http.StatusUnauthorized, Envelope{
		Status:  "error",
		Message: message,
	})
}

func Forbidden(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusForbidden, Envelope{
		Status:  "error",
		Message: message,
	})
}

func NotFound(w http.ResponseWriter, resource string) {
	writeJSON(w, http.StatusNotFound, Envelope{
		Status:  "error",
		Message: resource + " not found",
	})
}

func InternalServerError(w http.ResponseWriter, err error) {
	slog.Error("internal server error", "error", err)
	writeJSON(w, http.StatusInternalServerError, Envelope{
		Status:  "error",
		Message: "internal server error",
		Error:   err.Error(),
	})
}

// FieldErrors converts validator failures into the field→messages map used
// by the validation envelope.
func FieldErrors(err error) map[string][]string {
	fields := make(map[string][]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["_"] = []string{"invalid request"}
		return fields
	}

	for _, fe := range verrs {
		name := fieldName(fe)
		fields[name] = append(fields[name], fieldMessage(name, fe))
	}

	return fields
}

func fieldName(fe validator.FieldError) string {
	switch fe.Field() {
	case "Name":
		return "name"
	case "Email":
		return "email"
	case "Password":
		return "password"
	case "NationalID":
		return "national_id"
	case "AccessLevel":
		return "access_level"
	default:
		return fe.Field()
	}
}

func fieldMessage(name string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "the " + name + " field is required"
	case "email":
		return "the email given is not valid"
	case "gte", "lte", "min", "max":
		if name == "access_level" {
			return "the access level must be between 1 and 5"
		}
		return "the " + name + " field is out of range"
	default:
		return "the " + name + " field is invalid"
	}
}
