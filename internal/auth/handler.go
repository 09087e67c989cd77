// AcessoHub | 2026
// handler.go

package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/acessohub/go-backend/internal/core"
	"github.com/acessohub/go-backend/internal/middleware"
	"github.com/acessohub/go-backend/internal/user"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)

	r.Group(func(r chi.Router) {
		r.Use(authenticator)
		r.Get("/profile", h.Profile)
		r.Post("/logout", h.Logout)
	})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.ValidationFailed(w, map[string][]string{
			"_": {"invalid request body"},
		})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, core.FieldErrors(err))
		return
	}

	u, token, err := h.service.Register(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrEmailTaken):
			core.ValidationFailed(w, map[string][]string{
				"email": {"email already in use"},
			})
		case errors.Is(err, user.ErrNationalIDTaken):
			core.ValidationFailed(w, map[string][]string{
				"national_id": {"national id already in use"},
			})
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.SuccessWithToken(
		w,
		"user created successfully",
		token,
		user.ToUserResponse(u),
	)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.ValidationFailed(w, map[string][]string{
			"_": {"invalid request body"},
		})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, core.FieldErrors(err))
		return
	}

	u, token, err := h.service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, core.ErrInvalidCredentials) {
			core.Unauthorized(w, "incorrect email or password")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.SuccessWithToken(
		w,
		"user logged in successfully",
		token,
		user.ToUserResponse(u),
	)
}

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	u, err := h.service.Profile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "user")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Success(w, "user profile", user.ToUserResponse(u))
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	if err := h.service.Logout(r.Context(), userID); err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Success(w, "user logged out successfully", nil)
}
