package auth

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/grandassist/shopfront/internal/platform/httpx"
	"github.com/grandassist/shopfront/internal/shared"
)

type loginForm struct {
	Password string `json:"password" validate:"required"`
}

// Handler wires the admin gate endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{
		logger:   logger,
		service:  service,
		validate: validator.New(),
	}
}

// MountRoutes registers login and logout on the admin route group.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	sess := shared.SessionFromContext(r.Context())
	if sess == nil {
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "no session")
		return
	}

	var form loginForm
	if err := httpx.DecodeJSON(r, &form); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validate.Struct(form); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: %s", httpx.ErrValidation, err))
		return
	}

	if err := h.service.Login(sess, form.Password); err != nil {
		h.logger.Warn("admin login rejected")
		httpx.RespondError(w, err)
		return
	}
	h.logger.Info("admin login granted", "session", sess.ID)
	httpx.JSON(w, http.StatusOK, map[string]bool{"admin": true})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	sess := shared.SessionFromContext(r.Context())
	if sess == nil {
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "no session")
		return
	}
	h.service.Logout(sess)
	httpx.JSON(w, http.StatusOK, map[string]bool{"admin": false})
}

// RequireAdmin rejects requests whose session has not passed the gate.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := shared.SessionFromContext(r.Context())
		if sess == nil || !sess.IsAdmin() {
			httpx.Problem(w, http.StatusUnauthorized, "Unauthorized", "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
