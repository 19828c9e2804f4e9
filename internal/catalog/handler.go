package catalog

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/grandassist/shopfront/internal/platform/httpx"
)

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

// MountShopRoutes registers the public browse endpoints.
func (h *Handler) MountShopRoutes(r chi.Router) {
	r.Get("/products", h.Browse)
	r.Get("/products/{id}", h.Show)
}

// MountAdminRoutes registers catalog management endpoints. The caller is
// expected to guard them with the admin gate.
func (h *Handler) MountAdminRoutes(r chi.Router) {
	r.Get("/products", h.AdminList)
	r.Post("/products", h.Create)
	r.Post("/products/{id}", h.Update)
	r.Post("/products/{id}/delete", h.Delete)
}

func (h *Handler) Browse(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = Categories[0]
	}
	if !ValidCategory(category) {
		httpx.RespondError(w, fmt.Errorf("%w: unknown category %q", httpx.ErrValidation, category))
		return
	}
	products := h.service.Browse(r.Context(), category, r.URL.Query().Get("q"))
	httpx.JSON(w, http.StatusOK, map[string]any{
		"category": category,
		"products": products,
	})
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	product, err := h.service.Get(r.Context(), id)
	if err != nil || !product.Active {
		httpx.Problem(w, http.StatusNotFound, "Not Found", "product "+id+" not found")
		return
	}
	httpx.JSON(w, http.StatusOK, product)
}

func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]any{
		"products": h.service.List(r.Context()),
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var form ProductForm
	if err := httpx.DecodeJSON(r, &form); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validate.Struct(form); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: %s", httpx.ErrValidation, err))
		return
	}
	product, err := h.service.Create(r.Context(), form)
	if err != nil {
		h.logger.Warn("create product failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	h.logger.Info("product created", "id", product.ID)
	httpx.JSON(w, http.StatusCreated, product)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var form ProductForm
	if err := httpx.DecodeJSON(r, &form); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validate.Struct(form); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: %s", httpx.ErrValidation, err))
		return
	}
	product, err := h.service.Update(r.Context(), id, form)
	if err != nil {
		h.logger.Warn("update product failed", "id", id, "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, product)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logger.Error("delete product failed", "id", id, "error", err)
		httpx.RespondError(w, err)
		return
	}
	h.logger.Info("product deleted", "id", id)
	httpx.JSON(w, http.StatusOK, map[string]string{"deleted": id})
}
