package orders

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/grandassist/shopfront/internal/platform/httpx"
	"github.com/grandassist/shopfront/internal/platform/money"
	"github.com/grandassist/shopfront/internal/shared"
)

type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers the checkout endpoint.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/checkout", h.Checkout)
}

// MountAdminRoutes registers the admin order listing.
func (h *Handler) MountAdminRoutes(r chi.Router) {
	r.Get("/orders", h.List)
}

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	sess := shared.SessionFromContext(r.Context())
	if sess == nil {
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "no session")
		return
	}

	var form CheckoutForm
	if err := httpx.DecodeJSON(r, &form); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}

	order, err := h.service.PlaceOrder(r.Context(), sess.Cart, form)
	if err != nil {
		h.logger.Warn("checkout rejected", "error", err)
		httpx.RespondError(w, err)
		return
	}

	h.logger.Info("order placed", "order_id", order.OrderID, "subtotal", order.Subtotal)
	httpx.JSON(w, http.StatusCreated, map[string]any{
		"order":            order,
		"subtotal_display": money.Format(order.Subtotal),
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]any{
		"orders": h.service.List(r.Context()),
	})
}
