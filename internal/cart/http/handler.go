package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/grandassist/shopfront/internal/catalog"
	"github.com/grandassist/shopfront/internal/platform/httpx"
	"github.com/grandassist/shopfront/internal/platform/money"
	"github.com/grandassist/shopfront/internal/shared"
)

type addForm struct {
	ProductID string `json:"product_id" validate:"required"`
	Variant   string `json:"variant"`
	Qty       int    `json:"qty" validate:"required,gte=1,lte=99"`
}

type updateForm struct {
	Key string `json:"key" validate:"required"`
	Qty int    `json:"qty" validate:"gte=0,lte=99"`
}

type Handler struct {
	logger   *slog.Logger
	catalog  catalog.Repository
	validate *validator.Validate
}

func NewHandler(logger *slog.Logger, catalogRepo catalog.Repository) *Handler {
	return &Handler{
		logger:   logger,
		catalog:  catalogRepo,
		validate: validator.New(),
	}
}

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.Show)
	r.Post("/items", h.Add)
	r.Post("/update", h.Update)
}

// Show renders the cart: resolved line items, unit count, and subtotal.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	sess := shared.SessionFromContext(r.Context())
	if sess == nil {
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "no session")
		return
	}
	products := h.catalog.List(r.Context())
	subtotal := sess.Cart.Total(products)
	httpx.JSON(w, http.StatusOK, map[string]any{
		"items":            sess.Cart.Flatten(products),
		"units":            sess.Cart.Units(),
		"subtotal":         subtotal,
		"subtotal_display": money.Format(subtotal),
	})
}

// Add puts a product/variant selection in the cart, incrementing the
// quantity when the line already exists.
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	sess := shared.SessionFromContext(r.Context())
	if sess == nil {
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "no session")
		return
	}

	var form addForm
	if err := httpx.DecodeJSON(r, &form); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validate.Struct(form); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: %s", httpx.ErrValidation, err))
		return
	}

	product, err := h.catalog.FindByID(r.Context(), form.ProductID)
	if err != nil || !product.Active {
		httpx.Problem(w, http.StatusNotFound, "Not Found", "product "+form.ProductID+" not found")
		return
	}
	variant := form.Variant
	if variant == "" {
		variant = catalog.DefaultVariant
		if len(product.Variants) > 0 {
			variant = product.Variants[0]
		}
	}

	if err := sess.Cart.AddOrIncrement(product.ID, variant, form.Qty); err != nil {
		httpx.RespondError(w, err)
		return
	}
	h.logger.Info("cart add", "product_id", product.ID, "variant", variant, "qty", form.Qty)
	httpx.JSON(w, http.StatusOK, map[string]any{"units": sess.Cart.Units()})
}

// Update overwrites a line's quantity; zero removes the line.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	sess := shared.SessionFromContext(r.Context())
	if sess == nil {
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "no session")
		return
	}

	var form updateForm
	if err := httpx.DecodeJSON(r, &form); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validate.Struct(form); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: %s", httpx.ErrValidation, err))
		return
	}

	if err := sess.Cart.SetQuantity(form.Key, form.Qty); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"units": sess.Cart.Units()})
}
