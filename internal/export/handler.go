package export

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/grandassist/shopfront/internal/catalog"
	"github.com/grandassist/shopfront/internal/orders"
	"github.com/grandassist/shopfront/internal/platform/httpx"
)

type Handler struct {
	logger  *slog.Logger
	catalog catalog.Repository
	orders  orders.Repository
}

func NewHandler(logger *slog.Logger, catalogRepo catalog.Repository, ordersRepo orders.Repository) *Handler {
	return &Handler{logger: logger, catalog: catalogRepo, orders: ordersRepo}
}

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.Index)
	r.Get("/products.csv", h.Products)
	r.Get("/orders.csv", h.Orders)
	r.Get("/order_items.csv", h.OrderItems)
}

// Index reports the downloadable tables and their current row counts.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	var productRows, orderRows, itemRows [][]string

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		productRows = ProductRows(h.catalog.List(ctx))
		return nil
	})
	g.Go(func() error {
		orderList := h.orders.List(ctx)
		orderRows = OrderRows(orderList)
		itemRows = OrderItemRows(orderList)
		return nil
	})
	if err := g.Wait(); err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]any{
		"tables": []map[string]any{
			{"file": "products.csv", "rows": len(productRows)},
			{"file": "orders.csv", "rows": len(orderRows)},
			{"file": "order_items.csv", "rows": len(itemRows)},
		},
	})
}

func (h *Handler) Products(w http.ResponseWriter, r *http.Request) {
	h.serveCSV(w, "products.csv", ProductHeader, ProductRows(h.catalog.List(r.Context())))
}

func (h *Handler) Orders(w http.ResponseWriter, r *http.Request) {
	h.serveCSV(w, "orders.csv", OrderHeader, OrderRows(h.orders.List(r.Context())))
}

func (h *Handler) OrderItems(w http.ResponseWriter, r *http.Request) {
	h.serveCSV(w, "order_items.csv", OrderItemHeader, OrderItemRows(h.orders.List(r.Context())))
}

func (h *Handler) serveCSV(w http.ResponseWriter, filename string, header []string, rows [][]string) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := writeTable(w, header, rows); err != nil {
		h.logger.Error("csv export failed", "file", filename, "error", err)
	}
}
