package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/grandassist/shopfront/internal/auth"
	carthttp "github.com/grandassist/shopfront/internal/cart/http"
	"github.com/grandassist/shopfront/internal/catalog"
	"github.com/grandassist/shopfront/internal/export"
	"github.com/grandassist/shopfront/internal/orders"
	"github.com/grandassist/shopfront/internal/shared"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger         *slog.Logger
	Config         *Config
	SessionManager *shared.SessionManager
	AuthHandler    *auth.Handler
	CatalogHandler *catalog.Handler
	CartHandler    *carthttp.Handler
	OrdersHandler  *orders.Handler
	ExportHandler  *export.Handler
}

// NewRouter constructs the chi.Router with shopfront defaults: the four
// views as route groups plus a health endpoint.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:         params.Logger,
		Config:         params.Config,
		SessionManager: params.SessionManager,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/shop", params.CatalogHandler.MountShopRoutes)
	r.Route("/cart", params.CartHandler.MountRoutes)
	params.OrdersHandler.MountRoutes(r)

	r.Route("/admin", func(r chi.Router) {
		params.AuthHandler.MountRoutes(r)
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAdmin)
			params.CatalogHandler.MountAdminRoutes(r)
			params.OrdersHandler.MountAdminRoutes(r)
		})
	})

	r.Route("/export", params.ExportHandler.MountRoutes)

	return r
}
