package http

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grandassist/shopfront/internal/cart"
	"github.com/grandassist/shopfront/internal/catalog"
	"github.com/grandassist/shopfront/internal/shared"
)

func newTestHandler(t *testing.T) (*Handler, *shared.Session) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	repo := catalog.NewRepository(filepath.Join(t.TempDir(), "products.json"), logger)
	return NewHandler(logger, repo), &shared.Session{ID: "test", Cart: cart.New()}
}

func doRequest(h http.Handler, sess *shared.Session, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	req = req.WithContext(shared.ContextWithSession(req.Context(), sess))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func mountedRouter(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Route("/cart", h.MountRoutes)
	return r
}

func TestAddAndShowCart(t *testing.T) {
	h, sess := newTestHandler(t)
	r := mountedRouter(h)

	rec := doRequest(r, sess, http.MethodPost, "/cart/items", `{"product_id":"ts-001","variant":"M","qty":2}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(r, sess, http.MethodGet, "/cart", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"units":2`)
	assert.Contains(t, body, `"subtotal":49.98`)
	assert.Contains(t, body, `"subtotal_display":"$49.98"`)
}

func TestAddUnknownProduct(t *testing.T) {
	h, sess := newTestHandler(t)
	r := mountedRouter(h)

	rec := doRequest(r, sess, http.MethodPost, "/cart/items", `{"product_id":"ghost","qty":1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, 0, sess.Cart.Len())
}

func TestAddDefaultsVariant(t *testing.T) {
	h, sess := newTestHandler(t)
	r := mountedRouter(h)

	rec := doRequest(r, sess, http.MethodPost, "/cart/items", `{"product_id":"cb-001","qty":1}`)
	require.Equal(t, http.StatusOK, rec.Code)

	items := sess.Cart.Flatten(h.catalog.List(context.Background()))
	require.Len(t, items, 1)
	assert.Equal(t, "Paperback", items[0].Variant)
}

func TestAddRejectsOutOfRangeQty(t *testing.T) {
	h, sess := newTestHandler(t)
	r := mountedRouter(h)

	rec := doRequest(r, sess, http.MethodPost, "/cart/items", `{"product_id":"ts-001","variant":"M","qty":100}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(r, sess, http.MethodPost, "/cart/items", `{"product_id":"ts-001","variant":"M","qty":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateRemovesLineAtZero(t *testing.T) {
	h, sess := newTestHandler(t)
	r := mountedRouter(h)

	rec := doRequest(r, sess, http.MethodPost, "/cart/items", `{"product_id":"ts-001","variant":"M","qty":2}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(r, sess, http.MethodPost, "/cart/update", `{"key":"ts-001::M","qty":0}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, sess.Cart.Len())
}
