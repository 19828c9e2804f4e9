package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/grandassist/shopfront/internal/platform/httpx"
	"github.com/grandassist/shopfront/internal/platform/jsonfile"
)

type Repository interface {
	List(ctx context.Context) []Product
	FindByID(ctx context.Context, id string) (Product, error)
	Create(ctx context.Context, p Product) error
	Update(ctx context.Context, id string, p Product) error
	Delete(ctx context.Context, id string) error
}

// fileRepository keeps the whole catalog in memory and rewrites the
// products file on every mutation.
type fileRepository struct {
	path     string
	logger   *slog.Logger
	mu       sync.RWMutex
	products []Product
}

// NewRepository loads the catalog from path. A missing or unreadable file
// is replaced by the seed catalog, which is persisted immediately.
func NewRepository(path string, logger *slog.Logger) Repository {
	r := &fileRepository{path: path, logger: logger}
	var products []Product
	if err := jsonfile.Read(path, &products); err != nil {
		logger.Warn("products file unreadable, seeding defaults", "path", path, "error", err)
		products = SeedProducts()
		if err := jsonfile.Write(path, products); err != nil {
			logger.Error("failed to persist seed catalog", "path", path, "error", err)
		}
	}
	r.products = products
	return r
}

func (r *fileRepository) List(ctx context.Context) []Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Product, len(r.products))
	copy(out, r.products)
	return out
}

func (r *fileRepository) FindByID(ctx context.Context, id string) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, fmt.Errorf("product %s: %w", id, httpx.ErrNotFound)
}

func (r *fileRepository) Create(ctx context.Context, p Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.products {
		if existing.ID == p.ID {
			return fmt.Errorf("product %s: %w", p.ID, httpx.ErrDuplicate)
		}
	}
	r.products = append(r.products, p)
	return r.persist()
}

func (r *fileRepository) Update(ctx context.Context, id string, p Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.products {
		if existing.ID == id {
			p.ID = id
			r.products[i] = p
			return r.persist()
		}
	}
	return fmt.Errorf("product %s: %w", id, httpx.ErrNotFound)
}

func (r *fileRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.products[:0]
	for _, p := range r.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	r.products = kept
	return r.persist()
}

func (r *fileRepository) persist() error {
	if err := jsonfile.Write(r.path, r.products); err != nil {
		return fmt.Errorf("persist catalog: %w", err)
	}
	return nil
}
