package orders

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/grandassist/shopfront/internal/platform/jsonfile"
)

type Repository interface {
	List(ctx context.Context) []Order
	Append(ctx context.Context, o Order) error
}

// fileRepository keeps the order log in memory and rewrites the orders
// file on every append. Orders are never mutated or removed.
type fileRepository struct {
	path   string
	logger *slog.Logger
	mu     sync.RWMutex
	orders []Order
}

// NewRepository loads the order log from path. A missing or unreadable
// file starts an empty log, persisted immediately.
func NewRepository(path string, logger *slog.Logger) Repository {
	r := &fileRepository{path: path, logger: logger}
	orders := []Order{}
	if err := jsonfile.Read(path, &orders); err != nil {
		logger.Warn("orders file unreadable, starting empty", "path", path, "error", err)
		orders = []Order{}
		if err := jsonfile.Write(path, orders); err != nil {
			logger.Error("failed to persist empty order log", "path", path, "error", err)
		}
	}
	r.orders = orders
	return r
}

func (r *fileRepository) List(ctx context.Context) []Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Order, len(r.orders))
	copy(out, r.orders)
	return out
}

func (r *fileRepository) Append(ctx context.Context, o Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, o)
	if err := jsonfile.Write(r.path, r.orders); err != nil {
		// roll back the in-memory append on a failed write
		r.orders = r.orders[:len(r.orders)-1]
		return fmt.Errorf("persist order log: %w", err)
	}
	return nil
}
