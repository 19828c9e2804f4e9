// Package cart implements the session-scoped shopping cart: a mapping of
// (product, variant) selections to quantities, resolved against the catalog
// on demand.
package cart

import (
	"fmt"
	"sort"
	"sync"

	"github.com/grandassist/shopfront/internal/catalog"
	"github.com/grandassist/shopfront/internal/platform/httpx"
)

// Line is one cart entry, keyed by product id and variant label.
type Line struct {
	ProductID string `json:"product_id"`
	Variant   string `json:"variant"`
	Qty       int    `json:"qty"`
}

// LineItem is a cart line joined with its product. Lines whose product no
// longer resolves are dropped during flattening.
type LineItem struct {
	Key       string  `json:"key"`
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Variant   string  `json:"variant"`
	Qty       int     `json:"qty"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

// Key builds the cart key for a product and variant selection.
func Key(productID, variant string) string {
	return productID + "::" + variant
}

// Cart holds one session's selections. Methods are safe for concurrent use.
type Cart struct {
	mu    sync.Mutex
	lines map[string]Line
}

func New() *Cart {
	return &Cart{lines: make(map[string]Line)}
}

// AddOrIncrement adds qty to an existing line or inserts a new one.
func (c *Cart) AddOrIncrement(productID, variant string, qty int) error {
	if qty < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", httpx.ErrValidation)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	key := Key(productID, variant)
	line, ok := c.lines[key]
	if !ok {
		line = Line{ProductID: productID, Variant: variant}
	}
	line.Qty += qty
	c.lines[key] = line
	return nil
}

// SetQuantity overwrites a line's quantity. Zero removes the line entirely;
// a line never stays in the cart with quantity zero.
func (c *Cart) SetQuantity(key string, qty int) error {
	if qty < 0 {
		return fmt.Errorf("%w: quantity must not be negative", httpx.ErrValidation)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if qty == 0 {
		delete(c.lines, key)
		return nil
	}
	line, ok := c.lines[key]
	if !ok {
		return fmt.Errorf("cart line %s: %w", key, httpx.ErrNotFound)
	}
	line.Qty = qty
	c.lines[key] = line
	return nil
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

// Units returns the total quantity across all lines.
func (c *Cart) Units() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, line := range c.lines {
		total += line.Qty
	}
	return total
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = make(map[string]Line)
}

// Flatten joins each line with its product and returns the resolved items
// ordered by key. Lines referencing a missing product are dropped.
func (c *Cart) Flatten(products []catalog.Product) []LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]string, 0, len(c.lines))
	for key := range c.lines {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	byID := make(map[string]catalog.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	var items []LineItem
	for _, key := range keys {
		line := c.lines[key]
		p, ok := byID[line.ProductID]
		if !ok {
			continue
		}
		items = append(items, LineItem{
			Key:       key,
			ProductID: p.ID,
			Name:      p.Name,
			Category:  p.Category,
			Variant:   line.Variant,
			Qty:       line.Qty,
			UnitPrice: p.Price,
			LineTotal: p.Price * float64(line.Qty),
		})
	}
	return items
}

// Total sums unit price times quantity over all resolvable lines.
// Unresolvable lines contribute nothing.
func (c *Cart) Total(products []catalog.Product) float64 {
	var total float64
	for _, item := range c.Flatten(products) {
		total += item.LineTotal
	}
	return total
}
