package orders

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/grandassist/shopfront/internal/cart"
	"github.com/grandassist/shopfront/internal/catalog"
	"github.com/grandassist/shopfront/internal/platform/httpx"
)

type Service struct {
	repo    Repository
	catalog catalog.Repository
}

func NewService(repo Repository, catalogRepo catalog.Repository) *Service {
	return &Service{repo: repo, catalog: catalogRepo}
}

// PlaceOrder snapshots the cart into a new order and appends it to the
// order log. The cart is cleared only after the order has been persisted;
// on any failure it is left untouched.
func (s *Service) PlaceOrder(ctx context.Context, c *cart.Cart, form CheckoutForm) (Order, error) {
	customer := Customer{
		Name:    strings.TrimSpace(form.Name),
		Email:   strings.TrimSpace(form.Email),
		Phone:   strings.TrimSpace(form.Phone),
		Address: strings.TrimSpace(form.Address),
	}
	if customer.Name == "" || customer.Email == "" {
		return Order{}, fmt.Errorf("%w: full name and email are required", httpx.ErrValidation)
	}

	payment := form.PaymentMethod
	if payment == "" {
		payment = PaymentMethods[0]
	}
	if !ValidPaymentMethod(payment) {
		return Order{}, fmt.Errorf("%w: unknown payment method %q", httpx.ErrValidation, payment)
	}

	products := s.catalog.List(ctx)
	items := c.Flatten(products)
	if len(items) == 0 {
		return Order{}, fmt.Errorf("%w: cart is empty", httpx.ErrValidation)
	}

	order := Order{
		OrderID:       NewOrderID(),
		CreatedAt:     time.Now().UTC(),
		Status:        StatusNew,
		PaymentMethod: payment,
		Subtotal:      c.Total(products),
		Customer:      customer,
		Items:         items,
		Notes:         strings.TrimSpace(form.Notes),
	}

	if err := s.repo.Append(ctx, order); err != nil {
		return Order{}, err
	}
	c.Clear()
	return order, nil
}

// List returns every recorded order, oldest first.
func (s *Service) List(ctx context.Context) []Order {
	return s.repo.List(ctx)
}

// NewOrderID returns a short upper-cased random token. Collisions are not
// ruled out cryptographically; acceptable at demo scale.
func NewOrderID() string {
	return strings.ToUpper(uuid.NewString()[:8])
}
