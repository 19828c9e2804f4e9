package orders

import (
	"time"

	"github.com/grandassist/shopfront/internal/cart"
)

// StatusNew is the only status an order ever carries; there is no order
// lifecycle beyond creation.
const StatusNew = "NEW"

// PaymentMethods are the demo payment labels offered at checkout. None of
// them contact a payment processor.
var PaymentMethods = []string{
	"Card (demo)",
	"Invoice (demo)",
	"CashApp (demo)",
	"Zelle (demo)",
}

// Customer holds the contact fields captured at checkout.
type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Order is an immutable record of a completed checkout. Items are copied
// from the cart at order time, not live references to the catalog.
// JSON field names match the on-disk orders file.
type Order struct {
	OrderID       string          `json:"order_id"`
	CreatedAt     time.Time       `json:"created_at"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"payment_method"`
	Subtotal      float64         `json:"subtotal"`
	Customer      Customer        `json:"customer"`
	Items         []cart.LineItem `json:"items"`
	Notes         string          `json:"notes"`
}

// ValidPaymentMethod reports whether label is one of the demo methods.
func ValidPaymentMethod(label string) bool {
	for _, known := range PaymentMethods {
		if label == known {
			return true
		}
	}
	return false
}
