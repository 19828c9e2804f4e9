// Package export flattens the catalog and the order log into tabular rows
// for download. Tables are recomputed on every request, never cached.
package export

import (
	"strconv"
	"strings"
	"time"

	"github.com/grandassist/shopfront/internal/catalog"
	"github.com/grandassist/shopfront/internal/orders"
)

// ProductHeader lists the columns of the products table.
var ProductHeader = []string{
	"id", "category", "name", "price", "short_desc", "details",
	"variants", "image_url", "active",
}

// OrderHeader lists the columns of the orders table, with customer fields
// denormalized onto the order row.
var OrderHeader = []string{
	"order_id", "created_at", "status", "payment_method", "subtotal",
	"customer_name", "customer_email", "customer_phone", "customer_address",
	"notes",
}

// OrderItemHeader lists the columns of the order items table; order_id
// references the owning order.
var OrderItemHeader = []string{
	"order_id", "product_id", "name", "category", "variant",
	"qty", "unit_price", "line_total",
}

// ProductRows projects every product onto one row, all fields as columns.
func ProductRows(products []catalog.Product) [][]string {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			p.ID,
			p.Category,
			p.Name,
			formatFloat(p.Price),
			p.ShortDesc,
			p.Details,
			strings.Join(p.Variants, ", "),
			p.ImageURL,
			strconv.FormatBool(p.Active),
		})
	}
	return rows
}

// OrderRows projects every order onto one header row.
func OrderRows(orderList []orders.Order) [][]string {
	rows := make([][]string, 0, len(orderList))
	for _, o := range orderList {
		rows = append(rows, []string{
			o.OrderID,
			o.CreatedAt.Format(time.RFC3339),
			o.Status,
			o.PaymentMethod,
			formatFloat(o.Subtotal),
			o.Customer.Name,
			o.Customer.Email,
			o.Customer.Phone,
			o.Customer.Address,
			o.Notes,
		})
	}
	return rows
}

// OrderItemRows emits one row per (order, line item) pair.
func OrderItemRows(orderList []orders.Order) [][]string {
	var rows [][]string
	for _, o := range orderList {
		for _, item := range o.Items {
			rows = append(rows, []string{
				o.OrderID,
				item.ProductID,
				item.Name,
				item.Category,
				item.Variant,
				strconv.Itoa(item.Qty),
				formatFloat(item.UnitPrice),
				formatFloat(item.LineTotal),
			})
		}
	}
	return rows
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
