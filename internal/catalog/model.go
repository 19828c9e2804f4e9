package catalog

import "encoding/json"

// Categories is the fixed set of product categories the shop sells.
var Categories = []string{"T-Shirts", "Coloring Books", "Calendar", "Bags", "Mugs"}

// DefaultVariant is the sentinel variant label used when a product
// declares no variants of its own.
const DefaultVariant = "Default"

// Product represents a catalog entry. JSON field names match the
// on-disk products file.
type Product struct {
	ID        string   `json:"id"`
	Category  string   `json:"category"`
	Name      string   `json:"name"`
	Price     float64  `json:"price"`
	ShortDesc string   `json:"short_desc"`
	Details   string   `json:"details"`
	Variants  []string `json:"variants"`
	ImageURL  string   `json:"image_url"`
	Active    bool     `json:"active"`
}

// UnmarshalJSON treats a missing active flag as true, so hand-edited or
// older product files keep their entries visible in the shop.
func (p *Product) UnmarshalJSON(data []byte) error {
	type alias Product
	aux := struct {
		Active *bool `json:"active"`
		*alias
	}{alias: (*alias)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	p.Active = aux.Active == nil || *aux.Active
	return nil
}

// ValidCategory reports whether c is one of the fixed categories.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
