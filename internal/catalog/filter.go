package catalog

import "strings"

// ActiveOnly filters out products whose active flag is false.
func ActiveOnly(products []Product) []Product {
	var out []Product
	for _, p := range products {
		if p.Active {
			out = append(out, p)
		}
	}
	return out
}

// Search restricts products to one category and, when query is non-empty,
// to entries whose name or descriptions contain it case-insensitively.
func Search(products []Product, category, query string) []Product {
	var out []Product
	q := strings.ToLower(strings.TrimSpace(query))
	for _, p := range products {
		if p.Category != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.ShortDesc), q) &&
			!strings.Contains(strings.ToLower(p.Details), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}
