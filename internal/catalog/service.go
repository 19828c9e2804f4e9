package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/grandassist/shopfront/internal/platform/httpx"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Browse returns active products in one category, optionally narrowed by a
// search query.
func (s *Service) Browse(ctx context.Context, category, query string) []Product {
	return Search(ActiveOnly(s.repo.List(ctx)), category, query)
}

func (s *Service) List(ctx context.Context) []Product {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, form ProductForm) (Product, error) {
	p, err := productFromForm(form)
	if err != nil {
		return Product{}, err
	}
	if p.ID == "" {
		p.ID = newProductID(p.Category)
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return Product{}, err
	}
	return p, nil
}

// Update replaces all mutable fields of the product with the given id.
func (s *Service) Update(ctx context.Context, id string, form ProductForm) (Product, error) {
	p, err := productFromForm(form)
	if err != nil {
		return Product{}, err
	}
	p.ID = id
	if err := s.repo.Update(ctx, id, p); err != nil {
		return Product{}, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func productFromForm(form ProductForm) (Product, error) {
	name := strings.TrimSpace(form.Name)
	if name == "" {
		return Product{}, fmt.Errorf("%w: name is required", httpx.ErrValidation)
	}
	if !ValidCategory(form.Category) {
		return Product{}, fmt.Errorf("%w: unknown category %q", httpx.ErrValidation, form.Category)
	}
	if form.Price < 0 {
		return Product{}, fmt.Errorf("%w: price must not be negative", httpx.ErrValidation)
	}
	return Product{
		ID:        strings.TrimSpace(form.ID),
		Category:  form.Category,
		Name:      name,
		Price:     form.Price,
		ShortDesc: strings.TrimSpace(form.ShortDesc),
		Details:   strings.TrimSpace(form.Details),
		Variants:  normalizeVariants(form.Variants),
		ImageURL:  strings.TrimSpace(form.ImageURL),
		Active:    form.Active == nil || *form.Active,
	}, nil
}

// normalizeVariants trims labels and drops empties; an empty result falls
// back to the sentinel default variant.
func normalizeVariants(variants []string) []string {
	var out []string
	for _, v := range variants {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return []string{DefaultVariant}
	}
	return out
}

// newProductID derives an id from the category plus a short random suffix,
// e.g. "t-s-4f9c2a" for T-Shirts.
func newProductID(category string) string {
	slug := strings.ToLower(strings.ReplaceAll(category, " ", ""))
	if len(slug) > 3 {
		slug = slug[:3]
	}
	return slug + "-" + uuid.NewString()[:6]
}
