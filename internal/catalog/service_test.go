package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grandassist/shopfront/internal/platform/httpx"
)

type mockRepository struct {
	products []Product
}

func (m *mockRepository) List(ctx context.Context) []Product {
	out := make([]Product, len(m.products))
	copy(out, m.products)
	return out
}

func (m *mockRepository) FindByID(ctx context.Context, id string) (Product, error) {
	for _, p := range m.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, fmt.Errorf("product %s: %w", id, httpx.ErrNotFound)
}

func (m *mockRepository) Create(ctx context.Context, p Product) error {
	for _, existing := range m.products {
		if existing.ID == p.ID {
			return fmt.Errorf("product %s: %w", p.ID, httpx.ErrDuplicate)
		}
	}
	m.products = append(m.products, p)
	return nil
}

func (m *mockRepository) Update(ctx context.Context, id string, p Product) error {
	for i, existing := range m.products {
		if existing.ID == id {
			p.ID = id
			m.products[i] = p
			return nil
		}
	}
	return fmt.Errorf("product %s: %w", id, httpx.ErrNotFound)
}

func (m *mockRepository) Delete(ctx context.Context, id string) error {
	kept := m.products[:0]
	for _, p := range m.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	m.products = kept
	return nil
}

func validForm() ProductForm {
	return ProductForm{
		Category:  "Mugs",
		Name:      "World's Okayest Grandparent",
		Price:     11.5,
		ShortDesc: "A mug.",
		Variants:  []string{"11oz"},
	}
}

func TestCreateThenFind(t *testing.T) {
	repo := &mockRepository{}
	svc := NewService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, validForm())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	found, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)

	// the new product appears exactly once
	count := 0
	for _, p := range svc.List(ctx) {
		if p.ID == created.ID {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestCreateRequiresName(t *testing.T) {
	svc := NewService(&mockRepository{})

	form := validForm()
	form.Name = "   "
	_, err := svc.Create(context.Background(), form)
	require.ErrorIs(t, err, httpx.ErrValidation)
}

func TestCreateRejectsUnknownCategory(t *testing.T) {
	svc := NewService(&mockRepository{})

	form := validForm()
	form.Category = "Posters"
	_, err := svc.Create(context.Background(), form)
	require.ErrorIs(t, err, httpx.ErrValidation)
}

func TestCreateRejectsNegativePrice(t *testing.T) {
	svc := NewService(&mockRepository{})

	form := validForm()
	form.Price = -1
	_, err := svc.Create(context.Background(), form)
	require.ErrorIs(t, err, httpx.ErrValidation)
}

func TestCreateDefaultsVariants(t *testing.T) {
	svc := NewService(&mockRepository{})

	form := validForm()
	form.Variants = []string{"  ", ""}
	created, err := svc.Create(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, []string{DefaultVariant}, created.Variants)
}

func TestCreateTrimsVariants(t *testing.T) {
	svc := NewService(&mockRepository{})

	form := validForm()
	form.Variants = []string{" S ", "", "M"}
	created, err := svc.Create(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "M"}, created.Variants)
}

func TestCreateGeneratesID(t *testing.T) {
	svc := NewService(&mockRepository{})

	form := validForm()
	form.Category = "T-Shirts"
	created, err := svc.Create(context.Background(), form)
	require.NoError(t, err)
	assert.Regexp(t, `^t-s-[0-9a-f]{6}$`, created.ID)
}

func TestCreateRejectsDuplicateID(t *testing.T) {
	svc := NewService(&mockRepository{})
	ctx := context.Background()

	form := validForm()
	form.ID = "mug-123"
	_, err := svc.Create(ctx, form)
	require.NoError(t, err)

	_, err = svc.Create(ctx, form)
	require.ErrorIs(t, err, httpx.ErrDuplicate)
}

func TestUpdateReplacesFields(t *testing.T) {
	svc := NewService(&mockRepository{})
	ctx := context.Background()

	form := validForm()
	form.ID = "mug-777"
	_, err := svc.Create(ctx, form)
	require.NoError(t, err)

	form.Name = "Renamed"
	form.Price = 9.99
	inactive := false
	form.Active = &inactive
	updated, err := svc.Update(ctx, "mug-777", form)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, 9.99, updated.Price)
	assert.False(t, updated.Active)

	found, err := svc.Get(ctx, "mug-777")
	require.NoError(t, err)
	assert.Equal(t, updated, found)
}

func TestUpdateUnknownID(t *testing.T) {
	svc := NewService(&mockRepository{})

	_, err := svc.Update(context.Background(), "nope", validForm())
	require.ErrorIs(t, err, httpx.ErrNotFound)
}

func TestDeleteRemovesProduct(t *testing.T) {
	svc := NewService(&mockRepository{})
	ctx := context.Background()

	form := validForm()
	form.ID = "mug-del"
	_, err := svc.Create(ctx, form)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "mug-del"))
	_, err = svc.Get(ctx, "mug-del")
	require.ErrorIs(t, err, httpx.ErrNotFound)
}

func TestBrowseFiltersActiveAndCategory(t *testing.T) {
	repo := &mockRepository{products: []Product{
		{ID: "a", Category: "Mugs", Name: "Coffee Mug", Active: true},
		{ID: "b", Category: "Mugs", Name: "Hidden Mug", Active: false},
		{ID: "c", Category: "Bags", Name: "Tote", Active: true},
	}}
	svc := NewService(repo)

	got := svc.Browse(context.Background(), "Mugs", "")
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}
