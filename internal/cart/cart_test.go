package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grandassist/shopfront/internal/catalog"
	"github.com/grandassist/shopfront/internal/platform/httpx"
)

func testProducts() []catalog.Product {
	return []catalog.Product{
		{ID: "ts-001", Category: "T-Shirts", Name: "Tee", Price: 24.99, Variants: []string{"S", "M"}, Active: true},
		{ID: "mug-001", Category: "Mugs", Name: "Mug", Price: 13.99, Variants: []string{"11oz"}, Active: true},
	}
}

func TestAddOrIncrement(t *testing.T) {
	c := New()
	require.NoError(t, c.AddOrIncrement("ts-001", "M", 2))
	require.NoError(t, c.AddOrIncrement("ts-001", "M", 3))
	require.NoError(t, c.AddOrIncrement("ts-001", "S", 1))

	items := c.Flatten(testProducts())
	require.Len(t, items, 2)
	assert.Equal(t, "M", items[0].Variant)
	assert.Equal(t, 5, items[0].Qty)
	assert.Equal(t, 1, items[1].Qty)

	assert.Equal(t, 6, c.Units())
	assert.Equal(t, 2, c.Len())
}

func TestAddRejectsNonPositiveQty(t *testing.T) {
	c := New()
	require.ErrorIs(t, c.AddOrIncrement("ts-001", "M", 0), httpx.ErrValidation)
	require.ErrorIs(t, c.AddOrIncrement("ts-001", "M", -1), httpx.ErrValidation)
	assert.Equal(t, 0, c.Len())
}

func TestSetQuantityIdempotent(t *testing.T) {
	c := New()
	require.NoError(t, c.AddOrIncrement("ts-001", "M", 2))

	key := Key("ts-001", "M")
	require.NoError(t, c.SetQuantity(key, 7))
	once := c.Flatten(testProducts())
	require.NoError(t, c.SetQuantity(key, 7))
	twice := c.Flatten(testProducts())

	assert.Equal(t, once, twice)
	assert.Equal(t, 7, twice[0].Qty)
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	c := New()
	require.NoError(t, c.AddOrIncrement("ts-001", "M", 2))
	require.NoError(t, c.SetQuantity(Key("ts-001", "M"), 0))
	assert.Equal(t, 0, c.Len())

	// removing an absent line is fine
	require.NoError(t, c.SetQuantity(Key("ts-001", "M"), 0))
}

func TestSetQuantityRejectsNegative(t *testing.T) {
	c := New()
	require.NoError(t, c.AddOrIncrement("ts-001", "M", 2))
	require.ErrorIs(t, c.SetQuantity(Key("ts-001", "M"), -1), httpx.ErrValidation)
}

func TestFlattenDropsUnresolvableLines(t *testing.T) {
	c := New()
	require.NoError(t, c.AddOrIncrement("ts-001", "M", 1))
	require.NoError(t, c.AddOrIncrement("ghost", "X", 4))

	items := c.Flatten(testProducts())
	require.Len(t, items, 1)
	assert.Equal(t, "ts-001", items[0].ProductID)

	// the dropped line contributes nothing to the total
	assert.InDelta(t, 24.99, c.Total(testProducts()), 1e-9)
}

func TestTotalMatchesFlattenedLineTotals(t *testing.T) {
	c := New()
	require.NoError(t, c.AddOrIncrement("ts-001", "M", 2))
	require.NoError(t, c.AddOrIncrement("mug-001", "11oz", 3))

	products := testProducts()
	var sum float64
	for _, item := range c.Flatten(products) {
		sum += item.LineTotal
	}
	assert.Equal(t, sum, c.Total(products))
}

func TestClear(t *testing.T) {
	c := New()
	require.NoError(t, c.AddOrIncrement("ts-001", "M", 2))
	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Flatten(testProducts()))
}
