package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatic_Products(t *testing.T) {
	products, err := NewStatic().Products(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, products)

	seen := make(map[int64]bool)
	for _, p := range products {
		assert.False(t, seen[p.ID], "duplicate product id %d", p.ID)
		seen[p.ID] = true
		assert.NotEmpty(t, p.Name)
		assert.Greater(t, p.OfferPrice, int64(0))
		assert.LessOrEqual(t, p.OfferPrice, p.RegularPrice)
	}
}

func TestStatic_ProductsReturnsACopy(t *testing.T) {
	s := NewStatic()
	first, err := s.Products(context.Background())
	require.NoError(t, err)

	first[0].Name = "mutated"
	again, err := s.Products(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", again[0].Name)
}
