package generator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lumos-Labs-HQ/shopgen/internal/generator"
	"github.com/Lumos-Labs-HQ/shopgen/internal/model"
)

func TestCountsValidate(t *testing.T) {
	tests := []struct {
		name    string
		counts  generator.Counts
		wantErr bool
	}{
		{"defaults", generator.Counts{Users: 100, Products: 100, Orders: 20}, false},
		{"all zero", generator.Counts{}, false},
		{"zero orders only", generator.Counts{Users: 5, Products: 5}, false},
		{"negative users", generator.Counts{Users: -1, Products: 5, Orders: 1}, true},
		{"negative orders", generator.Counts{Users: 5, Products: 5, Orders: -3}, true},
		{"orders without products", generator.Counts{Users: 5, Products: 0, Orders: 2}, true},
		{"orders without users", generator.Counts{Users: 0, Products: 5, Orders: 2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.counts.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGenerateSequentialIDs(t *testing.T) {
	ds, err := generator.New().Generate(generator.Counts{Users: 25, Products: 12, Orders: 8})
	require.NoError(t, err)

	require.Len(t, ds.Users, 25)
	for i, u := range ds.Users {
		assert.Equal(t, i+1, u.UserID)
	}

	require.Len(t, ds.Products, 12)
	for i, p := range ds.Products {
		assert.Equal(t, i+1, p.ProductID)
	}

	require.Len(t, ds.Orders, 8)
	for i, o := range ds.Orders {
		assert.Equal(t, 1000+i, o.OrderID)
	}

	for i, it := range ds.OrderItems {
		assert.Equal(t, i+1, it.ItemID)
	}
}

func TestGenerateForeignKeys(t *testing.T) {
	ds, err := generator.New().Generate(generator.Counts{Users: 10, Products: 7, Orders: 20})
	require.NoError(t, err)

	orderIDs := make(map[int]bool)
	for _, o := range ds.Orders {
		orderIDs[o.OrderID] = true
		assert.GreaterOrEqual(t, o.UserID, 1)
		assert.LessOrEqual(t, o.UserID, 10)
	}

	for _, it := range ds.OrderItems {
		assert.True(t, orderIDs[it.OrderID], "item %d references unknown order %d", it.ItemID, it.OrderID)
		assert.GreaterOrEqual(t, it.ProductID, 1)
		assert.LessOrEqual(t, it.ProductID, 7)

		// price is copied from the referenced product
		assert.Equal(t, ds.Products[it.ProductID-1].Price, it.Price)
		assert.Equal(t, it.Price*it.Quantity, it.Total)
	}
}

func TestGenerateOrderAggregates(t *testing.T) {
	ds, err := generator.New().Generate(generator.Counts{Users: 5, Products: 5, Orders: 30})
	require.NoError(t, err)

	totals := make(map[int]int)
	quantities := make(map[int]int)
	itemCounts := make(map[int]int)
	for _, it := range ds.OrderItems {
		totals[it.OrderID] += it.Total
		quantities[it.OrderID] += it.Quantity
		itemCounts[it.OrderID]++
	}

	for _, o := range ds.Orders {
		assert.Equal(t, totals[o.OrderID], o.Total)
		assert.Equal(t, quantities[o.OrderID], o.TotalQuantity)
		assert.GreaterOrEqual(t, itemCounts[o.OrderID], 1)
		assert.LessOrEqual(t, itemCounts[o.OrderID], 5)

		assert.GreaterOrEqual(t, o.Discount, 0)
		assert.LessOrEqual(t, o.Discount, o.Total/5)
	}
}

func TestGenerateFieldBounds(t *testing.T) {
	ds, err := generator.New().Generate(generator.Counts{Users: 40, Products: 40, Orders: 10})
	require.NoError(t, err)

	for _, u := range ds.Users {
		assert.GreaterOrEqual(t, u.Age, 18)
		assert.LessOrEqual(t, u.Age, 80)
		assert.Len(t, u.Username, model.UsernameWidth)
		assert.Len(t, u.Email, model.EmailWidth)
		assert.Len(t, u.City, model.CityWidth)
	}

	for _, p := range ds.Products {
		assert.GreaterOrEqual(t, p.Price, 5)
		assert.LessOrEqual(t, p.Price, 500)
		assert.GreaterOrEqual(t, p.Stock, 0)
		assert.LessOrEqual(t, p.Stock, 200)
		assert.Contains(t, generator.Categories, strings.TrimRight(p.Category, " "))
		assert.Contains(t, generator.Brands, strings.TrimRight(p.Brand, " "))
	}

	for _, it := range ds.OrderItems {
		assert.GreaterOrEqual(t, it.Quantity, 1)
		assert.LessOrEqual(t, it.Quantity, 5)
	}
}

func TestGenerateSmallScenario(t *testing.T) {
	ds, err := generator.New().Generate(generator.Counts{Users: 5, Products: 5, Orders: 2})
	require.NoError(t, err)

	assert.Len(t, ds.Users, 5)
	assert.Len(t, ds.Products, 5)
	assert.Len(t, ds.Orders, 2)
	assert.GreaterOrEqual(t, len(ds.OrderItems), 2)
	assert.LessOrEqual(t, len(ds.OrderItems), 10)
}

func TestGenerateZeroOrders(t *testing.T) {
	ds, err := generator.New().Generate(generator.Counts{Users: 3, Products: 3, Orders: 0})
	require.NoError(t, err)

	assert.Len(t, ds.Users, 3)
	assert.Len(t, ds.Products, 3)
	assert.Empty(t, ds.Orders)
	assert.Empty(t, ds.OrderItems)
}

func TestGenerateRejectsInvalidCounts(t *testing.T) {
	_, err := generator.New().Generate(generator.Counts{Users: 5, Products: 0, Orders: 2})
	assert.Error(t, err)

	_, err = generator.New().Generate(generator.Counts{Users: -1, Products: 5, Orders: 0})
	assert.Error(t, err)
}
