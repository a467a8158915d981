package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mockstore/storefront-backend/internal/store"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func statusPtr(v store.StockStatus) *store.StockStatus { return &v }

func sampleProducts() []store.Product {
	return []store.Product{
		{ID: 1, Name: "Phone", CategoryID: 1, SellerID: 1, FinalPrice: 900, AverageRating: 4.5, DiscountPercentage: 10, StockStatus: store.StockInStock, ReviewCount: 12},
		{ID: 2, Name: "Laptop", CategoryID: 1, SellerID: 2, FinalPrice: 2000, AverageRating: 4.8, DiscountPercentage: 0, StockStatus: store.StockLowStock, ReviewCount: 7},
		{ID: 3, Name: "Jacket", CategoryID: 2, SellerID: 3, FinalPrice: 300, AverageRating: 3.9, DiscountPercentage: 15, StockStatus: store.StockInStock, ReviewCount: 4},
		{ID: 4, Name: "Tent", CategoryID: 4, SellerID: 4, FinalPrice: 150, AverageRating: 4.2, DiscountPercentage: 18, StockStatus: store.StockPreOrder, ReviewCount: 1},
		{ID: 5, Name: "Book", CategoryID: 5, SellerID: 5, FinalPrice: 25, AverageRating: 5.0, DiscountPercentage: 0, StockStatus: store.StockInStock, ReviewCount: 2},
	}
}

func TestFilter(t *testing.T) {
	products := sampleProducts()

	tests := []struct {
		name     string
		criteria Criteria
		wantIDs  []int
	}{
		{"no criteria keeps everything", Criteria{}, []int{1, 2, 3, 4, 5}},
		{"category", Criteria{CategoryID: intPtr(1)}, []int{1, 2}},
		{"min price inclusive", Criteria{MinPrice: floatPtr(300)}, []int{1, 2, 3}},
		{"max price inclusive", Criteria{MaxPrice: floatPtr(300)}, []int{3, 4, 5}},
		{"price band", Criteria{MinPrice: floatPtr(100), MaxPrice: floatPtr(1000)}, []int{1, 3, 4}},
		{"min rating", Criteria{MinRating: floatPtr(4.5)}, []int{1, 2, 5}},
		{"stock status", Criteria{StockStatus: statusPtr(store.StockInStock)}, []int{1, 3, 5}},
		{"seller", Criteria{SellerID: intPtr(3)}, []int{3}},
		{"has discount", Criteria{HasDiscount: boolPtr(true)}, []int{1, 3, 4}},
		{"has discount false is no constraint", Criteria{HasDiscount: boolPtr(false)}, []int{1, 2, 3, 4, 5}},
		{"combined AND", Criteria{CategoryID: intPtr(1), HasDiscount: boolPtr(true), MinRating: floatPtr(4.0)}, []int{1}},
		{"nothing matches", Criteria{CategoryID: intPtr(1), MaxPrice: floatPtr(10)}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(products, tt.criteria)

			gotIDs := make([]int, 0, len(got))
			for _, p := range got {
				gotIDs = append(gotIDs, p.ID)
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestFilterReturnsSubsetSatisfyingCriteria(t *testing.T) {
	products := sampleProducts()
	c := Criteria{MinPrice: floatPtr(100), MaxPrice: floatPtr(1000), MinRating: floatPtr(4.0)}

	for _, p := range Filter(products, c) {
		assert.GreaterOrEqual(t, p.FinalPrice, 100.0)
		assert.LessOrEqual(t, p.FinalPrice, 1000.0)
		assert.GreaterOrEqual(t, p.AverageRating, 4.0)
	}
}

// Present criteria combine with AND, so applying them one at a time in any
// order must select the same set.
func TestFilterIsCommutative(t *testing.T) {
	products := sampleProducts()

	combined := Filter(products, Criteria{
		CategoryID:  intPtr(1),
		MinPrice:    floatPtr(500),
		HasDiscount: boolPtr(true),
	})

	priceFirst := Filter(products, Criteria{MinPrice: floatPtr(500)})
	priceFirst = Filter(priceFirst, Criteria{HasDiscount: boolPtr(true)})
	priceFirst = Filter(priceFirst, Criteria{CategoryID: intPtr(1)})

	discountFirst := Filter(products, Criteria{HasDiscount: boolPtr(true)})
	discountFirst = Filter(discountFirst, Criteria{CategoryID: intPtr(1)})
	discountFirst = Filter(discountFirst, Criteria{MinPrice: floatPtr(500)})

	assert.Equal(t, combined, priceFirst)
	assert.Equal(t, combined, discountFirst)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	products := sampleProducts()
	Filter(products, Criteria{CategoryID: intPtr(1)})
	assert.Equal(t, sampleProducts(), products)
}
