// Package query holds the pure filter, sort and pagination stages that list
// endpoints and the recommendation engine compose over product snapshots.
// None of these functions touch the store; they operate on already-fetched
// copies and always return fresh slices.
package query

import "github.com/mockstore/storefront-backend/internal/store"

// Criteria is a set of independently optional product filters. A nil field
// imposes no constraint; all present fields combine with logical AND, so the
// order in which they are applied never changes the result.
type Criteria struct {
	CategoryID  *int
	MinPrice    *float64 // inclusive, evaluated against FinalPrice
	MaxPrice    *float64 // inclusive, evaluated against FinalPrice
	MinRating   *float64
	StockStatus *store.StockStatus
	SellerID    *int
	HasDiscount *bool
}

// Filter returns the products satisfying every present criterion, preserving
// input order.
func Filter(products []store.Product, c Criteria) []store.Product {
	out := make([]store.Product, 0, len(products))
	for _, p := range products {
		if c.matches(p) {
			out = append(out, p)
		}
	}
	return out
}

func (c Criteria) matches(p store.Product) bool {
	if c.CategoryID != nil && p.CategoryID != *c.CategoryID {
		return false
	}
	if c.MinPrice != nil && p.FinalPrice < *c.MinPrice {
		return false
	}
	if c.MaxPrice != nil && p.FinalPrice > *c.MaxPrice {
		return false
	}
	if c.MinRating != nil && p.AverageRating < *c.MinRating {
		return false
	}
	if c.StockStatus != nil && p.StockStatus != *c.StockStatus {
		return false
	}
	if c.SellerID != nil && p.SellerID != *c.SellerID {
		return false
	}
	if c.HasDiscount != nil && *c.HasDiscount && p.DiscountPercentage <= 0 {
		return false
	}
	return true
}
