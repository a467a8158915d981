package query

import (
	"sort"
	"strings"

	"github.com/mockstore/storefront-backend/internal/store"
)

// SortKey selects the product attribute a listing is ordered by.
type SortKey string

const (
	SortByPrice       SortKey = "price" // final price, not list price
	SortByRating      SortKey = "rating"
	SortByName        SortKey = "name" // case-insensitive
	SortByCreatedAt   SortKey = "created_at"
	SortByDiscount    SortKey = "discount"
	SortByReviewCount SortKey = "review_count"
)

// Direction is the sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Sort returns a new slice ordered by key and direction. The sort is stable:
// products with equal keys keep their relative input order, which is what
// makes paginating a sorted listing reproducible. An unrecognized key sorts
// by creation time.
func Sort(products []store.Product, key SortKey, dir Direction) []store.Product {
	out := append([]store.Product(nil), products...)

	var less func(a, b store.Product) bool
	switch key {
	case SortByPrice:
		less = func(a, b store.Product) bool { return a.FinalPrice < b.FinalPrice }
	case SortByRating:
		less = func(a, b store.Product) bool { return a.AverageRating < b.AverageRating }
	case SortByName:
		less = func(a, b store.Product) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	case SortByDiscount:
		less = func(a, b store.Product) bool { return a.DiscountPercentage < b.DiscountPercentage }
	case SortByReviewCount:
		less = func(a, b store.Product) bool { return a.ReviewCount < b.ReviewCount }
	default:
		less = func(a, b store.Product) bool { return a.CreatedAt.Before(b.CreatedAt) }
	}

	sort.SliceStable(out, func(i, j int) bool {
		if dir == Desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}
