// Package recommend ranks catalog products for the discovery endpoints:
// similarity to a reference product, plus the composed top-rated, deals,
// popular, new-arrivals and price-range listings.
package recommend

import (
	"errors"
	"math"
	"sort"

	"github.com/mockstore/storefront-backend/internal/query"
	"github.com/mockstore/storefront-backend/internal/store"
)

// ErrInvalidPriceRange is returned when a price-range query is inverted.
var ErrInvalidPriceRange = errors.New("min_price cannot be greater than max_price")

// priceSimilarityWeight scales the price-closeness bonus against the 0-5
// rating term in the similarity score. A candidate at the exact reference
// price earns the full bonus; the bonus decays linearly to zero once the
// price differs by 100% or more. The weight is a tunable constant; 2.0 means
// price closeness can outweigh a rating gap of up to two points.
const priceSimilarityWeight = 2.0

const (
	defaultMinReviews  = 3
	defaultMinDiscount = 5.0
)

// Engine answers read-only recommendation queries over store snapshots.
type Engine struct {
	repo Repository
}

// NewEngine creates a recommendation engine.
func NewEngine(repo Repository) *Engine {
	return &Engine{repo: repo}
}

// Similar returns up to limit products similar to the reference product:
// same category, never the reference itself, and products from the reference
// seller excluded unless includeSameSeller is set. Candidates are scored by
// average rating plus the price-closeness bonus, ranked descending with ties
// keeping category-scan order. An unknown reference yields an empty slice;
// whether that is a client error is the caller's call.
func (e *Engine) Similar(productID, limit int, includeSameSeller bool) []store.Product {
	ref, ok := e.repo.GetProduct(productID)
	if !ok {
		return nil
	}
	if limit < 0 {
		limit = 0
	}

	candidates := e.repo.ProductsByCategory(ref.CategoryID)

	scored := make([]scoredProduct, 0, len(candidates))
	for _, p := range candidates {
		if p.ID == ref.ID {
			continue
		}
		if !includeSameSeller && p.SellerID == ref.SellerID {
			continue
		}
		scored = append(scored, scoredProduct{product: p, score: similarityScore(ref, p)})
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

	out := make([]store.Product, 0, min(limit, len(scored)))
	for _, sp := range scored {
		if len(out) == limit {
			break
		}
		out = append(out, sp.product)
	}
	return out
}

type scoredProduct struct {
	product store.Product
	score   float64
}

func similarityScore(ref, candidate store.Product) float64 {
	priceScore := 0.0
	if ref.FinalPrice > 0 {
		diffRatio := math.Abs(candidate.FinalPrice-ref.FinalPrice) / ref.FinalPrice
		priceScore = math.Max(0, 1-diffRatio) * priceSimilarityWeight
	}
	return candidate.AverageRating + priceScore
}

// TopRated returns the highest-rated products, keeping only those with at
// least minReviews reviews so a single five-star review cannot top the list.
// categoryID 0 means all categories; minReviews <= 0 uses the default floor.
func (e *Engine) TopRated(categoryID, minReviews, limit int) []store.Product {
	if minReviews <= 0 {
		minReviews = defaultMinReviews
	}
	products := e.scope(categoryID)

	kept := products[:0]
	for _, p := range products {
		if p.ReviewCount >= minReviews {
			kept = append(kept, p)
		}
	}
	return truncate(query.Sort(kept, query.SortByRating, query.Desc), limit)
}

// BestDeals returns the most discounted products at or above minDiscount
// percent off. minDiscount <= 0 uses the default threshold.
func (e *Engine) BestDeals(categoryID int, minDiscount float64, limit int) []store.Product {
	if minDiscount <= 0 {
		minDiscount = defaultMinDiscount
	}
	products := e.scope(categoryID)

	kept := products[:0]
	for _, p := range products {
		if p.DiscountPercentage >= minDiscount {
			kept = append(kept, p)
		}
	}
	return truncate(query.Sort(kept, query.SortByDiscount, query.Desc), limit)
}

// Popular returns the most-reviewed products.
func (e *Engine) Popular(categoryID, limit int) []store.Product {
	return truncate(query.Sort(e.scope(categoryID), query.SortByReviewCount, query.Desc), limit)
}

// NewArrivals returns the most recently added products.
func (e *Engine) NewArrivals(categoryID, limit int) []store.Product {
	return truncate(query.Sort(e.scope(categoryID), query.SortByCreatedAt, query.Desc), limit)
}

// PriceRange returns the best-rated products whose final price falls within
// [minPrice, maxPrice]. An inverted range is rejected before any scan.
func (e *Engine) PriceRange(minPrice, maxPrice float64, categoryID, limit int) ([]store.Product, error) {
	if minPrice > maxPrice {
		return nil, ErrInvalidPriceRange
	}

	products := query.Filter(e.scope(categoryID), query.Criteria{
		MinPrice: &minPrice,
		MaxPrice: &maxPrice,
	})
	return truncate(query.Sort(products, query.SortByRating, query.Desc), limit), nil
}

func (e *Engine) scope(categoryID int) []store.Product {
	if categoryID > 0 {
		return e.repo.ProductsByCategory(categoryID)
	}
	return e.repo.ListProducts()
}

// truncate takes the head of an already-sorted slice; it is never a second
// ranking pass.
func truncate(products []store.Product, limit int) []store.Product {
	if limit >= 0 && len(products) > limit {
		return products[:limit]
	}
	return products
}
