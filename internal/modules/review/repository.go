package review

import "github.com/mockstore/storefront-backend/internal/store"

// Repository is the slice of the store the review module needs. CreateReview
// is expected to recompute the affected product's rating aggregates after
// inserting.
type Repository interface {
	CreateReview(r store.Review) store.Review
	GetReview(id int) (store.Review, bool)
	ReviewsByProduct(productID int) []store.Review
	IncrementHelpful(reviewID int) (int, bool)

	GetProduct(id int) (store.Product, bool)
	GetUser(id int) (store.User, bool)
}
