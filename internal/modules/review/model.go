package review

import "github.com/mockstore/storefront-backend/internal/store"

// SortKey selects the review attribute a listing is ordered by.
type SortKey string

const (
	SortByDate    SortKey = "date"
	SortByRating  SortKey = "rating"
	SortByHelpful SortKey = "helpful"
)

// ReviewWithUser is a review enriched with the reviewer's display name.
type ReviewWithUser struct {
	store.Review
	UserName string `json:"user_name"`
}

// Stats summarises a product's reviews: the histogram per star, the mean and
// the share of reviewers rating the product 4 or above.
type Stats struct {
	ProductID                int            `json:"product_id"`
	TotalReviews             int            `json:"total_reviews"`
	AverageRating            float64        `json:"average_rating"`
	RatingDistribution       map[string]int `json:"rating_distribution"`
	RecommendationPercentage float64        `json:"recommendation_percentage"`
}

// CreateReviewRequest is the payload for posting a review.
type CreateReviewRequest struct {
	UserID  int      `json:"user_id"`
	Rating  int      `json:"rating"`
	Title   string   `json:"title"`
	Comment string   `json:"comment"`
	Pros    []string `json:"pros,omitempty"`
	Cons    []string `json:"cons,omitempty"`
}
