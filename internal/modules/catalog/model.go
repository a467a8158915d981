package catalog

import "github.com/mockstore/storefront-backend/internal/store"

// ProductSummary is the compact product shape embedded in detail views.
type ProductSummary struct {
	ID                 int               `json:"id"`
	Name               string            `json:"name"`
	Price              float64           `json:"price"`
	FinalPrice         float64           `json:"final_price"`
	DiscountPercentage float64           `json:"discount_percentage"`
	AverageRating      float64           `json:"average_rating"`
	ReviewCount        int               `json:"review_count"`
	StockStatus        store.StockStatus `json:"stock_status"`
	Image              string            `json:"image,omitempty"`
}

// RecentReview is a review enriched with the reviewer's display name.
type RecentReview struct {
	store.Review
	UserName string `json:"user_name"`
}

// ProductDetail is the full product view: the record itself plus seller and
// category names, the latest reviews, similar products and the rating
// histogram.
type ProductDetail struct {
	store.Product
	SellerName         string           `json:"seller_name"`
	CategoryName       string           `json:"category_name"`
	RecentReviews      []RecentReview   `json:"recent_reviews"`
	SimilarProducts    []ProductSummary `json:"similar_products"`
	RatingDistribution map[string]int   `json:"rating_distribution"`
}

func summarize(p store.Product) ProductSummary {
	image := ""
	if len(p.Images) > 0 {
		image = p.Images[0]
	}
	return ProductSummary{
		ID:                 p.ID,
		Name:               p.Name,
		Price:              p.Price,
		FinalPrice:         p.FinalPrice,
		DiscountPercentage: p.DiscountPercentage,
		AverageRating:      p.AverageRating,
		ReviewCount:        p.ReviewCount,
		StockStatus:        p.StockStatus,
		Image:              image,
	}
}
