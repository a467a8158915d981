package store

import "time"

// StockStatus represents the availability of a product.
type StockStatus string

const (
	StockInStock    StockStatus = "in_stock"
	StockLowStock   StockStatus = "low_stock"
	StockOutOfStock StockStatus = "out_of_stock"
	StockPreOrder   StockStatus = "pre_order"
)

// Product is a catalog item listed by a seller.
//
// FinalPrice, AverageRating and ReviewCount are derived fields owned by the
// store: FinalPrice is recomputed whenever Price or DiscountPercentage
// changes, and the rating aggregates are recomputed after every review
// insertion and product deletion.
type Product struct {
	ID                 int               `json:"id"`
	Name               string            `json:"name"`
	Description        string            `json:"description"`
	CategoryID         int               `json:"category_id"`
	SellerID           int               `json:"seller_id"`
	Price              float64           `json:"price"`
	DiscountPercentage float64           `json:"discount_percentage"`
	FinalPrice         float64           `json:"final_price"`
	StockStatus        StockStatus       `json:"stock_status"`
	Features           map[string]string `json:"features,omitempty"`
	Images             []string          `json:"images,omitempty"`
	AverageRating      float64           `json:"average_rating"`
	ReviewCount        int               `json:"review_count"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

// ProductUpdate is a partial product patch. Nil fields are left untouched.
type ProductUpdate struct {
	Name               *string           `json:"name,omitempty"`
	Description        *string           `json:"description,omitempty"`
	CategoryID         *int              `json:"category_id,omitempty"`
	Price              *float64          `json:"price,omitempty"`
	DiscountPercentage *float64          `json:"discount_percentage,omitempty"`
	StockStatus        *StockStatus      `json:"stock_status,omitempty"`
	Features           map[string]string `json:"features,omitempty"`
	Images             []string          `json:"images,omitempty"`
}

// Empty reports whether the patch carries no fields at all.
func (u ProductUpdate) Empty() bool {
	return u.Name == nil && u.Description == nil && u.CategoryID == nil &&
		u.Price == nil && u.DiscountPercentage == nil && u.StockStatus == nil &&
		u.Features == nil && u.Images == nil
}

// Review is a user's review of a product. Reviews are immutable after
// creation except for the helpful-vote counter.
type Review struct {
	ID           int       `json:"id"`
	ProductID    int       `json:"product_id"`
	UserID       int       `json:"user_id"`
	Rating       int       `json:"rating"`
	Title        string    `json:"title"`
	Comment      string    `json:"comment"`
	Pros         []string  `json:"pros,omitempty"`
	Cons         []string  `json:"cons,omitempty"`
	HelpfulCount int       `json:"helpful_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// User is a shopper who writes reviews.
type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Seller is a merchant listing products. Each seller owns exactly one opaque
// API credential, held in the store's key mapping rather than on the record.
type Seller struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	LogoURL       string    `json:"logo_url,omitempty"`
	ContactEmail  string    `json:"contact_email,omitempty"`
	ContactPhone  string    `json:"contact_phone,omitempty"`
	IsVerified    bool      `json:"is_verified"`
	AverageRating float64   `json:"average_rating"`
	CreatedAt     time.Time `json:"created_at"`
}

// Category groups products. ParentID is nil for top-level categories.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	ParentID    *int   `json:"parent_id"`
}

// Stats summarises how many records the store currently holds.
type Stats struct {
	TotalProducts   int `json:"total_products"`
	TotalReviews    int `json:"total_reviews"`
	TotalUsers      int `json:"total_users"`
	TotalSellers    int `json:"total_sellers"`
	TotalCategories int `json:"total_categories"`
}
