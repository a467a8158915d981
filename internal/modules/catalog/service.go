package catalog

import (
	"fmt"
	"os"
	"sort"

	"github.com/rs/zerolog"

	"github.com/mockstore/storefront-backend/internal/query"
	"github.com/mockstore/storefront-backend/internal/store"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

const (
	similarProductsInDetail = 5
	recentReviewsInDetail   = 5
)

// Service defines the catalog business logic.
type Service interface {
	// ListProducts filters, sorts and paginates the whole catalog.
	ListProducts(params ListParams) query.Page[store.Product]

	// SearchProducts matches q against product names and descriptions, then
	// applies the remaining list parameters.
	SearchProducts(q string, params ListParams) query.Page[store.Product]

	// ProductsByCategory lists one category's products; unknown categories
	// are an error rather than an empty page.
	ProductsByCategory(categoryID int, params ListParams) (query.Page[store.Product], error)

	// GetProductDetail returns the enriched product view.
	GetProductDetail(id int) (*ProductDetail, error)

	// CreateProduct validates the category and seller references and stores
	// the product.
	CreateProduct(req CreateProductRequest) (store.Product, error)

	// UpdateProduct applies a partial patch; at least one field must be set.
	UpdateProduct(id int, upd store.ProductUpdate) (store.Product, error)

	// DeleteProduct removes a product and its reviews.
	DeleteProduct(id int) error
}

// ListParams are the already-validated listing arguments: filter criteria,
// sort selection and page coordinates.
type ListParams struct {
	Criteria query.Criteria
	SortBy   query.SortKey
	Order    query.Direction
	Page     int
	PageSize int
}

// CreateProductRequest is the payload for listing a new product.
type CreateProductRequest struct {
	Name               string            `json:"name"`
	Description        string            `json:"description"`
	CategoryID         int               `json:"category_id"`
	SellerID           int               `json:"seller_id"`
	Price              float64           `json:"price"`
	DiscountPercentage float64           `json:"discount_percentage"`
	StockStatus        store.StockStatus `json:"stock_status"`
	Features           map[string]string `json:"features"`
	Images             []string          `json:"images"`
}

type service struct {
	repo        Repository
	recommender Recommender
}

// NewService creates a catalog service.
func NewService(repo Repository, recommender Recommender) Service {
	return &service{repo: repo, recommender: recommender}
}

func (s *service) ListProducts(params ListParams) query.Page[store.Product] {
	products := query.Filter(s.repo.ListProducts(), params.Criteria)
	products = query.Sort(products, params.SortBy, params.Order)
	return query.Paginate(products, params.Page, params.PageSize)
}

func (s *service) SearchProducts(q string, params ListParams) query.Page[store.Product] {
	products := query.Filter(s.repo.SearchProducts(q), params.Criteria)
	products = query.Sort(products, params.SortBy, params.Order)
	return query.Paginate(products, params.Page, params.PageSize)
}

func (s *service) ProductsByCategory(categoryID int, params ListParams) (query.Page[store.Product], error) {
	if _, ok := s.repo.GetCategory(categoryID); !ok {
		return query.Page[store.Product]{}, fmt.Errorf("category %d: %w", categoryID, ErrCategoryNotFound)
	}
	products := query.Sort(s.repo.ProductsByCategory(categoryID), params.SortBy, params.Order)
	return query.Paginate(products, params.Page, params.PageSize), nil
}

func (s *service) GetProductDetail(id int) (*ProductDetail, error) {
	p, ok := s.repo.GetProduct(id)
	if !ok {
		return nil, fmt.Errorf("product %d: %w", id, ErrProductNotFound)
	}

	sellerName := "Unknown"
	if seller, ok := s.repo.GetSeller(p.SellerID); ok {
		sellerName = seller.Name
	}
	categoryName := "Unknown"
	if category, ok := s.repo.GetCategory(p.CategoryID); ok {
		categoryName = category.Name
	}

	reviews := s.repo.ReviewsByProduct(id)
	distribution := map[string]int{"5": 0, "4": 0, "3": 0, "2": 0, "1": 0}
	enriched := make([]RecentReview, 0, len(reviews))
	for _, r := range reviews {
		key := fmt.Sprintf("%d", r.Rating)
		if _, ok := distribution[key]; ok {
			distribution[key]++
		}
		userName := "Anonymous"
		if u, ok := s.repo.GetUser(r.UserID); ok {
			userName = u.Name
		}
		enriched = append(enriched, RecentReview{Review: r, UserName: userName})
	}

	// Newest first; ties keep insertion order.
	sort.SliceStable(enriched, func(i, j int) bool {
		return enriched[j].CreatedAt.Before(enriched[i].CreatedAt)
	})
	if len(enriched) > recentReviewsInDetail {
		enriched = enriched[:recentReviewsInDetail]
	}

	similar := s.recommender.Similar(id, similarProductsInDetail, false)
	summaries := make([]ProductSummary, 0, len(similar))
	for _, sp := range similar {
		summaries = append(summaries, summarize(sp))
	}

	return &ProductDetail{
		Product:            p,
		SellerName:         sellerName,
		CategoryName:       categoryName,
		RecentReviews:      enriched,
		SimilarProducts:    summaries,
		RatingDistribution: distribution,
	}, nil
}

func (s *service) CreateProduct(req CreateProductRequest) (store.Product, error) {
	if _, ok := s.repo.GetCategory(req.CategoryID); !ok {
		return store.Product{}, fmt.Errorf("category %d: %w", req.CategoryID, ErrCategoryNotFound)
	}
	if _, ok := s.repo.GetSeller(req.SellerID); !ok {
		return store.Product{}, fmt.Errorf("seller %d: %w", req.SellerID, ErrSellerNotFound)
	}

	status := req.StockStatus
	if status == "" {
		status = store.StockInStock
	}

	p := s.repo.CreateProduct(store.Product{
		Name:               req.Name,
		Description:        req.Description,
		CategoryID:         req.CategoryID,
		SellerID:           req.SellerID,
		Price:              req.Price,
		DiscountPercentage: req.DiscountPercentage,
		StockStatus:        status,
		Features:           req.Features,
		Images:             req.Images,
	})
	logger.Info().Int("product_id", p.ID).Int("seller_id", p.SellerID).Msg("product created")
	return p, nil
}

func (s *service) UpdateProduct(id int, upd store.ProductUpdate) (store.Product, error) {
	if upd.Empty() {
		return store.Product{}, ErrEmptyUpdate
	}
	if upd.CategoryID != nil {
		if _, ok := s.repo.GetCategory(*upd.CategoryID); !ok {
			return store.Product{}, fmt.Errorf("category %d: %w", *upd.CategoryID, ErrCategoryNotFound)
		}
	}

	p, ok := s.repo.UpdateProduct(id, upd)
	if !ok {
		return store.Product{}, fmt.Errorf("product %d: %w", id, ErrProductNotFound)
	}
	return p, nil
}

func (s *service) DeleteProduct(id int) error {
	if !s.repo.DeleteProduct(id) {
		return fmt.Errorf("product %d: %w", id, ErrProductNotFound)
	}
	logger.Info().Int("product_id", id).Msg("product deleted with its reviews")
	return nil
}
