package review

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/rs/zerolog"

	"github.com/mockstore/storefront-backend/internal/store"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

var (
	ErrProductNotFound = errors.New("product not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrReviewNotFound  = errors.New("review not found")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
)

// Service defines the review business logic.
type Service interface {
	// ListByProduct returns a product's reviews with user names attached,
	// optionally keeping only one exact star rating, sorted by key.
	ListByProduct(productID int, rating int, sortBy SortKey, order Order) ([]ReviewWithUser, error)

	// Create validates the product and user references, inserts the review
	// and lets the store refresh the product's rating aggregates.
	Create(productID int, req CreateReviewRequest) (ReviewWithUser, error)

	// StatsFor computes a product's rating histogram and summary figures.
	StatsFor(productID int) (Stats, error)

	// MarkHelpful bumps a review's helpful-vote counter.
	MarkHelpful(reviewID int) (int, error)
}

// Order is the listing direction.
type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

type service struct{ repo Repository }

// NewService creates a review service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) ListByProduct(productID int, rating int, sortBy SortKey, order Order) ([]ReviewWithUser, error) {
	if _, ok := s.repo.GetProduct(productID); !ok {
		return nil, fmt.Errorf("product %d: %w", productID, ErrProductNotFound)
	}

	reviews := s.repo.ReviewsByProduct(productID)
	out := make([]ReviewWithUser, 0, len(reviews))
	for _, r := range reviews {
		if rating != 0 && r.Rating != rating {
			continue
		}
		userName := "Anonymous"
		if u, ok := s.repo.GetUser(r.UserID); ok {
			userName = u.Name
		}
		out = append(out, ReviewWithUser{Review: r, UserName: userName})
	}

	sortReviews(out, sortBy, order)
	return out, nil
}

// sortReviews orders in place, stable so equal keys keep insertion order.
func sortReviews(reviews []ReviewWithUser, sortBy SortKey, order Order) {
	var less func(a, b ReviewWithUser) bool
	switch sortBy {
	case SortByRating:
		less = func(a, b ReviewWithUser) bool { return a.Rating < b.Rating }
	case SortByHelpful:
		less = func(a, b ReviewWithUser) bool { return a.HelpfulCount < b.HelpfulCount }
	default:
		less = func(a, b ReviewWithUser) bool { return a.CreatedAt.Before(b.CreatedAt) }
	}
	sort.SliceStable(reviews, func(i, j int) bool {
		if order == Desc {
			return less(reviews[j], reviews[i])
		}
		return less(reviews[i], reviews[j])
	})
}

func (s *service) Create(productID int, req CreateReviewRequest) (ReviewWithUser, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return ReviewWithUser{}, ErrInvalidRating
	}
	if _, ok := s.repo.GetProduct(productID); !ok {
		return ReviewWithUser{}, fmt.Errorf("product %d: %w", productID, ErrProductNotFound)
	}
	u, ok := s.repo.GetUser(req.UserID)
	if !ok {
		return ReviewWithUser{}, fmt.Errorf("user %d: %w", req.UserID, ErrUserNotFound)
	}

	r := s.repo.CreateReview(store.Review{
		ProductID: productID,
		UserID:    req.UserID,
		Rating:    req.Rating,
		Title:     req.Title,
		Comment:   req.Comment,
		Pros:      req.Pros,
		Cons:      req.Cons,
	})
	logger.Info().Int("review_id", r.ID).Int("product_id", productID).Int("rating", r.Rating).Msg("review created")
	return ReviewWithUser{Review: r, UserName: u.Name}, nil
}

func (s *service) StatsFor(productID int) (Stats, error) {
	if _, ok := s.repo.GetProduct(productID); !ok {
		return Stats{}, fmt.Errorf("product %d: %w", productID, ErrProductNotFound)
	}

	reviews := s.repo.ReviewsByProduct(productID)
	stats := Stats{
		ProductID:          productID,
		TotalReviews:       len(reviews),
		RatingDistribution: map[string]int{"5": 0, "4": 0, "3": 0, "2": 0, "1": 0},
	}
	if len(reviews) == 0 {
		return stats, nil
	}

	totalRating := 0
	positive := 0
	for _, r := range reviews {
		totalRating += r.Rating
		key := fmt.Sprintf("%d", r.Rating)
		if _, ok := stats.RatingDistribution[key]; ok {
			stats.RatingDistribution[key]++
		}
		if r.Rating >= 4 {
			positive++
		}
	}

	stats.AverageRating = math.Round(float64(totalRating)/float64(len(reviews))*100) / 100
	stats.RecommendationPercentage = math.Round(float64(positive)/float64(len(reviews))*1000) / 10
	return stats, nil
}

func (s *service) MarkHelpful(reviewID int) (int, error) {
	count, ok := s.repo.IncrementHelpful(reviewID)
	if !ok {
		return 0, fmt.Errorf("review %d: %w", reviewID, ErrReviewNotFound)
	}
	return count, nil
}
