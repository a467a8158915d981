package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mockstore/storefront-backend/internal/store"
)

func newFixture(t *testing.T) (*store.Store, Service) {
	t.Helper()
	db := store.New()
	db.CreateProduct(store.Product{Name: "Headphones", CategoryID: 1, SellerID: 1, Price: 100})
	db.CreateUser(store.User{Name: "Alice Walker", Email: "alice@example.com"})
	db.CreateUser(store.User{Name: "Bob Reed", Email: "bob@example.com"})
	return db, NewService(db)
}

func TestCreateReview(t *testing.T) {
	db, svc := newFixture(t)

	got, err := svc.Create(1, CreateReviewRequest{
		UserID:  1,
		Rating:  5,
		Title:   "Great sound",
		Comment: "Crisp highs, deep bass.",
		Pros:    []string{"battery life"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice Walker", got.UserName)
	assert.Equal(t, 5, got.Rating)

	// The insert refreshes the product's aggregates.
	p, ok := db.GetProduct(1)
	require.True(t, ok)
	assert.Equal(t, 1, p.ReviewCount)
	assert.Equal(t, 5.0, p.AverageRating)
}

func TestCreateReviewValidation(t *testing.T) {
	_, svc := newFixture(t)

	tests := []struct {
		name      string
		productID int
		req       CreateReviewRequest
		wantErr   error
	}{
		{"rating too low", 1, CreateReviewRequest{UserID: 1, Rating: 0}, ErrInvalidRating},
		{"rating too high", 1, CreateReviewRequest{UserID: 1, Rating: 6}, ErrInvalidRating},
		{"unknown product", 99, CreateReviewRequest{UserID: 1, Rating: 4}, ErrProductNotFound},
		{"unknown user", 1, CreateReviewRequest{UserID: 99, Rating: 4}, ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(tt.productID, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestListByProduct(t *testing.T) {
	_, svc := newFixture(t)

	mustCreate := func(userID, rating int, title string) {
		_, err := svc.Create(1, CreateReviewRequest{UserID: userID, Rating: rating, Title: title})
		require.NoError(t, err)
	}
	mustCreate(1, 5, "first")
	mustCreate(2, 3, "second")
	mustCreate(1, 5, "third")

	t.Run("attaches user names", func(t *testing.T) {
		got, err := svc.ListByProduct(1, 0, SortByDate, Asc)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "Alice Walker", got[0].UserName)
		assert.Equal(t, "Bob Reed", got[1].UserName)
	})

	t.Run("filters by exact rating", func(t *testing.T) {
		got, err := svc.ListByProduct(1, 5, SortByDate, Asc)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "first", got[0].Title)
		assert.Equal(t, "third", got[1].Title)
	})

	t.Run("rating sort is stable on ties", func(t *testing.T) {
		got, err := svc.ListByProduct(1, 0, SortByRating, Desc)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "first", got[0].Title)
		assert.Equal(t, "third", got[1].Title)
		assert.Equal(t, "second", got[2].Title)
	})

	t.Run("unknown product", func(t *testing.T) {
		_, err := svc.ListByProduct(42, 0, SortByDate, Desc)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestListByProductSortsByHelpful(t *testing.T) {
	db, svc := newFixture(t)

	for i := 0; i < 3; i++ {
		_, err := svc.Create(1, CreateReviewRequest{UserID: 1, Rating: 4})
		require.NoError(t, err)
	}
	_, ok := db.IncrementHelpful(2)
	require.True(t, ok)
	_, ok = db.IncrementHelpful(2)
	require.True(t, ok)
	_, ok = db.IncrementHelpful(3)
	require.True(t, ok)

	got, err := svc.ListByProduct(1, 0, SortByHelpful, Desc)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []int{2, 3, 1}, []int{got[0].ID, got[1].ID, got[2].ID})
}

func TestStatsFor(t *testing.T) {
	_, svc := newFixture(t)

	for _, rating := range []int{5, 5, 4, 2} {
		_, err := svc.Create(1, CreateReviewRequest{UserID: 1, Rating: rating})
		require.NoError(t, err)
	}

	stats, err := svc.StatsFor(1)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalReviews)
	assert.Equal(t, 4.0, stats.AverageRating)
	assert.Equal(t, 75.0, stats.RecommendationPercentage)
	assert.Equal(t, map[string]int{"5": 2, "4": 1, "3": 0, "2": 1, "1": 0}, stats.RatingDistribution)
}

func TestStatsForNoReviews(t *testing.T) {
	_, svc := newFixture(t)

	stats, err := svc.StatsFor(1)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalReviews)
	assert.Zero(t, stats.AverageRating)
	assert.Zero(t, stats.RecommendationPercentage)
	assert.Equal(t, map[string]int{"5": 0, "4": 0, "3": 0, "2": 0, "1": 0}, stats.RatingDistribution)
}

func TestStatsForRoundsToTwoDecimals(t *testing.T) {
	_, svc := newFixture(t)

	for _, rating := range []int{5, 5, 4} {
		_, err := svc.Create(1, CreateReviewRequest{UserID: 1, Rating: rating})
		require.NoError(t, err)
	}

	stats, err := svc.StatsFor(1)
	require.NoError(t, err)
	assert.Equal(t, 4.67, stats.AverageRating)
	assert.Equal(t, 66.7, stats.RecommendationPercentage)
}

func TestMarkHelpful(t *testing.T) {
	_, svc := newFixture(t)

	_, err := svc.Create(1, CreateReviewRequest{UserID: 1, Rating: 4})
	require.NoError(t, err)

	count, err := svc.MarkHelpful(1)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = svc.MarkHelpful(1)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	_, err = svc.MarkHelpful(99)
	assert.ErrorIs(t, err, ErrReviewNotFound)
}
