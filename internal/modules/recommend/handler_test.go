package recommend

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mockstore/storefront-backend/internal/store"
)

func newRouter(t *testing.T) *chi.Mux {
	t.Helper()
	db := store.New()
	store.Seed(db)

	r := chi.NewRouter()
	NewHandler(NewEngine(db), db).RegisterRoutes(r)
	return r
}

func get(t *testing.T, r *chi.Mux, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decodeProducts(t *testing.T, rec *httptest.ResponseRecorder) []store.Product {
	t.Helper()
	var products []store.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	return products
}

func TestSimilarEndpoint(t *testing.T) {
	r := newRouter(t)

	t.Run("returns same-category products excluding the reference", func(t *testing.T) {
		rec := get(t, r, "/recommendations/similar/1")
		require.Equal(t, http.StatusOK, rec.Code)

		ref := 1
		for _, p := range decodeProducts(t, rec) {
			assert.NotEqual(t, ref, p.ID)
			assert.Equal(t, 1, p.CategoryID)
		}
	})

	t.Run("unknown reference is 404", func(t *testing.T) {
		rec := get(t, r, "/recommendations/similar/999")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id is 400", func(t *testing.T) {
		rec := get(t, r, "/recommendations/similar/abc")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTopRatedEndpoint(t *testing.T) {
	r := newRouter(t)

	rec := get(t, r, "/recommendations/top-rated?limit=5")
	require.Equal(t, http.StatusOK, rec.Code)

	products := decodeProducts(t, rec)
	require.NotEmpty(t, products)
	assert.LessOrEqual(t, len(products), 5)
	for i, p := range products {
		assert.GreaterOrEqual(t, p.ReviewCount, 3, "default review floor")
		if i > 0 {
			assert.GreaterOrEqual(t, products[i-1].AverageRating, p.AverageRating)
		}
	}
}

func TestDealsEndpoint(t *testing.T) {
	r := newRouter(t)

	rec := get(t, r, "/recommendations/deals?min_discount=20")
	require.Equal(t, http.StatusOK, rec.Code)

	products := decodeProducts(t, rec)
	require.NotEmpty(t, products)
	for i, p := range products {
		assert.GreaterOrEqual(t, p.DiscountPercentage, 20.0)
		if i > 0 {
			assert.GreaterOrEqual(t, products[i-1].DiscountPercentage, p.DiscountPercentage)
		}
	}
}

func TestPopularAndNewArrivalsEndpoints(t *testing.T) {
	r := newRouter(t)

	rec := get(t, r, "/recommendations/popular?limit=3")
	require.Equal(t, http.StatusOK, rec.Code)
	products := decodeProducts(t, rec)
	require.Len(t, products, 3)
	assert.GreaterOrEqual(t, products[0].ReviewCount, products[1].ReviewCount)

	rec = get(t, r, "/recommendations/new-arrivals?category_id=1")
	require.Equal(t, http.StatusOK, rec.Code)
	for _, p := range decodeProducts(t, rec) {
		assert.Equal(t, 1, p.CategoryID)
	}
}

func TestPriceRangeEndpoint(t *testing.T) {
	r := newRouter(t)

	t.Run("bounds are required", func(t *testing.T) {
		rec := get(t, r, "/recommendations/price-range?min_price=10")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("inverted range is 400", func(t *testing.T) {
		rec := get(t, r, "/recommendations/price-range?min_price=500&max_price=100")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("results stay within bounds", func(t *testing.T) {
		rec := get(t, r, "/recommendations/price-range?min_price=100&max_price=400")
		require.Equal(t, http.StatusOK, rec.Code)

		products := decodeProducts(t, rec)
		require.NotEmpty(t, products)
		for _, p := range products {
			assert.GreaterOrEqual(t, p.FinalPrice, 100.0)
			assert.LessOrEqual(t, p.FinalPrice, 400.0)
		}
	})
}
