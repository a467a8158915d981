package recommend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the recommendation HTTP endpoints.
type Handler struct {
	engine *Engine
	repo   Repository
}

// NewHandler creates a recommendation handler.
func NewHandler(engine *Engine, repo Repository) *Handler {
	return &Handler{engine: engine, repo: repo}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/recommendations", func(r chi.Router) {
		r.Get("/similar/{productID}", h.similar)
		r.Get("/top-rated", h.topRated)
		r.Get("/deals", h.deals)
		r.Get("/popular", h.popular)
		r.Get("/new-arrivals", h.newArrivals)
		r.Get("/price-range", h.priceRange)
	})
}

func (h *Handler) similar(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}
	if _, ok := h.repo.GetProduct(productID); !ok {
		http.Error(w, fmt.Sprintf("product %d not found", productID), http.StatusNotFound)
		return
	}

	limit := queryInt(r, "limit", 5)
	includeSameSeller := r.URL.Query().Get("include_same_seller") == "true"

	respond(w, http.StatusOK, h.engine.Similar(productID, limit, includeSameSeller))
}

func (h *Handler) topRated(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.engine.TopRated(
		queryInt(r, "category_id", 0),
		queryInt(r, "min_reviews", 0),
		queryInt(r, "limit", 10),
	))
}

func (h *Handler) deals(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.engine.BestDeals(
		queryInt(r, "category_id", 0),
		queryFloat(r, "min_discount", 0),
		queryInt(r, "limit", 10),
	))
}

func (h *Handler) popular(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.engine.Popular(
		queryInt(r, "category_id", 0),
		queryInt(r, "limit", 10),
	))
}

func (h *Handler) newArrivals(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.engine.NewArrivals(
		queryInt(r, "category_id", 0),
		queryInt(r, "limit", 10),
	))
}

func (h *Handler) priceRange(w http.ResponseWriter, r *http.Request) {
	minPrice, err := strconv.ParseFloat(r.URL.Query().Get("min_price"), 64)
	if err != nil {
		http.Error(w, "min_price is required", http.StatusBadRequest)
		return
	}
	maxPrice, err := strconv.ParseFloat(r.URL.Query().Get("max_price"), 64)
	if err != nil {
		http.Error(w, "max_price is required", http.StatusBadRequest)
		return
	}

	products, err := h.engine.PriceRange(minPrice, maxPrice,
		queryInt(r, "category_id", 0), queryInt(r, "limit", 10))
	if err != nil {
		if errors.Is(err, ErrInvalidPriceRange) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, products)
}

func queryInt(r *http.Request, name string, fallback int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return fallback
	}
	return v
}

func queryFloat(r *http.Request, name string, fallback float64) float64 {
	v, err := strconv.ParseFloat(r.URL.Query().Get(name), 64)
	if err != nil {
		return fallback
	}
	return v
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
