package review

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mockstore/storefront-backend/internal/query"
)

const (
	defaultPageSize = 10
	maxPageSize     = 50
)

// Handler exposes the review HTTP endpoints.
type Handler struct{ service Service }

// NewHandler creates a review handler.
func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Get("/products/{productID}/reviews", h.listReviews)
	r.Post("/products/{productID}/reviews", h.createReview)
	r.Get("/reviews/stats/{productID}", h.stats)
	r.Post("/reviews/{reviewID}/helpful", h.markHelpful)
}

func (h *Handler) listReviews(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	q := r.URL.Query()
	rating := 0
	if v, err := strconv.Atoi(q.Get("rating")); err == nil && v >= 1 && v <= 5 {
		rating = v
	}
	sortBy := SortKey(q.Get("sort_by"))
	if sortBy == "" {
		sortBy = SortByDate
	}
	order := Order(q.Get("order"))
	if order != Asc && order != Desc {
		order = Desc
	}

	reviews, err := h.service.ListByProduct(productID, rating, sortBy, order)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	page := queryInt(r, "page", 1)
	if page < 1 {
		page = 1
	}
	pageSize := queryInt(r, "page_size", defaultPageSize)
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	respond(w, http.StatusOK, query.Paginate(reviews, page, pageSize))
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}
	var req CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.service.Create(productID, req)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	respond(w, http.StatusCreated, created)
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}
	stats, err := h.service.StatsFor(productID)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	respond(w, http.StatusOK, stats)
}

func (h *Handler) markHelpful(w http.ResponseWriter, r *http.Request) {
	reviewID, err := strconv.Atoi(chi.URLParam(r, "reviewID"))
	if err != nil {
		http.Error(w, "invalid review id", http.StatusBadRequest)
		return
	}
	count, err := h.service.MarkHelpful(reviewID)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{
		"message":       "review marked as helpful",
		"helpful_count": count,
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrProductNotFound), errors.Is(err, ErrUserNotFound), errors.Is(err, ErrReviewNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidRating):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func queryInt(r *http.Request, name string, fallback int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
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
