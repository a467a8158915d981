package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mockstore/storefront-backend/internal/query"
	"github.com/mockstore/storefront-backend/internal/store"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
	minSearchLength = 2
)

// Handler exposes catalog HTTP endpoints.
type Handler struct{ service Service }

// NewHandler creates a catalog handler.
func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.listProducts)
		r.Get("/search", h.searchProducts)
		r.Get("/category/{categoryID}", h.productsByCategory)
		r.Get("/{id}", h.getProduct)
		r.Post("/", h.createProduct)
		r.Put("/{id}", h.updateProduct)
		r.Delete("/{id}", h.deleteProduct)
	})
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	params := listParams(r, query.SortByCreatedAt, query.Desc)
	params.Criteria = criteriaFromQuery(r)
	respond(w, http.StatusOK, h.service.ListProducts(params))
}

func (h *Handler) searchProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if len(q) < minSearchLength {
		http.Error(w, "search term must be at least 2 characters", http.StatusBadRequest)
		return
	}
	params := listParams(r, query.SortByRating, query.Desc)
	params.Criteria = criteriaFromQuery(r)
	respond(w, http.StatusOK, h.service.SearchProducts(q, params))
}

func (h *Handler) productsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.Atoi(chi.URLParam(r, "categoryID"))
	if err != nil {
		http.Error(w, "invalid category id", http.StatusBadRequest)
		return
	}
	page, err := h.service.ProductsByCategory(categoryID, listParams(r, query.SortByRating, query.Desc))
	if err != nil {
		// Unlike a bad category reference in a payload, a missing category in
		// the path addresses a resource that does not exist.
		if errors.Is(err, ErrCategoryNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	respond(w, http.StatusOK, page)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}
	detail, err := h.service.GetProductDetail(id)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	respond(w, http.StatusOK, detail)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	p, err := h.service.CreateProduct(req)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	respond(w, http.StatusCreated, p)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}
	var upd store.ProductUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	p, err := h.service.UpdateProduct(id, upd)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	respond(w, http.StatusOK, p)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}
	if err := h.service.DeleteProduct(id); err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{
		"message": "product deleted successfully",
		"success": true,
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrCategoryNotFound), errors.Is(err, ErrSellerNotFound), errors.Is(err, ErrEmptyUpdate):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// listParams reads sort and page coordinates, applying the listing defaults:
// page 1, page size 10 capped at 100.
func listParams(r *http.Request, defaultSort query.SortKey, defaultOrder query.Direction) ListParams {
	q := r.URL.Query()

	sortBy := query.SortKey(q.Get("sort_by"))
	if sortBy == "" {
		sortBy = defaultSort
	}
	order := query.Direction(q.Get("order"))
	if order != query.Asc && order != query.Desc {
		order = defaultOrder
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

	return ListParams{SortBy: sortBy, Order: order, Page: page, PageSize: pageSize}
}

func criteriaFromQuery(r *http.Request) query.Criteria {
	q := r.URL.Query()
	var c query.Criteria

	if v, err := strconv.Atoi(q.Get("category_id")); err == nil {
		c.CategoryID = &v
	}
	if v, err := strconv.ParseFloat(q.Get("min_price"), 64); err == nil {
		c.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(q.Get("max_price"), 64); err == nil {
		c.MaxPrice = &v
	}
	if v, err := strconv.ParseFloat(q.Get("min_rating"), 64); err == nil {
		c.MinRating = &v
	}
	if s := q.Get("stock_status"); s != "" {
		status := store.StockStatus(s)
		c.StockStatus = &status
	}
	if v, err := strconv.Atoi(q.Get("seller_id")); err == nil {
		c.SellerID = &v
	}
	if s := q.Get("has_discount"); s != "" {
		hasDiscount := s == "true"
		c.HasDiscount = &hasDiscount
	}
	return c
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
