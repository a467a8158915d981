package store

import (
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store is the in-memory database backing the whole application. All five
// entity collections live behind one lock; every mutating operation is atomic
// with respect to concurrent callers, and every read returns an independent
// copy so callers never hold a live reference into the store.
type Store struct {
	mu sync.RWMutex

	products   map[int]*Product
	reviews    map[int]*Review
	users      map[int]*User
	sellers    map[int]*Seller
	categories map[int]*Category
	apiKeys    map[string]int // credential token -> seller id

	productSeq  int
	reviewSeq   int
	userSeq     int
	sellerSeq   int
	categorySeq int
}

// New creates an empty store.
func New() *Store {
	return &Store{
		products:   make(map[int]*Product),
		reviews:    make(map[int]*Review),
		users:      make(map[int]*User),
		sellers:    make(map[int]*Seller),
		categories: make(map[int]*Category),
		apiKeys:    make(map[string]int),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func finalPrice(price, discount float64) float64 {
	return round2(price * (1 - discount/100))
}

func cloneProduct(p *Product) Product {
	out := *p
	if p.Features != nil {
		out.Features = make(map[string]string, len(p.Features))
		for k, v := range p.Features {
			out.Features[k] = v
		}
	}
	if p.Images != nil {
		out.Images = append([]string(nil), p.Images...)
	}
	return out
}

func cloneReview(r *Review) Review {
	out := *r
	if r.Pros != nil {
		out.Pros = append([]string(nil), r.Pros...)
	}
	if r.Cons != nil {
		out.Cons = append([]string(nil), r.Cons...)
	}
	return out
}

// ── products ──────────────────────────────────────────────────────────────────

// CreateProduct assigns the next product id, stamps timestamps, computes the
// final price and zeroes the rating aggregates before storing p.
func (s *Store) CreateProduct(p Product) Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.productSeq++
	now := time.Now().UTC()
	p.ID = s.productSeq
	p.CreatedAt = now
	p.UpdatedAt = now
	p.AverageRating = 0
	p.ReviewCount = 0
	p.FinalPrice = finalPrice(p.Price, p.DiscountPercentage)

	stored := cloneProduct(&p)
	s.products[p.ID] = &stored
	return p
}

// GetProduct returns a copy of the product, or false when the id is unknown.
func (s *Store) GetProduct(id int) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return Product{}, false
	}
	return cloneProduct(p), true
}

// ListProducts returns copies of all products ordered by id.
func (s *Store) ListProducts() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scanProducts(func(*Product) bool { return true })
}

// ProductsByCategory returns all products in a category, ordered by id.
func (s *Store) ProductsByCategory(categoryID int) []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scanProducts(func(p *Product) bool { return p.CategoryID == categoryID })
}

// ProductsBySeller returns all products listed by a seller, ordered by id.
func (s *Store) ProductsBySeller(sellerID int) []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scanProducts(func(p *Product) bool { return p.SellerID == sellerID })
}

// SearchProducts matches the query case-insensitively against product names
// and descriptions.
func (s *Store) SearchProducts(query string) []Product {
	q := strings.ToLower(query)
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scanProducts(func(p *Product) bool {
		return strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q)
	})
}

// scanProducts must be called with at least the read lock held. Results are
// ordered by id so repeated scans are deterministic.
func (s *Store) scanProducts(keep func(*Product) bool) []Product {
	ids := make([]int, 0, len(s.products))
	for id, p := range s.products {
		if keep(p) {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	out := make([]Product, 0, len(ids))
	for _, id := range ids {
		out = append(out, cloneProduct(s.products[id]))
	}
	return out
}

// UpdateProduct merges the non-nil fields of upd into the product, recomputes
// the final price and bumps the modification timestamp. It returns false when
// the id is unknown.
func (s *Store) UpdateProduct(id int, upd ProductUpdate) (Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return Product{}, false
	}

	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.CategoryID != nil {
		p.CategoryID = *upd.CategoryID
	}
	if upd.Price != nil {
		p.Price = *upd.Price
	}
	if upd.DiscountPercentage != nil {
		p.DiscountPercentage = *upd.DiscountPercentage
	}
	if upd.StockStatus != nil {
		p.StockStatus = *upd.StockStatus
	}
	if upd.Features != nil {
		features := make(map[string]string, len(upd.Features))
		for k, v := range upd.Features {
			features[k] = v
		}
		p.Features = features
	}
	if upd.Images != nil {
		p.Images = append([]string(nil), upd.Images...)
	}

	p.FinalPrice = finalPrice(p.Price, p.DiscountPercentage)
	p.UpdatedAt = time.Now().UTC()
	return cloneProduct(p), true
}

// DeleteProduct removes a product and cascades deletion to every review that
// references it. Referential integrity between reviews and products is
// enforced here and nowhere else.
func (s *Store) DeleteProduct(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return false
	}
	delete(s.products, id)
	for rid, r := range s.reviews {
		if r.ProductID == id {
			delete(s.reviews, rid)
		}
	}
	return true
}

// RecomputeRating refreshes a product's average rating and review count from
// the reviews currently referencing it. Unknown ids are ignored.
func (s *Store) RecomputeRating(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[productID]
	if !ok {
		return
	}

	var sum, count int
	for _, r := range s.reviews {
		if r.ProductID == productID {
			sum += r.Rating
			count++
		}
	}
	if count == 0 {
		p.AverageRating = 0
		p.ReviewCount = 0
		return
	}
	p.AverageRating = round2(float64(sum) / float64(count))
	p.ReviewCount = count
}

// ── reviews ───────────────────────────────────────────────────────────────────

// CreateReview inserts the review and then recomputes the affected product's
// rating aggregates. The recompute runs as its own critical section strictly
// after the insert, so a concurrent reader either sees the review pending
// aggregation or the fully refreshed product, never a partial state.
func (s *Store) CreateReview(r Review) Review {
	s.mu.Lock()
	s.reviewSeq++
	r.ID = s.reviewSeq
	r.HelpfulCount = 0
	r.CreatedAt = time.Now().UTC()
	stored := cloneReview(&r)
	s.reviews[r.ID] = &stored
	s.mu.Unlock()

	s.RecomputeRating(r.ProductID)
	return r
}

// GetReview returns a copy of the review, or false when the id is unknown.
func (s *Store) GetReview(id int) (Review, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.reviews[id]
	if !ok {
		return Review{}, false
	}
	return cloneReview(r), true
}

// ReviewsByProduct returns all reviews for a product, ordered by id.
func (s *Store) ReviewsByProduct(productID int) []Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scanReviews(func(r *Review) bool { return r.ProductID == productID })
}

// ReviewsByUser returns all reviews written by a user, ordered by id.
func (s *Store) ReviewsByUser(userID int) []Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scanReviews(func(r *Review) bool { return r.UserID == userID })
}

func (s *Store) scanReviews(keep func(*Review) bool) []Review {
	ids := make([]int, 0, len(s.reviews))
	for id, r := range s.reviews {
		if keep(r) {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	out := make([]Review, 0, len(ids))
	for _, id := range ids {
		out = append(out, cloneReview(s.reviews[id]))
	}
	return out
}

// IncrementHelpful bumps a review's helpful-vote counter and returns the new
// count, or false when the id is unknown.
func (s *Store) IncrementHelpful(reviewID int) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reviews[reviewID]
	if !ok {
		return 0, false
	}
	r.HelpfulCount++
	return r.HelpfulCount, true
}

// ── users ─────────────────────────────────────────────────────────────────────

// CreateUser assigns the next user id and stores u.
func (s *Store) CreateUser(u User) User {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userSeq++
	u.ID = s.userSeq
	u.CreatedAt = time.Now().UTC()
	stored := u
	s.users[u.ID] = &stored
	return u
}

// GetUser returns a copy of the user, or false when the id is unknown.
func (s *Store) GetUser(id int) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return User{}, false
	}
	return *u, true
}

// ListUsers returns copies of all users ordered by id.
func (s *Store) ListUsers() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int, 0, len(s.users))
	for id := range s.users {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]User, 0, len(ids))
	for _, id := range ids {
		out = append(out, *s.users[id])
	}
	return out
}

// ── sellers ───────────────────────────────────────────────────────────────────

// CreateSeller assigns the next seller id and registers the seller's API
// credential. When apiKey is empty a fresh opaque token is generated.
func (s *Store) CreateSeller(sl Seller, apiKey string) Seller {
	if apiKey == "" {
		apiKey = "sk_" + uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sellerSeq++
	sl.ID = s.sellerSeq
	sl.CreatedAt = time.Now().UTC()
	stored := sl
	s.sellers[sl.ID] = &stored
	s.apiKeys[apiKey] = sl.ID
	return sl
}

// GetSeller returns a copy of the seller, or false when the id is unknown.
func (s *Store) GetSeller(id int) (Seller, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sl, ok := s.sellers[id]
	if !ok {
		return Seller{}, false
	}
	return *sl, true
}

// ListSellers returns copies of all sellers ordered by id.
func (s *Store) ListSellers() []Seller {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int, 0, len(s.sellers))
	for id := range s.sellers {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]Seller, 0, len(ids))
	for _, id := range ids {
		out = append(out, *s.sellers[id])
	}
	return out
}

// SellerByAPIKey resolves an API credential to its seller.
func (s *Store) SellerByAPIKey(apiKey string) (Seller, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.apiKeys[apiKey]
	if !ok {
		return Seller{}, false
	}
	sl, ok := s.sellers[id]
	if !ok {
		return Seller{}, false
	}
	return *sl, true
}

// VerifyAPIKey reports whether the API credential is registered.
func (s *Store) VerifyAPIKey(apiKey string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.apiKeys[apiKey]
	return ok
}

// APIKeys returns the registered credential tokens keyed by seller id.
func (s *Store) APIKeys() map[int]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[int]string, len(s.apiKeys))
	for key, sellerID := range s.apiKeys {
		out[sellerID] = key
	}
	return out
}

// ── categories ────────────────────────────────────────────────────────────────

// CreateCategory assigns the next category id and stores c.
func (s *Store) CreateCategory(c Category) Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.categorySeq++
	c.ID = s.categorySeq
	stored := c
	s.categories[c.ID] = &stored
	return c
}

// GetCategory returns a copy of the category, or false when the id is unknown.
func (s *Store) GetCategory(id int) (Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.categories[id]
	if !ok {
		return Category{}, false
	}
	return *c, true
}

// ListCategories returns copies of all categories ordered by id.
func (s *Store) ListCategories() []Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int, 0, len(s.categories))
	for id := range s.categories {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]Category, 0, len(ids))
	for _, id := range ids {
		out = append(out, *s.categories[id])
	}
	return out
}

// CategoryProductCount returns the number of products in a category.
func (s *Store) CategoryProductCount(categoryID int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, p := range s.products {
		if p.CategoryID == categoryID {
			count++
		}
	}
	return count
}

// ── utility ───────────────────────────────────────────────────────────────────

// Stats reports how many records each collection holds.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Stats{
		TotalProducts:   len(s.products),
		TotalReviews:    len(s.reviews),
		TotalUsers:      len(s.users),
		TotalSellers:    len(s.sellers),
		TotalCategories: len(s.categories),
	}
}

// Reset drops all records and restarts every id sequence.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = make(map[int]*Product)
	s.reviews = make(map[int]*Review)
	s.users = make(map[int]*User)
	s.sellers = make(map[int]*Seller)
	s.categories = make(map[int]*Category)
	s.apiKeys = make(map[string]int)
	s.productSeq = 0
	s.reviewSeq = 0
	s.userSeq = 0
	s.sellerSeq = 0
	s.categorySeq = 0
}
