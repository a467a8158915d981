package catalog

import "github.com/mockstore/storefront-backend/internal/store"

// Repository is the slice of the store the catalog module needs: product
// CRUD plus the lookups that enrich a product detail view.
type Repository interface {
	CreateProduct(p store.Product) store.Product
	GetProduct(id int) (store.Product, bool)
	ListProducts() []store.Product
	ProductsByCategory(categoryID int) []store.Product
	SearchProducts(query string) []store.Product
	UpdateProduct(id int, upd store.ProductUpdate) (store.Product, bool)
	DeleteProduct(id int) bool

	GetCategory(id int) (store.Category, bool)
	GetSeller(id int) (store.Seller, bool)
	GetUser(id int) (store.User, bool)
	ReviewsByProduct(productID int) []store.Review
}

// Recommender supplies the similar-products section of a product detail.
type Recommender interface {
	Similar(productID, limit int, includeSameSeller bool) []store.Product
}
