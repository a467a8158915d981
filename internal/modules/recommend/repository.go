package recommend

import "github.com/mockstore/storefront-backend/internal/store"

// Repository is the read-only slice of the store the engine needs. Every
// method returns snapshot copies; the engine never mutates catalog state.
type Repository interface {
	GetProduct(id int) (store.Product, bool)
	ListProducts() []store.Product
	ProductsByCategory(categoryID int) []store.Product
}
