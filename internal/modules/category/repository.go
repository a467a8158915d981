package category

import "github.com/mockstore/storefront-backend/internal/store"

// Repository is the read-only slice of the store the category module needs.
type Repository interface {
	GetCategory(id int) (store.Category, bool)
	ListCategories() []store.Category
	CategoryProductCount(categoryID int) int
}
