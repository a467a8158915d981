package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mockstore/storefront-backend/internal/store"
)

func TestListCategoriesCarriesProductCounts(t *testing.T) {
	db := store.New()
	db.CreateCategory(store.Category{Name: "Electronics"})
	db.CreateCategory(store.Category{Name: "Fashion"})
	db.CreateProduct(store.Product{Name: "Phone", CategoryID: 1, SellerID: 1, Price: 100})
	db.CreateProduct(store.Product{Name: "Laptop", CategoryID: 1, SellerID: 1, Price: 900})

	svc := NewService(db)

	got := svc.ListCategories()
	require.Len(t, got, 2)
	assert.Equal(t, "Electronics", got[0].Name)
	assert.Equal(t, 2, got[0].ProductCount)
	assert.Equal(t, 0, got[1].ProductCount)
}

func TestGetCategory(t *testing.T) {
	db := store.New()
	db.CreateCategory(store.Category{Name: "Books"})
	svc := NewService(db)

	c, err := svc.GetCategory(1)
	require.NoError(t, err)
	assert.Equal(t, "Books", c.Name)

	_, err = svc.GetCategory(7)
	assert.ErrorIs(t, err, ErrNotFound)
}
