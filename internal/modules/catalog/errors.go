package catalog

import "errors"

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrSellerNotFound   = errors.New("seller not found")
	ErrEmptyUpdate      = errors.New("at least one field must be provided")
)
