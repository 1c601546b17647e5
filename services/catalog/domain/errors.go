package domain

import "errors"

// Sentinel errors for the catalog domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the requested item does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrItemAlreadyExists indicates an item with the same name already exists.
	ErrItemAlreadyExists = errors.New("item already exists")

	// ErrInvalidItem indicates the item violates domain constraints.
	ErrInvalidItem = errors.New("invalid item")

	// ErrInsufficientStock indicates a stock adjustment would drive
	// stock_available below zero.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrCategoryNotFound indicates the requested category does not exist.
	ErrCategoryNotFound = errors.New("category not found")
)
