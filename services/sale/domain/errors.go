package domain

import "errors"

// Sentinel errors for the sale domain. Use errors.Is() to check these.
var (
	// ErrSaleNotFound indicates the requested sale does not exist.
	ErrSaleNotFound = errors.New("sale not found")

	// ErrEmptySale indicates a sale request carried no line items.
	ErrEmptySale = errors.New("sale must have at least one line item")

	// ErrInvalidQuantity indicates a line item quantity is not positive.
	ErrInvalidQuantity = errors.New("line quantity must be positive")

	// ErrInvalidPayment indicates a negative paid amount.
	ErrInvalidPayment = errors.New("paid amount must not be negative")
)
