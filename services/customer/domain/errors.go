package domain

import "errors"

// Sentinel errors for the customer domain. Use errors.Is() to check these.
var (
	// ErrCustomerNotFound indicates the requested customer does not exist.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrCustomerConflict indicates another customer already owns the
	// telephone number.
	ErrCustomerConflict = errors.New("customer telephone already registered")

	// ErrIncompleteCustomer indicates a new customer is missing required
	// fields (name, telephone, or address).
	ErrIncompleteCustomer = errors.New("customer details are incomplete")
)
