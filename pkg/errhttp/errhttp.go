// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/posledger/pkg/httpx"
	catalogdomain "github.com/ghuser/posledger/services/catalog/domain"
	customerdomain "github.com/ghuser/posledger/services/customer/domain"
	saledomain "github.com/ghuser/posledger/services/sale/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors; those are
// written with the generic status text rather than the internal message.
func WriteError(w http.ResponseWriter, err error) {
	status := mapErrorToStatus(err)
	httpx.JSONError(w, status, httpx.SafeError(err, status))
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, catalogdomain.ErrItemNotFound),
		errors.Is(err, catalogdomain.ErrCategoryNotFound),
		errors.Is(err, customerdomain.ErrCustomerNotFound),
		errors.Is(err, saledomain.ErrSaleNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, catalogdomain.ErrItemAlreadyExists),
		errors.Is(err, customerdomain.ErrCustomerConflict),
		errors.Is(err, catalogdomain.ErrInsufficientStock):
		return http.StatusConflict // 409
	case errors.Is(err, catalogdomain.ErrInvalidItem),
		errors.Is(err, customerdomain.ErrIncompleteCustomer),
		errors.Is(err, saledomain.ErrEmptySale),
		errors.Is(err, saledomain.ErrInvalidQuantity),
		errors.Is(err, saledomain.ErrInvalidPayment):
		return http.StatusUnprocessableEntity // 422
	default:
		return http.StatusInternalServerError // 500
	}
}
