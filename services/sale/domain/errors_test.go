package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors_NonNil(t *testing.T) {
	if ErrSaleNotFound == nil {
		t.Fatal("ErrSaleNotFound must not be nil")
	}
	if ErrEmptySale == nil {
		t.Fatal("ErrEmptySale must not be nil")
	}
	if ErrInvalidQuantity == nil {
		t.Fatal("ErrInvalidQuantity must not be nil")
	}
	if ErrInvalidPayment == nil {
		t.Fatal("ErrInvalidPayment must not be nil")
	}
}

func TestSentinelErrors_Messages(t *testing.T) {
	if ErrSaleNotFound.Error() != "sale not found" {
		t.Fatalf("unexpected message: %q", ErrSaleNotFound.Error())
	}
	if ErrEmptySale.Error() != "sale must have at least one line item" {
		t.Fatalf("unexpected message: %q", ErrEmptySale.Error())
	}
}

func TestSentinelErrors_WrappedIdentity(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", ErrSaleNotFound)
	if !errors.Is(wrapped, ErrSaleNotFound) {
		t.Fatal("errors.Is must match wrapped ErrSaleNotFound")
	}

	wrapped2 := fmt.Errorf("%w: quantity -1", ErrInvalidQuantity)
	if !errors.Is(wrapped2, ErrInvalidQuantity) {
		t.Fatal("errors.Is must match wrapped ErrInvalidQuantity")
	}
}
