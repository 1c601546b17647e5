package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Customer is a directory record keyed by a unique telephone number.
// Customers are created explicitly or implicitly by the sale coordinator
// when a sale references an unknown phone number; they are never deleted.
type Customer struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Telephone   string    `json:"telephone"`
	Address     string    `json:"address"`
	IsActive    bool      `json:"isActive"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// NewCustomer constructs a valid active Customer with a generated ID.
// Name, telephone, and address are all required.
func NewCustomer(name, telephone, address string) (*Customer, error) {
	name = strings.TrimSpace(name)
	telephone = strings.TrimSpace(telephone)
	address = strings.TrimSpace(address)
	if name == "" || telephone == "" || address == "" {
		return nil, fmt.Errorf("name, telephone, and address are required")
	}
	return &Customer{
		ID:          uuid.New(),
		Name:        name,
		Telephone:   telephone,
		Address:     address,
		IsActive:    true,
		LastUpdated: time.Now().UTC(),
	}, nil
}

// CustomerPatch is an explicit partial update over a Customer. Nil fields
// keep the stored value; non-nil fields replace it. Only the fields listed
// here are patchable.
type CustomerPatch struct {
	Name      *string `json:"name,omitempty"`
	Telephone *string `json:"telephone,omitempty"`
	Address   *string `json:"address,omitempty"`
	IsActive  *bool   `json:"isActive,omitempty"`
}

// Apply merges the patch onto c and stamps LastUpdated. Empty strings in the
// patch are treated as "not provided" so a blank form field never erases data.
func (p CustomerPatch) Apply(c *Customer) {
	if p.Name != nil && strings.TrimSpace(*p.Name) != "" {
		c.Name = strings.TrimSpace(*p.Name)
	}
	if p.Telephone != nil && strings.TrimSpace(*p.Telephone) != "" {
		c.Telephone = strings.TrimSpace(*p.Telephone)
	}
	if p.Address != nil && strings.TrimSpace(*p.Address) != "" {
		c.Address = strings.TrimSpace(*p.Address)
	}
	if p.IsActive != nil {
		c.IsActive = *p.IsActive
	}
	c.LastUpdated = time.Now().UTC()
}

// IsZero reports whether the patch changes nothing.
func (p CustomerPatch) IsZero() bool {
	return p.Name == nil && p.Telephone == nil && p.Address == nil && p.IsActive == nil
}
