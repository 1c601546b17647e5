package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category groups catalog items for browsing and reporting.
type Category struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// NewCategory constructs a valid Category with a generated ID.
func NewCategory(name, description string) (*Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("category name is required")
	}
	return &Category{
		ID:            uuid.New(),
		Name:          strings.TrimSpace(name),
		Description:   description,
		LastUpdatedAt: time.Now().UTC(),
	}, nil
}
