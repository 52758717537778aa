package model

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
	"time"
)

// Product is an entry in the reference catalog. Catalog data is loaded once
// and immutable for the lifetime of the process.
type Product struct {
	ID       int64     `json:"id" db:"id"`
	Name     string    `json:"name" db:"name"`
	Brand    string    `json:"brand" db:"brand"`
	Size     string    `json:"size" db:"size"`
	Price    float64   `json:"price" db:"price"`
	Category string    `json:"category" db:"category"`
	Tags     JSONArray `json:"tags,omitempty" db:"tags"`
}

// HasTag reports whether any tag contains the given lowercase fragment.
func (p Product) HasTag(fragment string) bool {
	for _, t := range p.Tags {
		if strings.Contains(t, fragment) {
			return true
		}
	}
	return false
}

// ListItem is a single entry on the shopping list. Duplicate adds increment
// the quantity of the existing entry instead of creating a new one.
type ListItem struct {
	ID       int64     `json:"id" db:"id"`
	Name     string    `json:"name" db:"name"`
	Quantity int       `json:"quantity" db:"quantity"`
	Category string    `json:"category" db:"category"`
	AddedAt  time.Time `json:"added_at" db:"added_at"`
}

// JSONArray represents a JSON array column (tags on a product row).
type JSONArray []string

// Value implements driver.Valuer interface
func (j JSONArray) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements sql.Scanner interface
func (j *JSONArray) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return json.Unmarshal([]byte(value.(string)), j)
	}
	return json.Unmarshal(bytes, j)
}
