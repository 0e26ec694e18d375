package models

// Resident represents a person who owns tracked inventory items.
// The ID is an opaque uuid string generated at creation time, not a
// database-assigned key.
type Resident struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"name" db:"name" binding:"required"`
}
