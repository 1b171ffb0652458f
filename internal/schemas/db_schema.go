// Package schemas defines the data structures
package schemas

import (
	"time"

	"github.com/google/uuid"
)

// Profile represents the data model for a profile in the system.
type Profile struct {
	ID              uuid.UUID  `json:"id"`                // Unique identifier for the profile.
	FullName        string     `json:"full_name"`         // Full name of the profile owner.
	Email           string     `json:"email"`             // Email address, stored lowercase, unique.
	Password        string     `json:"password"`          // Password hash of the profile.
	ProfileImageURL string     `json:"profile_image_url"` // Optional profile image reference.
	ActivationToken *string    `json:"activation_token"`  // Token mailed at registration, never cleared.
	IsActive        bool       `json:"is_active"`         // Whether the profile has been activated.
	CreatedAt       *time.Time `json:"created_at"`        // Timestamp when the profile was created.
	UpdatedAt       *time.Time `json:"updated_at"`        // Timestamp when the profile was last updated.
}

// Category represents a user-defined income or expense category.
type Category struct {
	ID        uuid.UUID  `json:"id"`
	ProfileID uuid.UUID  `json:"profile_id"`
	Name      string     `json:"name"`
	Type      string     `json:"type"` // "income" or "expense".
	Icon      string     `json:"icon"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// Transaction represents a single income or expense record.
// Incomes and expenses share the same shape and live in separate tables.
type Transaction struct {
	ID           uuid.UUID  `json:"id"`
	ProfileID    uuid.UUID  `json:"profile_id"`
	CategoryID   *uuid.UUID `json:"category_id"`
	CategoryName string     `json:"category_name"` // Joined from categories, "N/A" when uncategorized.
	Name         string     `json:"name"`
	Icon         string     `json:"icon"`
	Amount       float64    `json:"amount"`
	Date         time.Time  `json:"date"`
	CreatedAt    *time.Time `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}
