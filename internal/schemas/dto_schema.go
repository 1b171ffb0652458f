package schemas

import (
	"time"

	"github.com/google/uuid"
)

// ErrorDTO is a struct that represents an error response
// Error is the custom error, see CustomError
type ErrorDTO struct {
	Error CustomError `json:"error"`
}

// ProfileDTO is a struct that represents the public view of a profile.
// It never carries the password hash or the activation token.
type ProfileDTO struct {
	ID              uuid.UUID  `json:"id"`
	FullName        string     `json:"fullName"`
	Email           string     `json:"email"`
	ProfileImageURL string     `json:"profileImageUrl"`
	CreatedAt       *time.Time `json:"createdAt"`
	UpdatedAt       *time.Time `json:"updatedAt"`
}

// LoginResponseDTO is a struct that represents a successful login response
// Token is the signed session token
// User is the public profile of the authenticated user
type LoginResponseDTO struct {
	Token string     `json:"token"`
	User  ProfileDTO `json:"user"`
}

// MessageDTO is a struct that represents a plain informational response
type MessageDTO struct {
	Message string `json:"message"`
}

// CategoryDTO is a struct that represents a category response
type CategoryDTO struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Type      string     `json:"type"`
	Icon      string     `json:"icon"`
	CreatedAt *time.Time `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

// TransactionDTO is a struct that represents an income or expense response
// CategoryName falls back to "N/A" when the record has no category
type TransactionDTO struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Icon         string     `json:"icon"`
	Amount       float64    `json:"amount"`
	Date         string     `json:"date"`
	CategoryID   *uuid.UUID `json:"categoryId"`
	CategoryName string     `json:"categoryName"`
	CreatedAt    *time.Time `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt"`
}

// MetadataDTO is a struct that represents the service metadata response
type MetadataDTO struct {
	ApiVersion string `json:"apiVersion"`
	ApiName    string `json:"apiName"`
}

// NewProfileDTO maps a profile record to its public representation.
func NewProfileDTO(profile *Profile) ProfileDTO {
	return ProfileDTO{
		ID:              profile.ID,
		FullName:        profile.FullName,
		Email:           profile.Email,
		ProfileImageURL: profile.ProfileImageURL,
		CreatedAt:       profile.CreatedAt,
		UpdatedAt:       profile.UpdatedAt,
	}
}

// NewCategoryDTO maps a category record to its response representation.
func NewCategoryDTO(category *Category) CategoryDTO {
	return CategoryDTO{
		ID:        category.ID,
		Name:      category.Name,
		Type:      category.Type,
		Icon:      category.Icon,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

// NewTransactionDTO maps a transaction record to its response representation.
func NewTransactionDTO(tx *Transaction) TransactionDTO {
	name := tx.CategoryName
	if tx.CategoryID == nil || name == "" {
		name = "N/A"
	}
	return TransactionDTO{
		ID:           tx.ID,
		Name:         tx.Name,
		Icon:         tx.Icon,
		Amount:       tx.Amount,
		Date:         tx.Date.Format(time.DateOnly),
		CategoryID:   tx.CategoryID,
		CategoryName: name,
		CreatedAt:    tx.CreatedAt,
		UpdatedAt:    tx.UpdatedAt,
	}
}
