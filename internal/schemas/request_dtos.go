// Package schemas defines the request structures for various operations in the application.
package schemas

// RegistrationRequest is a struct that represents a registration request
// FullName is required and must be less than 100 characters
// Email is required and must be a valid email
// Password is required
// ProfileImageURL is optional
type RegistrationRequest struct {
	FullName        string `json:"fullName" validate:"required,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ProfileImageURL string `json:"profileImageUrl" validate:"omitempty,url"`
}

// LoginRequest is a struct that represents a login request
// Email is required and must be a valid email
// Password is required
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CategoryRequest is a struct that represents a create or update category request
// Type must be either income or expense
type CategoryRequest struct {
	Name string `json:"name" validate:"required,max=50"`
	Type string `json:"type" validate:"required,oneof=income expense"`
	Icon string `json:"icon" validate:"max=100"`
}

// TransactionRequest is a struct that represents a create income or expense request
// Date is expected in YYYY-MM-DD form
type TransactionRequest struct {
	Name       string  `json:"name" validate:"required,max=100"`
	Icon       string  `json:"icon" validate:"max=100"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
	Date       string  `json:"date" validate:"required,datetime=2006-01-02"`
	CategoryID string  `json:"categoryId" validate:"omitempty,uuid4"`
}

// FilterRequest is a struct that represents a transaction filter request
// Type selects the transaction table, the remaining fields narrow and order the result
type FilterRequest struct {
	Type      string `json:"type" validate:"required,oneof=income expense"`
	StartDate string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	Keyword   string `json:"keyword" validate:"max=100"`
	SortField string `json:"sortField" validate:"omitempty,oneof=date amount name"`
	SortOrder string `json:"sortOrder" validate:"omitempty,oneof=asc desc"`
}
