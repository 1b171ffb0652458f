package schemas

// CustomError is a struct that represents a client-facing error
// Code is a stable identifier for the error
// Message is the human-readable description returned to the caller
type CustomError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var (
	// BadRequest is returned when the request body is malformed or fails validation.
	BadRequest = &CustomError{
		Code:    "ERR-001",
		Message: "The request body is invalid. Please check the request body and try again.",
	}
	// EmailTaken is returned when a registration uses an email that already has a profile.
	EmailTaken = &CustomError{
		Code:    "ERR-002",
		Message: "A profile with this email already exists. Please use another email.",
	}
	// InvalidCredentials collapses unknown email and wrong password into one
	// generic message so callers cannot probe which emails are registered.
	InvalidCredentials = &CustomError{
		Code:    "ERR-003",
		Message: "Invalid email or password",
	}
	// ProfileNotActivated is returned on login with valid credentials but an inactive account.
	ProfileNotActivated = &CustomError{
		Code:    "ERR-004",
		Message: "Account is not active. Please activate your account first.",
	}
	// ActivationTokenNotFound is returned when the activation token is unknown.
	ActivationTokenNotFound = &CustomError{
		Code:    "ERR-005",
		Message: "Activation token not found or already used",
	}
	// Unauthorized is returned when the session token is missing, unverifiable or expired.
	Unauthorized = &CustomError{
		Code:    "ERR-006",
		Message: "The request is unauthorized. Please login to your account.",
	}
	// NotFound is returned when a requested resource does not exist or belongs to another profile.
	NotFound = &CustomError{
		Code:    "ERR-007",
		Message: "The requested resource was not found.",
	}
	// CategoryNameTaken is returned when a category with the same name and type already exists.
	CategoryNameTaken = &CustomError{
		Code:    "ERR-008",
		Message: "A category with this name and type already exists.",
	}
	// EmailNotSent is returned when the mail provider rejected or never received a dispatch.
	EmailNotSent = &CustomError{
		Code:    "ERR-009",
		Message: "The email could not be sent. Please try again later.",
	}
	// DatabaseError is returned when a database operation fails unexpectedly.
	DatabaseError = &CustomError{
		Code:    "ERR-010",
		Message: "A database error occurred. Please try again later.",
	}
	// InternalServerError is the opaque catch-all for unexpected failures.
	InternalServerError = &CustomError{
		Code:    "ERR-011",
		Message: "An internal error occurred. Please try again later.",
	}
)
