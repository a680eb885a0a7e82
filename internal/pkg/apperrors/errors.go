package apperrors

import "errors"

// Common errors
var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidFormat      = errors.New("invalid token format")
	ErrRateLimited        = errors.New("too many requests")

	// Request errors
	ErrBadRequest = errors.New("bad request")
)

// Course errors
var (
	ErrCourseNotFound     = errors.New("course not found")
	ErrCourseNameExists   = errors.New("course name already exists")
	ErrCourseNumberExists = errors.New("course number already exists")
)

// Invoice errors
var (
	ErrInvoiceNotFound = errors.New("invoice not found")
)

// Customer errors
var (
	ErrCustomerNotFound = errors.New("customer not found")
)

// User errors
var (
	ErrUserNotFound = errors.New("user not found")
)
