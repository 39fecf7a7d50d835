package domain

import "errors"

// Authentication and authorization failures.
var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrForbidden           = errors.New("only administrators can log in")
	ErrMissingCredential   = errors.New("missing bearer token")
	ErrExpiredCredential   = errors.New("session expired, log in again")
	ErrMalformedCredential = errors.New("invalid token")
)

// Catalog failures.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrUserExists       = errors.New("user already exists")
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists")
	ErrSaleNotFound     = errors.New("sale not found")
	ErrDuplicateSale    = errors.New("sale already registered for this idempotency key")
	ErrInvalidInput     = errors.New("invalid input")
)
