package services

import "errors"

// Token errors.
var (
	// ErrInvalidClaims means the claims to sign failed validation.
	ErrInvalidClaims = errors.New("invalid claims")
	// ErrInvalidToken means a token is malformed or its signature is wrong.
	ErrInvalidToken  = errors.New("invalid token")
	// ErrExpiredToken means a token was valid but has expired.
	ErrExpiredToken  = errors.New("token expired")
)

// Input errors.
var (
	// ErrInvalidID means a path id is not a valid ObjectID.
	ErrInvalidID    = errors.New("invalid id")
	// ErrInvalidInput means a request body failed a business rule.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnknownKind means no catalog is registered under the given name.
	ErrUnknownKind  = errors.New("unknown catalog kind")
)

// Lookup errors.
var (
	// ErrUserExists means an account with the email already exists.
	ErrUserExists = errors.New("user already exist")

	ErrUserNotFound     = errors.New("user not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrTermNotFound     = errors.New("catalog term not found")
	ErrCartItemNotFound = errors.New("cart item not found")
)
