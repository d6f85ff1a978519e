// Package common defines shared constants and sentinel errors used across
// the stylecart client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Generic lookup errors.
	ErrNotFound = errors.New("not found")

	// Session errors.
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrAuthExpired      = errors.New("auth expired")

	// Authoring errors.
	ErrAdminRequired = errors.New("admin role required")

	// Checkout errors.
	ErrEmptyCart = errors.New("cart is empty")
)
