package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("already exists")
	ErrUnknownDishType = errors.New("unknown dish type")
	ErrInvalidServings = errors.New("invalid servings")
	ErrInvalidRecipe   = errors.New("invalid recipe")
	ErrInvalidRule     = errors.New("invalid proportion rule")
	ErrInvalidOrder    = errors.New("invalid order")
	ErrUnitMismatch    = errors.New("unit mismatch")
)
