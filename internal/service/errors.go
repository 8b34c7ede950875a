package service

import "errors"

// Sentinel errors for the service layer. Callers classify failures with
// errors.Is; detail is attached by wrapping (fmt.Errorf("...: %w", Err...)).
var (
	ErrValidation   = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")
	ErrOwnership    = errors.New("item does not belong to this restaurant")
	ErrConflict     = errors.New("duplicate resource")
	ErrUnauthorized = errors.New("invalid credentials")
)
