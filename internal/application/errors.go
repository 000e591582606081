package application

import (
	"errors"

	"github.com/ISudhan/cleannect-waste-management/pkg/validation"
)

var (
	// ErrNotFound maps to 404.
	ErrNotFound = errors.New("not found")
	// ErrForbidden maps to 403: authenticated but not the owner.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidCredentials maps to 401 on login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken maps to 401: the bearer token fails verification
	// or references a deleted identity.
	ErrInvalidToken = errors.New("invalid token")
	// ErrEmailTaken maps to 400 on registration.
	ErrEmailTaken = errors.New("email already registered")
)

// ValidationError reports every violated field constraint at once.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "validation failed" }

// checkStruct runs validator tags and converts failures into a
// *ValidationError with per-field details.
func checkStruct(s any) error {
	if err := validation.Struct(s); err != nil {
		return &ValidationError{Fields: validation.ToDetails(err)}
	}
	return nil
}
