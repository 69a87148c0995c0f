package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrValidation      = errors.New("validation error")
	ErrConflict        = errors.New("conflict")
	ErrPlanLimit       = errors.New("plan limit exceeded")
	ErrRender          = errors.New("render failure")
)

type AppError struct {
	Err     error  // sentinel category
	Message string // human-readable message
	Field   string // optional: field causing the error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFound covers both an absent document and a document owned by someone
// else; callers must never be able to tell the two apart.
func NotFound(resource string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func Unauthenticated(message string) *AppError {
	return &AppError{
		Err:     ErrUnauthenticated,
		Message: message,
	}
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

func Conflict(message string) *AppError {
	return &AppError{
		Err:     ErrConflict,
		Message: message,
	}
}

func PlanLimit(limit int) *AppError {
	return &AppError{
		Err:     ErrPlanLimit,
		Message: fmt.Sprintf("free plan limit of %d resumes reached", limit),
	}
}

func Render(err error) *AppError {
	return &AppError{
		Err:     ErrRender,
		Message: fmt.Sprintf("failed to generate PDF: %v", err),
	}
}
