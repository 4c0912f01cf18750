package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Content extraction errors
	ErrFetch        ErrorCode = "FETCH_ERROR"
	ErrParse        ErrorCode = "PARSE_ERROR"
	ErrEmptyContent ErrorCode = "EMPTY_CONTENT"

	// Quiz synthesis errors
	ErrGeneration  ErrorCode = "GENERATION_ERROR"
	ErrSchemaParse ErrorCode = "SCHEMA_PARSE_ERROR"

	// Storage errors
	ErrStorage  ErrorCode = "STORAGE_ERROR"
	ErrNotFound ErrorCode = "NOT_FOUND"

	ErrInvalidInput ErrorCode = "INVALID_INPUT"
)

// QuizNotFoundMessage is the detail returned when a quiz id does not exist.
const QuizNotFoundMessage = "Quiz not found"

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NewFetchError(url string, err error) *DomainError {
	return NewError(ErrFetch, fmt.Sprintf("failed to fetch %s", url), err)
}

func NewParseError(message string) *DomainError {
	return NewError(ErrParse, message, nil)
}

func NewEmptyContentError() *DomainError {
	return NewError(ErrEmptyContent, "article body is empty or could not be parsed", nil)
}

func NewGenerationError(err error) *DomainError {
	return NewError(ErrGeneration, "quiz generation failed", err)
}

func NewSchemaParseError(err error) *DomainError {
	return NewError(ErrSchemaParse, "model reply does not match the quiz schema", err)
}

func NewStorageError(message string, err error) *DomainError {
	return NewError(ErrStorage, message, err)
}

func NewQuizNotFoundError(id int64) *DomainError {
	return NewError(ErrNotFound, QuizNotFoundMessage, fmt.Errorf("no quiz with id %d", id))
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(ErrInvalidInput, message, nil)
}

// CodeOf returns the code of the first DomainError in err's chain, or the
// empty code when there is none.
func CodeOf(err error) ErrorCode {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return ""
}

// IsNotFound reports whether err carries ErrNotFound.
func IsNotFound(err error) bool {
	return CodeOf(err) == ErrNotFound
}
