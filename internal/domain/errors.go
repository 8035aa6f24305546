package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business logic error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeMissingParent        = "MISSING_PARENT_TRANSACTION"
	ErrCodeMissingReference     = "MISSING_REFERENCE"
	ErrCodeTransactionNotFound  = "TRANSACTION_NOT_FOUND"
	ErrCodeMissingRequiredField = "MISSING_REQUIRED_FIELD"
)

func NewMissingParentError(transactionID string) *DomainError {
	return &DomainError{
		Code:    ErrCodeMissingParent,
		Message: fmt.Sprintf("transaction %s has no parent transaction", transactionID),
	}
}

func NewMissingReferenceError(transactionID string) *DomainError {
	return &DomainError{
		Code:    ErrCodeMissingReference,
		Message: fmt.Sprintf("transaction %s has no provider reference", transactionID),
	}
}

func NewTransactionNotFoundError(hash string) *DomainError {
	return &DomainError{
		Code:    ErrCodeTransactionNotFound,
		Message: fmt.Sprintf("transaction with hash %s not found", hash),
	}
}

func NewMissingRequiredFieldError(field string) *DomainError {
	return &DomainError{
		Code:    ErrCodeMissingRequiredField,
		Message: fmt.Sprintf("%s is required", field),
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}
