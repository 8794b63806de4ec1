package port

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation matches every *ValidationError.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound is returned when a campaign or file id does not exist.
	ErrNotFound = errors.New("not found")
	// ErrNoEligibleCampaign means no active campaign has remaining budget.
	ErrNoEligibleCampaign = errors.New("no eligible campaign")
	// ErrExhaustedByContention means eligible campaigns existed when the
	// snapshot was taken but every one of them was consumed by concurrent
	// serves before this call could charge it.
	ErrExhaustedByContention = errors.New("eligible campaigns exhausted by contention")
	// ErrServeTimeout is returned when the caller deadline expires before a
	// campaign could be charged.
	ErrServeTimeout = errors.New("serve timed out")
	// ErrStorage wraps infrastructure failures of the backing stores.
	ErrStorage = errors.New("storage failure")
)

// ValidationError describes a malformed or missing request field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError returns a *ValidationError for field.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// StorageError wraps err so that it matches ErrStorage while keeping the
// original error in the chain.
func StorageError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
}
