package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound marks lookups for entities that do not exist. It is an
// expected failure: callers report it and the transaction rolls back.
var ErrNotFound = errors.New("not found")

// PolicyError is an expected business-rule rejection (capacity full,
// wrong trade state, duplicate join, role gate). It is distinct from
// storage faults: the operation is rolled back and reported, never
// retried blindly.
type PolicyError struct {
	Reason string
}

func (e *PolicyError) Error() string { return e.Reason }

// Policyf builds a PolicyError from a format string.
func Policyf(format string, args ...any) error {
	return &PolicyError{Reason: fmt.Sprintf(format, args...)}
}

// IsPolicy reports whether err is a business-rule rejection.
func IsPolicy(err error) bool {
	var pe *PolicyError
	return errors.As(err, &pe)
}
