package services

import "fmt"

// RejectedError marks a write the store refused for a reason worth
// showing to the user (validation, ownership). Anything else coming out
// of a store is treated as a technical failure.
type RejectedError struct {
	Reason string
}

func (e *RejectedError) Error() string { return e.Reason }

func Reject(format string, args ...any) error {
	return &RejectedError{Reason: fmt.Sprintf(format, args...)}
}
