package types

import (
	"encoding/json"
	"errors"
)

// Error Instead of exposing raw node or contract failures for the preconditions this
// module checks itself, rich errors are returned using this object. Both the code and
// message fields can be individually used to correctly identify an error.
// Implementations MUST use unique values for both fields.
type Error struct {
	// Code is a module-specific error code.
	Code int32 `json:"code"`
	// Message is a module-specific error message. The message MUST NOT change for a given code. In
	// particular, this means that any contextual information should be included in the details
	// field.
	Message string `json:"message"`
	// Description allows the implementer to optionally provide additional information about an
	// error. It MUST NOT be populated with information about a particular instantiation of an
	// error (use `details` for this).
	Description *string `json:"description,omitempty"`
	// An error is retriable if the same request may succeed if submitted again.
	Retriable bool `json:"retriable"`
	// Often times it is useful to return context specific to the request that caused the error
	// (i.e. the amount requested) in addition to the standard error message.
	Details map[string]any `json:"details,omitempty"`
}

func (e *Error) Error() string {
	bytes, _ := json.MarshalIndent(e, "", "  ")
	return string(bytes)
}

// Is matches on the code so wrapped copies of a standard error still compare
// equal with errors.Is.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return e.Code == other.Code
}

var (
	ErrInvalidAddress = &Error{
		Code:    12, //nolint
		Message: "Invalid address",
	}
	ErrInvalidAmount = &Error{
		Code:    13, //nolint
		Message: "Invalid amount",
	}
	ErrNoAllowanceRequired = &Error{
		Code:    20, //nolint
		Message: "No allowance required",
	}
	ErrInsufficientAllowance = &Error{
		Code:    21, //nolint
		Message: "Insufficient allowance, call approve first",
	}
)

// wrapErr adds details to the types.Error provided. We use a function
// to do this so that we don't accidentially overrwrite the standard
// errors.
func WrapErr(rErr *Error, err error) *Error {
	newErr := &Error{
		Code:      rErr.Code,
		Message:   rErr.Message,
		Retriable: rErr.Retriable,
	}
	if err != nil {
		newErr.Details = map[string]interface{}{
			"context": err.Error(),
		}
	}

	return newErr
}

// WithDetails copies a standard error and attaches the given details.
func WithDetails(rErr *Error, details map[string]any) *Error {
	newErr := WrapErr(rErr, nil)
	newErr.Details = details
	return newErr
}

// AllowanceError builds one of the allowance precondition errors naming the amount.
func AllowanceError(rErr *Error, amount BigInt) *Error {
	return WithDetails(rErr, map[string]any{
		"amount": amount.String(),
	})
}
