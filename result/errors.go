package result

import (
	"errors"
	"fmt"
)

// Code identifies a failure class in the engine's error taxonomy.
type Code string

const (
	CodeNullInput              Code = "NULL_INPUT"
	CodeMissingField           Code = "MISSING_FIELD"
	CodeUnsupportedOperation   Code = "UNSUPPORTED_OPERATION"
	CodeSubstitutionIncomplete Code = "SUBSTITUTION_INCOMPLETE"
	CodeExecutionFailure       Code = "EXECUTION_FAILURE"
)

var (
	// ErrNullInput indicates an absent or empty request.
	ErrNullInput = &Error{Code: CodeNullInput, Message: "cannot process null input"}

	// ErrMissingField indicates a structurally required field is absent or blank.
	ErrMissingField = &Error{Code: CodeMissingField, Message: "required field is missing"}

	// ErrUnsupportedOperation indicates an unknown operation kind or verb.
	ErrUnsupportedOperation = &Error{Code: CodeUnsupportedOperation, Message: "operation is not supported"}

	// ErrSubstitutionIncomplete is returned in strict mode when template tokens remain.
	ErrSubstitutionIncomplete = &Error{Code: CodeSubstitutionIncomplete, Message: "template tokens left unsubstituted"}

	// ErrExecutionFailure wraps faults raised by the database layer.
	ErrExecutionFailure = &Error{Code: CodeExecutionFailure, Message: "statement execution failed"}
)

// Error is the engine's typed error. Two errors match under errors.Is when
// their codes are equal, so callers can compare against the sentinels above.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// NullInput reports an absent request.
func NullInput(what string) *Error {
	return &Error{Code: CodeNullInput, Message: "cannot process null " + what}
}

// MissingField reports a blank or absent required field.
func MissingField(field string) *Error {
	return &Error{Code: CodeMissingField, Message: fmt.Sprintf("required field %q is missing", field)}
}

// Unsupported reports an unknown operation kind or verb.
func Unsupported(op string) *Error {
	return &Error{Code: CodeUnsupportedOperation, Message: fmt.Sprintf("unsupported operation %q", op)}
}

// Incomplete reports template tokens that had no matching parameter.
func Incomplete(tokens []string) *Error {
	return &Error{Code: CodeSubstitutionIncomplete, Message: fmt.Sprintf("unmatched template tokens %v", tokens)}
}

// ExecutionFailure wraps a native database error.
func ExecutionFailure(err error) *Error {
	return &Error{Code: CodeExecutionFailure, Message: "statement execution failed", Err: err}
}

// AsError extracts an *Error from err, classifying foreign errors as
// execution failures.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return ExecutionFailure(err)
}
