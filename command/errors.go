package command

import (
	"errors"
	"fmt"
)

// ErrResponseInvalid marks a response that decoded fine but is missing
// required fields or carries the wrong container type for one.
var ErrResponseInvalid = errors.New("response invalid")

// ParameterError reports a rejected query parameter. It is always
// attributable to a single key and raised before any network activity.
type ParameterError struct {
	Operation string
	Param     string
	Value     any
	Reason    string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s: parameter %q rejected (value %v): %s",
		e.Operation, e.Param, e.Value, e.Reason)
}

// ParseError reports a response body that could not be decoded at all:
// not valid JSON, or an input value of an unsupported kind.
type ParseError struct {
	Operation string
	Err       error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: cannot parse response: %v", e.Operation, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(op string, format string, a ...any) *ParseError {
	return &ParseError{Operation: op, Err: fmt.Errorf(format, a...)}
}
