package generator

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput   = errors.New("invalid generation input")
	ErrTimeout        = errors.New("generation timed out")
	ErrTransport      = errors.New("model call failed")
	ErrEmptyResponse  = errors.New("empty model response")
	ErrSchemaMismatch = errors.New("model response does not match schema")
)

// GenerationError is returned by every failed generation. errors.Is matches
// both Kind and the wrapped cause.
type GenerationError struct {
	Op   string
	Kind error
	Err  error
}

func (e *GenerationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

func (e *GenerationError) Unwrap() []error {
	if e == nil {
		return nil
	}
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
