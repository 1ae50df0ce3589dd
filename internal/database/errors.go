package database

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// ErrNotFound is returned by reads when no record exists for the key.
// It is an expected outcome, not a failure.
var ErrNotFound = errors.New("user info not found")

type ErrorKind string

const (
	KindValidation     ErrorKind = "validation"
	KindThrottled      ErrorKind = "throttled"
	KindInfrastructure ErrorKind = "infrastructure"
	KindEncoding       ErrorKind = "encoding"
)

// StoreError describes a failed store call. Err is the underlying cause.
type StoreError struct {
	Op    string
	Table string
	Kind  ErrorKind
	Err   error
}

func (e *StoreError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s %s (%s): %v", e.Op, e.Table, e.Kind, e.Err)
}

func (e *StoreError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind reports whether err is a *StoreError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var se *StoreError
	if errors.As(err, &se) {
		return se.Kind == kind
	}
	return false
}

func classify(err error) ErrorKind {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return KindInfrastructure
	}
	switch apiErr.ErrorCode() {
	case "ValidationException",
		"ConditionalCheckFailedException",
		"ItemCollectionSizeLimitExceededException",
		"SerializationException":
		return KindValidation
	case "ProvisionedThroughputExceededException",
		"ThrottlingException",
		"RequestLimitExceeded":
		return KindThrottled
	default:
		return KindInfrastructure
	}
}
