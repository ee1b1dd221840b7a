// Package apperr carries the service's error taxonomy: validation failures,
// unresolved identifiers, and everything else as internal. Errors are plain
// values inside the process and are translated to grpc status codes only at
// the RPC boundary.
package apperr

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
)

type Error struct {
	Kind    Kind
	Message string
	// Field names the offending request field for validation errors.
	Field string
	// ID is the identifier that failed to resolve for not-found errors.
	ID  string
	Err error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "internal error"
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(field, msg string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: msg}
}

func NotFound(id string) *Error {
	return &Error{Kind: KindNotFound, ID: id, Message: fmt.Sprintf("product not found with id: %s", id)}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Err: err}
}

func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindNotFound
}

func IsValidation(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindValidation
}

// ToStatus maps an error to the grpc status returned to clients. Unknown
// error types are reported as Internal without leaking their text structure.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if !errors.As(err, &e) {
		return status.Errorf(codes.Internal, "internal server error: %v", err)
	}
	switch e.Kind {
	case KindValidation:
		return status.Error(codes.InvalidArgument, e.Message)
	case KindNotFound:
		return status.Error(codes.NotFound, e.Message)
	default:
		return status.Errorf(codes.Internal, "internal server error: %v", e.Error())
	}
}
