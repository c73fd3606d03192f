package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies application errors so the HTTP layer can map them to
// statuses without string matching. Tool handlers never use these for bad
// arguments - those come back inline as {"error": "..."} result data.
type Kind string

const (
	KindInvalidArgument    Kind = "INVALID_ARGUMENT"
	KindUnknownTool        Kind = "UNKNOWN_TOOL"
	KindStorage            Kind = "STORAGE_ERROR"
	KindEncoderUnavailable Kind = "ENCODER_UNAVAILABLE"
)

type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

func InvalidArgument(message string) *AppError {
	return New(KindInvalidArgument, message)
}

func UnknownTool(name string) *AppError {
	return New(KindUnknownTool, fmt.Sprintf("unknown tool: %s", name))
}

func Storage(message string, err error) *AppError {
	return Wrap(KindStorage, message, err)
}

func EncoderUnavailable(err error) *AppError {
	return Wrap(KindEncoderUnavailable, "embedding encoder unavailable", err)
}

// KindOf extracts the Kind from an error chain, or "" if err is not an
// AppError.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
