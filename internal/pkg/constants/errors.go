package constants

import (
	"net/http"
)

// CodedError is an error that knows which HTTP status it maps to.
type CodedError struct {
	msg  string
	code int
}

func NewCodedError(msg string, code int) *CodedError {
	return &CodedError{msg: msg, code: code}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrNotFound        = NewCodedError("not found", http.StatusNotFound)
	ErrInvalidArgument = NewCodedError("invalid argument", http.StatusBadRequest)
	ErrUnauthorized    = NewCodedError("unauthorized", http.StatusUnauthorized)
	ErrInternal        = NewCodedError("internal error", http.StatusInternalServerError)

	ErrMissingAuthToken = NewCodedError("missing admin token", http.StatusUnauthorized)
)
