package domain

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrNetwork           = errors.New("network error")
	ErrTimeout           = errors.New("request timed out")
	ErrHTTPStatus        = errors.New("unexpected http status")
	ErrParse             = errors.New("parse error")
	ErrInvalidURL        = errors.New("invalid url")
	ErrCorpusUnavailable = errors.New("nlp corpus unavailable")
)

// Request validation kinds.
const (
	InvalidRequestShape = "InvalidRequestShape"
	InvalidArgumentType = "InvalidArgumentType"
)

// RequestError is a construction-time validation failure caused by the client.
type RequestError struct {
	Kind  string
	Field string
	Got   string
}

func (e *RequestError) Error() string {
	if e.Kind == InvalidRequestShape {
		return fmt.Sprintf("%q argument must be a key-value record, received %q", e.Field, e.Got)
	}
	return fmt.Sprintf("%q argument must be a string or None, received %q", e.Field, e.Got)
}

// StatusCode is always 400 for request errors.
func (e *RequestError) StatusCode() int { return 400 }

// FailureKind returns the short name of the failure class behind err.
// Raw error text never leaves the service, only this name does.
func FailureKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return "Timeout"
	case errors.Is(err, ErrInvalidURL):
		return "InvalidURL"
	case errors.Is(err, ErrHTTPStatus):
		return "HTTPStatusError"
	case errors.Is(err, ErrNetwork):
		return "NetworkError"
	case errors.Is(err, ErrParse):
		return "ParseError"
	case errors.Is(err, ErrCorpusUnavailable):
		return "NlpUnavailable"
	default:
		return "UnknownError"
	}
}
