package model

import "errors"

var (
	ErrMissingParameter        = errors.New("missing parameter")
	ErrInvalidUIDFormat        = errors.New("invalid uid format")
	ErrInsufficientKeyMaterial = errors.New("insufficient key material")
	ErrInvalidPadding          = errors.New("invalid padding")
	ErrMalformedPayload        = errors.New("malformed payload")
	ErrAccessLogSchemaMissing  = errors.New("access log schema missing")
)

// RequestError rejects a request with a client-facing message. Kind is one
// of ErrMissingParameter or ErrInvalidUIDFormat.
type RequestError struct {
	Kind    error
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

func (e *RequestError) Unwrap() error {
	return e.Kind
}
