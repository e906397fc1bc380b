package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	// ErrUnavailable covers 429, 503 and 504: the backend may answer later.
	ErrUnavailable = errors.New("time server unavailable")

	// ErrMalformedTime is returned when the backend answers without a usable
	// timestamp.
	ErrMalformedTime = errors.New("malformed server time")
)
