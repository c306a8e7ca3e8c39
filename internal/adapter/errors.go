package adapter

import (
	"errors"
	"fmt"
)

// Authorization and client errors.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("client unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// Server errors. Every 5xx response wraps ErrServer.
var (
	ErrServer              = errors.New("server error")
	ErrBadGateway          = fmt.Errorf("%w: bad gateway", ErrServer)
	ErrInternalServerError = fmt.Errorf("%w: internal server error", ErrServer)
)

// Transport errors: no response was received.
var (
	ErrTransport = errors.New("transport error")
	ErrTimeout   = fmt.Errorf("%w: request timed out", ErrTransport)
)

var (
	ErrUnsupportedCategory = errors.New("category has no confirmation endpoints")
	ErrDecodeResponse      = errors.New("cannot decode response")
)
