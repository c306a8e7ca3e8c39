package sandbox

import "errors"

var (
	ErrWrongCredentials    = errors.New("wrong user name or password")
	ErrNotFound            = errors.New("record not found")
	ErrNotProposed         = errors.New("record is not awaiting confirmation")
	ErrInvalidRecord       = errors.New("invalid record")
	ErrUnsupportedCategory = errors.New("category has no confirmation workflow")
)
