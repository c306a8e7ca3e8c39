package service

import "errors"

var (
	ErrWrongCredentials   = errors.New("wrong user name or password")
	ErrMissingCredentials = errors.New("user name and password are required")
	ErrNotSignedIn        = errors.New("not signed in")
	ErrSessionExpired     = errors.New("session expired")

	ErrCategoryNotSupported = errors.New("category not supported by the confirmation workflow")
	ErrInvalidID            = errors.New("invalid record id")
	ErrNoCounterpart        = errors.New("record has no confirmed counterpart")
	ErrRecordNotFound       = errors.New("record not found")
	ErrConflict             = errors.New("record was changed by someone else")
)
