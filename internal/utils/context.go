// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// UserNameCtxKey is the key under which the sandbox auth middleware stores the
// authenticated user name.
var UserNameCtxKey = contextKey("userName")

// WithUserName returns a copy of ctx carrying userName.
func WithUserName(ctx context.Context, userName string) context.Context {
	return context.WithValue(ctx, UserNameCtxKey, userName)
}

// GetUserNameFromContext retrieves the authenticated user name.
//
//   - ok == true  — value is found and is a non-empty string
//   - ok == false — value is missing or has an unexpected type
func GetUserNameFromContext(ctx context.Context) (string, bool) {
	userName, ok := ctx.Value(UserNameCtxKey).(string)
	return userName, ok && userName != ""
}
