package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/webcrm-console/internal/adapter"
	"github.com/MKhiriev/webcrm-console/internal/app"
	"github.com/MKhiriev/webcrm-console/internal/service"
	"github.com/MKhiriev/webcrm-console/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestUserMessage(t *testing.T) {
	const fallback = "fallback"

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "wrong credentials", err: service.ErrWrongCredentials, want: app.MsgWrongCredentials},
		{name: "expired", err: fmt.Errorf("%w: %w", service.ErrSessionExpired, adapter.ErrUnauthorized), want: app.MsgSessionExpired},
		{name: "not found", err: service.ErrRecordNotFound, want: app.MsgNotFound},
		{name: "conflict", err: service.ErrConflict, want: app.MsgConflict},
		{name: "timeout", err: fmt.Errorf("get summary: %w", adapter.ErrTimeout), want: app.MsgServerUnavailable},
		{name: "server", err: adapter.ErrInternalServerError, want: app.MsgServerError},
		{name: "bad gateway", err: adapter.ErrBadGateway, want: app.MsgServerError},
		{
			name: "validation",
			err:  validators.ValidationErrors{{Field: "Email", Message: "Il campo Email non è corretto."}},
			want: "Il campo Email non è corretto.",
		},
		{name: "other", err: errors.New("boom"), want: fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, userMessage(tt.err, fallback))
		})
	}
}
