package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/webcrm-console/internal/adapter"
	"github.com/stretchr/testify/assert"
)

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name     string
		in       error
		want     error
		wantKind adapter.ErrorKind
	}{
		{name: "unauthorized", in: fmt.Errorf("op: %w", adapter.ErrUnauthorized), want: ErrSessionExpired, wantKind: adapter.KindAuthorization},
		{name: "not found", in: adapter.ErrNotFound, want: ErrRecordNotFound, wantKind: adapter.KindUnknown},
		{name: "conflict", in: adapter.ErrConflict, want: ErrConflict, wantKind: adapter.KindUnknown},
		{name: "category", in: adapter.ErrUnsupportedCategory, want: ErrCategoryNotSupported, wantKind: adapter.KindUnknown},
		{name: "server passes through", in: adapter.ErrBadGateway, want: adapter.ErrServer, wantKind: adapter.KindServer},
		{name: "timeout passes through", in: adapter.ErrTimeout, want: adapter.ErrTimeout, wantKind: adapter.KindTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.in)

			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.in)
			assert.Equal(t, tt.wantKind, adapter.Classify(got))
		})
	}
}

func TestMapAdapterError_Nil(t *testing.T) {
	assert.NoError(t, mapAdapterError(nil))
	other := errors.New("other")
	assert.Equal(t, other, mapAdapterError(other))
}
