package utils

import (
	"testing"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient()

	if client == nil || client.Client == nil {
		t.Fatal("expected non-nil *HTTPClient with embedded *resty.Client")
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient()
	client2 := NewHTTPClient()

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}

func TestNewHTTPClient_AcceptsJSON(t *testing.T) {
	client := NewHTTPClient()

	if got := client.Header.Get("Accept"); got != "application/json" {
		t.Errorf("expected Accept header application/json, got %q", got)
	}
}
