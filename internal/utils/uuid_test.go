package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_GenerateIsValidAndUnique(t *testing.T) {
	g := NewUUIDGenerator()

	a, b := g.Generate(), g.Generate()

	if _, err := uuid.Parse(a); err != nil {
		t.Fatalf("expected valid uuid, got %q: %v", a, err)
	}
	if a == b {
		t.Fatal("expected distinct ids")
	}
}
