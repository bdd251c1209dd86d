package app

import (
	"testing"
)

// TestNew verifies app construction wires config and logger.
func TestNew(t *testing.T) {
	a, err := New("1.2.3", "abc123", "2026-01-01")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if a.Version() != "1.2.3" {
		t.Errorf("Version() = %s, want 1.2.3", a.Version())
	}
	if a.Config() == nil {
		t.Error("Config() returned nil")
	}
	if a.Logger() == nil {
		t.Error("Logger() returned nil")
	}
}
