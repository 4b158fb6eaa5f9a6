package cmd

import "testing"

func TestResolveVersion(t *testing.T) {
	orig := version
	defer func() { version = orig }()

	version = "v1.2.3"
	if got := resolveVersion(); got != "v1.2.3" {
		t.Fatalf("expected linked version, got %q", got)
	}

	// Test binaries carry no release version, so the fallback lands on the
	// default.
	version = "unknown"
	if got := resolveVersion(); got == "" {
		t.Fatalf("expected a non-empty version fallback")
	}
}
