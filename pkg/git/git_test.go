package git

import "testing"

func TestNew(t *testing.T) {
	cli := New()
	if cli == nil {
		t.Fatal("expected non-nil CLI")
	}
}

// Compile-time check that DefaultCLI satisfies CLI.
var _ CLI = (*DefaultCLI)(nil)
