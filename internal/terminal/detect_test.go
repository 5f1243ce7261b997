package terminal

import "testing"

func TestIsInteractiveUnderTest(t *testing.T) {
	// Test processes run without a controlling terminal on stdin/stdout.
	if IsInteractive() {
		t.Fatal("expected IsInteractive to be false under go test")
	}
}
