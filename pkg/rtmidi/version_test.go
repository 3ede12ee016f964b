package rtmidi

import "testing"

func TestWrapperVersion(t *testing.T) {
	if WrapperVersion() == "" {
		t.Fatal("WrapperVersion is empty")
	}
}

func TestGeneration(t *testing.T) {
	switch g := Generation(); g {
	case "3.x", "5.x+":
	case "":
		// Built without cgo.
	default:
		t.Fatalf("Generation() = %q, want 3.x, 5.x+, or empty", g)
	}
}
