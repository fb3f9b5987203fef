package fill

import (
	"testing"
)

// TestNewFillIDUniqueness tests that NewFillID generates unique identifiers
func TestNewFillIDUniqueness(t *testing.T) {
	const numIDs = 1000

	ids := make(map[FillID]bool, numIDs)
	for i := 0; i < numIDs; i++ {
		id := NewFillID()
		if id.IsEmpty() {
			t.Errorf("Generated empty fill ID at iteration %d", i)
		}
		if ids[id] {
			t.Errorf("Generated duplicate fill ID: %s", id)
		}
		ids[id] = true
	}
}

// TestFillIDIsEmpty tests fill ID emptiness check
func TestFillIDIsEmpty(t *testing.T) {
	if !FillID("").IsEmpty() {
		t.Error("Expected empty fill ID to be empty")
	}
	if FillID("not-empty").IsEmpty() {
		t.Error("Expected non-empty fill ID to not be empty")
	}
}
