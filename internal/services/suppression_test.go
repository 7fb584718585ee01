package services

import (
	"sync"
	"testing"
)

func TestSuppressionRegistry(t *testing.T) {
	r := NewSuppressionRegistry()

	if r.Suppressed(1) {
		t.Fatalf("fresh registry suppressed conversation 1")
	}
	r.Suppress(1)
	if !r.Suppressed(1) {
		t.Fatalf("Suppress(1) had no effect")
	}
	if r.Suppressed(2) {
		t.Fatalf("suppression leaked to another conversation")
	}

	// Suppressing twice is a no-op, not an error.
	r.Suppress(1)
	if !r.Suppressed(1) {
		t.Fatalf("double Suppress cleared the flag")
	}
}

func TestSuppressionRegistry_ConcurrentAccess(t *testing.T) {
	r := NewSuppressionRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		id := i % 5
		go func() {
			defer wg.Done()
			r.Suppress(id)
		}()
		go func() {
			defer wg.Done()
			r.Suppressed(id)
		}()
	}
	wg.Wait()
	for id := 0; id < 5; id++ {
		if !r.Suppressed(id) {
			t.Errorf("conversation %d not suppressed after concurrent writes", id)
		}
	}
}
