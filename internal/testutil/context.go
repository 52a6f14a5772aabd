// Package testutil carries small helpers shared by tests.
package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTimeout bounds helpers that receive no explicit timeout.
const DefaultTimeout = 5 * time.Second

// Context returns a context that expires after the given timeout, or
// earlier when the test binary's own deadline is closer. Cancellation is
// registered as a test cleanup.
func Context(t *testing.T, timeout time.Duration) context.Context {
	t.Helper()
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	limit := time.Now().Add(timeout)
	if deadline, ok := t.Deadline(); ok {
		// Stay clear of the harness deadline so cleanup still runs.
		margin := deadline.Add(-time.Second)
		if margin.After(time.Now()) && margin.Before(limit) {
			limit = margin
		}
	}
	ctx, cancel := context.WithDeadline(context.Background(), limit)
	t.Cleanup(cancel)
	return ctx
}
