package util

import (
	"context"
	"math/rand"
	"time"
)

// Retry runs fn up to attempts times, sleeping between tries with linear
// backoff plus jitter. Cancelling the context stops both the sleep and any
// further attempts.
func Retry(ctx context.Context, attempts int, baseDelay, jitter time.Duration, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if attempt == attempts {
			break
		}

		delay := baseDelay * time.Duration(attempt)
		if jitter > 0 {
			delay += time.Duration(rand.Int63n(int64(jitter)))
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return err
}
