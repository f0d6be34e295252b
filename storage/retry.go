// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package storage

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// Write retry defaults used by callers that persist catalogs.
const (
	DefaultWriteAttempts = 3
	DefaultWriteDelay    = 20 * time.Millisecond
)

// RetryConflicts runs operation until it succeeds, fails with an error other
// than ErrTransactionFailed, or maxAttempts is reached. The delay starts at
// baseDelay and doubles after each conflict. The error from the last attempt
// is returned.
func RetryConflicts(ctx context.Context, operation func() error, maxAttempts int, baseDelay time.Duration) error {
	if maxAttempts <= 0 {
		return ErrInvalidMaxAttempts
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		lastErr = operation()
		if lastErr == nil {
			if attempt > 1 {
				slog.Debug("write succeeded after retry", "attempt", attempt)
			}
			return nil
		}
		if !errors.Is(lastErr, ErrTransactionFailed) {
			return lastErr
		}

		slog.Debug("write conflicted, will retry", "attempt", attempt, "maxAttempts", maxAttempts, "error", lastErr)

		if attempt == maxAttempts {
			break
		}

		delay := baseDelay << (attempt - 1)
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	return lastErr
}
