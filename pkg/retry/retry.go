// Copyright (c) 2025, ODC Authors.  All rights reserved.
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

// Package retry implements a generic bounded wait against an external
// resource holder. It is parameterized by a predicate rather than tied to a
// specific process name, so callers decide what "released" means.
package retry

import (
	"context"
	"log/slog"
	"time"

	"github.com/odc-tools/odc/pkg/errors"
)

const (
	// DefaultInterval is the default poll interval.
	DefaultInterval = 5 * time.Second
	// DefaultMaxWait is the default total wait budget. It keeps an
	// abandoned lock from stalling the run forever.
	DefaultMaxWait = 5 * time.Minute
)

// Policy describes a bounded poll-and-wait: check the predicate on a fixed
// interval until it reports released, the wait budget is exhausted, or the
// context is canceled.
type Policy struct {
	// Interval between predicate checks.
	Interval time.Duration
	// MaxWait is the total time budget across all checks.
	MaxWait time.Duration
}

// DefaultPolicy returns the policy used by the archiver when none is
// configured.
func DefaultPolicy() Policy {
	return Policy{Interval: DefaultInterval, MaxWait: DefaultMaxWait}
}

// WaitUntilReleased polls released until it returns true. It returns a
// TIMEOUT error when MaxWait elapses first and the context error if the
// context is canceled while waiting. Elapsed time is logged on every poll
// so long waits remain observable.
func (p Policy) WaitUntilReleased(ctx context.Context, released func(ctx context.Context) bool) error {
	interval := p.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	maxWait := p.MaxWait
	if maxWait <= 0 {
		maxWait = DefaultMaxWait
	}

	if released(ctx) {
		return nil
	}

	start := time.Now()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			elapsed := time.Since(start)
			if released(ctx) {
				slog.Info("resource released", "elapsed", elapsed.Round(time.Millisecond))
				return nil
			}
			if elapsed >= maxWait {
				return errors.NewWithContext(errors.ErrCodeTimeout,
					"resource was not released within the wait budget",
					map[string]any{"elapsed": elapsed.String(), "budget": maxWait.String()})
			}
			slog.Info("waiting for resource to be released",
				"elapsed", elapsed.Round(time.Millisecond),
				"budget", maxWait)
		}
	}
}
