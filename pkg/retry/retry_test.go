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

package retry

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odc-tools/odc/pkg/errors"
)

func TestWaitUntilReleased_ImmediatelyFree(t *testing.T) {
	p := Policy{Interval: time.Hour, MaxWait: time.Hour}

	err := p.WaitUntilReleased(context.Background(), func(context.Context) bool { return true })
	require.NoError(t, err)
}

func TestWaitUntilReleased_FreesAfterPolls(t *testing.T) {
	p := Policy{Interval: 5 * time.Millisecond, MaxWait: time.Second}

	var calls atomic.Int32
	err := p.WaitUntilReleased(context.Background(), func(context.Context) bool {
		return calls.Add(1) > 3
	})

	require.NoError(t, err)
	assert.GreaterOrEqual(t, calls.Load(), int32(4))
}

func TestWaitUntilReleased_BudgetExhausted(t *testing.T) {
	p := Policy{Interval: 5 * time.Millisecond, MaxWait: 20 * time.Millisecond}

	err := p.WaitUntilReleased(context.Background(), func(context.Context) bool { return false })

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeTimeout))
}

func TestWaitUntilReleased_ContextCanceled(t *testing.T) {
	p := Policy{Interval: 10 * time.Millisecond, MaxWait: time.Minute}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.WaitUntilReleased(ctx, func(context.Context) bool { return false })
	require.ErrorIs(t, err, context.Canceled)
}

func TestDefaultPolicy(t *testing.T) {
	p := DefaultPolicy()
	assert.Equal(t, DefaultInterval, p.Interval)
	assert.Equal(t, DefaultMaxWait, p.MaxWait)
}
