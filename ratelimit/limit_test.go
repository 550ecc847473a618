// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/YCoro/opentxs/fault"
	"github.com/YCoro/opentxs/ratelimit"
)

func TestUnlimited(t *testing.T) {
	l := ratelimit.New(0, 0)
	start := time.Now()
	for i := 0; i < 1000; i += 1 {
		assert.Nil(t, ratelimit.Limit(l), "limit")
	}
	assert.True(t, time.Since(start) < time.Second, "no delay")
}

func TestLimitDelays(t *testing.T) {
	l := ratelimit.New(20, 1)
	start := time.Now()
	for i := 0; i < 3; i += 1 {
		assert.Nil(t, ratelimit.Limit(l), "limit")
	}
	assert.True(t, time.Since(start) >= 80*time.Millisecond, "paced")
}

func TestLimitN(t *testing.T) {
	l := ratelimit.New(1000, 10)
	assert.Nil(t, ratelimit.LimitN(l, 5, 10), "in range")
	assert.Equal(t, fault.InvalidCount, ratelimit.LimitN(l, 0, 10), "zero")
	assert.Equal(t, fault.InvalidCount, ratelimit.LimitN(l, 11, 10), "too many")
}

func TestLimitNeverAllowed(t *testing.T) {
	l := rate.NewLimiter(0, 0)
	assert.Equal(t, fault.RateLimiting, ratelimit.Limit(l), "zero burst")
	assert.False(t, ratelimit.Wait(l, nil), "zero burst wait")
}

func TestWaitShutdown(t *testing.T) {
	l := ratelimit.New(0.1, 1)
	shutdown := make(chan struct{})

	assert.True(t, ratelimit.Wait(l, shutdown), "burst slot")

	go func() {
		time.Sleep(20 * time.Millisecond)
		close(shutdown)
	}()
	start := time.Now()
	assert.False(t, ratelimit.Wait(l, shutdown), "interrupted")
	assert.True(t, time.Since(start) < 5*time.Second, "did not wait for slot")
}
