// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package migrator

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/juju/clock"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// Scheduler serializes calls to a remote service so that two consecutive
// calls start at least one interval apart. Calls are admitted in the order
// they asked to wait.
type Scheduler struct {
	limiter *rate.Limiter
	clock   clock.Clock

	// mu keeps reservation order and clock order the same. A reservation
	// made with an earlier time than the previous one would move the
	// limiter back and shorten the gap.
	mu sync.Mutex
}

// NewScheduler returns a scheduler admitting one call per interval. A zero
// interval disables throttling.
func NewScheduler(interval time.Duration, clk clock.Clock) *Scheduler {
	if clk == nil {
		clk = clock.WallClock
	}
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &Scheduler{
		limiter: rate.NewLimiter(limit, 1),
		clock:   clk,
	}
}

// Wait blocks until the caller is allowed to start its call or ctx is done.
// A cancelled wait gives its slot back.
func (s *Scheduler) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	now := s.clock.Now()
	r := s.limiter.ReserveN(now, 1)
	s.mu.Unlock()
	if !r.OK() {
		return errors.New("scheduler cannot admit the call")
	}
	delay := r.DelayFrom(now)
	if delay <= 0 {
		return nil
	}

	select {
	case <-s.clock.After(delay):
		return nil
	case <-ctx.Done():
		r.CancelAt(s.clock.Now())
		return ctx.Err()
	}
}

// RateLimitTransport will provide a layer based on http.RoundTripper interface
// that delays every request until the scheduler admits it.
type RateLimitTransport struct {
	scheduler *Scheduler
	base      http.RoundTripper
}

func (t *RateLimitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.scheduler.Wait(req.Context()); err != nil {
		return nil, err
	}
	return t.base.RoundTrip(req)
}

// NewRateLimitTransport will return a new transport that throttles requests
// through the given scheduler before handing them to base.
func NewRateLimitTransport(scheduler *Scheduler, base http.RoundTripper) *RateLimitTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &RateLimitTransport{scheduler, base}
}
