// Copyright 2025 Docdex Authors
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


package search

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/docdex/docdex/core"
)

// ResilienceConfig tunes the retry and circuit-breaker behavior of a
// Resilient strategy.
type ResilienceConfig struct {
	// MaxAttempts is how many times one Search call may hit the model.
	// Default: 3
	MaxAttempts int

	// BaseDelay is the first retry delay; it doubles on each retry.
	// Default: 500ms
	BaseDelay time.Duration

	// BreakerMinRequests is how many requests the breaker observes before
	// it may trip. Default: 5
	BreakerMinRequests uint32

	// BreakerFailureRatio is the failure ratio that trips the breaker.
	// Default: 0.6
	BreakerFailureRatio float64

	// BreakerOpenTimeout is how long the breaker stays open before probing.
	// Default: 30s
	BreakerOpenTimeout time.Duration
}

func (c ResilienceConfig) normalize() ResilienceConfig {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 3
	}
	if c.BaseDelay <= 0 {
		c.BaseDelay = 500 * time.Millisecond
	}
	if c.BreakerMinRequests == 0 {
		c.BreakerMinRequests = 5
	}
	if c.BreakerFailureRatio <= 0 || c.BreakerFailureRatio > 1 {
		c.BreakerFailureRatio = 0.6
	}
	if c.BreakerOpenTimeout <= 0 {
		c.BreakerOpenTimeout = 30 * time.Second
	}
	return c
}

// Resilient wraps a strategy with retries and a circuit breaker so a flaky
// model endpoint degrades into fast failures instead of hanging every
// search. The Runner turns those failures into an explicit empty result.
type Resilient struct {
	inner   Strategy
	breaker *gobreaker.CircuitBreaker[[]core.ID]
	cfg     ResilienceConfig
	logger  *slog.Logger
}

// NewResilient wraps a strategy with the given resilience settings.
func NewResilient(inner Strategy, cfg ResilienceConfig, opts ...Option) (*Resilient, error) {
	if inner == nil {
		return nil, ErrStrategyRequired
	}

	cfg = cfg.normalize()
	o := newOptions(opts...)
	logger := o.logger.With("strategy", inner.Name()+"+resilient")

	settings := gobreaker.Settings{
		Name:    inner.Name(),
		Timeout: cfg.BreakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.BreakerMinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return ratio >= cfg.BreakerFailureRatio
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				"strategy", name,
				"from", from.String(),
				"to", to.String())
		},
	}

	return &Resilient{
		inner:   inner,
		breaker: gobreaker.NewCircuitBreaker[[]core.ID](settings),
		cfg:     cfg,
		logger:  logger,
	}, nil
}

// Name identifies the strategy.
func (r *Resilient) Name() string {
	return r.inner.Name()
}

// Search runs the wrapped strategy through the circuit breaker, retrying
// transient failures with exponential backoff. Context cancellation stops
// the retry loop immediately.
func (r *Resilient) Search(ctx context.Context, query string, docs []*core.Document) ([]core.ID, error) {
	return r.breaker.Execute(func() ([]core.ID, error) {
		var lastErr error
		delay := r.cfg.BaseDelay

		for attempt := 1; attempt <= r.cfg.MaxAttempts; attempt++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			ids, err := r.inner.Search(ctx, query, docs)
			if err == nil {
				return ids, nil
			}
			lastErr = err

			if attempt == r.cfg.MaxAttempts {
				break
			}
			r.logger.Warn("search attempt failed, retrying",
				"attempt", attempt,
				"max_attempts", r.cfg.MaxAttempts,
				"err", err)

			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, ctx.Err()
			case <-timer.C:
			}
			delay *= 2
		}

		return nil, lastErr
	})
}

// IsCircuitOpen reports whether an error came from an open circuit breaker
// rather than the model itself.
func IsCircuitOpen(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}
