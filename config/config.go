// Copyright 2021 The gcsx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package config loads client timeout and retry settings from the
// environment.
package config

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/gogama/gcsx"
	"github.com/gogama/gcsx/retry"
	"github.com/gogama/gcsx/timeout"
	"github.com/sethvargo/go-envconfig"
)

// Config holds the settings of a gcsx.Client. The defaults match the
// zero-value Client.
type Config struct {
	// Timeout is the per-attempt timeout.
	Timeout time.Duration `env:"GCSX_TIMEOUT,default=60s"`
	// Initial is the first retry backoff ceiling.
	Initial time.Duration `env:"GCSX_RETRY_INITIAL,default=1s"`
	// Maximum caps the retry backoff ceiling.
	Maximum time.Duration `env:"GCSX_RETRY_MAXIMUM,default=60s"`
	// Multiplier grows the backoff ceiling after each attempt.
	Multiplier float64 `env:"GCSX_RETRY_MULTIPLIER,default=2"`
	// Deadline bounds the time spent retrying, measured from the start
	// of the execution. It must be positive.
	Deadline time.Duration `env:"GCSX_RETRY_DEADLINE,default=120s"`
	// MaxAttempts bounds the total number of attempts. Zero means the
	// Deadline alone limits retries.
	MaxAttempts int `env:"GCSX_RETRY_MAX_ATTEMPTS,default=0"`
}

// Load reads the configuration from the process environment and
// validates it.
func Load(ctx context.Context) (*Config, error) {
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith reads the configuration through l and validates it.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	}); err != nil {
		return nil, fmt.Errorf("gcsx/config: processing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration can build valid policies.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return errors.New("gcsx/config: timeout must be positive")
	}
	if c.Initial <= 0 {
		return errors.New("gcsx/config: initial backoff must be positive")
	}
	if c.Maximum < c.Initial {
		return errors.New("gcsx/config: maximum backoff must be at least initial backoff")
	}
	if c.Multiplier < 1 || math.IsNaN(c.Multiplier) || math.IsInf(c.Multiplier, 0) {
		return errors.New("gcsx/config: multiplier must be a finite value of at least 1")
	}
	if c.Deadline <= 0 {
		return errors.New("gcsx/config: deadline must be positive")
	}
	if c.MaxAttempts < 0 {
		return errors.New("gcsx/config: max attempts cannot be negative")
	}
	return nil
}

// RetryPolicy builds a policy that retries what retry.ShouldRetry
// accepts, within the configured deadline and attempt budget, backing
// off with jittered exponential waits.
func (c *Config) RetryPolicy() retry.Policy {
	d := retry.Before(c.Deadline).And(retry.Retryable)
	if c.MaxAttempts > 0 {
		d = retry.Times(c.MaxAttempts - 1).And(d)
	}
	return retry.NewPolicy(d, retry.NewExpWaiter(c.Initial, c.Maximum, c.Multiplier, time.Now()))
}

// TimeoutPolicy builds a fixed per-attempt timeout policy.
func (c *Config) TimeoutPolicy() timeout.Policy {
	return timeout.Fixed(c.Timeout)
}

// Client builds a gcsx.Client using doer and the configured policies.
// A nil doer selects http.DefaultClient.
func (c *Config) Client(doer gcsx.HTTPDoer) *gcsx.Client {
	return &gcsx.Client{
		HTTPDoer:      doer,
		RetryPolicy:   c.RetryPolicy(),
		TimeoutPolicy: c.TimeoutPolicy(),
	}
}
