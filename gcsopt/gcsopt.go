// Copyright 2021 The gcsx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package gcsopt applies the gcsx retry classification to the official
// Go storage client.
//
//	client, err := storage.NewClient(ctx)
//	...
//	gcsopt.Client(client, gcsopt.DefaultOptions())
//	obj := gcsopt.Object(client.Bucket("b").Object("o"), gcsopt.DefaultOptions())
package gcsopt

import (
	"time"

	"cloud.google.com/go/storage"
	"github.com/gogama/gcsx/retry"
	gax "github.com/googleapis/gax-go/v2"
)

// Options configure the storage client's retryer.
type Options struct {
	// Initial is the first backoff ceiling.
	Initial time.Duration
	// Maximum caps the backoff ceiling.
	Maximum time.Duration
	// Multiplier grows the backoff ceiling after each attempt.
	Multiplier float64
	// MaxAttempts bounds the total number of attempts. Zero leaves the
	// storage client's own limit in place.
	MaxAttempts int
	// Always retries every operation, not just idempotent ones.
	Always bool
}

// DefaultOptions returns the backoff used by retry.DefaultWaiter.
func DefaultOptions() Options {
	return Options{
		Initial:    retry.DefaultInitial,
		Maximum:    retry.DefaultMaximum,
		Multiplier: retry.DefaultMultiplier,
	}
}

// RetryOptions converts o into storage retry options whose error
// function is retry.ShouldRetry.
func RetryOptions(o Options) []storage.RetryOption {
	policy := storage.RetryIdempotent
	if o.Always {
		policy = storage.RetryAlways
	}
	opts := []storage.RetryOption{
		storage.WithErrorFunc(retry.ShouldRetry),
		storage.WithBackoff(gax.Backoff{
			Initial:    o.Initial,
			Max:        o.Maximum,
			Multiplier: o.Multiplier,
		}),
		storage.WithPolicy(policy),
	}
	if o.MaxAttempts > 0 {
		opts = append(opts, storage.WithMaxAttempts(o.MaxAttempts))
	}
	return opts
}

// Client configures every operation of c to retry according to o.
func Client(c *storage.Client, o Options) {
	c.SetRetry(RetryOptions(o)...)
}

// Bucket returns a copy of h that retries according to o.
func Bucket(h *storage.BucketHandle, o Options) *storage.BucketHandle {
	return h.Retryer(RetryOptions(o)...)
}

// Object returns a copy of h that retries according to o.
func Object(h *storage.ObjectHandle, o Options) *storage.ObjectHandle {
	return h.Retryer(RetryOptions(o)...)
}
