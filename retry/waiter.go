// Copyright 2021 The gcsx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/gogama/gcsx/request"
)

// A Waiter specifies how long to wait before retrying a failed attempt.
//
// Implementations of Waiter must be safe for concurrent use by multiple
// goroutines. gcsx.Client only calls the Waiter after the Decider
// returned true.
type Waiter interface {
	Wait(e *request.Execution) time.Duration
}

// Defaults for DefaultWaiter.
const (
	DefaultInitial    = 1 * time.Second
	DefaultMaximum    = 60 * time.Second
	DefaultMultiplier = 2.0
)

// DefaultWaiter uses jittered exponential backoff starting at
// DefaultInitial, growing by DefaultMultiplier, and capped at
// DefaultMaximum.
var DefaultWaiter = NewExpWaiter(DefaultInitial, DefaultMaximum, DefaultMultiplier, time.Now())

// NewFixedWaiter constructs a Waiter that always returns d.
func NewFixedWaiter(d time.Duration) Waiter {
	return fixedWaiter(d)
}

type fixedWaiter time.Duration

func (w fixedWaiter) Wait(_ *request.Execution) time.Duration {
	return time.Duration(w)
}

// NewExpWaiter constructs a Waiter implementing exponential backoff with
// optional "Full Jitter". The ceiling for attempt n is
//
//	ceil := min(initial * multiplier**n, maximum)
//
// and the wait is a random duration in [0, ceil), or ceil itself when
// jitter is nil.
//
// initial must be positive, maximum at least initial, and multiplier at
// least 1. jitter may be nil, a seed (time.Time, int, int64), a
// rand.Source, or a *rand.Rand.
func NewExpWaiter(initial, maximum time.Duration, multiplier float64, jitter interface{}) Waiter {
	if initial < 1 {
		panic("gcsx/retry: initial must be positive")
	}
	if maximum < initial {
		panic("gcsx/retry: maximum must be at least initial")
	}
	if multiplier < 1 || math.IsNaN(multiplier) || math.IsInf(multiplier, 0) {
		panic("gcsx/retry: multiplier must be a finite value of at least 1")
	}
	return &expWaiter{
		initial:    initial,
		maximum:    maximum,
		multiplier: multiplier,
		rand:       jitterToRand(jitter),
	}
}

type expWaiter struct {
	initial    time.Duration
	maximum    time.Duration
	multiplier float64
	rand       *rand.Rand
	lock       sync.Mutex
}

func (w *expWaiter) Wait(e *request.Execution) time.Duration {
	ceil := w.ceil(e.Attempt)
	if w.rand == nil || ceil <= 0 {
		return ceil
	}
	w.lock.Lock()
	defer w.lock.Unlock()
	return time.Duration(w.rand.Int63n(int64(ceil)))
}

func (w *expWaiter) ceil(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	f := float64(w.initial) * math.Pow(w.multiplier, float64(attempt))
	if math.IsInf(f, 0) || f >= float64(w.maximum) {
		return w.maximum
	}
	return time.Duration(f)
}

func jitterToRand(jitter interface{}) *rand.Rand {
	var s rand.Source
	switch j := jitter.(type) {
	case nil:
		return nil
	case time.Time:
		s = rand.NewSource(j.UnixNano())
	case int:
		s = rand.NewSource(int64(j))
	case int64:
		s = rand.NewSource(j)
	case *rand.Rand:
		if j == nil {
			panic("gcsx/retry: jitter may not be a typed nil")
		}
		return j
	case rand.Source:
		s = j
	default:
		panic("gcsx/retry: invalid jitter type")
	}
	return rand.New(s)
}
