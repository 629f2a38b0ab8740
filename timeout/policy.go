// Copyright 2021 The gcsx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package timeout

import (
	"time"

	"github.com/gogama/gcsx/request"
)

// Default is the request timeout used when no timeout is explicitly
// given.
const Default = 60 * time.Second

// A Policy decides the timeout of the next request attempt.
//
// Implementations of Policy must be safe for concurrent use by multiple
// goroutines.
type Policy interface {
	// Timeout returns the timeout to set on the next request attempt,
	// given the current execution state.
	Timeout(e *request.Execution) time.Duration
}

// DefaultPolicy sets a fixed timeout of Default on each attempt.
var DefaultPolicy Policy = Fixed(Default)

// Infinite is a policy which never times out.
var Infinite Policy = Fixed(1<<63 - 1)

// Fixed constructs a policy that uses d for every attempt.
func Fixed(d time.Duration) Policy {
	if d <= 0 {
		panic("gcsx/timeout: timeout must be positive")
	}
	return policy([]time.Duration{d})
}

// Adaptive constructs a policy that lengthens the timeout after an
// attempt times out.
//
// Parameter usual is the timeout for the initial attempt and for any
// retry whose preceding attempt did not time out. After the n-th
// timeout of the execution, after[n-1] is used; once after is
// exhausted its last element is reused. For example
//
//	p := Adaptive(10*time.Second, 30*time.Second, 2*time.Minute)
//
// uses 10 seconds normally, 30 seconds right after the first timeout,
// and 2 minutes right after any later timeout. This suits large object
// reads where a slow first byte is usually a one-off.
func Adaptive(usual time.Duration, after ...time.Duration) Policy {
	p := make([]time.Duration, 1, 1+len(after))
	p[0] = usual
	p = append(p, after...)
	for _, d := range p {
		if d <= 0 {
			panic("gcsx/timeout: timeout must be positive")
		}
	}
	return policy(p)
}

type policy []time.Duration

func (p policy) Timeout(e *request.Execution) time.Duration {
	if !e.TimedOut {
		return p[0]
	}

	i := e.AttemptTimeouts
	if i > len(p)-1 {
		i = len(p) - 1
	}

	return p[i]
}
