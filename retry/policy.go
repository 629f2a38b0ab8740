// Copyright 2021 The gcsx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"time"

	"github.com/gogama/gcsx/request"
)

// A Policy decides, after every failed attempt, whether to retry and
// how long to wait first.
//
// Implementations of Policy must be safe for concurrent use by multiple
// goroutines.
type Policy interface {
	Decider
	Waiter
}

// DefaultPolicy composes DefaultDecider and DefaultWaiter.
var DefaultPolicy = NewPolicy(DefaultDecider, DefaultWaiter)

// Never is a policy that never retries.
var Never = NewPolicy(Times(0), DefaultWaiter)

type policy struct {
	decider Decider
	waiter  Waiter
}

// NewPolicy composes a Decider and a Waiter into a Policy.
func NewPolicy(d Decider, w Waiter) Policy {
	if d == nil {
		panic("gcsx/retry: nil decider")
	}
	if w == nil {
		panic("gcsx/retry: nil waiter")
	}
	return policy{decider: d, waiter: w}
}

func (p policy) Decide(e *request.Execution) bool {
	return p.decider.Decide(e)
}

func (p policy) Wait(e *request.Execution) time.Duration {
	return p.waiter.Wait(e)
}
