// Copyright 2021 The gcsx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"errors"
	"time"

	"github.com/gogama/gcsx/apierror"
	"github.com/gogama/gcsx/request"
)

// A Decider decides if a retry should be done.
//
// Implementations of Decider must be safe for concurrent use by
// multiple goroutines.
type Decider interface {
	Decide(e *request.Execution) bool
}

// The DeciderFunc type is an adapter to allow the use of ordinary
// functions as retry deciders. It also provides the logical composition
// methods And and Or.
type DeciderFunc func(e *request.Execution) bool

// DefaultDeadline is how long DefaultDecider keeps retrying, measured
// from the start of the execution.
const DefaultDeadline = 120 * time.Second

// DefaultDecider retries any attempt whose error ShouldRetry accepts,
// until DefaultDeadline has elapsed.
var DefaultDecider = Before(DefaultDeadline).And(Retryable)

// Retryable is a decider that applies ShouldRetry to the error of the
// most recent attempt. It returns false when the attempt succeeded.
var Retryable DeciderFunc = retryable

// Decide returns true if a retry should be done.
func (f DeciderFunc) Decide(e *request.Execution) bool {
	return f(e)
}

// And composes two deciders into one which returns true only if both
// do. g is not evaluated if f returns false.
func (f DeciderFunc) And(g DeciderFunc) DeciderFunc {
	return func(e *request.Execution) bool {
		return f(e) && g(e)
	}
}

// Or composes two deciders into one which returns true if either does.
// g is not evaluated if f returns true.
func (f DeciderFunc) Or(g DeciderFunc) DeciderFunc {
	return func(e *request.Execution) bool {
		return f(e) || g(e)
	}
}

// Times constructs a decider which allows up to n retries.
func Times(n int) DeciderFunc {
	return func(e *request.Execution) bool {
		return e.Attempt < n
	}
}

// Before constructs a decider which allows retries until d has elapsed
// since the start of the execution.
func Before(d time.Duration) DeciderFunc {
	return func(e *request.Execution) bool {
		return e.Duration() < d
	}
}

// StatusCode constructs a decider which returns true if the most recent
// attempt received an HTTP response with one of the status codes ss.
func StatusCode(ss ...int) DeciderFunc {
	ss2 := make([]int, len(ss))
	copy(ss2, ss)
	return func(e *request.Execution) bool {
		for _, s := range ss2 {
			if e.StatusCode() == s {
				return true
			}
		}
		return false
	}
}

// Reason constructs a decider which returns true if the most recent
// attempt failed with a service error whose first sub-error has one of
// the given reason codes. Like ShouldRetry, it ignores later sub-errors.
func Reason(reasons ...string) DeciderFunc {
	set := make(map[string]struct{}, len(reasons))
	for _, r := range reasons {
		set[r] = struct{}{}
	}
	return func(e *request.Execution) bool {
		var se *apierror.ServiceError
		if !errors.As(e.Err, &se) || len(se.Items) == 0 {
			return false
		}
		_, ok := set[se.FirstReason()]
		return ok
	}
}

func retryable(e *request.Execution) bool {
	return ShouldRetry(e.Err)
}
