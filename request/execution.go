// Copyright 2021 The gcsx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gogama/gcsx/apierror"
	"github.com/gogama/gcsx/transient"
)

// An Execution represents the state of a single Plan execution.
//
// Retry and timeout policies and event handlers may attach values to an
// Execution with SetValue and read them back with Value, but should
// otherwise treat the exported fields as read-only. BeforeAttempt
// handlers may make reasonable changes to the outgoing http.Request.
type Execution struct {
	// Plan is the plan being executed. It is never nil.
	Plan *Plan

	// Start is the time the execution started. It is zero before the
	// execution starts and constant afterward.
	Start time.Time

	// End is the time the execution ended. It is zero until then.
	End time.Time

	// Attempt is the zero-based number of the current attempt: zero on
	// the initial attempt, one on the first retry, and so on. After the
	// execution ends it holds the number of the last attempt made.
	Attempt int

	// AttemptTimeouts counts the attempts that ended in a timeout.
	AttemptTimeouts int

	// TimedOut indicates whether the most recently completed attempt
	// ended in a timeout. Unlike Err it is not cleared before a retry,
	// so a timeout policy deciding the next attempt can still see it.
	TimedOut bool

	// Request is the HTTP request of the current or most recent
	// attempt.
	Request *http.Request

	// Response is the HTTP response of the most recent attempt, or nil
	// if that attempt produced no response.
	Response *http.Response

	// Err is the error of the most recent attempt, or nil.
	//
	// After an attempt, a non-nil Err is always an apierror.Error. When
	// the plan's own context ends the execution, its error is wrapped
	// in an *apierror.TransportError.
	Err error

	// Body is the buffered response body of the most recent attempt.
	// When the service returned an error status, Body holds the error
	// envelope and Err holds the decoded *apierror.ServiceError.
	Body []byte

	data context.Context
}

// StatusCode returns the status code of the HTTP response from the
// most recent attempt, or 0 if there is no response.
func (e *Execution) StatusCode() int {
	if e.Response == nil {
		return 0
	}

	return e.Response.StatusCode
}

// Header returns the HTTP response headers from the most recent
// attempt, or a nil header if there is no response.
func (e *Execution) Header() http.Header {
	if e.Response == nil {
		return nil
	}

	return e.Response.Header
}

// Duration returns the duration of the execution: zero before it
// starts, the running time while in flight, and End minus Start after it
// ends.
func (e *Execution) Duration() time.Duration {
	if !e.Started() {
		return 0
	} else if !e.Ended() {
		return time.Since(e.Start)
	}

	return e.End.Sub(e.Start)
}

// Started indicates whether the execution has started.
func (e *Execution) Started() bool {
	return !e.Start.IsZero()
}

// Ended indicates whether the execution has ended.
func (e *Execution) Ended() bool {
	return !e.End.IsZero()
}

// Timeout indicates whether Err currently holds a timeout, either from
// the attempt timeout or from the plan deadline.
func (e *Execution) Timeout() bool {
	return transient.Categorize(e.Err) == transient.Timeout
}

// Kind returns the union kind of Err, or apierror.Unclassified if Err is
// nil or is not an apierror.Error.
func (e *Execution) Kind() apierror.Kind {
	var ae apierror.Error
	if errors.As(e.Err, &ae) {
		return ae.Kind()
	}
	return apierror.Unclassified
}

// SetValue stores arbitrary data in the execution. The key follows the
// rules of context.WithValue: non-nil, comparable, and preferably of an
// unexported type.
func (e *Execution) SetValue(key, value interface{}) {
	ctx := e.data
	if ctx == nil {
		ctx = context.Background()
	}

	e.data = context.WithValue(ctx, key, value)
}

// Value returns the data value stored under key, or nil.
func (e *Execution) Value(key interface{}) interface{} {
	if e.data == nil {
		return nil
	}

	return e.data.Value(key)
}
