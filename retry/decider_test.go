// Copyright 2021 The gcsx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"errors"
	"fmt"
	"net/http"
	"syscall"
	"testing"
	"time"

	"github.com/gogama/gcsx/apierror"
	"github.com/gogama/gcsx/request"

	"github.com/stretchr/testify/assert"
)

func TestDefaultDecider(t *testing.T) {
	t.Run("Retryable errors", func(t *testing.T) {
		for i, err := range retryableErrs {
			t.Run(fmt.Sprintf("retryableErrs[%d]=%v", i, err), func(t *testing.T) {
				e := request.Execution{Start: time.Now(), Err: err}
				for j := 0; j < 10; j++ {
					e.Attempt = j
					assert.True(t, DefaultDecider(&e), fmt.Sprintf("Expect true for attempt %d", j))
				}
				e.End = e.Start.Add(DefaultDeadline)
				assert.False(t, DefaultDecider(&e), "Expect false once the deadline has passed")
			})
		}
	})
	t.Run("Non-retryable errors", func(t *testing.T) {
		for i, err := range nonRetryableErrs {
			t.Run(fmt.Sprintf("nonRetryableErrs[%d]=%v", i, err), func(t *testing.T) {
				e := request.Execution{Start: time.Now(), Err: err}
				e.Attempt = 0
				assert.False(t, DefaultDecider(&e), "Expect false for attempt 0")
				e.Attempt = 4
				assert.False(t, DefaultDecider(&e), "Expect false for attempt 4")
			})
		}
	})
	t.Run("Status without error", func(t *testing.T) {
		e := request.Execution{
			Start:    time.Now(),
			Response: &http.Response{StatusCode: 503},
		}
		assert.False(t, DefaultDecider(&e))
	})
}

func TestRetryable(t *testing.T) {
	e := request.Execution{}
	for i, err := range retryableErrs {
		t.Run(fmt.Sprintf("retryableErrs[%d]=%v", i, err), func(t *testing.T) {
			e.Err = err
			assert.True(t, Retryable(&e))
			e.Err = fmt.Errorf("wrapped: %w", err)
			assert.True(t, Retryable(&e))
		})
	}
	for j, err := range nonRetryableErrs {
		t.Run(fmt.Sprintf("nonRetryableErrs[%d]=%v", j, err), func(t *testing.T) {
			e.Err = err
			assert.False(t, Retryable(&e))
		})
	}
}

func TestDeciderAnd(t *testing.T) {
	true_ := DeciderFunc(func(_ *request.Execution) bool { return true })
	false_ := DeciderFunc(func(_ *request.Execution) bool { return false })
	tt := true_.And(true_)
	tf := true_.And(false_)
	ft := false_.And(true_)
	ff := false_.And(false_)
	assert.True(t, tt(&request.Execution{}))
	assert.False(t, tf(&request.Execution{}))
	assert.False(t, ft(&request.Execution{}))
	assert.False(t, ff(&request.Execution{}))
}

func TestDeciderOr(t *testing.T) {
	true_ := DeciderFunc(func(_ *request.Execution) bool { return true })
	false_ := DeciderFunc(func(_ *request.Execution) bool { return false })
	tt := true_.Or(true_)
	tf := true_.Or(false_)
	ft := false_.Or(true_)
	ff := false_.Or(false_)
	assert.True(t, tt(&request.Execution{}))
	assert.True(t, tf(&request.Execution{}))
	assert.True(t, ft(&request.Execution{}))
	assert.False(t, ff(&request.Execution{}))
}

func TestDeciderFuncDecide(t *testing.T) {
	var called int
	f := DeciderFunc(func(_ *request.Execution) bool {
		called++
		return true
	})
	var d Decider = f
	assert.True(t, d.Decide(&request.Execution{}))
	assert.Equal(t, 1, called)
}

func TestTimes(t *testing.T) {
	zero := Times(0)
	assert.False(t, zero(&request.Execution{}))
	one := Times(1)
	assert.True(t, one(&request.Execution{}))
	assert.False(t, one(&request.Execution{Attempt: 1}))
	two := Times(2)
	assert.True(t, two(&request.Execution{Attempt: 1}))
	assert.False(t, two(&request.Execution{Attempt: 2}))
}

func TestBefore(t *testing.T) {
	e := request.Execution{Start: time.Now()}
	before := Before(time.Minute)
	for i := 0; i < 20; i++ {
		e.Attempt = i
		assert.True(t, before(&e))
	}
	e.End = e.Start.Add(2 * time.Minute)
	assert.False(t, before(&e))
}

func TestStatusCode(t *testing.T) {
	empty := StatusCode()
	assert.False(t, empty(&request.Execution{}))
	one := StatusCode(602)
	assert.False(t, one(&request.Execution{}))
	r := http.Response{}
	e := request.Execution{Response: &r}
	assert.False(t, empty(&e))
	assert.False(t, one(&e))
	r.StatusCode = 602
	assert.True(t, one(&e))
	two := StatusCode(509, 602)
	assert.True(t, two(&e))
	r.StatusCode = 509
	assert.True(t, two(&e))
	r.StatusCode = 508
	assert.False(t, two(&e))
}

func TestReason(t *testing.T) {
	d := Reason("notFound", "conflict")
	assert.False(t, d(&request.Execution{}))
	assert.False(t, d(&request.Execution{Err: errors.New("plain")}))
	assert.False(t, d(&request.Execution{Err: serviceErr(404)}))
	assert.True(t, d(&request.Execution{Err: serviceErr(404, "notFound")}))
	assert.True(t, d(&request.Execution{Err: fmt.Errorf("wrapped: %w", serviceErr(409, "conflict"))}))
	assert.False(t, d(&request.Execution{Err: serviceErr(400, "invalid", "notFound")}))
}

var (
	retryableErrs = []error{
		serviceErr(429, ReasonRateLimitExceeded),
		serviceErr(500, ReasonBackendError),
		serviceErr(503),
		transportErr(&apierror.ProtocolError{Op: "read", Net: "tcp", Err: syscall.ECONNRESET}),
	}
	nonRetryableErrs = []error{
		nil,
		errors.New("not retryable"),
		serviceErr(404, "notFound"),
		serviceErr(504),
		transportErr(&apierror.ProtocolError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED}),
		transportErr(syscall.ECONNRESET),
		syscall.ECONNRESET,
	}
)
