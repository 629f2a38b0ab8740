// Copyright 2021 The gcsx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"net/http"
	"sort"

	"github.com/gogama/gcsx/apierror"
)

// Reason codes which make a service error retryable.
const (
	ReasonRateLimitExceeded  = "rateLimitExceeded"
	ReasonBackendError       = "backendError"
	ReasonInternalError      = "internalError"
	ReasonBadGateway         = "badGateway"
	ReasonServiceUnavailable = "serviceUnavailable"
)

var retryableReasons = map[string]struct{}{
	ReasonRateLimitExceeded:  {},
	ReasonBackendError:       {},
	ReasonInternalError:      {},
	ReasonBadGateway:         {},
	ReasonServiceUnavailable: {},
}

// Status codes which make a service error with no sub-errors retryable.
var retryableStatusCodes = map[int]struct{}{
	http.StatusTooManyRequests:     {},
	http.StatusInternalServerError: {},
	http.StatusBadGateway:          {},
	http.StatusServiceUnavailable:  {},
}

// ShouldRetry reports whether a request that failed with err should be
// retried.
//
// For a service error, only the first sub-error's reason is consulted;
// if there are no sub-errors, the HTTP status decides instead. For a
// transport error, only a connection reset directly beneath a protocol
// error is retryable. Errors that are not yet classified go through
// apierror.Classify first. Everything else, including nil, is not
// retryable.
//
// ShouldRetry is safe for concurrent use.
func ShouldRetry(err error) bool {
	switch x := apierror.Classify(err).(type) {
	case *apierror.ServiceError:
		return serviceRetryable(x)
	case *apierror.TransportError:
		return transportRetryable(x)
	default:
		return false
	}
}

func serviceRetryable(e *apierror.ServiceError) bool {
	if len(e.Items) == 0 {
		_, ok := retryableStatusCodes[e.Code]
		return ok
	}
	_, ok := retryableReasons[e.Items[0].Reason]
	return ok
}

func transportRetryable(e *apierror.TransportError) bool {
	p := e.Protocol()
	return p != nil && p.Reset()
}

// RetryableReasons returns the sub-error reason codes ShouldRetry treats
// as retryable, sorted.
func RetryableReasons() []string {
	r := make([]string, 0, len(retryableReasons))
	for reason := range retryableReasons {
		r = append(r, reason)
	}
	sort.Strings(r)
	return r
}

// RetryableStatusCodes returns the HTTP status codes ShouldRetry treats
// as retryable when a service error has no sub-errors, sorted.
func RetryableStatusCodes() []int {
	s := make([]int, 0, len(retryableStatusCodes))
	for code := range retryableStatusCodes {
		s = append(s, code)
	}
	sort.Ints(s)
	return s
}
