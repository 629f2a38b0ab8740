// Copyright 2021 The gcsx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package gcsx drives requests to a cloud object-storage JSON API,
retrying exactly the failures the storage service documents as
transient.

The retry decision itself lives in package retry:

	if retry.ShouldRetry(err) {
		// back off and try again
	}

ShouldRetry accepts a service error whose first sub-error carries one of
the reasons rateLimitExceeded, backendError, internalError, badGateway,
or serviceUnavailable; a service error with no sub-errors and status
429, 500, 502, or 503; and a transport error caused by the peer
resetting the connection. Everything else is final.

Client wires that decision into a complete attempt loop:

	client := &gcsx.Client{}
	ex, err := client.Get("https://storage.googleapis.com/storage/v1/b/bucket/o/object")

Every failed attempt reaches the retry policy as an apierror.Error, so
custom policies can be composed from package retry without probing
error values:

	client := &gcsx.Client{
		RetryPolicy: retry.NewPolicy(
			retry.Times(5).And(retry.Retryable),
			retry.NewExpWaiter(500*time.Millisecond, 10*time.Second, 2, time.Now())),
		TimeoutPolicy: timeout.Fixed(gcsx.DefaultTimeout),
	}

Handlers installed in a HandlerGroup run at fixed points of each
execution. InstallLogging adds structured logging through clog, and
package metrics adds Prometheus counters:

	handlers := &gcsx.HandlerGroup{}
	gcsx.InstallLogging(handlers)
	metrics.Install(handlers)
	client := &gcsx.Client{Handlers: handlers}

The storage class and location type constants name the values the
service accepts for bucket and object metadata.
*/
package gcsx
