// Copyright 2021 The gcsx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package transient recognizes the low-level network signals that sit at
// the bottom of a failed storage request attempt: client-side timeouts,
// refused connections, and connections reset by the peer.
//
// Package transient does not decide whether a request should be
// retried. It only names the signal; package apierror uses it to answer
// whether a protocol-level failure was a connection reset, and package
// retry builds the retry decision on top of that. The category names
// double as low-cardinality labels for logs and metrics.
package transient
