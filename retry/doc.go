// Copyright 2021 The gcsx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package retry decides whether a failed storage request attempt should
// be retried, and how long to wait first.
//
// The core of the package is ShouldRetry, a pure predicate over an error.
// It can be used on its own with any retry driver (see package gcsopt for
// the official Go storage client), or through the Retryable decider
// inside a Policy for gcsx.Client.
//
// A Policy is assembled from a Decider and a Waiter:
//
//	decider := retry.Times(3).
//	               And(retry.Before(30 * time.Second)).
//	               And(retry.Retryable)
//	waiter := retry.NewExpWaiter(time.Second, 10*time.Second, 2, time.Now())
//	policy := retry.NewPolicy(decider, waiter)
package retry
