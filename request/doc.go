// Copyright 2021 The gcsx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package request contains the core types Plan (describes a storage API
request that may be attempted more than once) and Execution (describes
the state of running a Plan).

A Plan carries a pre-buffered body so that every attempt sends the same
bytes:

	p, err := request.NewPlan("GET", "https://storage.googleapis.com/storage/v1/b/my-bucket", nil)
	...
	e, err := client.Do(p)

A plan may be given a context to bound the whole execution, across all
retries:

	p, err := request.NewPlanWithContext(ctx, "DELETE", objectURL, nil)

The plan context deadline is separate from the per-attempt timeout,
which comes from the client's timeout.Policy.

An Execution is both the result of running a plan and the input to the
retry, timeout, and event handler callbacks invoked while it runs.
Whenever Execution.Err is set after an attempt, it is an apierror.Error:
either a *apierror.ServiceError or a *apierror.TransportError.
*/
package request
