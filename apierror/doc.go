// Copyright 2021 The gcsx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package apierror defines the two shapes a failed storage request can take,
and the boundary functions that decide which shape applies.

A ServiceError means the storage service answered with an HTTP error
status. It carries the HTTP status code and the structured sub-errors
from the service's JSON error envelope:

	{"error": {"code": 429, "message": "...", "errors": [{"reason": "rateLimitExceeded", ...}]}}

The list of sub-errors may be empty, for example when a front end
rejects the request before it reaches the JSON API.

A TransportError means no HTTP response was obtained. Its cause chain is
explicit and typed: a TransportError may directly wrap a ProtocolError,
which in turn wraps the low-level signal (such as a connection reset).

The decision between the two shapes is made once, when the error is
constructed by FromResponse, FromTransport, FromGoogleAPI, or Classify.
Consumers switch on Kind or on the concrete type; they never probe for
the presence of fields.
*/
package apierror
