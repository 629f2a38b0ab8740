// Copyright 2021 The gcsx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package apierror

import (
	"fmt"
	"net/http"

	"github.com/gogama/gcsx/transient"
	"google.golang.org/api/googleapi"
)

// A Kind is the discriminant of the error union.
type Kind int

const (
	// Unclassified is the zero Kind. It is reported for nil errors and
	// for errors that are neither a ServiceError nor a TransportError.
	Unclassified Kind = iota
	// Service identifies a ServiceError.
	Service
	// Transport identifies a TransportError.
	Transport
)

var kindNames = []string{
	"unclassified",
	"service",
	"transport",
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Error is implemented by exactly two types, *ServiceError and
// *TransportError.
type Error interface {
	error
	// Kind reports which member of the union the error is.
	Kind() Kind

	apiError()
}

// An Item is one structured sub-error from the service's JSON error
// envelope.
type Item struct {
	// Reason is a short machine-readable code such as
	// "rateLimitExceeded" or "notFound".
	Reason string
	// Message is the human-readable description, if any.
	Message string
}

// A ServiceError is an HTTP error response from the storage service.
type ServiceError struct {
	// Code is the HTTP status code of the response.
	Code int
	// Message is the top-level message from the error envelope. It is
	// empty if the body was not a JSON error envelope.
	Message string
	// Items holds the structured sub-errors in the order the service
	// returned them. It may be empty.
	Items []Item
	// Header holds the response headers.
	Header http.Header
	// Body is the raw response body.
	Body string

	err *googleapi.Error
}

// Kind returns Service.
func (e *ServiceError) Kind() Kind {
	return Service
}

func (e *ServiceError) apiError() {}

// Status returns the HTTP status code.
func (e *ServiceError) Status() int {
	return e.Code
}

// FirstReason returns the reason code of the first sub-error, or the
// empty string if there are no sub-errors.
func (e *ServiceError) FirstReason() string {
	if len(e.Items) == 0 {
		return ""
	}
	return e.Items[0].Reason
}

func (e *ServiceError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	if e.Message != "" {
		return fmt.Sprintf("gcsx: HTTP %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("gcsx: HTTP %d", e.Code)
}

// Unwrap returns the *googleapi.Error the ServiceError was built from,
// if any.
func (e *ServiceError) Unwrap() error {
	if e.err == nil {
		return nil
	}
	return e.err
}

// A TransportError is a request attempt failure where no HTTP response
// was obtained, or where reading the response body failed.
type TransportError struct {
	// Op is the operation, in the style of url.Error ("Get", "Put").
	Op string
	// URL is the request URL.
	URL string
	// Err is the direct cause. It is a *ProtocolError when the failure
	// happened on the connection.
	Err error
}

// Kind returns Transport.
func (e *TransportError) Kind() Kind {
	return Transport
}

func (e *TransportError) apiError() {}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.URL, e.Err)
}

// Unwrap returns the direct cause.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the failure was a timeout.
func (e *TransportError) Timeout() bool {
	return transient.Categorize(e.Err) == transient.Timeout
}

// Protocol returns the direct cause if it is a *ProtocolError, and nil
// otherwise. Deeper causes are not searched.
func (e *TransportError) Protocol() *ProtocolError {
	p, _ := e.Err.(*ProtocolError)
	return p
}

// A ProtocolError is a failure of the connection carrying the request.
type ProtocolError struct {
	// Op is the network operation ("dial", "read", "write") or, for
	// HTTP/2 failures, the frame-level condition.
	Op string
	// Net is the network ("tcp", "tcp6", ...), or "h2" for HTTP/2
	// protocol failures.
	Net string
	// Err is the low-level signal.
	Err error
}

func (e *ProtocolError) Error() string {
	if e.Net == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Net, e.Err)
}

// Unwrap returns the low-level signal.
func (e *ProtocolError) Unwrap() error {
	return e.Err
}

// Reset reports whether the low-level signal is a connection reset by
// the peer.
func (e *ProtocolError) Reset() bool {
	return transient.Categorize(e.Err) == transient.ConnReset
}
