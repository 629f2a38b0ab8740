// Copyright 2021 The gcsx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package apierror

import (
	"errors"
	"net"
	"net/http"
	"net/url"

	"golang.org/x/net/http2"
	"google.golang.org/api/googleapi"
)

// FromResponse converts an HTTP response whose body has already been
// read into body. It returns nil if the status code is below 400, and a
// *ServiceError otherwise.
//
// The body is decoded as the service's JSON error envelope. A body that
// is not a JSON error envelope yields a ServiceError with no Items.
func FromResponse(res *http.Response, body []byte) error {
	if res == nil || res.StatusCode < 400 {
		return nil
	}
	// Above 299 CheckResponseWithBody always returns a *googleapi.Error
	// with Code, Body and Header filled in.
	gerr := googleapi.CheckResponseWithBody(res, body).(*googleapi.Error)
	return FromGoogleAPI(gerr)
}

// FromGoogleAPI converts an error returned by a Google API client into a
// *ServiceError. It returns nil if err is nil.
func FromGoogleAPI(err *googleapi.Error) *ServiceError {
	if err == nil {
		return nil
	}
	var items []Item
	if len(err.Errors) > 0 {
		items = make([]Item, len(err.Errors))
		for i, ei := range err.Errors {
			items[i] = Item{Reason: ei.Reason, Message: ei.Message}
		}
	}
	return &ServiceError{
		Code:    err.Code,
		Message: err.Message,
		Items:   items,
		Header:  err.Header,
		Body:    err.Body,
		err:     err,
	}
}

// FromTransport converts a failure to obtain, or to finish reading, an
// HTTP response into a *TransportError. It returns nil if err is nil.
//
// If err is a *url.Error, its Op and URL replace op and rawURL and its
// cause is used. A *net.OpError anywhere in the cause becomes the
// *ProtocolError directly beneath the TransportError, wrapping the op
// error's own cause. Other causes are kept as the direct cause.
//
// Connection, GOAWAY and stream errors of golang.org/x/net/http2 become a
// *ProtocolError with Net "h2" that is never a reset. Only an
// x/net/http2.Transport produces them; the HTTP/2 support bundled in
// net/http reports its own unexported error types, which stay plain
// causes.
func FromTransport(op, rawURL string, err error) *TransportError {
	if err == nil {
		return nil
	}
	var te *TransportError
	if errors.As(err, &te) {
		return te
	}
	if ue, ok := err.(*url.Error); ok {
		op, rawURL, err = ue.Op, ue.URL, ue.Err
	}
	return &TransportError{
		Op:  op,
		URL: rawURL,
		Err: protocolCause(err),
	}
}

func protocolCause(err error) error {
	var pe *ProtocolError
	if errors.As(err, &pe) {
		return pe
	}
	var oe *net.OpError
	if errors.As(err, &oe) {
		return &ProtocolError{Op: oe.Op, Net: oe.Net, Err: oe.Err}
	}
	var ce http2.ConnectionError
	if errors.As(err, &ce) {
		return &ProtocolError{Op: "connection", Net: "h2", Err: ce}
	}
	var ge http2.GoAwayError
	if errors.As(err, &ge) {
		return &ProtocolError{Op: "goaway", Net: "h2", Err: ge}
	}
	var se http2.StreamError
	if errors.As(err, &se) {
		return &ProtocolError{Op: "stream", Net: "h2", Err: se}
	}
	return err
}

// Classify returns the union member for err. If err already is, or
// wraps, a *ServiceError or *TransportError, that value is returned.
// Otherwise a *googleapi.Error becomes a ServiceError, and a *url.Error
// or *net.OpError becomes a TransportError. For any other error,
// including nil, Classify returns nil.
func Classify(err error) Error {
	if err == nil {
		return nil
	}
	var se *ServiceError
	if errors.As(err, &se) {
		return se
	}
	var te *TransportError
	if errors.As(err, &te) {
		return te
	}
	var ge *googleapi.Error
	if errors.As(err, &ge) {
		return FromGoogleAPI(ge)
	}
	var ue *url.Error
	if errors.As(err, &ue) {
		return FromTransport(ue.Op, ue.URL, ue.Err)
	}
	var oe *net.OpError
	if errors.As(err, &oe) {
		return FromTransport("", "", oe)
	}
	return nil
}
