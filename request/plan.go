// Copyright 2021 The gcsx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	urlpkg "net/url"
	"strings"

	"golang.org/x/net/http/httpguts"
)

const nilCtxMsg = "gcsx/request: nil context"

var template, _ = http.NewRequest(http.MethodGet, "", nil)

// A Plan describes one logical storage API request, which may be sent
// as several HTTP request attempts if retries are needed.
//
// Its fields mirror the client-side fields of http.Request, except that
// the body is a pre-buffered []byte so it can be replayed.
type Plan struct {
	// Method is the HTTP method. An empty string means GET.
	Method string

	// URL is the URL to access.
	URL *urlpkg.URL

	// Header holds the request headers sent on every attempt.
	Header http.Header

	// Body is the pre-buffered request body. Nil or empty means no
	// body.
	Body []byte

	// Host optionally overrides the Host header. If empty, URL.Host is
	// used.
	Host string

	ctx context.Context
}

// NewPlan wraps NewPlanWithContext using the background context.
func NewPlan(method, url string, body interface{}) (*Plan, error) {
	return NewPlanWithContext(context.Background(), method, url, body)
}

// NewPlanWithContext returns a new Plan given a method, URL, and
// optional body. The body may be nil, a string, a []byte, an io.Reader,
// or an io.ReadCloser; readers are buffered (and closed, if closable).
func NewPlanWithContext(ctx context.Context, method, url string, body interface{}) (*Plan, error) {
	if ctx == nil {
		return nil, errors.New(nilCtxMsg)
	}
	if method == "" {
		method = http.MethodGet
	}
	if !validMethod(method) {
		return nil, fmt.Errorf("gcsx/request: invalid method %q", method)
	}
	u, err := urlpkg.Parse(url)
	if err != nil {
		return nil, err
	}
	u.Host = strings.TrimSuffix(u.Host, ":")
	b, err := BodyBytes(body)
	if err != nil {
		return nil, err
	}
	return &Plan{
		ctx:    ctx,
		Method: method,
		URL:    u,
		Header: make(http.Header),
		Body:   b,
		Host:   u.Host,
	}, nil
}

// Context returns the plan's context, which is never nil.
func (p *Plan) Context() context.Context {
	if p.ctx != nil {
		return p.ctx
	}
	return context.Background()
}

// WithContext returns a shallow copy of p with its context changed to
// ctx, which must be non-nil.
//
// The context bounds the whole execution: every attempt, every event
// handler, and every retry wait.
func (p *Plan) WithContext(ctx context.Context) *Plan {
	if ctx == nil {
		panic(nilCtxMsg)
	}
	p2 := new(Plan)
	*p2 = *p
	p2.ctx = ctx
	return p2
}

// ToRequest creates the HTTP request for one attempt of the plan. The
// request's context is set to ctx, which may not be nil.
func (p *Plan) ToRequest(ctx context.Context) *http.Request {
	r := template.WithContext(ctx)
	r.Method = p.Method
	r.URL = p.URL
	r.Header = p.Header
	if len(p.Body) > 0 {
		r.Body = io.NopCloser(bytes.NewReader(p.Body))
		r.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(p.Body)), nil
		}
		r.ContentLength = int64(len(p.Body))
	}
	r.Host = p.Host
	return r
}

// validMethod reports whether method is an RFC 7230 token, which is the
// same grammar as a header field name.
func validMethod(method string) bool {
	return httpguts.ValidHeaderFieldName(method)
}
