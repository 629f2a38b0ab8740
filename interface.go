// Copyright 2021 The gcsx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package gcsx

import (
	"net/http"

	"github.com/gogama/gcsx/request"
)

// Doer is the interface that wraps the basic Do method.
//
// Do executes a request plan and returns the final execution state
// (and error, if any). Client implements Doer, and any other
// implementation must behave substantially the same as Client.Do.
//
// Any Doer can be converted into an Executor via the Inflate function.
type Doer interface {
	Do(p *request.Plan) (*request.Execution, error)
}

// Getter is the interface that wraps the basic Get method.
//
// Any Doer can be used to emulate a Getter via the Get function.
type Getter interface {
	Get(url string) (*request.Execution, error)
}

// Header is the interface that wraps the basic Head method.
//
// Any Doer can be used to emulate a Header via the Head function.
type Header interface {
	Head(url string) (*request.Execution, error)
}

// Deleter is the interface that wraps the basic Delete method.
//
// Any Doer can be used to emulate a Deleter via the Delete function.
type Deleter interface {
	Delete(url string) (*request.Execution, error)
}

// Poster is the interface that wraps the basic Post method.
//
// The body parameter may be nil for an empty body, or may be any of the
// types supported by request.BodyBytes.
//
// Any Doer can be used to emulate a Poster via the Post function.
type Poster interface {
	Post(url, contentType string, body interface{}) (*request.Execution, error)
}

// IdleCloser is the interface that wraps the basic CloseIdleConnections
// method.
//
// If the underlying implementation supports it, CloseIdleConnections
// closes connections left idle in a "keep-alive" state by previous
// requests. Otherwise it does nothing.
type IdleCloser interface {
	CloseIdleConnections()
}

// Executor is the interface that groups the basic Do, Get, Head,
// Delete, Post, and CloseIdleConnections methods.
type Executor interface {
	Doer
	Getter
	Header
	Deleter
	Poster
	IdleCloser
}

// Get uses d to issue a GET to the specified URL.
func Get(d Doer, url string) (*request.Execution, error) {
	return simple(d, http.MethodGet, url)
}

// Head uses d to issue a HEAD to the specified URL.
func Head(d Doer, url string) (*request.Execution, error) {
	return simple(d, http.MethodHead, url)
}

// Delete uses d to issue a DELETE to the specified URL.
func Delete(d Doer, url string) (*request.Execution, error) {
	return simple(d, http.MethodDelete, url)
}

// Post uses d to issue a POST to the specified URL, with the given
// content type and body.
func Post(d Doer, url, contentType string, body interface{}) (*request.Execution, error) {
	b, err := request.BodyBytes(body)
	if err != nil {
		return nil, err
	}
	p, err := request.NewPlan(http.MethodPost, url, b)
	if err != nil {
		return nil, err
	}
	p.Header.Set("Content-Type", contentType)
	return d.Do(p)
}

func simple(d Doer, method, url string) (*request.Execution, error) {
	p, err := request.NewPlan(method, url, nil)
	if err != nil {
		return nil, err
	}
	return d.Do(p)
}

// Inflate converts any non-nil Doer into an Executor.
func Inflate(d Doer) Executor {
	if d == nil {
		panic("gcsx: nil doer")
	}

	if e, ok := d.(Executor); ok {
		return e
	}

	return inflated{d}
}

type inflated struct {
	doer Doer
}

func (i inflated) Do(p *request.Plan) (*request.Execution, error) {
	return i.doer.Do(p)
}

func (i inflated) Get(url string) (*request.Execution, error) {
	return Get(i.doer, url)
}

func (i inflated) Head(url string) (*request.Execution, error) {
	return Head(i.doer, url)
}

func (i inflated) Delete(url string) (*request.Execution, error) {
	return Delete(i.doer, url)
}

func (i inflated) Post(url, contentType string, body interface{}) (*request.Execution, error) {
	return Post(i.doer, url, contentType, body)
}

func (i inflated) CloseIdleConnections() {
	if ic, ok := i.doer.(IdleCloser); ok {
		ic.CloseIdleConnections()
	}
}
