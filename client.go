// Copyright 2021 The gcsx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package gcsx

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gogama/gcsx/apierror"
	"github.com/gogama/gcsx/request"
	"github.com/gogama/gcsx/retry"
	"github.com/gogama/gcsx/timeout"
)

// An HTTPDoer implements a Do method in the same manner as the Go
// standard library http.Client from the net/http package.
type HTTPDoer interface {
	// Do sends an HTTP request and returns an HTTP response following
	// policy (such as redirects, cookies, auth) configured on the
	// HTTPDoer.
	Do(r *http.Request) (*http.Response, error)
}

var emptyHandlers = HandlerGroup{}

// A Client executes storage API request plans, retrying failed attempts
// the way the storage service expects. Its zero value is a valid
// configuration.
//
// The zero value client uses http.DefaultClient as the HTTPDoer,
// timeout.DefaultPolicy (DefaultTimeout per attempt) as the timeout
// policy, retry.DefaultPolicy as the retry policy, and no event
// handlers.
//
// Client reads and buffers the entire response body of every attempt.
// Every failed attempt is converted into an apierror.Error before the
// retry policy sees it: an HTTP response with an error status becomes
// an *apierror.ServiceError decoded from the body, and a failure to
// send the request or read the response becomes an
// *apierror.TransportError. The retry policy therefore decides on the
// classified error alone.
//
// Client is safe for concurrent use by multiple goroutines.
type Client struct {
	// HTTPDoer specifies the mechanics of sending HTTP requests and
	// receiving responses.
	//
	// If HTTPDoer is nil, http.DefaultClient is used.
	HTTPDoer HTTPDoer
	// RetryPolicy decides when to retry failed attempts and how long
	// to sleep after a failed attempt before retrying.
	//
	// If RetryPolicy is nil, retry.DefaultPolicy is used.
	RetryPolicy retry.Policy
	// TimeoutPolicy specifies how to set timeouts on individual request
	// attempts.
	//
	// If TimeoutPolicy is nil, timeout.DefaultPolicy is used.
	TimeoutPolicy timeout.Policy
	// Handlers allows custom handler chains to be invoked when
	// designated events occur during execution of a request plan.
	//
	// If Handlers is nil, no custom handlers will be run.
	Handlers *HandlerGroup
}

// Do executes a request plan and returns the results, following the
// timeout and retry policy set on Client.
//
// The result returned is the state after the final attempt. The
// returned Execution is never nil. If an error is returned, the Err
// field of the Execution references the same error, and that error is
// an apierror.Error unless the plan context was cancelled, in which
// case it is a *apierror.TransportError wrapping the context error.
//
// Unlike a plain http.Client, an error status in the final attempt
// does produce an error. Response and Body are still set so the caller
// can inspect what the service sent.
func (c *Client) Do(p *request.Plan) (*request.Execution, error) {
	e := request.Execution{
		Plan: p,
	}

	doer := c.doer()

	timeoutPolicy := c.TimeoutPolicy
	if timeoutPolicy == nil {
		timeoutPolicy = timeout.DefaultPolicy
	}

	retryPolicy := c.RetryPolicy
	if retryPolicy == nil {
		retryPolicy = retry.DefaultPolicy
	}

	handlers := c.Handlers
	if handlers == nil {
		handlers = &emptyHandlers
	}
	handlers.run(BeforeExecutionStart, &e)
	e.Start = time.Now()

RetryLoop:
	for {
		sendAndReceive(p, &e, doer, handlers, timeoutPolicy)
		e.TimedOut = e.Timeout()
		if e.TimedOut {
			e.AttemptTimeouts++
			handlers.run(AfterAttemptTimeout, &e)
		}
		handlers.run(AfterAttempt, &e)
		planCtxErr := p.Context().Err()
		if planCtxErr == context.DeadlineExceeded {
			handlers.run(AfterPlanTimeout, &e)
			break
		} else if planCtxErr != nil {
			e.Err = transportError(p, planCtxErr)
			break
		} else if e.Err != nil && retryPolicy.Decide(&e) {
			wait := retryPolicy.Wait(&e)
			timer := time.NewTimer(wait)
			select {
			case <-timer.C:
			case <-p.Context().Done():
				timer.Stop()
				err := p.Context().Err()
				e.Err = transportError(p, err)
				if err == context.DeadlineExceeded {
					handlers.run(AfterPlanTimeout, &e)
				}
				break RetryLoop
			}
			e.Response = nil
			e.Err = nil
			e.Body = nil
			e.Attempt++
		} else {
			break
		}
	}

	e.End = time.Now()
	handlers.run(AfterExecutionEnd, &e)
	return &e, e.Err
}

func sendAndReceive(p *request.Plan, e *request.Execution, doer HTTPDoer, handlers *HandlerGroup, timeoutPolicy timeout.Policy) {
	ctx, cancel := context.WithTimeout(p.Context(), timeoutPolicy.Timeout(e))
	defer cancel()
	e.Request = p.ToRequest(ctx)
	handlers.run(BeforeAttempt, e)
	var err error
	e.Response, err = doer.Do(e.Request)
	if err != nil {
		e.Err = transportError(p, err)
	} else {
		readBody(p, e, handlers)
	}
}

func readBody(p *request.Plan, e *request.Execution, handlers *HandlerGroup) {
	defer func() {
		_ = e.Response.Body.Close()
	}()
	handlers.run(BeforeReadBody, e)
	var err error
	e.Body, err = io.ReadAll(e.Response.Body)
	if err != nil {
		e.Err = transportError(p, err)
	} else if err = apierror.FromResponse(e.Response, e.Body); err != nil {
		e.Err = err
	}
}

// Get issues a GET to the specified URL, using the same policies
// followed by Do.
func (c *Client) Get(url string) (*request.Execution, error) {
	return Get(c, url)
}

// Head issues a HEAD to the specified URL, using the same policies
// followed by Do.
func (c *Client) Head(url string) (*request.Execution, error) {
	return Head(c, url)
}

// Delete issues a DELETE to the specified URL, using the same policies
// followed by Do.
func (c *Client) Delete(url string) (*request.Execution, error) {
	return Delete(c, url)
}

// Post issues a POST to the specified URL, using the same policies
// followed by Do.
//
// The body parameter may be nil for an empty body, or may be any of the
// types supported by request.BodyBytes, namely: string; []byte;
// io.Reader; and io.ReadCloser.
func (c *Client) Post(url, contentType string, body interface{}) (*request.Execution, error) {
	return Post(c, url, contentType, body)
}

// CloseIdleConnections invokes the same method on the client's
// underlying HTTPDoer. If the HTTPDoer has no CloseIdleConnections
// method, this method does nothing.
func (c *Client) CloseIdleConnections() {
	doer := c.doer()
	if ic, ok := doer.(IdleCloser); ok {
		ic.CloseIdleConnections()
	}
}

func (c *Client) doer() HTTPDoer {
	if c.HTTPDoer == nil {
		return http.DefaultClient
	}

	return c.HTTPDoer
}

func transportError(p *request.Plan, err error) error {
	return apierror.FromTransport(urlErrorOp(p.Method), p.URL.String(), err)
}

// urlErrorOp is lifted verbatim from net/http/client.go
func urlErrorOp(method string) string {
	if method == "" {
		return "Get"
	}
	return method[:1] + strings.ToLower(method[1:])
}
