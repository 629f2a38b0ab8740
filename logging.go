// Copyright 2021 The gcsx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package gcsx

import (
	"errors"

	"github.com/chainguard-dev/clog"
	"github.com/gogama/gcsx/apierror"
	"github.com/gogama/gcsx/request"
	"github.com/gogama/gcsx/retry"
)

// InstallLogging adds handlers to g which log failed attempts at Warn
// level and failed executions at Error level. The logger is taken from
// the plan context with clog.FromContext, so attach one with
// clog.WithLogger to route the output.
func InstallLogging(g *HandlerGroup) {
	g.PushBack(AfterAttempt, HandlerFunc(logAttempt))
	g.PushBack(AfterExecutionEnd, HandlerFunc(logExecution))
}

func logAttempt(_ Event, e *request.Execution) {
	if e.Err == nil {
		return
	}
	log := clog.FromContext(e.Plan.Context()).
		With("method", e.Plan.Method).
		With("url", e.Plan.URL.String()).
		With("attempt", e.Attempt).
		With("kind", e.Kind().String()).
		With("retryable", retry.ShouldRetry(e.Err))
	if status := e.StatusCode(); status != 0 {
		log = log.With("status", status)
	}
	var se *apierror.ServiceError
	if errors.As(e.Err, &se) && len(se.Items) > 0 {
		log = log.With("reason", se.FirstReason())
	}
	log.With("error", e.Err.Error()).Warn("Storage request attempt failed")
}

func logExecution(_ Event, e *request.Execution) {
	if e.Err == nil {
		return
	}
	clog.FromContext(e.Plan.Context()).
		With("method", e.Plan.Method).
		With("url", e.Plan.URL.String()).
		With("attempts", e.Attempt+1).
		With("duration", e.Duration()).
		With("error", e.Err.Error()).
		Error("Storage request failed")
}
