// Copyright 2021 The gcsx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package metrics exports Prometheus metrics for gcsx.Client plan
// executions.
package metrics

import (
	"strconv"

	"github.com/gogama/gcsx"
	"github.com/gogama/gcsx/request"
	"github.com/gogama/gcsx/retry"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values of gcsx_executions_total. A failed execution is
// labelled with the kind of its final error.
const (
	OutcomeSuccess = "success"
)

var (
	attemptCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gcsx_attempts_total",
			Help: "Total number of storage request attempts, by error kind and retry classification",
		},
		[]string{"kind", "retryable"},
	)

	executionCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gcsx_executions_total",
			Help: "Total number of storage request executions, by outcome",
		},
		[]string{"outcome"},
	)

	executionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gcsx_execution_duration_seconds",
			Help:    "Wall time of storage request executions, including retries",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 15),
		},
	)
)

// Install adds handlers to g which record every attempt and every
// finished execution.
func Install(g *gcsx.HandlerGroup) {
	g.PushBack(gcsx.AfterAttempt, gcsx.HandlerFunc(recordAttempt))
	g.PushBack(gcsx.AfterExecutionEnd, gcsx.HandlerFunc(recordExecution))
}

func recordAttempt(_ gcsx.Event, e *request.Execution) {
	attemptCounter.With(prometheus.Labels{
		"kind":      e.Kind().String(),
		"retryable": strconv.FormatBool(retry.ShouldRetry(e.Err)),
	}).Inc()
}

func recordExecution(_ gcsx.Event, e *request.Execution) {
	outcome := OutcomeSuccess
	if e.Err != nil {
		outcome = e.Kind().String()
	}
	executionCounter.With(prometheus.Labels{"outcome": outcome}).Inc()
	executionDuration.Observe(e.Duration().Seconds())
}
