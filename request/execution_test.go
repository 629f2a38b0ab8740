// Copyright 2021 The gcsx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"syscall"
	"testing"
	"time"

	"github.com/gogama/gcsx/apierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecution_StatusCode(t *testing.T) {
	e := &Execution{}
	require.Nil(t, e.Response)
	assert.Equal(t, 0, e.StatusCode())
	e.Response = &http.Response{StatusCode: 503}
	assert.Equal(t, 503, e.StatusCode())
}

func TestExecution_Header(t *testing.T) {
	e := &Execution{}
	assert.Nil(t, e.Header())
	assert.Empty(t, e.Header().Get("foo"))
	h := http.Header{"X-Goog-Generation": []string{"7"}}
	e.Response = &http.Response{Header: h}
	assert.Equal(t, h, e.Header())
}

func TestExecution_TimeMethods(t *testing.T) {
	t.Run("not started", func(t *testing.T) {
		e := &Execution{}
		assert.False(t, e.Started())
		assert.False(t, e.Ended())
		assert.Equal(t, time.Duration(0), e.Duration())
	})
	t.Run("started but not ended", func(t *testing.T) {
		e := &Execution{Start: time.Now()}
		assert.True(t, e.Started())
		assert.False(t, e.Ended())
		time.Sleep(2 * time.Millisecond)
		assert.GreaterOrEqual(t, e.Duration(), 2*time.Millisecond)
	})
	t.Run("ended", func(t *testing.T) {
		start := time.Now()
		e := &Execution{Start: start, End: start.Add(time.Second)}
		assert.True(t, e.Ended())
		assert.Equal(t, time.Second, e.Duration())
	})
}

func TestExecution_Timeout(t *testing.T) {
	assert.False(t, (&Execution{}).Timeout())
	assert.False(t, (&Execution{Err: errors.New("foo")}).Timeout())
	assert.True(t, (&Execution{Err: syscall.ETIMEDOUT}).Timeout())
	assert.True(t, (&Execution{Err: &apierror.TransportError{Op: "Get", Err: context.DeadlineExceeded}}).Timeout())
}

func TestExecution_Kind(t *testing.T) {
	assert.Equal(t, apierror.Unclassified, (&Execution{}).Kind())
	assert.Equal(t, apierror.Unclassified, (&Execution{Err: context.Canceled}).Kind())
	assert.Equal(t, apierror.Service, (&Execution{Err: &apierror.ServiceError{Code: 404}}).Kind())
	assert.Equal(t, apierror.Transport, (&Execution{Err: &apierror.TransportError{Err: syscall.ECONNRESET}}).Kind())
	wrapped := fmt.Errorf("outer: %w", &apierror.ServiceError{Code: 500})
	assert.Equal(t, apierror.Service, (&Execution{Err: wrapped}).Kind())
}

func TestExecution_Value(t *testing.T) {
	e := &Execution{}
	assert.Nil(t, e.Value(funKey{}))
	e.SetValue(funKey{}, "ham")
	e.SetValue(funkyKey{}, "eggs")
	assert.Equal(t, "ham", e.Value(funKey{}))
	assert.Equal(t, "eggs", e.Value(funkyKey{}))
	e.SetValue(funKey{}, "spam")
	assert.Equal(t, "spam", e.Value(funKey{}))
	assert.Equal(t, "eggs", e.Value(funkyKey{}))
}

type funKey struct{}

type funkyKey struct{}
