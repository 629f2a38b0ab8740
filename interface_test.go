// Copyright 2021 The gcsx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package gcsx

import (
	"bytes"
	"testing"

	"github.com/gogama/gcsx/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSimpleMethods(t *testing.T) {
	testCases := []struct {
		method string
		f      func(Doer, string) (*request.Execution, error)
	}{
		{"GET", Get},
		{"HEAD", Head},
		{"DELETE", Delete},
	}
	for _, testCase := range testCases {
		t.Run(testCase.method, func(t *testing.T) {
			t.Run("OK", func(t *testing.T) {
				expected := &request.Execution{}
				m := newMockDoer(t)
				m.On("Do", mock.MatchedBy(func(p *request.Plan) bool {
					return p.Method == testCase.method && p.URL.String() == "b/o"
				})).Return(expected, nil).Once()
				e, err := testCase.f(m, "b/o")
				assert.Same(t, expected, e)
				assert.NoError(t, err)
				m.AssertExpectations(t)
			})
			t.Run("error invalid URL", func(t *testing.T) {
				m := newMockDoer(t)
				e, err := testCase.f(m, ":::")
				assert.Nil(t, e)
				assert.Error(t, err)
				m.AssertNotCalled(t, "Do", mock.Anything)
			})
		})
	}
}

func TestPost(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		expected := &request.Execution{}
		m := newMockDoer(t)
		m.On("Do", mock.MatchedBy(func(p *request.Plan) bool {
			return p.Method == "POST" && p.URL.String() == "upload" &&
				p.Header.Get("Content-Type") == "application/json" &&
				bytes.Equal(p.Body, []byte(`{"name":"o"}`))
		})).Return(expected, nil).Once()
		e, err := Post(m, "upload", "application/json", `{"name":"o"}`)
		assert.Same(t, expected, e)
		assert.NoError(t, err)
		m.AssertExpectations(t)
	})
	t.Run("error invalid URL", func(t *testing.T) {
		m := newMockDoer(t)
		e, err := Post(m, ":::", "text/plain", []byte{'a', 'b', 'c'})
		assert.Nil(t, e)
		assert.Error(t, err)
		m.AssertNotCalled(t, "Do", mock.Anything)
	})
	t.Run("error invalid body", func(t *testing.T) {
		m := newMockDoer(t)
		e, err := Post(m, "upload", "text/plain", 123)
		assert.Nil(t, e)
		assert.EqualError(t, err, "gcsx/request: invalid body type (use nil, string, []byte, io.Reader or io.ReadCloser)")
		m.AssertNotCalled(t, "Do", mock.Anything)
	})
}

func TestInflate(t *testing.T) {
	t.Run("nil doer", func(t *testing.T) {
		assert.PanicsWithValue(t, "gcsx: nil doer", func() {
			Inflate(nil)
		})
	})
	t.Run("already an Executor", func(t *testing.T) {
		cl := &Client{}
		x := Inflate(cl)
		assert.Same(t, cl, x)
	})
	expected := &request.Execution{}
	t.Run("Do", func(t *testing.T) {
		p, err := request.NewPlan("PUT", "https://storage.example/upload/b/o", "foo")
		require.NoError(t, err)
		m := newMockDoer(t)
		m.On("Do", p).Return(expected, nil).Once()
		e, err := Inflate(m).Do(p)
		assert.Same(t, expected, e)
		assert.NoError(t, err)
		m.AssertExpectations(t)
	})
	methods := []struct {
		method string
		call   func(Executor) (*request.Execution, error)
	}{
		{"GET", func(x Executor) (*request.Execution, error) { return x.Get("o") }},
		{"HEAD", func(x Executor) (*request.Execution, error) { return x.Head("o") }},
		{"DELETE", func(x Executor) (*request.Execution, error) { return x.Delete("o") }},
		{"POST", func(x Executor) (*request.Execution, error) { return x.Post("o", "text/plain", nil) }},
	}
	for _, method := range methods {
		t.Run(method.method, func(t *testing.T) {
			m := newMockDoer(t)
			m.On("Do", mock.MatchedBy(func(p *request.Plan) bool {
				return p.Method == method.method && p.URL.String() == "o"
			})).Return(expected, nil).Once()
			e, err := method.call(Inflate(m))
			assert.Same(t, expected, e)
			assert.NoError(t, err)
			m.AssertExpectations(t)
		})
	}
	t.Run("CloseIdleConnections", func(t *testing.T) {
		t.Run("Doer does not implement IdleCloser", func(t *testing.T) {
			m := newMockDoer(t)
			x := Inflate(m)
			x.CloseIdleConnections()
			m.AssertNotCalled(t, "CloseIdleConnections")
		})
		t.Run("Doer implements IdleCloser", func(t *testing.T) {
			m := newMockDoerWithCloseIdleConnections(t)
			m.On("CloseIdleConnections").Once()
			x := Inflate(m)
			x.CloseIdleConnections()
			m.AssertExpectations(t)
		})
	})
}

type mockDoer struct {
	mock.Mock
}

func newMockDoer(t *testing.T) *mockDoer {
	m := &mockDoer{}
	m.Test(t)
	return m
}

func (m *mockDoer) Do(p *request.Plan) (*request.Execution, error) {
	args := m.Called(p)
	e := args.Get(0)
	err := args.Error(1)
	if e == nil {
		return nil, err
	}
	return e.(*request.Execution), err
}

type mockDoerWithCloseIdleConnections struct {
	mockDoer
}

func newMockDoerWithCloseIdleConnections(t *testing.T) *mockDoerWithCloseIdleConnections {
	m := &mockDoerWithCloseIdleConnections{}
	m.Test(t)
	return m
}

func (m *mockDoerWithCloseIdleConnections) CloseIdleConnections() {
	m.Called()
}
