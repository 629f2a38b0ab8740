// Copyright 2021 The gcsx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transient

import (
	"errors"
	"syscall"
)

// A Category is the low-level signal category of an error, as reported
// by function Categorize.
type Category int

const (
	// Not indicates the error carries none of the recognized signals.
	Not Category = iota
	// Timeout indicates a client-side timeout.
	//
	// Categorize returns Timeout if the error or any of its wrapped
	// causes has a Timeout() function that reports true. Timeout takes
	// precedence over every other category.
	Timeout
	// ConnRefused indicates the remote host refused the connection
	// (syscall.ECONNREFUSED somewhere in the cause chain).
	ConnRefused
	// ConnReset indicates the remote host sent an RST on a previously
	// active TCP connection (syscall.ECONNRESET somewhere in the cause
	// chain). A storage front end that drops a connection mid-response
	// produces this signal.
	ConnReset
)

var categoryNames = []string{
	"not",
	"timeout",
	"conn_refused",
	"conn_reset",
}

// String returns the label form of the category, for example
// "conn_reset".
func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

// Categorize returns the signal category of the given error. A nil
// error, and an error that carries none of the recognized signals, both
// produce Not.
//
// Categorize looks through wrapped causes. It never consults a
// Temporary() method.
func Categorize(err error) Category {
	if err == nil {
		return Not
	}

	var t hasTimeout
	if errors.As(err, &t) && t.Timeout() {
		return Timeout
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.ECONNRESET:
			return ConnReset
		case syscall.ECONNREFUSED:
			return ConnRefused
		}
	}

	return Not
}

type hasTimeout interface {
	Timeout() bool
}
