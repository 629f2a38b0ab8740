// Copyright 2021 The gcsx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"errors"
	"io"
)

var errBadBodyType = errors.New("gcsx/request: invalid body type (use nil, " +
	"string, []byte, io.Reader or io.ReadCloser)")

// BodyBytes converts a generic body parameter to a byte slice for use
// as a plan body.
//
// A nil body gives a nil slice. A string or []byte is converted
// directly. An io.Reader is read to the end, and closed if it is also an
// io.Closer. Any other type is an error.
func BodyBytes(body interface{}) ([]byte, error) {
	switch x := body.(type) {
	case nil:
		return nil, nil
	case string:
		return []byte(x), nil
	case []byte:
		return x, nil
	case io.ReadCloser:
		b, err := io.ReadAll(x)
		if err != nil {
			return nil, err
		}
		if err = x.Close(); err != nil {
			return nil, err
		}
		return b, nil
	case io.Reader:
		return io.ReadAll(x)
	default:
		return nil, errBadBodyType
	}
}
