// Copyright 2021 The gcsx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package timeout defines policies for the timeout of each individual
// storage request attempt, including retries. The whole-execution
// budget is separate: it is set by the retry policy (see retry.Before)
// and by the plan context deadline.
package timeout
