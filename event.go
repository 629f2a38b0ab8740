// Copyright 2021 The gcsx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package gcsx

// An Event identifies the point in a plan execution at which a Handler
// runs. Install event handlers in a Client to extend it with logging,
// metrics, or request signing.
type Event int

const (
	// BeforeExecutionStart occurs before the plan execution starts.
	// Only the execution's plan is set.
	BeforeExecutionStart Event = iota
	// BeforeAttempt occurs before each attempt. The execution's
	// request is the one that will be sent once all BeforeAttempt
	// handlers return, and handlers may replace it. Clone the URL and
	// Header fields before changing them, since they initially share
	// storage with the plan.
	BeforeAttempt
	// BeforeReadBody occurs when an attempt produced an HTTP response,
	// before its body is read and buffered. It fires for every status
	// code, including error statuses.
	BeforeReadBody
	// AfterAttemptTimeout occurs after an attempt failed because of a
	// timeout. The attempt timeout counter has already been
	// incremented.
	AfterAttemptTimeout
	// AfterAttempt occurs after every attempt, successful or not, and
	// before the retry policy is consulted. When the attempt failed,
	// the execution's error is an apierror.Error: a ServiceError if
	// the service answered with an error status, a TransportError
	// otherwise.
	AfterAttempt
	// AfterPlanTimeout occurs when the deadline on the plan's context
	// is exceeded, either during an attempt or while waiting to retry.
	// It always follows AfterAttempt.
	AfterPlanTimeout
	// AfterExecutionEnd occurs after the plan execution ends. The
	// execution is in its final state, with the end time set.
	AfterExecutionEnd
	// eventSentinel provides the total number of events typed as an
	// Event.
	eventSentinel

	// numEvents provides the total number of events as an int.
	numEvents = int(eventSentinel)
)

var eventNames = []string{
	"BeforeExecutionStart",
	"BeforeAttempt",
	"BeforeReadBody",
	"AfterAttemptTimeout",
	"AfterAttempt",
	"AfterPlanTimeout",
	"AfterExecutionEnd",
}

// Events returns all events in the order in which they can occur
// during a plan execution.
func Events() []Event {
	return []Event{
		BeforeExecutionStart,
		BeforeAttempt,
		BeforeReadBody,
		AfterAttemptTimeout,
		AfterAttempt,
		AfterPlanTimeout,
		AfterExecutionEnd,
	}
}

// Name returns the name of the event.
func (evt Event) Name() string {
	return eventNames[int(evt)]
}

// String returns the name of the event.
func (evt Event) String() string {
	return evt.Name()
}

func (evt Event) valid() bool {
	return evt >= 0 && evt < eventSentinel
}
