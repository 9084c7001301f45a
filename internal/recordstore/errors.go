package recordstore

import (
	"fmt"
	"net/http"
)

// TransportError is returned when a call could not complete: the request failed,
// the backend answered with a non-2xx status, or the envelope reported success=false.
type TransportError struct {
	Op         string
	Table      string
	StatusCode int
	Message    string
	Err        error
}

func (e *TransportError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Table, e.Err)
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: %s", e.Op, e.Table, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("%s %s failed", e.Op, e.Table)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// BatchError is returned when some records of a batch call were rejected.
// Its message is the message of the first rejected record.
type BatchError struct {
	Op       string
	Table    string
	Failures []Result
}

func (e *BatchError) Error() string {
	if len(e.Failures) > 0 && e.Failures[0].Message != "" {
		return e.Failures[0].Message
	}
	return fmt.Sprintf("failed to %s %d record(s) in %s", e.Op, len(e.Failures), e.Table)
}
