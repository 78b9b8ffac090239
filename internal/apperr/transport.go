package apperr

import (
	"fmt"
	"time"
)

// RequestFailedError reports a non-2xx HTTP response.
type RequestFailedError struct {
	URL    string
	Status int
	Body   string
}

func (e *RequestFailedError) Error() string {
	return fmt.Sprintf("request to %s failed with status %d: %s", e.URL, e.Status, Snippet(e.Body, 200))
}

func (e *RequestFailedError) Layer() Layer { return LayerTransport }

// ConnectionError reports a failure to reach the remote host.
type ConnectionError struct {
	URL string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to connect to %s: %v", e.URL, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }
func (e *ConnectionError) Layer() Layer  { return LayerTransport }

// TimeoutError reports a request that exceeded its deadline.
type TimeoutError struct {
	URL     string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request to %s timed out after %s", e.URL, e.Timeout)
}

func (e *TimeoutError) Layer() Layer { return LayerTransport }

// ResponseReadError reports a response body that could not be read.
type ResponseReadError struct {
	URL string
	Err error
}

func (e *ResponseReadError) Error() string {
	return fmt.Sprintf("failed to read response from %s: %v", e.URL, e.Err)
}

func (e *ResponseReadError) Unwrap() error { return e.Err }
func (e *ResponseReadError) Layer() Layer  { return LayerTransport }

// TableReadError reports a columnar table that could not be opened or
// decoded. Path is the file path or object key of the table.
type TableReadError struct {
	Table string
	Path  string
	Err   error
}

func (e *TableReadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to read table %q: %v", e.Table, e.Err)
	}
	return fmt.Sprintf("failed to read table %q from %s: %v", e.Table, e.Path, e.Err)
}

func (e *TableReadError) Unwrap() error { return e.Err }
func (e *TableReadError) Layer() Layer  { return LayerTransport }
