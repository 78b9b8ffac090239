package apperr

import "fmt"

// WriteError reports a failure to write the rendered report.
type WriteError struct {
	Destination string
	Err         error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write report to %s: %v", e.Destination, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
func (e *WriteError) Layer() Layer  { return LayerOutput }
