package apperr

import "fmt"

// JSONError reports a JSON payload that failed to deserialize. Snippet holds
// a bounded slice of the offending raw text so schema drift is diagnosable
// without re-running under verbose logging.
type JSONError struct {
	Field        string // empty when the whole document failed
	ExpectedType string
	Snippet      string
	Err          error
}

func (e *JSONError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("failed to decode field %q as %s: %v (json: %s)", e.Field, e.ExpectedType, e.Err, e.Snippet)
	}
	return fmt.Sprintf("failed to decode JSON as %s: %v (json: %s)", e.ExpectedType, e.Err, e.Snippet)
}

func (e *JSONError) Unwrap() error { return e.Err }
func (e *JSONError) Layer() Layer  { return LayerParse }

// MissingFieldError reports a required field absent from a row or payload.
type MissingFieldError struct {
	Field  string
	Parent string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("required field %q is missing from %s", e.Field, e.Parent)
}

func (e *MissingFieldError) Layer() Layer { return LayerParse }

// ArrayLengthError reports an array field with an unexpected element count.
type ArrayLengthError struct {
	Field    string
	Expected int
	Actual   int
}

func (e *ArrayLengthError) Error() string {
	return fmt.Sprintf("array %q has invalid length: expected %d, got %d", e.Field, e.Expected, e.Actual)
}

func (e *ArrayLengthError) Layer() Layer { return LayerParse }

// NumberError reports a numeric value that could not be interpreted.
type NumberError struct {
	Field string
	Value string
	Err   error
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("field %q has invalid number %q: %v", e.Field, e.Value, e.Err)
}

func (e *NumberError) Unwrap() error { return e.Err }
func (e *NumberError) Layer() Layer  { return LayerParse }
