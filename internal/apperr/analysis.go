package apperr

import "fmt"

// InsufficientDataError reports an analysis that cannot run on the fetched
// data set.
type InsufficientDataError struct {
	Analysis string
	Reason   string
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data for %s analysis: %s", e.Analysis, e.Reason)
}

func (e *InsufficientDataError) Layer() Layer { return LayerAnalysis }

// CalculationError reports a metric computation that produced an unusable
// result.
type CalculationError struct {
	Calculation string
	Reason      string
}

func (e *CalculationError) Error() string {
	return fmt.Sprintf("%s calculation failed: %s", e.Calculation, e.Reason)
}

func (e *CalculationError) Layer() Layer { return LayerAnalysis }
