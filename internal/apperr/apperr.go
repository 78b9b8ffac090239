// Package apperr defines the layered error taxonomy for the report pipeline:
// transport, source, parse, normalization, analysis, output. Every variant is
// a typed error carrying structured context so callers and tests branch on
// kind and fields, never on message substrings. Errors propagate upward
// unchanged; no layer downgrades a failure into a placeholder value.
package apperr

import "errors"

// Layer identifies which pipeline stage an error originated in.
type Layer string

const (
	LayerTransport     Layer = "transport"
	LayerSource        Layer = "source"
	LayerParse         Layer = "parse"
	LayerNormalization Layer = "normalization"
	LayerAnalysis      Layer = "analysis"
	LayerOutput        Layer = "output"
	LayerUnknown       Layer = "unknown"
)

// layered is implemented by every error type in this package.
type layered interface {
	error
	Layer() Layer
}

// LayerOf walks the error chain and returns the layer of the first taxonomy
// error found, or LayerUnknown when the chain contains none.
func LayerOf(err error) Layer {
	for err != nil {
		if le, ok := err.(layered); ok {
			return le.Layer()
		}
		err = errors.Unwrap(err)
	}
	return LayerUnknown
}

// Hint returns the one-line remediation text the CLI prints for an error,
// chosen by layer. A failure at any stage should be diagnosable from the
// error value alone, so the hint only points at the class of fix.
func Hint(err error) string {
	switch LayerOf(err) {
	case LayerTransport:
		return "hint: check your network connection and that the API endpoint is reachable"
	case LayerSource:
		return "hint: verify the market slug and that the configured data source holds this market"
	case LayerParse:
		return "hint: the source payload does not match the expected schema; the API may have changed"
	case LayerNormalization:
		return "hint: the source returned data that violates a market invariant; see the named field"
	case LayerAnalysis:
		return "hint: the fetched data was not sufficient or consistent enough to analyze"
	case LayerOutput:
		return "hint: the report could not be written; check the output destination"
	default:
		return "hint: re-run with log_level=debug for more detail"
	}
}
