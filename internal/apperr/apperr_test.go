package apperr

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestLayerOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Layer
	}{
		{"transport", &RequestFailedError{URL: "u", Status: 500}, LayerTransport},
		{"source", &GroupNotFoundError{Slug: "s"}, LayerSource},
		{"parse", &ArrayLengthError{Field: "outcomes", Expected: 2, Actual: 1}, LayerParse},
		{"normalization", &TokenIDError{MarketSlug: "m", Reason: "empty"}, LayerNormalization},
		{"analysis", &InsufficientDataError{Analysis: "holder", Reason: "mixed"}, LayerAnalysis},
		{"output", &WriteError{Destination: "stdout", Err: errors.New("pipe")}, LayerOutput},
		{"plain error", errors.New("boom"), LayerUnknown},
		{"nil", nil, LayerUnknown},
	}
	for _, tt := range tests {
		if got := LayerOf(tt.err); got != tt.want {
			t.Fatalf("%s: LayerOf = %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestLayerOfWrapped(t *testing.T) {
	err := fmt.Errorf("app: run: %w", &TokenIDError{MarketSlug: "m", Reason: "empty"})
	if got := LayerOf(err); got != LayerNormalization {
		t.Fatalf("LayerOf wrapped = %s", got)
	}
}

func TestHintDistinctPerLayer(t *testing.T) {
	errs := []error{
		&TimeoutError{URL: "u"},
		&MarketNotFoundError{Slug: "s"},
		&JSONError{ExpectedType: "T"},
		&EmptyFieldError{Field: "f", Entity: "e"},
		&CalculationError{Calculation: "c", Reason: "r"},
		&WriteError{Destination: "stdout"},
	}

	seen := make(map[string]struct{})
	for _, err := range errs {
		h := Hint(err)
		if !strings.HasPrefix(h, "hint:") {
			t.Fatalf("hint %q", h)
		}
		if _, dup := seen[h]; dup {
			t.Fatalf("duplicate hint %q", h)
		}
		seen[h] = struct{}{}
	}
}

func TestSnippet(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"  multi\n  line\tjson  ", 30, "multi line json"},
		{"0123456789abcdef", 10, "0123456789... (truncated)"},
	}
	for _, tt := range tests {
		if got := Snippet(tt.in, tt.max); got != tt.want {
			t.Fatalf("Snippet(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestSnippetKeepsValidUTF8(t *testing.T) {
	// "é" is 2 bytes; a cut at byte 4 would land mid-rune.
	in := "aaaébbb"
	for max := 1; max < len(in); max++ {
		got := Snippet(in, max)
		if !utf8.ValidString(got) {
			t.Fatalf("Snippet(%q, %d) = %q is not valid UTF-8", in, max, got)
		}
	}
	if got := Snippet(in, 4); got != "aaa... (truncated)" {
		t.Fatalf("Snippet mid-rune cut = %q", got)
	}
}

func TestErrorMessagesNameNaturalKeys(t *testing.T) {
	err := &VolumeDataError{MarketSlug: "will-it-happen", Field: "volumeNum", Reason: "negative value -5"}
	msg := err.Error()
	if !strings.Contains(msg, "will-it-happen") || !strings.Contains(msg, "volumeNum") {
		t.Fatalf("message %q must name the market and field", msg)
	}

	vErr := &ValidationError{Entity: "trader", EntityID: "0xabc", Reason: "counts out of order"}
	if !strings.Contains(vErr.Error(), "0xabc") {
		t.Fatalf("message %q must name the entity id", vErr.Error())
	}
}

func TestUnwrapChain(t *testing.T) {
	cause := errors.New("connection refused")
	err := &ConnectionError{URL: "http://example", Err: cause}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause in chain")
	}
}
