package apperr

import "fmt"

// GroupNotFoundError reports a market-group slug unknown to the source.
type GroupNotFoundError struct {
	Slug string
}

func (e *GroupNotFoundError) Error() string {
	return fmt.Sprintf("market group %q not found", e.Slug)
}

func (e *GroupNotFoundError) Layer() Layer { return LayerSource }

// MarketNotFoundError reports a market missing from a fetched group.
type MarketNotFoundError struct {
	Slug      string
	GroupSlug string
}

func (e *MarketNotFoundError) Error() string {
	if e.GroupSlug == "" {
		return fmt.Sprintf("market %q not found", e.Slug)
	}
	return fmt.Sprintf("market %q not found in group %q", e.Slug, e.GroupSlug)
}

func (e *MarketNotFoundError) Layer() Layer { return LayerSource }

// InvalidResponseError reports a source payload whose overall structure is
// not what the endpoint contract promises (wrong shape, not a field-level
// parse failure).
type InvalidResponseError struct {
	Endpoint string
	Reason   string
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("endpoint %s returned an invalid response: %s", e.Endpoint, e.Reason)
}

func (e *InvalidResponseError) Layer() Layer { return LayerSource }
