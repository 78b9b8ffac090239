package apperr

import "fmt"

// TokenIDError reports a failure to extract the YES/NO token ids for a
// market: array too short, empty id, or duplicate ids.
type TokenIDError struct {
	MarketSlug string
	Reason     string
}

func (e *TokenIDError) Error() string {
	return fmt.Sprintf("failed to extract token ids for market %q: %s", e.MarketSlug, e.Reason)
}

func (e *TokenIDError) Layer() Layer { return LayerNormalization }

// PriceDataError reports invalid or inconsistent price data in a market.
type PriceDataError struct {
	MarketSlug string
	Field      string
	Reason     string
}

func (e *PriceDataError) Error() string {
	return fmt.Sprintf("invalid price data in market %q, field %q: %s", e.MarketSlug, e.Field, e.Reason)
}

func (e *PriceDataError) Layer() Layer { return LayerNormalization }

// VolumeDataError reports negative or otherwise invalid volume/liquidity.
type VolumeDataError struct {
	MarketSlug string
	Field      string
	Reason     string
}

func (e *VolumeDataError) Error() string {
	return fmt.Sprintf("invalid volume data in market %q, field %q: %s", e.MarketSlug, e.Field, e.Reason)
}

func (e *VolumeDataError) Layer() Layer { return LayerNormalization }

// EmptyFieldError reports a required field that is empty after
// normalization.
type EmptyFieldError struct {
	Field  string
	Entity string
}

func (e *EmptyFieldError) Error() string {
	return fmt.Sprintf("required field %q is empty in %s", e.Field, e.Entity)
}

func (e *EmptyFieldError) Layer() Layer { return LayerNormalization }

// ValidationError reports an entity that violates a cross-field invariant.
// EntityID is the entity's natural key (address, slug, tx hash).
type ValidationError struct {
	Entity   string
	EntityID string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s %q: %s", e.Entity, e.EntityID, e.Reason)
}

func (e *ValidationError) Layer() Layer { return LayerNormalization }
