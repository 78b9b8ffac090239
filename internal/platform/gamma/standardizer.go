package gamma

import (
	"encoding/json"
	"fmt"

	"github.com/alanyoungcy/polyscope/internal/apperr"
	"github.com/alanyoungcy/polyscope/internal/domain"
)

// StandardizeMarket converts a raw Gamma market into a domain.Market. It is
// deterministic and side-effect free, and fails fast: the first invariant
// violation is returned and no partially populated market ever escapes.
//
// The first two token ids are taken as YES and NO by upstream positional
// convention; the order is guaranteed by the source, not derived from the
// outcome labels.
func StandardizeMarket(raw APIMarket) (domain.Market, error) {
	outcomes, err := parseStringArray(raw.Outcomes, "outcomes")
	if err != nil {
		return domain.Market{}, err
	}
	prices, err := parseStringArray(raw.OutcomePrices, "outcomePrices")
	if err != nil {
		return domain.Market{}, err
	}
	tokenIDs, err := parseStringArray(raw.ClobTokenIDs, "clobTokenIds")
	if err != nil {
		return domain.Market{}, err
	}

	if len(tokenIDs) < 2 {
		return domain.Market{}, &apperr.TokenIDError{
			MarketSlug: raw.Slug,
			Reason:     fmt.Sprintf("expected at least 2 token ids, got %d", len(tokenIDs)),
		}
	}
	if len(outcomes) != 2 {
		return domain.Market{}, &apperr.ArrayLengthError{Field: "outcomes", Expected: 2, Actual: len(outcomes)}
	}
	if len(prices) != 2 {
		return domain.Market{}, &apperr.ArrayLengthError{Field: "outcomePrices", Expected: 2, Actual: len(prices)}
	}

	yesToken, noToken := tokenIDs[0], tokenIDs[1]
	if yesToken == "" || noToken == "" {
		return domain.Market{}, &apperr.TokenIDError{MarketSlug: raw.Slug, Reason: "empty token id"}
	}
	if yesToken == noToken {
		return domain.Market{}, &apperr.TokenIDError{MarketSlug: raw.Slug, Reason: "duplicate token ids"}
	}

	if raw.Question == "" {
		return domain.Market{}, &apperr.EmptyFieldError{Field: "question", Entity: "market"}
	}
	if raw.ConditionID == "" {
		return domain.Market{}, &apperr.EmptyFieldError{Field: "conditionId", Entity: "market"}
	}

	for _, v := range []struct {
		name  string
		value float64
	}{
		{"volumeNum", raw.VolumeNum},
		{"volume24hr", raw.Volume24hr},
		{"volume1wk", raw.Volume1wk},
		{"volume1mo", raw.Volume1mo},
		{"volume1yr", raw.Volume1yr},
		{"liquidityNum", raw.LiquidityNum},
	} {
		if v.value < 0 {
			return domain.Market{}, &apperr.VolumeDataError{
				MarketSlug: raw.Slug,
				Field:      v.name,
				Reason:     fmt.Sprintf("negative value %v", v.value),
			}
		}
	}

	return domain.Market{
		Question:       raw.Question,
		ConditionID:    raw.ConditionID,
		Slug:           raw.Slug,
		Outcomes:       [2]string{outcomes[0], outcomes[1]},
		OutcomePrices:  [2]string{prices[0], prices[1]},
		YesTokenID:     yesToken,
		NoTokenID:      noToken,
		Active:         bool(raw.Active),
		Closed:         bool(raw.Closed),
		Volume:         raw.VolumeNum,
		Volume24h:      raw.Volume24hr,
		Volume1w:       raw.Volume1wk,
		Volume1m:       raw.Volume1mo,
		Volume1y:       raw.Volume1yr,
		Liquidity:      raw.LiquidityNum,
		Competitive:    raw.Competitive,
		LastTradePrice: raw.LastTradePrice,
		BestBid:        raw.BestBid,
		BestAsk:        raw.BestAsk,
	}, nil
}

// StandardizeMarketGroup converts a raw event into a domain.MarketGroup.
// Sub-markets are standardized fail-fast: one invalid market invalidates the
// whole group, because a report over a partial group is misleading. A group
// with no sub-markets is valid and yields an empty Markets slice.
func StandardizeMarketGroup(raw APIMarketGroup) (domain.MarketGroup, error) {
	if raw.Slug == "" {
		return domain.MarketGroup{}, &apperr.EmptyFieldError{Field: "slug", Entity: "market group"}
	}
	if raw.Volume < 0 {
		return domain.MarketGroup{}, &apperr.VolumeDataError{
			MarketSlug: raw.Slug,
			Field:      "volume",
			Reason:     fmt.Sprintf("negative value %v", raw.Volume),
		}
	}
	if raw.Liquidity < 0 {
		return domain.MarketGroup{}, &apperr.VolumeDataError{
			MarketSlug: raw.Slug,
			Field:      "liquidity",
			Reason:     fmt.Sprintf("negative value %v", raw.Liquidity),
		}
	}

	markets := make([]domain.Market, 0, len(raw.Markets))
	for i := range raw.Markets {
		m, err := StandardizeMarket(raw.Markets[i])
		if err != nil {
			return domain.MarketGroup{}, err
		}
		markets = append(markets, m)
	}

	return domain.MarketGroup{
		Slug:      raw.Slug,
		Title:     raw.Title,
		Active:    bool(raw.Active),
		Closed:    bool(raw.Closed),
		Volume:    raw.Volume,
		Liquidity: raw.Liquidity,
		Markets:   markets,
	}, nil
}

// parseStringArray decodes one of the string-encoded JSON arrays embedded in
// the Gamma market payload.
func parseStringArray(encoded, field string) ([]string, error) {
	var out []string
	if err := json.Unmarshal([]byte(encoded), &out); err != nil {
		return nil, &apperr.JSONError{
			Field:        field,
			ExpectedType: "[]string",
			Snippet:      apperr.Snippet(encoded, 120),
			Err:          err,
		}
	}
	return out, nil
}
