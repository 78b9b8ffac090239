package gamma

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/alanyoungcy/polyscope/internal/apperr"
	"github.com/alanyoungcy/polyscope/internal/domain"
)

// Source wires the Gamma client and standardizer behind
// domain.MarketMetadataProvider. It performs no cross-source joins.
type Source struct {
	client *Client
}

var _ domain.MarketMetadataProvider = (*Source)(nil)

// NewSource creates the API-backed metadata source.
func NewSource(client *Client) *Source {
	return &Source{client: client}
}

// GetMarketGroup fetches the event for slug and standardizes it. A 404 from
// the API becomes a group-not-found source error.
func (s *Source) GetMarketGroup(ctx context.Context, slug string) (domain.MarketGroup, error) {
	body, err := s.client.get(ctx, "/events/slug/"+url.PathEscape(slug))
	if err != nil {
		var reqErr *apperr.RequestFailedError
		if errors.As(err, &reqErr) && reqErr.Status == http.StatusNotFound {
			return domain.MarketGroup{}, &apperr.GroupNotFoundError{Slug: slug}
		}
		return domain.MarketGroup{}, err
	}

	var raw APIMarketGroup
	if err := json.Unmarshal(body, &raw); err != nil {
		return domain.MarketGroup{}, &apperr.JSONError{
			ExpectedType: "APIMarketGroup",
			Snippet:      apperr.Snippet(string(body), 200),
			Err:          err,
		}
	}

	return StandardizeMarketGroup(raw)
}

// GetMarket fetches a single market by its own slug via the /markets query
// endpoint and standardizes it.
func (s *Source) GetMarket(ctx context.Context, slug string) (domain.Market, error) {
	params := url.Values{}
	params.Set("slug", slug)

	body, err := s.client.get(ctx, "/markets?"+params.Encode())
	if err != nil {
		return domain.Market{}, err
	}

	var raws []APIMarket
	if err := json.Unmarshal(body, &raws); err != nil {
		return domain.Market{}, &apperr.JSONError{
			ExpectedType: "[]APIMarket",
			Snippet:      apperr.Snippet(string(body), 200),
			Err:          err,
		}
	}

	if len(raws) == 0 {
		return domain.Market{}, &apperr.MarketNotFoundError{Slug: slug}
	}

	return StandardizeMarket(raws[0])
}
