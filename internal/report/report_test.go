package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/alanyoungcy/polyscope/internal/analysis"
	"github.com/alanyoungcy/polyscope/internal/apperr"
	"github.com/alanyoungcy/polyscope/internal/domain"
)

const addrA = "0x1111111111111111111111111111111111111111"

func testData() Data {
	market := domain.Market{
		Question:      "Will it happen?",
		ConditionID:   "0xcond1",
		Slug:          "will-it-happen",
		Outcomes:      [2]string{"Yes", "No"},
		OutcomePrices: [2]string{"0.65", "0.35"},
		YesTokenID:    "111",
		NoTokenID:     "222",
		Active:        true,
		Volume:        1000,
	}
	position := domain.Position{
		TraderAddress: addrA,
		TokenID:       "111",
		MarketID:      "0xcond1",
		Side:          domain.SideYes,
		SharesHeld:    100,
		AvgEntryPrice: 0.6,
	}
	trader := domain.Trader{Address: addrA, Accuracy: 0.8, ROI: 0.4, TotalMarketsResolved: 12, TotalWins: 9}

	return Data{
		Group: domain.MarketGroup{
			Slug:    "us-election",
			Title:   "US Election",
			Active:  true,
			Volume:  5000,
			Markets: []domain.Market{market},
		},
		Market:    &market,
		Positions: []domain.Position{position},
		Traders:   []domain.Trader{trader},
		Transactions: []domain.Transaction{
			{TraderAddress: addrA, MarketID: "0xcond1", Action: domain.ActionBuy, USDCAmount: 60},
		},
		Leaderboard: []domain.Trader{trader},
		Summary: analysis.Summary{
			MarketID:           "0xcond1",
			HolderCount:        1,
			YesShares:          100,
			WeightedEntryPrice: 0.6,
			TopHolders: []analysis.Holder{
				{Position: position, Stats: &trader},
			},
			SmartMoneyAccuracy: 0.8,
			TrackedHolders:     1,
			BuyVolumeUSDC:      60,
			TxCount:            1,
		},
		DaysBack: 30,
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, "stdout")

	if err := r.Render(testData()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"MARKET GROUP",
		"US Election",
		"Will it happen?",
		// Prices render verbatim, not reformatted floats.
		"Yes @ 0.65",
		"No @ 0.35",
		"POSITIONS",
		"TRANSACTIONS",
		"ANALYSIS",
		"PROVEN TRADERS",
		"80.0%",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}

	// Addresses are shortened in tables.
	if strings.Contains(out, addrA) {
		t.Fatalf("report must not print full addresses:\n%s", out)
	}
	if !strings.Contains(out, shortAddress(addrA)) {
		t.Fatalf("report missing shortened address:\n%s", out)
	}
}

func TestRenderDegenerateGroup(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, "stdout")

	err := r.Render(Data{Group: domain.MarketGroup{Slug: "empty-event", Title: "Empty"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "no sub-markets") {
		t.Fatalf("degenerate report = %q", out)
	}
	if strings.Contains(out, "ANALYSIS") {
		t.Fatalf("degenerate report must stop after the group header:\n%s", out)
	}
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestRenderWriteFailure(t *testing.T) {
	r := NewRenderer(failWriter{}, "stdout")

	err := r.Render(testData())
	var wErr *apperr.WriteError
	if !errors.As(err, &wErr) {
		t.Fatalf("expected WriteError, got %v", err)
	}
	if wErr.Destination != "stdout" {
		t.Fatalf("destination = %q", wErr.Destination)
	}
	if apperr.LayerOf(err) != apperr.LayerOutput {
		t.Fatalf("layer = %s", apperr.LayerOf(err))
	}
}

func TestShortAddress(t *testing.T) {
	if got := shortAddress(addrA); got != "0x111111..1111" {
		t.Fatalf("shortAddress = %q", got)
	}
	if got := shortAddress("0xshort"); got != "0xshort" {
		t.Fatalf("shortAddress = %q", got)
	}
}
