package analysis

import (
	"errors"
	"testing"

	"github.com/alanyoungcy/polyscope/internal/apperr"
	"github.com/alanyoungcy/polyscope/internal/domain"
)

const (
	addrA = "0x1111111111111111111111111111111111111111"
	addrB = "0x2222222222222222222222222222222222222222"
	addrC = "0x3333333333333333333333333333333333333333"
)

func testMarket() domain.Market {
	return domain.Market{
		Question:    "Will it happen?",
		ConditionID: "0xcond1",
		Slug:        "will-it-happen",
	}
}

func TestAddresses(t *testing.T) {
	positions := []domain.Position{
		{TraderAddress: addrB},
		{TraderAddress: addrA},
		{TraderAddress: addrB},
		{TraderAddress: addrC},
	}

	got := Addresses(positions)
	want := []string{addrB, addrA, addrC}
	if len(got) != len(want) {
		t.Fatalf("addresses = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("addresses = %v, want first-seen order %v", got, want)
		}
	}
}

func TestSummarize(t *testing.T) {
	positions := []domain.Position{
		{TraderAddress: addrA, MarketID: "0xcond1", Side: domain.SideYes, SharesHeld: 100, AvgEntryPrice: 0.6},
		{TraderAddress: addrB, MarketID: "0xcond1", Side: domain.SideNo, SharesHeld: 50, AvgEntryPrice: 0.4},
	}
	traders := []domain.Trader{
		{Address: addrA, Accuracy: 0.8},
		{Address: addrB, Accuracy: 0.6},
	}
	txs := []domain.Transaction{
		{TraderAddress: addrA, MarketID: "0xcond1", Action: domain.ActionBuy, USDCAmount: 60},
		{TraderAddress: addrB, MarketID: "0xcond1", Action: domain.ActionSell, USDCAmount: 10},
		{TraderAddress: addrB, MarketID: "0xcond1", Action: domain.ActionBuy, USDCAmount: 20},
	}

	s, err := Summarize(testMarket(), positions, traders, txs, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.HolderCount != 2 {
		t.Fatalf("holders = %d", s.HolderCount)
	}
	if s.YesShares != 100 || s.NoShares != 50 {
		t.Fatalf("shares = %v yes, %v no", s.YesShares, s.NoShares)
	}
	// (100*0.6 + 50*0.4) / 150
	want := (100*0.6 + 50*0.4) / 150.0
	if diff := s.WeightedEntryPrice - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("weighted entry = %v, want %v", s.WeightedEntryPrice, want)
	}
	if s.TrackedHolders != 2 || s.SmartMoneyAccuracy != 0.7 {
		t.Fatalf("accuracy = %v over %d", s.SmartMoneyAccuracy, s.TrackedHolders)
	}
	if s.BuyVolumeUSDC != 80 || s.SellVolumeUSDC != 10 || s.TxCount != 3 {
		t.Fatalf("flows = buy %v sell %v count %d", s.BuyVolumeUSDC, s.SellVolumeUSDC, s.TxCount)
	}

	// Largest position first.
	if len(s.TopHolders) != 2 || s.TopHolders[0].Position.TraderAddress != addrA {
		t.Fatalf("top holders = %+v", s.TopHolders)
	}
	if s.TopHolders[0].Stats == nil || s.TopHolders[0].Stats.Accuracy != 0.8 {
		t.Fatalf("top holder stats = %+v", s.TopHolders[0].Stats)
	}
}

func TestSummarizeTruncatesTopHolders(t *testing.T) {
	positions := []domain.Position{
		{TraderAddress: addrA, MarketID: "0xcond1", Side: domain.SideYes, SharesHeld: 10},
		{TraderAddress: addrB, MarketID: "0xcond1", Side: domain.SideYes, SharesHeld: 30},
		{TraderAddress: addrC, MarketID: "0xcond1", Side: domain.SideYes, SharesHeld: 20},
	}

	s, err := Summarize(testMarket(), positions, nil, nil, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.TopHolders) != 2 {
		t.Fatalf("top holders = %d", len(s.TopHolders))
	}
	if s.TopHolders[0].Position.TraderAddress != addrB || s.TopHolders[1].Position.TraderAddress != addrC {
		t.Fatalf("top holders order = %+v", s.TopHolders)
	}
	if s.TopHolders[0].Stats != nil {
		t.Fatalf("stats must be nil for untracked traders")
	}
}

func TestSummarizeEmptyInputs(t *testing.T) {
	s, err := Summarize(testMarket(), nil, nil, nil, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.HolderCount != 0 || s.WeightedEntryPrice != 0 || s.TxCount != 0 {
		t.Fatalf("summary = %+v", s)
	}
	if s.MarketID != "0xcond1" {
		t.Fatalf("market id = %q", s.MarketID)
	}
}

func TestSummarizeRejectsMixedMarkets(t *testing.T) {
	positions := []domain.Position{
		{TraderAddress: addrA, MarketID: "0xother", Side: domain.SideYes, SharesHeld: 10},
	}

	_, err := Summarize(testMarket(), positions, nil, nil, 10)
	var insErr *apperr.InsufficientDataError
	if !errors.As(err, &insErr) {
		t.Fatalf("expected InsufficientDataError, got %v", err)
	}
	if apperr.LayerOf(err) != apperr.LayerAnalysis {
		t.Fatalf("layer = %s", apperr.LayerOf(err))
	}
}
