// Package report renders the fetched and analyzed market data as a
// structured text report.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/alanyoungcy/polyscope/internal/analysis"
	"github.com/alanyoungcy/polyscope/internal/apperr"
	"github.com/alanyoungcy/polyscope/internal/domain"
)

// Data bundles everything one report prints. Market is nil for a degenerate
// group with no sub-markets.
type Data struct {
	Group        domain.MarketGroup
	Market       *domain.Market
	Positions    []domain.Position
	Traders      []domain.Trader
	Transactions []domain.Transaction
	// Leaderboard holds proven traders across all markets, already filtered
	// by the resolved-markets floor.
	Leaderboard []domain.Trader
	Summary     analysis.Summary
	DaysBack    int
}

// Renderer writes reports to one destination.
type Renderer struct {
	w    io.Writer
	dest string
}

// NewRenderer creates a renderer. destination names the target in
// output-layer errors (e.g. "stdout").
func NewRenderer(w io.Writer, destination string) *Renderer {
	return &Renderer{w: w, dest: destination}
}

// Render writes the full report. Any write failure surfaces as an
// output-layer error naming the destination.
func (r *Renderer) Render(d Data) error {
	p := &printer{w: r.w}

	r.renderGroup(p, d.Group)

	if d.Market == nil {
		p.line("")
		p.line("This group has no sub-markets; nothing further to report.")
		return r.finish(p)
	}

	r.renderMarket(p, *d.Market)
	r.renderPositions(p, d)
	r.renderTransactions(p, d)
	r.renderSummary(p, d.Summary)
	r.renderLeaderboard(p, d.Leaderboard)

	return r.finish(p)
}

func (r *Renderer) finish(p *printer) error {
	if p.err != nil {
		return &apperr.WriteError{Destination: r.dest, Err: p.err}
	}
	return nil
}

func (r *Renderer) renderGroup(p *printer, g domain.MarketGroup) {
	p.header("MARKET GROUP")
	p.line("  Slug:       %s", g.Slug)
	p.line("  Title:      %s", g.Title)
	p.line("  Active:     %t   Closed: %t", g.Active, g.Closed)
	p.line("  Volume:     %.2f", g.Volume)
	p.line("  Liquidity:  %.2f", g.Liquidity)
	p.line("  Markets:    %d", len(g.Markets))
}

func (r *Renderer) renderMarket(p *printer, m domain.Market) {
	p.header("MARKET")
	p.line("  Question:      %s", m.Question)
	p.line("  Slug:          %s", m.Slug)
	p.line("  Condition ID:  %s", m.ConditionID)
	// Prices print verbatim: they are the source's strings, not floats.
	p.line("  Outcomes:      %s @ %s   |   %s @ %s",
		m.Outcomes[0], m.OutcomePrices[0], m.Outcomes[1], m.OutcomePrices[1])
	p.line("  YES Token:     %s", m.YesTokenID)
	p.line("  NO Token:      %s", m.NoTokenID)
	p.line("  Active:        %t   Closed: %t", m.Active, m.Closed)
	p.line("  Volume:        %.2f (24h %.2f / 1w %.2f / 1m %.2f / 1y %.2f)",
		m.Volume, m.Volume24h, m.Volume1w, m.Volume1m, m.Volume1y)
	p.line("  Liquidity:     %.2f", m.Liquidity)
	p.line("  Last Trade:    %.4f   Bid: %.4f   Ask: %.4f", m.LastTradePrice, m.BestBid, m.BestAsk)
	p.line("  Competitive:   %.4f", m.Competitive)
}

func (r *Renderer) renderPositions(p *printer, d Data) {
	p.header("POSITIONS")
	if len(d.Positions) == 0 {
		p.line("  No positions recorded for this market.")
		return
	}

	byAddress := make(map[string]domain.Trader, len(d.Traders))
	for _, t := range d.Traders {
		byAddress[t.Address] = t
	}

	tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  TRADER\tSIDE\tSHARES\tAVG ENTRY\tACCURACY\tROI")
	for _, h := range d.Summary.TopHolders {
		pos := h.Position
		acc, roi := "-", "-"
		if h.Stats != nil {
			acc = fmt.Sprintf("%.1f%%", h.Stats.Accuracy*100)
			roi = fmt.Sprintf("%+.1f%%", h.Stats.ROI*100)
		}
		fmt.Fprintf(tw, "  %s\t%s\t%.2f\t%.4f\t%s\t%s\n",
			shortAddress(pos.TraderAddress), pos.Side, pos.SharesHeld, pos.AvgEntryPrice, acc, roi)
	}
	if err := tw.Flush(); err != nil && p.err == nil {
		p.err = err
	}
	if len(d.Positions) > len(d.Summary.TopHolders) {
		p.line("  ... and %d more position(s)", len(d.Positions)-len(d.Summary.TopHolders))
	}
}

func (r *Renderer) renderTransactions(p *printer, d Data) {
	p.header("TRANSACTIONS")
	if d.DaysBack > 0 {
		// The lookback window is advisory: no source models a timestamp
		// column yet, so all recorded transactions are shown.
		p.line("  Lookback window: %d day(s) (advisory; all recorded transactions shown)", d.DaysBack)
	}
	if len(d.Transactions) == 0 {
		p.line("  No transactions recorded for this market.")
		return
	}
	p.line("  Count:        %d", d.Summary.TxCount)
	p.line("  Buy volume:   %.2f USDC", d.Summary.BuyVolumeUSDC)
	p.line("  Sell volume:  %.2f USDC", d.Summary.SellVolumeUSDC)
}

func (r *Renderer) renderSummary(p *printer, s analysis.Summary) {
	p.header("ANALYSIS")
	p.line("  Holders:             %d", s.HolderCount)
	p.line("  YES shares:          %.2f", s.YesShares)
	p.line("  NO shares:           %.2f", s.NoShares)
	p.line("  Weighted entry:      %.4f", s.WeightedEntryPrice)
	if s.TrackedHolders > 0 {
		p.line("  Smart-money accuracy: %.1f%% (over %d tracked holder(s))",
			s.SmartMoneyAccuracy*100, s.TrackedHolders)
	} else {
		p.line("  Smart-money accuracy: no tracked holders")
	}
}

func (r *Renderer) renderLeaderboard(p *printer, traders []domain.Trader) {
	p.header("PROVEN TRADERS")
	if len(traders) == 0 {
		p.line("  No traders meet the resolved-markets floor.")
		return
	}

	tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  TRADER\tRESOLVED\tWINS\tACCURACY\tROI")
	for _, t := range traders {
		fmt.Fprintf(tw, "  %s\t%d\t%d\t%.1f%%\t%+.1f%%\n",
			shortAddress(t.Address), t.TotalMarketsResolved, t.TotalWins,
			t.Accuracy*100, t.ROI*100)
	}
	if err := tw.Flush(); err != nil && p.err == nil {
		p.err = err
	}
}

// printer tracks the first write error so render code stays linear.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) header(title string) {
	rule := strings.Repeat("=", 67)
	p.line("")
	p.line("%s", rule)
	p.line("%s", title)
	p.line("%s", rule)
}

func shortAddress(addr string) string {
	if len(addr) <= 12 {
		return addr
	}
	return addr[:8] + ".." + addr[len(addr)-4:]
}
