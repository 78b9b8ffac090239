package parquet

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/parquet-go/parquet-go"

	"github.com/alanyoungcy/polyscope/internal/apperr"
	"github.com/alanyoungcy/polyscope/internal/domain"
)

const (
	addrA = "0x1111111111111111111111111111111111111111"
	addrB = "0x2222222222222222222222222222222222222222"
)

// memReader serves encoded tables from memory.
type memReader struct {
	tables map[string][]byte
}

func (m memReader) ReadTable(ctx context.Context, table string) ([]byte, error) {
	data, ok := m.tables[table]
	if !ok {
		return nil, &apperr.TableReadError{Table: table, Err: os.ErrNotExist}
	}
	return data, nil
}

// failReader fails every read; used to prove short-circuit paths never
// touch the store.
type failReader struct{}

func (failReader) ReadTable(ctx context.Context, table string) ([]byte, error) {
	return nil, &apperr.TableReadError{Table: table, Err: os.ErrNotExist}
}

func encodeTable[T any](t *testing.T, rows []T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := parquet.Write(&buf, rows); err != nil {
		t.Fatalf("encode rows: %v", err)
	}
	return buf.Bytes()
}

func traderFixtures(t *testing.T) []byte {
	return encodeTable(t, []traderRow{
		{TraderAddress: addrA, TotalMarketsEntered: 20, TotalMarketsResolved: 12, TotalWins: 9, Accuracy: 0.75, TotalInvested: 1000, TotalReturned: 1400, ROI: 0.4},
		{TraderAddress: addrB, TotalMarketsEntered: 5, TotalMarketsResolved: 2, TotalWins: 1, Accuracy: 0.5, TotalInvested: 100, TotalReturned: 90, ROI: -0.1},
	})
}

func TestTradersByMinResolved(t *testing.T) {
	src := NewSource(memReader{tables: map[string][]byte{
		tableTraders: traderFixtures(t),
	}})

	traders, err := src.TradersByMinResolved(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(traders) != 1 || traders[0].Address != addrA {
		t.Fatalf("traders = %+v", traders)
	}
	if traders[0].TotalMarketsResolved != 12 {
		t.Fatalf("resolved = %d", traders[0].TotalMarketsResolved)
	}
}

func TestTradersByAddressesCaseInsensitive(t *testing.T) {
	src := NewSource(memReader{tables: map[string][]byte{
		tableTraders: traderFixtures(t),
	}})

	upper := "0x2222222222222222222222222222222222222222"
	traders, err := src.TradersByAddresses(context.Background(), []string{"0X" + upper[2:]})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(traders) != 1 || traders[0].Address != addrB {
		t.Fatalf("traders = %+v", traders)
	}
}

func TestTradersByAddressesEmptyShortCircuits(t *testing.T) {
	src := NewSource(failReader{})

	traders, err := src.TradersByAddresses(context.Background(), nil)
	if err != nil {
		t.Fatalf("empty address list must not touch the store: %v", err)
	}
	if len(traders) != 0 {
		t.Fatalf("traders = %+v", traders)
	}
}

func TestEmptyTableYieldsEmptyList(t *testing.T) {
	src := NewSource(memReader{tables: map[string][]byte{
		tableTraders:      encodeTable(t, []traderRow{}),
		tablePositions:    encodeTable(t, []positionRow{}),
		tableTransactions: encodeTable(t, []transactionRow{}),
	}})

	traders, err := src.TradersByMinResolved(context.Background(), 0)
	if err != nil || len(traders) != 0 {
		t.Fatalf("traders = %+v, err = %v", traders, err)
	}
	positions, err := src.PositionsByMarket(context.Background(), "0xcond1")
	if err != nil || len(positions) != 0 {
		t.Fatalf("positions = %+v, err = %v", positions, err)
	}
	txs, err := src.RecentTransactions(context.Background(), "0xcond1", 30)
	if err != nil || len(txs) != 0 {
		t.Fatalf("transactions = %+v, err = %v", txs, err)
	}
}

func TestPositionsByMarketFilters(t *testing.T) {
	block := int64(18000000)
	src := NewSource(memReader{tables: map[string][]byte{
		tablePositions: encodeTable(t, []positionRow{
			{TraderAddress: addrA, TokenID: "111", MarketID: "0xcond1", Side: "YES", SharesHeld: 100, AvgEntryPrice: 0.6, FirstEntryBlock: &block},
			{TraderAddress: addrB, TokenID: "333", MarketID: "0xother", Side: "NO", SharesHeld: 50, AvgEntryPrice: 0.4},
		}),
	}})

	positions, err := src.PositionsByMarket(context.Background(), "0xcond1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(positions) != 1 {
		t.Fatalf("positions = %+v", positions)
	}
	p := positions[0]
	if p.Side != domain.SideYes || p.SharesHeld != 100 {
		t.Fatalf("position = %+v", p)
	}
	if p.FirstEntryBlock == nil || *p.FirstEntryBlock != block {
		t.Fatalf("first entry block = %v", p.FirstEntryBlock)
	}
}

func TestPositionsByMarketInvalidSide(t *testing.T) {
	src := NewSource(memReader{tables: map[string][]byte{
		tablePositions: encodeTable(t, []positionRow{
			{TraderAddress: addrA, TokenID: "111", MarketID: "0xcond1", Side: "MAYBE", SharesHeld: 10},
		}),
	}})

	_, err := src.PositionsByMarket(context.Background(), "0xcond1")
	var valErr *apperr.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestRecentTransactionsFilters(t *testing.T) {
	src := NewSource(memReader{tables: map[string][]byte{
		tableTransactions: encodeTable(t, []transactionRow{
			{BlockNumber: 100, TransactionHash: "0xaaa", TraderAddress: addrA, TokenID: "111", Side: "YES", Action: "BUY", Shares: 10, USDCAmount: 6, MarketID: "0xcond1"},
			{BlockNumber: 101, TransactionHash: "0xbbb", TraderAddress: addrB, TokenID: "222", Side: "NO", Action: "SELL", Shares: 4, USDCAmount: 1.5, MarketID: "0xcond1"},
			{BlockNumber: 102, TransactionHash: "0xccc", TraderAddress: addrB, TokenID: "333", Side: "YES", Action: "BUY", Shares: 1, USDCAmount: 0.5, MarketID: "0xother"},
		}),
	}})

	txs, err := src.RecentTransactions(context.Background(), "0xcond1", 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("transactions = %+v", txs)
	}
	if txs[0].Action != domain.ActionBuy || txs[1].Action != domain.ActionSell {
		t.Fatalf("actions = %s, %s", txs[0].Action, txs[1].Action)
	}
}

func TestReadTableMissingFile(t *testing.T) {
	src := NewSource(NewDirReader(t.TempDir()))

	_, err := src.TradersByMinResolved(context.Background(), 0)
	var readErr *apperr.TableReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("expected TableReadError, got %v", err)
	}
	if readErr.Table != tableTraders || readErr.Path == "" {
		t.Fatalf("error = %+v", readErr)
	}
	if apperr.LayerOf(err) != apperr.LayerTransport {
		t.Fatalf("layer = %s", apperr.LayerOf(err))
	}
}
