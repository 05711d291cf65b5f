package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"tradedash/filter"
	"tradedash/oanda"
	"tradedash/stats"
	"tradedash/trace"
	"tradedash/trades"
)

// ErrNoTrades signals that a fetch or filter produced zero closed
// trades. It is an explicit empty state, not a failure; callers check
// it with errors.Is and render "no data" instead of an error.
var ErrNoTrades = errors.New("no closed trades with realized P/L")

// Fetcher is the slice of the OANDA client the pipeline needs.
type Fetcher interface {
	AccountSummary(ctx context.Context, accountID string) (oanda.Summary, error)
	FetchLedger(ctx context.Context, accountID string, lastKnownID int) ([]oanda.Transaction, error)
}

// Service runs the fetch-extract pipeline and memoizes its snapshots.
// It is synchronous and holds no mutable state besides the cache.
type Service struct {
	client    Fetcher
	accountID string
	cache     *Cache
	log       *slog.Logger
}

// New creates a dashboard service for one account.
func New(client Fetcher, accountID string, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		client:    client,
		accountID: accountID,
		cache:     NewCache(),
		log:       log,
	}
}

// Refresh fetches the account summary and, unless an equivalent
// snapshot is already cached, the full ledger. The snapshot key pairs
// the caller's refresh token with the ledger high-water mark, so a new
// token or new transactions force a re-fetch while anything else is a
// cache hit.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (oanda.Summary, trades.Snapshot, error) {
	ctx, span := trace.StartSpan(ctx, "dashboard.refresh")
	defer span.End()

	summary, err := s.client.AccountSummary(ctx, s.accountID)
	if err != nil {
		return oanda.Summary{}, trades.Snapshot{}, fmt.Errorf("account summary: %w", err)
	}

	key := trades.Key{RefreshToken: refreshToken, LastTransactionID: summary.LastTransactionID}
	if snap, ok := s.cache.Get(key); ok {
		s.log.Debug("snapshot cache hit",
			"last_transaction_id", key.LastTransactionID,
			"snapshot_id", snap.ID)
		return summary, snap, nil
	}

	txns, err := s.client.FetchLedger(ctx, s.accountID, summary.LastTransactionID)
	if err != nil {
		return oanda.Summary{}, trades.Snapshot{}, err
	}

	closed, err := trades.Extract(txns)
	if err != nil {
		return oanda.Summary{}, trades.Snapshot{}, fmt.Errorf("extract trades: %w", err)
	}

	snap := trades.NewSnapshot(key, closed)
	s.cache.Put(snap)
	s.log.Info("ledger refreshed",
		"transactions", len(txns),
		"closed_trades", len(closed),
		"snapshot_id", snap.ID)
	return summary, snap, nil
}

// ClearCache drops all memoized snapshots. The next Refresh re-fetches
// from the ledger.
func (s *Service) ClearCache() {
	s.cache.Clear()
	s.log.Debug("snapshot cache cleared")
}

// View is the structured result the presentation layer consumes: the
// filtered trades in display order, the chronological cumulative
// series, the aggregate statistics and the grouped summaries.
type View struct {
	Range       filter.Range
	Instruments []string

	Trades        []trades.ClosedTrade // newest first, for tables
	Chronological []stats.Point        // oldest first, with cumulative P/L

	Stats        stats.Result
	ByYear       []filter.PeriodPL
	ByMonth      []filter.PeriodPL
	ByWeekday    []filter.WeekdayPL
	ByInstrument []filter.InstrumentSummary
}

// BuildView applies the date range and instrument filter to a snapshot
// and computes everything the dashboard shows. Returns ErrNoTrades when
// the filtered set is empty.
func BuildView(snap trades.Snapshot, r filter.Range, instruments []string) (View, error) {
	filtered := filter.Apply(snap.Trades, r, instruments)
	if len(filtered) == 0 {
		return View{}, ErrNoTrades
	}

	chronological := stats.Cumulative(trades.Ascending(filtered))

	return View{
		Range:         r,
		Instruments:   instruments,
		Trades:        trades.Descending(filtered),
		Chronological: chronological,
		Stats:         stats.Compute(filtered, chronological),
		ByYear:        filter.PLByYear(filtered),
		ByMonth:       filter.PLByMonth(filtered),
		ByWeekday:     filter.PLByWeekday(filtered),
		ByInstrument:  filter.ByInstrument(filtered),
	}, nil
}

// EarliestTradeDate returns the date of the oldest trade in the
// snapshot, used to resolve the all-time preset.
func EarliestTradeDate(snap trades.Snapshot) (t trades.ClosedTrade, ok bool) {
	if snap.Empty() {
		return trades.ClosedTrade{}, false
	}
	asc := trades.Ascending(snap.Trades)
	return asc[0], true
}
