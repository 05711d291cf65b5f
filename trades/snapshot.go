package trades

import (
	"sort"
	"time"

	"github.com/oklog/ulid/v2"
)

// Key identifies one fetch cycle. Two snapshots with the same key are
// semantically interchangeable, which is what makes them cacheable.
type Key struct {
	RefreshToken      string
	LastTransactionID int
}

// Snapshot is the immutable result of one fetch-and-extract cycle.
// It is superseded wholesale by the next fetch, never mutated.
type Snapshot struct {
	ID        string
	Key       Key
	FetchedAt time.Time
	Trades    []ClosedTrade
}

// NewSnapshot stamps a fetch result with a time-sortable ULID.
func NewSnapshot(key Key, trades []ClosedTrade) Snapshot {
	return Snapshot{
		ID:        ulid.Make().String(),
		Key:       key,
		FetchedAt: time.Now().UTC(),
		Trades:    trades,
	}
}

// Empty reports whether the snapshot holds no closed trades.
func (s Snapshot) Empty() bool {
	return len(s.Trades) == 0
}

// Ascending returns a chronologically sorted copy, oldest first. Used
// for cumulative P/L and drawdown series.
func Ascending(ts []ClosedTrade) []ClosedTrade {
	out := make([]ClosedTrade, len(ts))
	copy(out, ts)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time.Before(out[j].Time)
	})
	return out
}

// Descending returns a copy sorted newest first, for tabular display.
func Descending(ts []ClosedTrade) []ClosedTrade {
	out := make([]ClosedTrade, len(ts))
	copy(out, ts)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time.After(out[j].Time)
	})
	return out
}
