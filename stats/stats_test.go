package stats

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradedash/trades"
)

func mkTrades(pls ...float64) []trades.ClosedTrade {
	base := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	out := make([]trades.ClosedTrade, len(pls))
	for i, pl := range pls {
		out[i] = trades.ClosedTrade{
			Time:       base.Add(time.Duration(i) * time.Hour),
			Instrument: "EUR_USD",
			ProfitLoss: pl,
		}
	}
	return out
}

func TestCompute_BasicScenario(t *testing.T) {
	// chronological: +100, -50, +25
	ts := mkTrades(100, -50, 25)
	r := Compute(ts, Cumulative(ts))

	assert.Equal(t, 75.0, r.TotalPL)
	assert.Equal(t, 2, r.WinCount)
	assert.Equal(t, 1, r.LossCount)
	assert.Equal(t, 3, r.TotalTrades)
	assert.InDelta(t, 66.67, r.WinRate, 0.01)

	assert.Equal(t, 125.0, r.GrossProfit)
	assert.Equal(t, 50.0, r.GrossLoss)
	assert.Equal(t, 2.5, r.ProfitFactor)
	assert.Equal(t, 2.0, r.WinLossRatio)

	assert.Equal(t, 62.5, r.AvgWin)
	assert.Equal(t, -50.0, r.AvgLoss)
	assert.Equal(t, 100.0, r.LargestWin)
	assert.Equal(t, -50.0, r.LargestLoss)

	// peak 100, trough 50
	assert.Equal(t, 50.0, r.MaxDrawdown)
	assert.Equal(t, 50.0, r.MaxDrawdownPct)
}

func TestCompute_Idempotent(t *testing.T) {
	ts := mkTrades(10, -4, 6, -2, 8)
	series := Cumulative(ts)

	first := Compute(ts, series)
	second := Compute(ts, series)
	assert.Equal(t, first, second)
}

func TestCompute_Empty(t *testing.T) {
	r := Compute(nil, nil)

	assert.Zero(t, r.TotalPL)
	assert.Zero(t, r.TotalTrades)
	assert.Zero(t, r.WinRate, "win rate is defined as 0 with no trades")
	assert.Zero(t, r.ProfitFactor)
	assert.Zero(t, r.WinLossRatio)
	assert.Zero(t, r.MaxDrawdown)
	assert.Empty(t, r.MostTraded)
}

func TestCompute_InfinitySentinels(t *testing.T) {
	ts := mkTrades(10, 20)
	r := Compute(ts, Cumulative(ts))

	assert.True(t, math.IsInf(r.ProfitFactor, 1), "no losses with profit means +Inf")
	assert.True(t, math.IsInf(r.WinLossRatio, 1))
}

func TestCompute_RatiosNeverNegative(t *testing.T) {
	cases := [][]float64{
		{-10, -5},
		{10, -5},
		{10, 5},
		{-10, 5, -3},
	}
	for _, pls := range cases {
		ts := mkTrades(pls...)
		r := Compute(ts, Cumulative(ts))
		assert.GreaterOrEqual(t, r.ProfitFactor, 0.0)
		assert.GreaterOrEqual(t, r.WinLossRatio, 0.0)
	}
}

func TestMaxDrawdown_NonDecreasingSeriesHasNone(t *testing.T) {
	ts := mkTrades(10, 5, 1)
	r := Compute(ts, Cumulative(ts))
	assert.Zero(t, r.MaxDrawdown)
	assert.Zero(t, r.MaxDrawdownPct)
}

func TestMaxDrawdown_AlwaysNonNegative(t *testing.T) {
	cases := [][]float64{
		{-100, -50},
		{100, -200, 300},
		{5},
		{-5},
	}
	for _, pls := range cases {
		ts := mkTrades(pls...)
		r := Compute(ts, Cumulative(ts))
		assert.GreaterOrEqual(t, r.MaxDrawdown, 0.0)
	}
}

func TestMaxDrawdown_FromNonPositivePeak(t *testing.T) {
	// Series only ever dips below the synthetic 0 start, so the
	// percentage is undefined and reported as 0.
	ts := mkTrades(-30, -20)
	r := Compute(ts, Cumulative(ts))
	assert.Equal(t, 50.0, r.MaxDrawdown)
	assert.Zero(t, r.MaxDrawdownPct)
}

func TestCumulative(t *testing.T) {
	ts := mkTrades(1, -2, 3)
	series := Cumulative(ts)
	require.Len(t, series, 3)
	assert.Equal(t, 1.0, series[0].Cumulative)
	assert.Equal(t, -1.0, series[1].Cumulative)
	assert.Equal(t, 2.0, series[2].Cumulative)
}

func TestCompute_MostTraded(t *testing.T) {
	base := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	ts := []trades.ClosedTrade{
		{Time: base, Instrument: "USD_JPY", ProfitLoss: 1},
		{Time: base, Instrument: "EUR_USD", ProfitLoss: -1},
		{Time: base, Instrument: "USD_JPY", ProfitLoss: 2},
	}
	r := Compute(ts, Cumulative(ts))
	assert.Equal(t, "USD_JPY", r.MostTraded)
}

func TestFormatRatio(t *testing.T) {
	assert.Equal(t, "2.50", FormatRatio(2.5))
	assert.Equal(t, "0.00", FormatRatio(0))
	assert.Equal(t, "∞", FormatRatio(math.Inf(1)))
}
