package stats

import (
	"fmt"
	"math"

	"tradedash/trades"
)

// Result holds the aggregate performance metrics for one filtered set
// of closed trades. It is a plain value, recomputed on demand.
type Result struct {
	TotalPL     float64
	TotalTrades int
	WinCount    int
	LossCount   int
	WinRate     float64 // percent

	AvgWin  float64
	AvgLoss float64

	GrossProfit float64
	GrossLoss   float64

	ProfitFactor float64 // +Inf when no losses but some profit
	WinLossRatio float64 // +Inf when no losses but some wins

	LargestWin  float64
	LargestLoss float64

	MaxDrawdown    float64
	MaxDrawdownPct float64

	MostTraded string
}

// Point is one step of the chronological cumulative P/L series.
type Point struct {
	Trade      trades.ClosedTrade
	Cumulative float64
}

// Cumulative builds the running P/L series over chronologically sorted
// trades. The caller is responsible for the sort order.
func Cumulative(chronological []trades.ClosedTrade) []Point {
	out := make([]Point, len(chronological))
	sum := 0.0
	for i, tr := range chronological {
		sum += tr.ProfitLoss
		out[i] = Point{Trade: tr, Cumulative: sum}
	}
	return out
}

// Compute derives all aggregate metrics. Simple metrics come from the
// filtered set; the drawdown pair needs the chronological cumulative
// series. Pure function: same inputs always give the same Result.
func Compute(filtered []trades.ClosedTrade, chronological []Point) Result {
	var r Result

	counts := make(map[string]int)
	for _, tr := range filtered {
		r.TotalPL += tr.ProfitLoss
		counts[tr.Instrument]++

		if tr.ProfitLoss > 0 {
			r.WinCount++
			r.GrossProfit += tr.ProfitLoss
			if tr.ProfitLoss > r.LargestWin {
				r.LargestWin = tr.ProfitLoss
			}
		} else {
			r.LossCount++
			r.GrossLoss += -tr.ProfitLoss
			if tr.ProfitLoss < r.LargestLoss {
				r.LargestLoss = tr.ProfitLoss
			}
		}
	}
	r.TotalTrades = r.WinCount + r.LossCount

	if r.TotalTrades > 0 {
		r.WinRate = float64(r.WinCount) / float64(r.TotalTrades) * 100
	}
	if r.WinCount > 0 {
		r.AvgWin = r.GrossProfit / float64(r.WinCount)
	}
	if r.LossCount > 0 {
		r.AvgLoss = -r.GrossLoss / float64(r.LossCount)
	}

	r.ProfitFactor = ratio(r.GrossProfit, r.GrossLoss)
	r.WinLossRatio = ratio(float64(r.WinCount), float64(r.LossCount))

	for inst, n := range counts {
		if n > counts[r.MostTraded] || (n == counts[r.MostTraded] && (r.MostTraded == "" || inst < r.MostTraded)) {
			r.MostTraded = inst
		}
	}

	r.MaxDrawdown, r.MaxDrawdownPct = maxDrawdown(chronological)
	return r
}

// ratio divides num by den with the dashboard's sentinel rule: +Inf
// when den is 0 and num is positive, 0 when both are 0.
func ratio(num, den float64) float64 {
	if den > 0 {
		return num / den
	}
	if num > 0 {
		return math.Inf(1)
	}
	return 0
}

// maxDrawdown walks the cumulative series with a synthetic starting
// value of 0, tracking the running peak and the largest peak-to-value
// decline. The percentage is relative to the peak the decline started
// from; 0 when that peak is not positive.
func maxDrawdown(series []Point) (value, percent float64) {
	peak := 0.0
	peakAtMax := 0.0
	for _, p := range series {
		if p.Cumulative > peak {
			peak = p.Cumulative
		}
		if dd := peak - p.Cumulative; dd > value {
			value = dd
			peakAtMax = peak
		}
	}
	if value > 0 && peakAtMax > 0 {
		percent = value / peakAtMax * 100
	}
	return value, percent
}

// FormatRatio renders a sentinel-aware ratio for display. Infinity is
// shown as "∞" and is never clamped to a finite number.
func FormatRatio(v float64) string {
	if math.IsInf(v, 1) {
		return "∞"
	}
	return fmt.Sprintf("%.2f", v)
}
