package filter

import (
	"sort"
	"time"

	"tradedash/trades"
)

// PeriodPL is the summed P/L for one calendar period.
type PeriodPL struct {
	Period string
	PL     float64
}

// WeekdayPL is the summed P/L for one day of the week.
type WeekdayPL struct {
	Day time.Weekday
	PL  float64
}

// InstrumentSummary is the summed P/L and trade count for one
// instrument.
type InstrumentSummary struct {
	Instrument string
	PL         float64
	Count      int
}

// PLByYear sums P/L per calendar year, ascending.
func PLByYear(ts []trades.ClosedTrade) []PeriodPL {
	return sumByPeriod(ts, "2006")
}

// PLByMonth sums P/L per year-month, ascending.
func PLByMonth(ts []trades.ClosedTrade) []PeriodPL {
	return sumByPeriod(ts, "2006-01")
}

func sumByPeriod(ts []trades.ClosedTrade, layout string) []PeriodPL {
	sums := make(map[string]float64)
	for _, tr := range ts {
		sums[tr.Time.UTC().Format(layout)] += tr.ProfitLoss
	}

	out := make([]PeriodPL, 0, len(sums))
	for period, pl := range sums {
		out = append(out, PeriodPL{Period: period, PL: pl})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period < out[j].Period })
	return out
}

// PLByWeekday sums P/L per day of the week, Monday first. All seven
// days are always present, zero-filled when a day has no trades.
func PLByWeekday(ts []trades.ClosedTrade) []WeekdayPL {
	sums := make(map[time.Weekday]float64)
	for _, tr := range ts {
		sums[tr.Time.UTC().Weekday()] += tr.ProfitLoss
	}

	days := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}
	out := make([]WeekdayPL, 0, len(days))
	for _, d := range days {
		out = append(out, WeekdayPL{Day: d, PL: sums[d]})
	}
	return out
}

// ByInstrument sums P/L and counts trades per instrument, sorted by
// instrument code.
func ByInstrument(ts []trades.ClosedTrade) []InstrumentSummary {
	byInst := make(map[string]*InstrumentSummary)
	for _, tr := range ts {
		s, ok := byInst[tr.Instrument]
		if !ok {
			s = &InstrumentSummary{Instrument: tr.Instrument}
			byInst[tr.Instrument] = s
		}
		s.PL += tr.ProfitLoss
		s.Count++
	}

	out := make([]InstrumentSummary, 0, len(byInst))
	for _, s := range byInst {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Instrument < out[j].Instrument })
	return out
}

// Instruments returns the sorted unique instrument codes in the trade
// set, for building instrument filters.
func Instruments(ts []trades.ClosedTrade) []string {
	seen := make(map[string]bool)
	var out []string
	for _, tr := range ts {
		if !seen[tr.Instrument] {
			seen[tr.Instrument] = true
			out = append(out, tr.Instrument)
		}
	}
	sort.Strings(out)
	return out
}
