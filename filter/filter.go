package filter

import (
	"fmt"
	"time"

	"tradedash/trades"
)

// Range is an inclusive calendar-date range in the ledger's origin
// timezone (OANDA reports everything in UTC). The upper bound is
// applied half-open at End+24h so the whole end day is included
// regardless of time-of-day.
type Range struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the range.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End.AddDate(0, 0, 1))
}

func (r Range) String() string {
	return fmt.Sprintf("%s to %s", r.Start.Format("2006-01-02"), r.End.Format("2006-01-02"))
}

// Preset names a predefined date range.
type Preset string

const (
	AllTime    Preset = "all-time"
	YearToDate Preset = "ytd"
	ThisMonth  Preset = "this-month"
	LastMonth  Preset = "last-month"
	Last7Days  Preset = "last-7-days"
)

// Presets lists the supported preset names in display order.
func Presets() []Preset {
	return []Preset{AllTime, YearToDate, ThisMonth, LastMonth, Last7Days}
}

// PresetRange resolves a preset against the earliest trade date and
// today. Both inputs are truncated to calendar dates.
func PresetRange(p Preset, earliest, today time.Time) (Range, error) {
	earliest = truncateDay(earliest)
	today = truncateDay(today)

	switch p {
	case AllTime:
		return Range{Start: earliest, End: today}, nil
	case YearToDate:
		return Range{
			Start: time.Date(today.Year(), 1, 1, 0, 0, 0, 0, time.UTC),
			End:   today,
		}, nil
	case ThisMonth:
		return Range{
			Start: time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC),
			End:   today,
		}, nil
	case LastMonth:
		firstOfCurrent := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		lastOfPrevious := firstOfCurrent.AddDate(0, 0, -1)
		return Range{
			Start: time.Date(lastOfPrevious.Year(), lastOfPrevious.Month(), 1, 0, 0, 0, 0, time.UTC),
			End:   lastOfPrevious,
		}, nil
	case Last7Days:
		return Range{Start: today.AddDate(0, 0, -6), End: today}, nil
	default:
		return Range{}, fmt.Errorf("unknown date preset %q", p)
	}
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Apply returns the trades inside the date range that match the
// instrument set. An empty instrument set keeps everything; a set
// naming instruments absent from the data simply yields an empty
// result. Input order is preserved.
func Apply(ts []trades.ClosedTrade, r Range, instruments []string) []trades.ClosedTrade {
	want := make(map[string]bool, len(instruments))
	for _, inst := range instruments {
		want[inst] = true
	}

	var out []trades.ClosedTrade
	for _, tr := range ts {
		if !r.Contains(tr.Time) {
			continue
		}
		if len(want) > 0 && !want[tr.Instrument] {
			continue
		}
		out = append(out, tr)
	}
	return out
}
