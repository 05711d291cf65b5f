package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tradedash/dashboard"
	"tradedash/filter"
	"tradedash/trades"
)

const dateLayout = "2006-01-02"

// addFilterFlags registers the shared date/instrument filter flags on a
// command that consumes the filtered trade view.
func addFilterFlags(cmd *cobra.Command, preset, from, to *string, instruments *[]string) {
	cmd.Flags().StringVarP(preset, "preset", "p", string(filter.AllTime),
		"date preset (all-time, ytd, this-month, last-month, last-7-days)")
	cmd.Flags().StringVar(from, "from", "", "custom start date (YYYY-MM-DD, overrides preset)")
	cmd.Flags().StringVar(to, "to", "", "custom end date (YYYY-MM-DD, overrides preset)")
	cmd.Flags().StringSliceVarP(instruments, "instrument", "i", nil,
		"restrict to instrument(s), e.g. EUR_USD (repeatable; empty keeps all)")
}

// resolveRange turns the date flags into a concrete range. Custom
// --from/--to win over the preset; missing ends default to the earliest
// trade date and today.
func resolveRange(preset, from, to string, snap trades.Snapshot) (filter.Range, error) {
	earliest := time.Now().UTC()
	if first, ok := dashboard.EarliestTradeDate(snap); ok {
		earliest = first.Time
	}
	today := time.Now().UTC()

	if from == "" && to == "" {
		return filter.PresetRange(filter.Preset(preset), earliest, today)
	}

	r, err := filter.PresetRange(filter.AllTime, earliest, today)
	if err != nil {
		return filter.Range{}, err
	}
	if from != "" {
		r.Start, err = time.Parse(dateLayout, from)
		if err != nil {
			return filter.Range{}, fmt.Errorf("parse --from: %w", err)
		}
	}
	if to != "" {
		r.End, err = time.Parse(dateLayout, to)
		if err != nil {
			return filter.Range{}, fmt.Errorf("parse --to: %w", err)
		}
	}
	if r.End.Before(r.Start) {
		return filter.Range{}, fmt.Errorf("end date %s is before start date %s",
			r.End.Format(dateLayout), r.Start.Format(dateLayout))
	}
	return r, nil
}
