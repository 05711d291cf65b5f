package trades

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"tradedash/oanda"
)

// Side is the direction of the original trade, inferred from the units
// of the closing transaction.
type Side string

const (
	Buy  Side = "Buy"
	Sell Side = "Sell"
)

// ClosedTrade is one realized profit/loss event derived from the raw
// ledger. Balance is nil when the transaction carried no
// accountBalance; consumers must skip it, never treat it as zero.
type ClosedTrade struct {
	Time       time.Time
	Instrument string
	Side       Side
	Amount     float64
	ProfitLoss float64
	Balance    *float64
}

// Extract filters raw transactions down to closed trades, preserving
// input order. A transaction is a closed trade iff it carries a nonzero
// pl; a pl of exactly 0 marks a fee-only or administrative entry and is
// dropped. Missing units default to 0, which classifies as Sell with
// amount 0.
func Extract(txns []oanda.Transaction) ([]ClosedTrade, error) {
	var out []ClosedTrade
	for _, t := range txns {
		if t.PL == "" {
			continue
		}
		pl, err := strconv.ParseFloat(t.PL, 64)
		if err != nil {
			return nil, fmt.Errorf("transaction %s: parse pl %q: %w", t.ID, t.PL, err)
		}
		if pl == 0 {
			continue
		}

		ts, err := time.Parse(time.RFC3339, t.Time)
		if err != nil {
			return nil, fmt.Errorf("transaction %s: parse time %q: %w", t.ID, t.Time, err)
		}

		units := 0.0
		if t.Units != "" {
			units, err = strconv.ParseFloat(t.Units, 64)
			if err != nil {
				return nil, fmt.Errorf("transaction %s: parse units %q: %w", t.ID, t.Units, err)
			}
		}

		// Closing a long reduces units, so negative units mean the
		// original trade was a Buy.
		side := Sell
		if units < 0 {
			side = Buy
		}

		var balance *float64
		if t.AccountBalance != "" {
			b, err := strconv.ParseFloat(t.AccountBalance, 64)
			if err != nil {
				return nil, fmt.Errorf("transaction %s: parse accountBalance %q: %w", t.ID, t.AccountBalance, err)
			}
			balance = &b
		}

		out = append(out, ClosedTrade{
			Time:       ts,
			Instrument: t.Instrument,
			Side:       side,
			Amount:     math.Abs(units),
			ProfitLoss: pl,
			Balance:    balance,
		})
	}
	return out, nil
}
