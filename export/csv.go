package export

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"time"

	"tradedash/trades"
)

var header = []string{"date", "instrument", "side", "amount", "profit_loss", "account_balance"}

// WriteTrades writes the filtered trade table as CSV, one row per
// closed trade in the order given. An absent account balance becomes an
// empty cell, never 0.
func WriteTrades(w io.Writer, ts []trades.ClosedTrade) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return err
	}
	for _, t := range ts {
		balance := ""
		if t.Balance != nil {
			balance = f(*t.Balance)
		}
		if err := cw.Write([]string{
			t.Time.Format(time.RFC3339),
			t.Instrument,
			string(t.Side),
			f(t.Amount),
			f(t.ProfitLoss),
			balance,
		}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile writes the trade table to a new file at path.
func WriteFile(path string, ts []trades.ClosedTrade) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteTrades(file, ts); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
