package trades

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradedash/oanda"
)

func TestExtract_FiltersToRealizedPL(t *testing.T) {
	txns := []oanda.Transaction{
		{ID: "1", Time: "2024-01-02T10:00:00.000000000Z", Type: "CREATE"},
		{ID: "2", Time: "2024-01-02T10:05:00.000000000Z", Type: "ORDER_FILL", Instrument: "EUR_USD", Units: "10000"},
		{ID: "3", Time: "2024-01-02T11:00:00.000000000Z", Type: "ORDER_FILL", Instrument: "EUR_USD", Units: "-10000", PL: "25.50", AccountBalance: "10025.50"},
		{ID: "4", Time: "2024-01-02T12:00:00.000000000Z", Type: "DAILY_FINANCING", Instrument: "EUR_USD", PL: "0"},
		{ID: "5", Time: "2024-01-03T09:00:00.000000000Z", Type: "ORDER_FILL", Instrument: "USD_JPY", Units: "5000", PL: "-12.00"},
	}

	out, err := Extract(txns)
	require.NoError(t, err)
	require.Len(t, out, 2)

	first := out[0]
	assert.Equal(t, "EUR_USD", first.Instrument)
	assert.Equal(t, Buy, first.Side, "negative units close a long")
	assert.Equal(t, 10000.0, first.Amount)
	assert.Equal(t, 25.50, first.ProfitLoss)
	require.NotNil(t, first.Balance)
	assert.Equal(t, 10025.50, *first.Balance)
	assert.Equal(t, time.Date(2024, 1, 2, 11, 0, 0, 0, time.UTC), first.Time)

	second := out[1]
	assert.Equal(t, Sell, second.Side, "positive units close a short")
	assert.Equal(t, -12.00, second.ProfitLoss)
	assert.Nil(t, second.Balance, "missing balance stays absent, not zero")
}

func TestExtract_ZeroPLExcluded(t *testing.T) {
	out, err := Extract([]oanda.Transaction{
		{ID: "1", Time: "2024-01-02T10:00:00Z", PL: "0.0000"},
	})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestExtract_MissingUnitsDefaultsToSell(t *testing.T) {
	out, err := Extract([]oanda.Transaction{
		{ID: "9", Time: "2024-01-02T10:00:00Z", Instrument: "EUR_USD", PL: "3.10"},
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, Sell, out[0].Side)
	assert.Equal(t, 0.0, out[0].Amount)
}

func TestExtract_OutputNeverLongerThanInput(t *testing.T) {
	txns := []oanda.Transaction{
		{ID: "1", Time: "2024-01-02T10:00:00Z", PL: "1.00"},
		{ID: "2", Time: "2024-01-02T10:01:00Z"},
		{ID: "3", Time: "2024-01-02T10:02:00Z", PL: "-1.00"},
		{ID: "4", Time: "2024-01-02T10:03:00Z", PL: "0"},
	}
	out, err := Extract(txns)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(out), len(txns))
	for _, tr := range out {
		assert.NotZero(t, tr.ProfitLoss)
	}
}

func TestExtract_MalformedPL(t *testing.T) {
	_, err := Extract([]oanda.Transaction{
		{ID: "1", Time: "2024-01-02T10:00:00Z", PL: "bogus"},
	})
	assert.Error(t, err)
}

func TestSnapshotSortHelpers(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	ts := []ClosedTrade{
		{Time: base.Add(2 * time.Hour), ProfitLoss: 3},
		{Time: base, ProfitLoss: 1},
		{Time: base.Add(time.Hour), ProfitLoss: 2},
	}

	asc := Ascending(ts)
	assert.Equal(t, []float64{1, 2, 3}, []float64{asc[0].ProfitLoss, asc[1].ProfitLoss, asc[2].ProfitLoss})

	desc := Descending(ts)
	assert.Equal(t, []float64{3, 2, 1}, []float64{desc[0].ProfitLoss, desc[1].ProfitLoss, desc[2].ProfitLoss})

	// input untouched
	assert.Equal(t, 3.0, ts[0].ProfitLoss)
}

func TestNewSnapshot(t *testing.T) {
	key := Key{RefreshToken: "r1", LastTransactionID: 42}
	snap := NewSnapshot(key, nil)

	assert.NotEmpty(t, snap.ID)
	assert.Equal(t, key, snap.Key)
	assert.True(t, snap.Empty())

	other := NewSnapshot(key, nil)
	assert.NotEqual(t, snap.ID, other.ID, "each snapshot gets its own ULID")
}
