package chart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"tradedash/stats"
)

var lineColor = color.RGBA{R: 30, G: 110, B: 200, A: 255}

// CumulativePL renders the running P/L curve to a PNG at path. The
// series must be chronological.
func CumulativePL(path string, series []stats.Point) error {
	if len(series) == 0 {
		return fmt.Errorf("no trades to plot")
	}

	pts := make(plotter.XYs, len(series))
	for i, p := range series {
		pts[i].X = float64(p.Trade.Time.Unix())
		pts[i].Y = p.Cumulative
	}

	return save(path, "Cumulative P/L", "Cumulative P/L", pts)
}

// BalanceTrend renders the account balance after each closed trade.
// Trades without balance data are skipped, not zero-filled; an error is
// returned when the whole period lacks balance data.
func BalanceTrend(path string, series []stats.Point) error {
	var pts plotter.XYs
	for _, p := range series {
		if p.Trade.Balance == nil {
			continue
		}
		pts = append(pts, plotter.XY{
			X: float64(p.Trade.Time.Unix()),
			Y: *p.Trade.Balance,
		})
	}
	if len(pts) == 0 {
		return fmt.Errorf("no account balance data in this period")
	}

	return save(path, "Account Balance After Trade", "Balance", pts)
}

func save(path, title, yLabel string, pts plotter.XYs) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Date"
	p.Y.Label.Text = yLabel
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("build line: %w", err)
	}
	line.Color = lineColor
	p.Add(line)

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save chart: %w", err)
	}
	return nil
}
