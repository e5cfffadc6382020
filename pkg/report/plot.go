package report

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/Mouryagna/ML-Project/pkg/data"
)

const bins = 20

// SplitHistogram draws overlaid histograms of one numeric column for the
// train and test tables and saves the plot to filename. The format follows
// the file extension (png, svg, pdf).
func SplitHistogram(train, test *data.Table, column, filename string) error {
	trainVals, err := numericColumn(train, column)
	if err != nil {
		return err
	}
	testVals, err := numericColumn(test, column)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Train/test distribution of %s", column)
	p.X.Label.Text = column
	p.Y.Label.Text = "Density"

	for _, s := range []struct {
		name  string
		vals  plotter.Values
		color color.Color
	}{
		{"train", trainVals, color.RGBA{B: 255, A: 160, R: 50, G: 50}},
		{"test", testVals, color.RGBA{R: 255, A: 160}},
	} {
		if len(s.vals) == 0 {
			continue
		}
		h, err := plotter.NewHist(s.vals, bins)
		if err != nil {
			return fmt.Errorf("histogram %s: %w", s.name, err)
		}
		h.Normalize(1)
		h.FillColor = s.color
		h.LineStyle.Width = vg.Points(0.5)
		p.Add(h)
		p.Legend.Add(s.name, h)
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}

func numericColumn(t *data.Table, column string) (plotter.Values, error) {
	j := t.ColumnIndex(column)
	if j < 0 {
		return nil, fmt.Errorf("unknown column %q", column)
	}
	if t.Columns()[j].Kind != data.Numeric {
		return nil, fmt.Errorf("column %q is not numeric", column)
	}
	return plotter.Values(t.Floats(j)), nil
}
