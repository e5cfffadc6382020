package stats

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/Mouryagna/ML-Project/pkg/data"
)

// Summary profiles one column of a table. Numeric fields are zero for
// text columns; Distinct and Top are only filled for text columns.
type Summary struct {
	Name    string
	Kind    data.Kind
	Count   int // non-missing cells
	Missing int

	Mean   float64
	Std    float64
	Min    float64
	Median float64
	Max    float64

	Distinct int
	Top      string
}

// Profile summarizes every column of t in column order.
func Profile(t *data.Table) []Summary {
	cols := t.Columns()
	out := make([]Summary, len(cols))
	for j, c := range cols {
		s := Summary{Name: c.Name, Kind: c.Kind}
		for i := 0; i < t.Len(); i++ {
			if t.Row(i)[j].Missing {
				s.Missing++
			}
		}
		s.Count = t.Len() - s.Missing
		if c.Kind == data.Numeric {
			describe(&s, t.Floats(j))
		} else {
			s.Distinct, s.Top = frequencies(t, j)
		}
		out[j] = s
	}
	return out
}

func describe(s *Summary, x []float64) {
	if len(x) == 0 {
		return
	}
	s.Mean, s.Std = stat.MeanStdDev(x, nil)
	if len(x) == 1 {
		s.Std = 0
	}
	sorted := make([]float64, len(x))
	copy(sorted, x)
	sort.Float64s(sorted)
	s.Min, s.Max = floats.Min(sorted), floats.Max(sorted)

	mid := len(sorted) >> 1
	if len(sorted)&1 == 0 {
		s.Median = (sorted[mid-1] + sorted[mid]) * 0.5
	} else {
		s.Median = sorted[mid]
	}
}

// frequencies returns the distinct count and the most frequent value,
// ties going to the value that reached the count first.
func frequencies(t *data.Table, j int) (int, string) {
	counts := make(map[string]int)
	top, best := "", 0
	for i := 0; i < t.Len(); i++ {
		v := t.Row(i)[j]
		if v.Missing {
			continue
		}
		counts[v.Text]++
		if counts[v.Text] > best {
			top, best = v.Text, counts[v.Text]
		}
	}
	return len(counts), top
}
