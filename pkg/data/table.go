package data

// Kind is the inferred type of a column.
type Kind int

const (
	Numeric Kind = iota
	Text
)

func (k Kind) String() string {
	if k == Numeric {
		return "float"
	}
	return "category"
}

// Column names a column and its inferred kind.
type Column struct {
	Name string
	Kind Kind
}

// Value is a single cell. Text keeps the cell exactly as read so that
// artifacts round-trip without reformatting numbers.
type Value struct {
	Text    string
	Num     float64
	Missing bool
}

// Table is an ordered, immutable set of rows sharing one column layout.
type Table struct {
	columns []Column
	rows    [][]Value
}

// NewTable builds a table from columns and rows. Rows are not copied.
func NewTable(columns []Column, rows [][]Value) *Table {
	return &Table{columns: columns, rows: rows}
}

// Columns returns a copy of the column layout.
func (t *Table) Columns() []Column {
	out := make([]Column, len(t.columns))
	copy(out, t.columns)
	return out
}

// Header returns the column names in order.
func (t *Table) Header() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name
	}
	return names
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.rows) }

// Row returns a copy of row i.
func (t *Table) Row(i int) []Value {
	out := make([]Value, len(t.rows[i]))
	copy(out, t.rows[i])
	return out
}

// ColumnIndex returns the position of name, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Floats returns the non-missing numeric values of column j in row order.
func (t *Table) Floats(j int) []float64 {
	out := make([]float64, 0, len(t.rows))
	for _, r := range t.rows {
		if !r[j].Missing && t.columns[j].Kind == Numeric {
			out = append(out, r[j].Num)
		}
	}
	return out
}

// Select returns a new table holding the rows at indices, in that order.
func (t *Table) Select(indices []int) *Table {
	rows := make([][]Value, len(indices))
	for i, idx := range indices {
		rows[i] = t.rows[idx]
	}
	return &Table{columns: t.columns, rows: rows}
}

// Schema describes the structure of a table.
type Schema struct {
	FeatureNames []string
	Types        []string // "float" or "category"
}

// Schema reports the column names and kinds of t.
func (t *Table) Schema() Schema {
	s := Schema{
		FeatureNames: t.Header(),
		Types:        make([]string, len(t.columns)),
	}
	for i, c := range t.columns {
		s.Types[i] = c.Kind.String()
	}
	return s
}
