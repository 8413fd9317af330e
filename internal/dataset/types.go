// Package dataset provides the tabular data model and CSV loading layer
// for deskwatch. Datasets are read-only, column-typed tables keyed by a
// logical name; the loader reads a fixed file set from the data directory
// and tolerates individual absent files.
package dataset

import "fmt"

// Logical dataset names used throughout the report engine.
const (
	Monthly       = "monthly"
	Resolution    = "resolution"
	FRT           = "frt"
	EngSummary    = "eng_summary"
	EngTeams      = "eng_teams"
	Organizations = "organizations"
	Assignees     = "assignees"
	Contributors  = "contributors"
	Categories    = "categories"
)

// Kind classifies a cell value. Percent-suffixed strings are parsed once
// at load time into Percent cells; their Num holds the displayed number
// ("42.5%" parses to 42.5, not 0.425).
type Kind int

const (
	Text Kind = iota
	Number
	Percent
)

// Cell is a single typed value in a dataset.
type Cell struct {
	Kind Kind
	Num  float64
	Text string
}

// IsNumeric reports whether the cell carries a usable numeric value.
func (c Cell) IsNumeric() bool {
	return c.Kind == Number || c.Kind == Percent
}

// Dataset is an immutable column-oriented table. Rows have no identity
// beyond position and are not assumed sorted.
type Dataset struct {
	Name    string
	Columns []string
	rows    [][]Cell
	index   map[string]int
}

// New creates an empty dataset with the given column headers.
func New(name string, columns []string) *Dataset {
	index := make(map[string]int, len(columns))
	for i, col := range columns {
		index[col] = i
	}
	return &Dataset{Name: name, Columns: columns, index: index}
}

// AddRow appends a row. Short rows are padded with empty text cells so
// every stored row matches the header width.
func (d *Dataset) AddRow(cells []Cell) {
	row := make([]Cell, len(d.Columns))
	copy(row, cells)
	d.rows = append(d.rows, row)
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.rows)
}

// HasColumn reports whether the named column exists.
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.index[name]
	return ok
}

// Cell returns the cell at the given row and column. The second return
// is false when the column does not exist or the row is out of range.
func (d *Dataset) Cell(row int, column string) (Cell, bool) {
	i, ok := d.index[column]
	if !ok || row < 0 || row >= len(d.rows) {
		return Cell{}, false
	}
	return d.rows[row][i], true
}

// Number returns the numeric value at the given row and column, treating
// Percent cells as their displayed magnitude.
func (d *Dataset) Number(row int, column string) (float64, bool) {
	c, ok := d.Cell(row, column)
	if !ok || !c.IsNumeric() {
		return 0, false
	}
	return c.Num, true
}

// Value returns the raw text at the given row and column.
func (d *Dataset) Value(row int, column string) (string, bool) {
	c, ok := d.Cell(row, column)
	if !ok {
		return "", false
	}
	return c.Text, true
}

// Set maps logical dataset names to loaded datasets. A name absent from
// the set means every derived metric depending on it is unavailable.
type Set map[string]*Dataset

// Get returns the named dataset, or false if it was not loaded.
func (s Set) Get(name string) (*Dataset, bool) {
	d, ok := s[name]
	return d, ok && d != nil
}

// YearColumn builds a year-keyed column name following the upstream
// {year}_{field} convention, e.g. YearColumn(2025, "Avg_Days").
func YearColumn(year int, field string) string {
	return fmt.Sprintf("%d_%s", year, field)
}
