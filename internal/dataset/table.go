package dataset

import (
	"fmt"
	"strings"
)

// Table is an in-memory relational table with a header and string cells.
type Table struct {
	name    string
	columns []string
	index   map[string]int
	rows    [][]string
}

// New constructs an empty table with the given column set.
func New(name string, columns []string) (*Table, error) {
	index := make(map[string]int, len(columns))
	for i, col := range columns {
		col = strings.TrimSpace(col)
		if col == "" {
			return nil, fmt.Errorf("table %s: empty column name at position %d", name, i)
		}
		if _, ok := index[col]; ok {
			return nil, fmt.Errorf("table %s: duplicate column %q", name, col)
		}
		index[col] = i
	}
	cols := make([]string, len(columns))
	for i, col := range columns {
		cols[i] = strings.TrimSpace(col)
	}
	return &Table{name: name, columns: cols, index: index}, nil
}

// Name returns the dataset name the table was loaded as.
func (t *Table) Name() string { return t.name }

// Columns returns a copy of the header.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int { return len(t.columns) }

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.rows) }

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// ColumnIndex returns the position of the named column.
func (t *Table) ColumnIndex(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// Value returns the cell at the given row for the named column.
func (t *Table) Value(row int, column string) string {
	i, ok := t.index[column]
	if !ok || row < 0 || row >= len(t.rows) {
		return ""
	}
	return t.rows[row][i]
}

// Set overwrites the cell at the given row for the named column.
func (t *Table) Set(row int, column, value string) bool {
	i, ok := t.index[column]
	if !ok || row < 0 || row >= len(t.rows) {
		return false
	}
	t.rows[row][i] = value
	return true
}

// Row returns the backing slice for a row. Callers must not resize it.
func (t *Table) Row(i int) []string {
	if i < 0 || i >= len(t.rows) {
		return nil
	}
	return t.rows[i]
}

// Append adds a row. The row length must match the column count.
func (t *Table) Append(row []string) error {
	if len(row) != len(t.columns) {
		return fmt.Errorf("table %s: row has %d fields, want %d", t.name, len(row), len(t.columns))
	}
	t.rows = append(t.rows, row)
	return nil
}

// AddColumn appends a new column filled with the given value for existing rows.
func (t *Table) AddColumn(name, fill string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("table %s: empty column name", t.name)
	}
	if _, ok := t.index[name]; ok {
		return fmt.Errorf("table %s: column %q already exists", t.name, name)
	}
	t.index[name] = len(t.columns)
	t.columns = append(t.columns, name)
	for i := range t.rows {
		t.rows[i] = append(t.rows[i], fill)
	}
	return nil
}

// Filter keeps only the rows for which keep returns true and reports how many
// rows were removed.
func (t *Table) Filter(keep func(row int) bool) int {
	kept := t.rows[:0]
	for i := range t.rows {
		if keep(i) {
			kept = append(kept, t.rows[i])
		}
	}
	removed := len(t.rows) - len(kept)
	t.rows = kept
	return removed
}

// DropDuplicatesBy removes rows whose value in the key column was already
// seen, keeping the first occurrence. Rows with an empty key are kept.
func (t *Table) DropDuplicatesBy(column string) int {
	i, ok := t.index[column]
	if !ok {
		return 0
	}
	seen := make(map[string]struct{}, len(t.rows))
	return t.Filter(func(row int) bool {
		key := t.rows[row][i]
		if key == "" {
			return true
		}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
		return true
	})
}

// DropDuplicateRows removes rows identical across every column, keeping the
// first occurrence.
func (t *Table) DropDuplicateRows() int {
	seen := make(map[string]struct{}, len(t.rows))
	return t.Filter(func(row int) bool {
		key := strings.Join(t.rows[row], "\x1f")
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
		return true
	})
}
