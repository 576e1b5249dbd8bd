package merge

import (
	"fmt"

	"olist/internal/dataset"
)

// leftJoin joins right onto left by the shared key column. Every left row
// appears at least once; a left row with multiple matches appears once per
// match, and a left row with none keeps empty right fields. Column names
// must not collide outside the key.
func leftJoin(left, right *dataset.Table, key string) (*dataset.Table, error) {
	leftKey, ok := left.ColumnIndex(key)
	if !ok {
		return nil, fmt.Errorf("join on %s: column missing from %s", key, left.Name())
	}
	rightKey, ok := right.ColumnIndex(key)
	if !ok {
		return nil, fmt.Errorf("join on %s: column missing from %s", key, right.Name())
	}

	rightColumns := make([]string, 0, right.ColumnCount()-1)
	rightIndices := make([]int, 0, right.ColumnCount()-1)
	for i, col := range right.Columns() {
		if i == rightKey {
			continue
		}
		if left.HasColumn(col) {
			return nil, fmt.Errorf("join on %s: column %s exists on both sides", key, col)
		}
		rightColumns = append(rightColumns, col)
		rightIndices = append(rightIndices, i)
	}

	joined, err := dataset.New(left.Name(), append(left.Columns(), rightColumns...))
	if err != nil {
		return nil, err
	}

	matches := make(map[string][]int, right.Len())
	for row := 0; row < right.Len(); row++ {
		value := right.Row(row)[rightKey]
		if value == "" {
			continue
		}
		matches[value] = append(matches[value], row)
	}

	width := left.ColumnCount() + len(rightColumns)
	for row := 0; row < left.Len(); row++ {
		leftCells := left.Row(row)
		rightRows := matches[leftCells[leftKey]]
		if len(rightRows) == 0 {
			out := make([]string, width)
			copy(out, leftCells)
			if err := joined.Append(out); err != nil {
				return nil, err
			}
			continue
		}
		for _, rightRow := range rightRows {
			out := make([]string, width)
			copy(out, leftCells)
			cells := right.Row(rightRow)
			for i, col := range rightIndices {
				out[left.ColumnCount()+i] = cells[col]
			}
			if err := joined.Append(out); err != nil {
				return nil, err
			}
		}
	}
	return joined, nil
}
