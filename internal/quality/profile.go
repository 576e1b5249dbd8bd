// Package quality profiles raw tables before cleaning: row and column
// counts, full-row duplicates, and per-column missing-value percentages.
package quality

import (
	"math"
	"strings"

	"olist/internal/dataset"
)

// ColumnProfile reports missing values for one column.
type ColumnProfile struct {
	Name       string
	Missing    int
	MissingPct float64
}

// Profile summarizes the quality of one raw table.
type Profile struct {
	Dataset       string
	Rows          int
	Columns       int
	DuplicateRows int
	MissingByCol  []ColumnProfile
}

// Assess profiles a table. MissingByCol lists only columns with at least one
// missing value, in header order, with percentages rounded to two decimals.
func Assess(t *dataset.Table) Profile {
	profile := Profile{
		Dataset: t.Name(),
		Rows:    t.Len(),
		Columns: t.ColumnCount(),
	}

	columns := t.Columns()
	missing := make([]int, len(columns))
	seen := make(map[string]struct{}, t.Len())
	for row := 0; row < t.Len(); row++ {
		cells := t.Row(row)
		for i, cell := range cells {
			if strings.TrimSpace(cell) == "" {
				missing[i]++
			}
		}
		key := strings.Join(cells, "\x1f")
		if _, dup := seen[key]; dup {
			profile.DuplicateRows++
		} else {
			seen[key] = struct{}{}
		}
	}

	for i, col := range columns {
		if missing[i] == 0 {
			continue
		}
		pct := 0.0
		if t.Len() > 0 {
			pct = math.Round(float64(missing[i])/float64(t.Len())*100*100) / 100
		}
		profile.MissingByCol = append(profile.MissingByCol, ColumnProfile{
			Name:       col,
			Missing:    missing[i],
			MissingPct: pct,
		})
	}
	return profile
}
