package cleaning

import (
	"strings"
	"time"

	"olist/internal/dataset"
)

// TimestampLayout is the canonical timestamp format used across the Olist
// exports and in every cleaned file this pipeline writes.
const TimestampLayout = "2006-01-02 15:04:05"

var timestampLayouts = []string{
	TimestampLayout,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// missingTimestampMarkers are values the source spreadsheets use for absent
// timestamps. "########" is the Excel narrow-column artifact.
var missingTimestampMarkers = map[string]struct{}{
	"########": {},
	"nan":      {},
	"NaN":      {},
}

// ParseTimestamp parses a raw timestamp cell. The second return value is
// false for empty cells, missing markers, and unparseable values.
func ParseTimestamp(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	if _, missing := missingTimestampMarkers[value]; missing {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// standardizeTimestamps rewrites the listed columns into TimestampLayout,
// blanking missing markers and unparseable values. It reports how many
// cells changed. Columns absent from the table are skipped.
func standardizeTimestamps(t *dataset.Table, columns []string) int {
	changed := 0
	for _, column := range columns {
		if !t.HasColumn(column) {
			continue
		}
		for row := 0; row < t.Len(); row++ {
			value := t.Value(row, column)
			ts, ok := ParseTimestamp(value)
			normalized := ""
			if ok {
				normalized = ts.Format(TimestampLayout)
			}
			if normalized != value {
				t.Set(row, column, normalized)
				changed++
			}
		}
	}
	return changed
}
