package main

import (
	"strconv"
	"strings"
	"time"
)

// summaryDurationUnit keeps printed durations readable.
const summaryDurationUnit = time.Millisecond

func formatPct(pct float64) string {
	s := strconv.FormatFloat(pct, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s + "%"
}
