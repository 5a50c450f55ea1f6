// Package format renders engine numbers for display.
package format

import (
	"math"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
)

var suffixes = []string{"", "K", "M", "B", "T", "Qa", "Qi", "Sx", "Sp"}

// Number renders a currency amount the way the game shows it: plain
// digits under one thousand, short-scale suffix with at most one decimal
// above. 999 -> "999", 1500000 -> "1.5M".
func Number(v float64) string {
	if math.IsNaN(v) || v < 0 {
		v = 0
	}
	if v < 1000 {
		return strconv.FormatFloat(math.Floor(v), 'f', -1, 64)
	}

	idx := 0
	for v >= 1000 && idx < len(suffixes)-1 {
		v /= 1000
		idx++
	}
	return strconv.FormatFloat(math.Floor(v*10)/10, 'f', -1, 64) + suffixes[idx]
}

// Commas renders an exact amount with thousands separators.
func Commas(v float64) string {
	return humanize.Commaf(math.Floor(v))
}

// Ago renders a timestamp relative to now ("3 minutes ago").
func Ago(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return humanize.Time(t)
}
