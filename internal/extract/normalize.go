package extract

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// timestampLayout is the only timestamp shape the messages use.
const timestampLayout = "2006-01-02 15:04:05"

// isoLayout is the normalized form used where a category re-renders dates.
const isoLayout = "2006-01-02T15:04:05"

// parseAmount converts an amount capture to a whole-RWF integer, stripping
// thousands separators ("1,200" and "1200" both yield 1200). Amounts are
// whole minor units and never negative; anything else is a parse failure,
// which callers treat as a miss for the whole message.
func parseAmount(s string) (int, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative amount %d", n)
	}
	return n, nil
}

// normalizeTimestamp attempts a strict parse of a captured timestamp. On
// success it returns the canonical rendering; on failure the trimmed raw
// capture passes through unchanged. Dates are best effort and never fail a
// record.
func normalizeTimestamp(s string) string {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(timestampLayout, s); err == nil {
		return t.Format(timestampLayout)
	}
	return s
}

// isoTimestamp renders a captured timestamp as ISO-8601 when it parses,
// falling back to the trimmed raw capture.
func isoTimestamp(s string) string {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(timestampLayout, s); err == nil {
		return t.Format(isoLayout)
	}
	return s
}
