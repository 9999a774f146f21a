// ABOUTME: Time parsing utilities for publish dates scraped from article markup
// ABOUTME: Tries known layouts first, then falls back to dateparse for free-form strings

package time

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// PublishedLayout renders publish dates with a space separator and numeric zone
const PublishedLayout = "2006-01-02 15:04:05-07:00"

// Layouts common in article meta tags and JSON-LD
var timeFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	time.RFC1123,
	time.RFC1123Z,
	time.RFC822,
	time.RFC822Z,
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02 Jan 2006 15:04:05 MST",
	"02 Jan 2006 15:04:05 -0700",
	"Mon, 02 Jan 2006 15:04:05 MST",
	"Mon, 02 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04:05 -0700",
}

// ParseFlexibleTime attempts to parse a time string, returning the zero time on failure
func ParseFlexibleTime(timeStr string) time.Time {
	timeStr = strings.TrimSpace(timeStr)
	if timeStr == "" {
		return time.Time{}
	}

	for _, format := range timeFormats {
		if t, err := time.Parse(format, timeStr); err == nil {
			return t
		}
	}

	if t, err := dateparse.ParseIn(timeStr, time.UTC); err == nil {
		return t
	}

	return time.Time{}
}

// FormatPublished normalizes a scraped publish date. Unparseable input is
// returned trimmed but otherwise verbatim; empty stays empty.
func FormatPublished(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if t := ParseFlexibleTime(raw); !t.IsZero() {
		return t.Format(PublishedLayout)
	}
	return raw
}
