package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// months maps the first three letters of an English month name to its number.
// Lookup is by prefix so "Sept." and "September" both resolve to 9.
var months = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// monthNumber resolves a month word to its number, or 0 if unknown.
func monthNumber(word string) time.Month {
	w := strings.ToLower(word)
	if len(w) > 3 {
		w = w[:3]
	}
	return months[w]
}

var (
	isoShape        = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`)
	slashShape      = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})`)
	monthFirstShape = regexp.MustCompile(`^([A-Za-z]+)\s+(\d{1,2})(?:st|nd|rd|th)?,?\s+(\d{4})`)
	dayFirstShape   = regexp.MustCompile(`^(\d{1,2})(?:st|nd|rd|th)?\s+([A-Za-z]+),?\s+(\d{4})`)
)

// ParseFlexible normalizes a captured date substring to ISO "YYYY-MM-DD".
// Supported shapes: "2026-02-25", "2/25/2026", "February 25, 2026",
// "25 February 2026", each tolerating ordinal suffixes and an optional comma.
// Returns "" if no shape matches or the result is not a real calendar date.
func ParseFlexible(text string) string {
	if text == "" {
		return ""
	}
	text = strings.TrimSpace(text)
	text = strings.TrimRight(text, ".")
	// "Nov. 19 2025" -> "Nov 19 2025"
	text = strings.ReplaceAll(text, ".", "")

	if m := isoShape.FindStringSubmatch(text); m != nil {
		return validISO(atoi(m[1]), time.Month(atoi(m[2])), atoi(m[3]))
	}
	if m := slashShape.FindStringSubmatch(text); m != nil {
		return validISO(atoi(m[3]), time.Month(atoi(m[1])), atoi(m[2]))
	}
	if m := monthFirstShape.FindStringSubmatch(text); m != nil {
		if month := monthNumber(m[1]); month != 0 {
			return validISO(atoi(m[3]), month, atoi(m[2]))
		}
	}
	if m := dayFirstShape.FindStringSubmatch(text); m != nil {
		if month := monthNumber(m[2]); month != 0 {
			return validISO(atoi(m[3]), month, atoi(m[1]))
		}
	}
	return ""
}

// validISO formats the components as an ISO date, rejecting impossible
// calendar dates such as February 30.
func validISO(year int, month time.Month, day int) string {
	if year == 0 || month < time.January || month > time.December || day < 1 || day > 31 {
		return ""
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

var (
	rangeShape  = regexp.MustCompile(`^(\d{1,2})\s+([A-Za-z]+)\s+(\d{4})\s*-\s*(\d{1,2})\s+([A-Za-z]+)\s+(\d{4})`)
	singleShape = regexp.MustCompile(`^(\d{1,2})\s+([A-Za-z]+)\s+(\d{4})`)
)

// ParseRange parses a conference date string such as "11 Jul 2026" or
// "11 Jul 2026 - 12 Jul 2026". It returns the ISO start date and a compact
// display string that preserves the original granularity ("Jul 11-12" for a
// same-month range, "Jul 11 - Aug 12" across months, "Jul 11" for a single
// day). If the text does not match either shape, start is "" and the display
// falls back to the trimmed input.
func ParseRange(text string) (start, display string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ""
	}

	if m := rangeShape.FindStringSubmatch(text); m != nil {
		m1, m2 := monthNumber(m[2]), monthNumber(m[5])
		if m1 != 0 && m2 != 0 {
			start = validISO(atoi(m[3]), m1, atoi(m[1]))
			if start != "" {
				a, b := monthAbbrev(m[2]), monthAbbrev(m[5])
				if a == b {
					display = fmt.Sprintf("%s %d-%d", a, atoi(m[1]), atoi(m[4]))
				} else {
					display = fmt.Sprintf("%s %d - %s %d", a, atoi(m[1]), b, atoi(m[4]))
				}
				return start, display
			}
		}
	}

	if m := singleShape.FindStringSubmatch(text); m != nil {
		if month := monthNumber(m[2]); month != 0 {
			start = validISO(atoi(m[3]), month, atoi(m[1]))
			if start != "" {
				return start, fmt.Sprintf("%s %d", monthAbbrev(m[2]), atoi(m[1]))
			}
		}
	}

	return "", text
}

// monthAbbrev returns the first three letters of a month word as written.
func monthAbbrev(word string) string {
	if len(word) > 3 {
		return word[:3]
	}
	return word
}

// Window is the configured range of acceptable calendar years for an
// extracted date. It guards against unrelated years elsewhere in body text,
// such as copyright lines, being mistaken for deadlines.
type Window struct {
	Min int
	Max int
}

// WindowAround derives a plausibility window from the as-of date: one year
// back (recently passed deadlines still on the page) through three years out.
func WindowAround(asOf time.Time) Window {
	return Window{Min: asOf.Year() - 1, Max: asOf.Year() + 3}
}

// Contains reports whether the year lies inside the window.
func (w Window) Contains(year int) bool {
	return year >= w.Min && year <= w.Max
}

// yearOf extracts the year from an ISO date string.
func yearOf(iso string) int {
	if len(iso) < 4 {
		return 0
	}
	return atoi(iso[:4])
}
