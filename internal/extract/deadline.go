package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Pattern fragments shared across the deadline cascade.
const (
	// dayName optionally consumes a leading weekday ("Friday, ...").
	dayName = `(?:(?:Monday|Tuesday|Wednesday|Thursday|Friday|Saturday|Sunday),?\s+)?`
	// filler bridges a bounded span of qualifier text between the keyword and
	// the date, e.g. "11:59 PM EST," or "midnight AoE,".
	filler = `(?:[^,\n]{0,40}?,\s*)?`
	// mdy matches "Month DD[,] YYYY"; dmy matches "DD Month[,] YYYY" with an
	// optional ordinal suffix on the day.
	mdy = `(\w+\s+\d{1,2},?\s+\d{4})`
	dmy = `(\d{1,2}(?:st|nd|rd|th)?\s+\w+,?\s+\d{4})`
	// mdyOrd allows an ordinal day in the month-first shape ("March 3rd, 2026").
	mdyOrd = `(\w+\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4})`
)

// deadlinePatterns is the ordered cascade for year-bearing deadlines: most
// contextually specific first, generic fallbacks last, first match wins.
var deadlinePatterns = compileAll([]string{
	`submission\s+deadline[:\s]+` + filler + mdy,
	`submission\s+deadline[:\s]+` + filler + dmy,
	`submission\s+deadline\s+is\s+` + dayName + filler + mdy,
	`submission\s+deadline\s+is\s+` + dayName + filler + dmy,
	`deadline[:\s]+` + filler + mdy,
	`deadline[:\s]+` + filler + dmy,
	`deadline[:\s]+` + filler + `(\d{1,2}/\d{1,2}/\d{4})`,
	`deadline[:\s]+` + filler + `(\d{4}-\d{2}-\d{2})`,
	`submit\s+(?:papers?|manuscripts?)\s+by\s+` + filler + mdy,
	`submit\s+(?:papers?|manuscripts?)\s+by\s+` + filler + dmy,
	`submitted?\s+by\s+` + filler + mdy,
	`submitted?\s+by\s+` + filler + dmy,
	`due\s+(?:by|on)\s+` + filler + mdy,
	`due\s+(?:by|on)\s+` + filler + dmy,
	`no\s+later\s+than\s+` + filler + dmy,
	`no\s+later\s+than\s+` + filler + mdy,
	`before\s+` + mdy,
	`before\s+` + dmy,
	`deadline\s+for\s+\w+\s+is\s+` + filler + mdyOrd,
	`deadline\s+for\s+\w+\s+is\s+` + filler + dmy,
	`\bby\s+` + dayName + `(\w+\.?\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4})`,
	`\bby\s+` + dayName + dmy,
	// "by Nov 19 2025", abbreviated month with no comma
	`\bby\s+` + dayName + `(\w{3,9}\.?\s+\d{1,2}\s+\d{4})`,
	`\bon\s+` + dmy,
	`\bon\s+` + mdyOrd,
	`\b(?:until|through)\s+(?:(?:the\s+)?(?:Monday|Tuesday|Wednesday|Thursday|Friday|Saturday|Sunday),?\s+)?` + filler + mdyOrd,
	`\b(?:until|through)\s+` + dayName + dmy,
	`due[:\s]+` + dayName + mdyOrd,
	`due[:\s]+` + dayName + dmy,
	`deadline\s+of\s+` + dayName + mdyOrd,
	`deadline\s+of\s+` + dayName + dmy,
	`extended\s+to\s+` + dayName + mdyOrd,
	`extended\s+to\s+` + dayName + dmy,
	`closing.{0,30}?` + mdyOrd,
	`closing.{0,30}?` + dmy,
	// bare dates near deadline/submission context
	`deadline.{0,60}?(\w+\s+\d{1,2},\s+\d{4})`,
	`deadline.{0,60}?` + dmy,
	`submi.{0,60}?(\w+\s+\d{1,2}(?:st|nd|rd|th)?,\s+\d{4})`,
	`submi.{0,60}?` + dmy,
	// reverse order: date before the keyword ("November 30th 2025 ... Closing")
	`(\w+\s+\d{1,2}(?:st|nd|rd|th)?\s+\d{4}).{0,40}?(?:closing|deadline)`,
	`(\d{1,2}(?:st|nd|rd|th)?\s+\w+,?\s+\d{4}).{0,40}?(?:closing|deadline)`,
})

// noYearPatterns is the second cascade, run only when no year-bearing pattern
// matched. The captured date lacks a year; Deadline resolves it from the
// as-of date.
var noYearPatterns = compileAll([]string{
	`deadline\s+is\s+` + dayName + `(\d{1,2}(?:st|nd|rd|th)?\s+\w+)\b`,
	`deadline\s+is\s+` + dayName + `(\w+\.?\s+\d{1,2}(?:st|nd|rd|th)?)\b`,
	`(?:by|on|until|through|before)\s+` + dayName + `(\w+\.?\s+\d{1,2}(?:st|nd|rd|th)?)\b`,
	`(?:by|on|until|through|before)\s+` + dayName + `(\d{1,2}(?:st|nd|rd|th)?\s+\w+)\b`,
	`deadline.{0,60}?(\w+\s+\d{1,2}(?:st|nd|rd|th)?)\b`,
	`closing.{0,30}?(\w+\s+\d{1,2}(?:st|nd|rd|th)?)\b`,
	`due[:\s]+` + dayName + `(\w+\s+\d{1,2}(?:st|nd|rd|th)?)\b`,
})

func compileAll(patterns []string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(`(?i)` + p)
	}
	return compiled
}

// Deadline finds a submission deadline in page text and returns it in ISO
// form. The as-of date is only used to resolve year-less phrasings; extraction
// never consults the wall clock. Returns ("", false) when no pattern yields a
// date inside the plausibility window; that is an expected outcome, not an
// error.
func Deadline(text string, asOf time.Time, w Window) (string, bool) {
	for _, pattern := range deadlinePatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if parsed := ParseFlexible(m[1]); parsed != "" && w.Contains(yearOf(parsed)) {
			return parsed, true
		}
	}

	// Second pass: year-less shapes. Calls for papers reference an upcoming
	// deadline, so try the as-of year first, then next year, then last year.
	for _, pattern := range noYearPatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		raw := strings.TrimRight(strings.TrimSpace(m[1]), ".")
		for _, year := range []int{asOf.Year(), asOf.Year() + 1, asOf.Year() - 1} {
			parsed := ParseFlexible(raw + ", " + strconv.Itoa(year))
			if parsed == "" {
				parsed = ParseFlexible(raw + " " + strconv.Itoa(year))
			}
			if parsed != "" && w.Contains(yearOf(parsed)) {
				return parsed, true
			}
		}
	}

	return "", false
}
