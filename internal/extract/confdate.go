package extract

import "strings"

// Conference-date shapes: day-first optionally ranged across full dates
// ("11 Jul 2026 - 12 Jul 2026"), month-first optionally ranged within the
// month ("July 11-12, 2026").
const (
	dmyRange = `(\d{1,2}(?:st|nd|rd|th)?\s+\w+\s+\d{4}(?:\s*[-–]\s*\d{1,2}(?:st|nd|rd|th)?\s+\w+\s+\d{4})?)`
	mdyRange = `(\w+\s+\d{1,2}(?:st|nd|rd|th)?(?:\s*[-–]\s*\d{1,2}(?:st|nd|rd|th)?)?,?\s+\d{4})`
)

// confDatePatterns is the ordered cascade for the event's own date. Labelled
// fields ("Conference Dates:", "Date:") come before prose phrasings ("will be
// held on", "takes place", "scheduled for").
var confDatePatterns = compileAll([]string{
	`conference\s+dates?\s*[:\-]\s*` + dmyRange,
	`conference\s+dates?\s*[:\-]\s*` + mdyRange,
	`dates?\s+of\s+(?:the\s+)?conference\s*[:\-]\s*` + dmyRange,
	`dates?\s+of\s+(?:the\s+)?conference\s*[:\-]\s*` + mdyRange,
	// standalone "Date:" line, typically at the top of a detail page
	`(?:^|\n)\s*date\s*:\s*` + dmyRange,
	`(?:^|\n)\s*date\s*:\s*` + mdyRange,
	`(?:held|takes?\s+place)\s+(?:on\s+)?` + dmy,
	`(?:held|takes?\s+place)\s+(?:on\s+)?` + mdyOrd,
	`(?:held|takes?\s+place)\s+(?:on\s+)?(\d{1,2}(?:st|nd|rd|th)?[-–]\d{1,2}(?:st|nd|rd|th)?\s+\w+,?\s+\d{4})`,
	`(?:held|takes?\s+place)\s+(?:on\s+)?(\w+\s+\d{1,2}(?:st|nd|rd|th)?[-–]\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4})`,
	`scheduled\s+for\s+` + mdyOrd,
	`scheduled\s+for\s+` + dmy,
})

// ConfDate finds the event's start date in page text. It returns the ISO
// start date plus a display string preserving the source granularity
// ("Jul 11-12" for a range, "Jul 11" for a single day, or the raw capture
// when only the flexible parser could make sense of it). Returns ok=false
// when nothing inside the plausibility window matches.
func ConfDate(text string, w Window) (start, display string, ok bool) {
	for _, pattern := range confDatePatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		raw := strings.TrimSpace(m[1])
		start, display = ParseRange(raw)
		if start == "" {
			if start = ParseFlexible(raw); start != "" {
				display = raw
			}
		}
		if start != "" && w.Contains(yearOf(start)) {
			return start, display, true
		}
		start, display = "", ""
	}
	return "", "", false
}
