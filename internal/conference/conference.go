package conference

import (
	"sort"
	"strings"
)

// DeadlineTBD is the explicit sentinel for "deadline not yet known", distinct
// from an absent field.
const DeadlineTBD = "TBD"

// Start-date confidence tags. A day-confidence date was parsed from source
// text; a month-confidence date had its day component defaulted and may be
// improved by a later detail-page visit.
const (
	ConfidenceDay   = "day"
	ConfidenceMonth = "month"
)

// Record is one tracked conference. Records are created once, when an unseen
// sid is discovered, and thereafter only ever strengthened by Merge. They are
// never deleted.
type Record struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Dates          string   `json:"dates"`
	StartDate      string   `json:"startDate"`
	DateConfidence string   `json:"dateConfidence,omitempty"`
	Location       string   `json:"location"`
	Country        string   `json:"country"`
	Disc           []string `json:"disc"`
	SID            string   `json:"sid"`
	SSRNLink       string   `json:"ssrnLink"`
	Deadline       string   `json:"deadline"`
	URL            string   `json:"url"`
	Tier           string   `json:"tier"`
}

// Entry is one transient scraped listing item, possibly enriched with
// detail-page extraction results. Entries are consumed by Merge and never
// persisted on their own.
type Entry struct {
	Name     string
	Dates    string // raw listing date text
	Location string
	Posted   string
	Category string // comma-joined network names this entry appeared under
	SID      string
	SSRNLink string

	// Detail-page extraction results, when a visit happened.
	Deadline    string // ISO date, or ""
	ConfStart   string // ISO start date, or ""
	ConfDisplay string // human-readable display for ConfStart
}

// InferConfidence derives a confidence tag from a bare start date, for
// records persisted before the explicit tag existed. A day defaulted to the
// 1st is treated as month confidence.
func InferConfidence(startDate string) string {
	switch {
	case startDate == "":
		return ""
	case strings.HasSuffix(startDate, "-01"):
		return ConfidenceMonth
	default:
		return ConfidenceDay
	}
}

// Disciplines derives discipline tags from an entry's source category and
// name. Tags: fin, acct, econ. Defaults to fin when nothing matches, since
// every tracked source is at least finance-adjacent.
func Disciplines(category, name string) []string {
	discs := make(map[string]bool)
	cat := strings.ToLower(category)
	nm := strings.ToLower(name)

	if strings.Contains(cat, "finance") {
		discs["fin"] = true
	}
	if strings.Contains(cat, "accounting") {
		discs["acct"] = true
	}
	if strings.Contains(cat, "economics") || strings.Contains(cat, "econ") {
		discs["econ"] = true
	}
	if strings.Contains(nm, "accounting") {
		discs["acct"] = true
	}
	for _, w := range []string{"economics", "economic", "macroeconom"} {
		if strings.Contains(nm, w) {
			discs["econ"] = true
		}
	}
	if strings.Contains(nm, "finance") {
		discs["fin"] = true
	}

	if len(discs) == 0 {
		return []string{"fin"}
	}
	out := make([]string, 0, len(discs))
	for d := range discs {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}
