package conference

import (
	"strings"

	"github.com/mazim-lab/conference-tracker/internal/extract"
	"github.com/mazim-lab/conference-tracker/internal/location"
)

// MergeStats summarizes what one merge changed.
type MergeStats struct {
	Added            int
	DeadlinesUpdated int
	DatesUpdated     int
}

// NewRecord builds a fresh record for a previously unseen sid. The deadline
// defaults to the TBD sentinel; start date and location default to empty.
func NewRecord(id int, e *Entry) *Record {
	start, display := extract.ParseRange(e.Dates)
	confidence := ""
	if start != "" {
		confidence = ConfidenceDay
	}
	// Detail-page dates win over listing dates.
	if e.ConfStart != "" {
		start = e.ConfStart
		confidence = ConfidenceDay
		if e.ConfDisplay != "" {
			display = e.ConfDisplay
		}
	}
	if display == "" {
		display = e.Dates
	}
	deadline := e.Deadline
	if deadline == "" {
		deadline = DeadlineTBD
	}
	return &Record{
		ID:             id,
		Name:           e.Name,
		Dates:          display,
		StartDate:      start,
		DateConfidence: confidence,
		Location:       e.Location,
		Country:        location.Country(e.Location),
		Disc:           Disciplines(e.Category, e.Name),
		SID:            e.SID,
		SSRNLink:       e.SSRNLink,
		Deadline:       deadline,
	}
}

// MergeRecord folds one scraped entry into an existing record with the same
// sid and returns the strengthened copy. Every field rule is monotone:
//
//   - deadline: set only when currently empty or TBD; a concrete deadline is
//     never replaced
//   - startDate: a day-confidence date from a detail visit always wins over an
//     empty or month-confidence one, and is never downgraded
//   - location/country: set only when currently empty
//   - disc: set union, tags are only added
//   - name, sid, ssrnLink, url, tier: immutable here
func MergeRecord(old Record, e *Entry) Record {
	r := old
	r.Disc = append([]string(nil), old.Disc...)

	if e.Deadline != "" && (r.Deadline == "" || r.Deadline == DeadlineTBD) {
		r.Deadline = e.Deadline
	}

	if e.ConfStart != "" {
		if r.StartDate == "" || r.DateConfidence != ConfidenceDay {
			r.StartDate = e.ConfStart
			r.DateConfidence = ConfidenceDay
			if e.ConfDisplay != "" {
				r.Dates = e.ConfDisplay
			}
		}
	} else if e.Dates != "" && r.Dates == "" {
		start, display := extract.ParseRange(e.Dates)
		if display != "" {
			r.Dates = display
		}
		if start != "" && r.StartDate == "" {
			r.StartDate = start
			r.DateConfidence = ConfidenceDay
		}
	}

	if e.Location != "" && r.Location == "" {
		r.Location = e.Location
		r.Country = location.Country(e.Location)
	}

	// Detail-only entries carry no category or name; deriving disciplines from
	// them would inject the default tag into every visited record.
	if e.Category != "" || e.Name != "" {
		for _, d := range Disciplines(e.Category, e.Name) {
			if !contains(r.Disc, d) {
				r.Disc = append(r.Disc, d)
			}
		}
	}

	return r
}

// Merge reconciles a scraped batch into the store. Records are matched by
// sid; entries without one are dropped, since they cannot be deduplicated
// safely. The input slice is not mutated: Merge returns a fresh slice with
// fresh record values, computed entirely in memory. Merging the same batch
// twice yields the same result.
func Merge(records []*Record, batch []*Entry) ([]*Record, MergeStats) {
	var stats MergeStats

	merged := make([]*Record, len(records))
	bySID := make(map[string]int, len(records))
	maxID := 0
	for i, r := range records {
		cp := *r
		cp.Disc = append([]string(nil), r.Disc...)
		merged[i] = &cp
		if r.SID != "" {
			bySID[r.SID] = i
		}
		if r.ID > maxID {
			maxID = r.ID
		}
	}
	nextID := maxID + 1

	for _, e := range batch {
		if e.SID == "" {
			continue
		}
		if i, ok := bySID[e.SID]; ok {
			updated := MergeRecord(*merged[i], e)
			if updated.Deadline != merged[i].Deadline {
				stats.DeadlinesUpdated++
			}
			if updated.StartDate != merged[i].StartDate {
				stats.DatesUpdated++
			}
			merged[i] = &updated
		} else {
			merged = append(merged, NewRecord(nextID, e))
			bySID[e.SID] = len(merged) - 1
			nextID++
			stats.Added++
		}
	}

	return merged, stats
}

// Dedupe collapses duplicate sids within a single pass. The first occurrence
// wins; category labels from later occurrences are unioned onto it, so an
// announcement posted under two networks keeps both disciplines.
func Dedupe(batch []*Entry) []*Entry {
	seen := make(map[string]*Entry, len(batch))
	out := make([]*Entry, 0, len(batch))
	for _, e := range batch {
		first, ok := seen[e.SID]
		if !ok {
			seen[e.SID] = e
			out = append(out, e)
			continue
		}
		if e.Category != "" && !strings.Contains(first.Category, e.Category) {
			if first.Category == "" {
				first.Category = e.Category
			} else {
				first.Category += "," + e.Category
			}
		}
	}
	return out
}

// NewSIDs returns the batch entries whose sid is not yet in the store,
// preserving batch order. Used by list-only passes to report the diff without
// persisting anything.
func NewSIDs(records []*Record, batch []*Entry) []*Entry {
	known := make(map[string]bool, len(records))
	for _, r := range records {
		if r.SID != "" {
			known[r.SID] = true
		}
	}
	out := make([]*Entry, 0)
	for _, e := range batch {
		if e.SID != "" && !known[e.SID] {
			out = append(out, e)
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
