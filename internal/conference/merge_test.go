package conference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(sid, name string) *Entry {
	return &Entry{
		Name:     name,
		SID:      sid,
		SSRNLink: "https://www.ssrn.com/announcement/?id=" + sid,
		Category: "Finance",
	}
}

func TestMergeNewRecord(t *testing.T) {
	e := entry("12345", "Winter Finance Conference")
	e.Dates = "11 Jul 2026 - 12 Jul 2026"
	e.Location = "Whistler, Canada"

	merged, stats := Merge(nil, []*Entry{e})

	require.Len(t, merged, 1)
	assert.Equal(t, 1, stats.Added)

	r := merged[0]
	assert.Equal(t, 1, r.ID)
	assert.Equal(t, "12345", r.SID)
	assert.Equal(t, "Winter Finance Conference", r.Name)
	assert.Equal(t, DeadlineTBD, r.Deadline, "deadline defaults to the TBD sentinel")
	assert.Equal(t, "2026-07-11", r.StartDate)
	assert.Equal(t, ConfidenceDay, r.DateConfidence)
	assert.Equal(t, "Jul 11-12", r.Dates)
	assert.Equal(t, "Canada", r.Country)
	assert.Equal(t, []string{"fin"}, r.Disc)
}

func TestMergeDropsEntriesWithoutSID(t *testing.T) {
	e := entry("", "Nameless Conference")
	merged, stats := Merge(nil, []*Entry{e})
	assert.Empty(t, merged)
	assert.Zero(t, stats.Added)
}

func TestMergeDeadlineNeverDowngraded(t *testing.T) {
	merged, _ := Merge(nil, []*Entry{entry("12345", "Conf")})
	require.Equal(t, DeadlineTBD, merged[0].Deadline)

	first := entry("12345", "Conf")
	first.Deadline = "2026-05-01"
	merged, stats := Merge(merged, []*Entry{first})
	assert.Equal(t, "2026-05-01", merged[0].Deadline)
	assert.Equal(t, 1, stats.DeadlinesUpdated)

	// A later, different concrete deadline must not replace the first.
	second := entry("12345", "Conf")
	second.Deadline = "2026-06-01"
	merged, stats = Merge(merged, []*Entry{second})
	assert.Equal(t, "2026-05-01", merged[0].Deadline)
	assert.Zero(t, stats.DeadlinesUpdated)
}

func TestMergeStartDateConfidence(t *testing.T) {
	records := []*Record{{
		ID:             1,
		SID:            "77",
		Name:           "Summer Workshop",
		StartDate:      "2026-07-01",
		DateConfidence: ConfidenceMonth,
		Dates:          "July 2026",
		Deadline:       DeadlineTBD,
	}}

	// A day-confidence date from a detail visit wins over month confidence.
	e := &Entry{SID: "77", ConfStart: "2026-07-11", ConfDisplay: "Jul 11-12"}
	merged, stats := Merge(records, []*Entry{e})
	assert.Equal(t, "2026-07-11", merged[0].StartDate)
	assert.Equal(t, ConfidenceDay, merged[0].DateConfidence)
	assert.Equal(t, "Jul 11-12", merged[0].Dates)
	assert.Equal(t, 1, stats.DatesUpdated)

	// A later signal never downgrades day confidence.
	e2 := &Entry{SID: "77", ConfStart: "2026-07-12", ConfDisplay: "Jul 12"}
	merged, stats = Merge(merged, []*Entry{e2})
	assert.Equal(t, "2026-07-11", merged[0].StartDate)
	assert.Zero(t, stats.DatesUpdated)
}

func TestMergeLocationOnlyWhenEmpty(t *testing.T) {
	merged, _ := Merge(nil, []*Entry{entry("9", "Conf")})
	require.Empty(t, merged[0].Location)

	e := entry("9", "Conf")
	e.Location = "Amsterdam"
	merged, _ = Merge(merged, []*Entry{e})
	assert.Equal(t, "Amsterdam", merged[0].Location)
	assert.Equal(t, "Netherlands", merged[0].Country)

	e2 := entry("9", "Conf")
	e2.Location = "Paris"
	merged, _ = Merge(merged, []*Entry{e2})
	assert.Equal(t, "Amsterdam", merged[0].Location, "a set location is never replaced")
	assert.Equal(t, "Netherlands", merged[0].Country)
}

func TestMergeDisciplinesAccumulate(t *testing.T) {
	merged, _ := Merge(nil, []*Entry{entry("5", "Conf")})
	assert.Equal(t, []string{"fin"}, merged[0].Disc)

	e := entry("5", "Conf")
	e.Category = "Economics"
	merged, _ = Merge(merged, []*Entry{e})
	assert.ElementsMatch(t, []string{"fin", "econ"}, merged[0].Disc)

	// Tags are never removed.
	merged, _ = Merge(merged, []*Entry{entry("5", "Conf")})
	assert.ElementsMatch(t, []string{"fin", "econ"}, merged[0].Disc)
}

func TestMergeImmutableFields(t *testing.T) {
	records := []*Record{{
		ID:       3,
		SID:      "42",
		Name:     "Original Name",
		SSRNLink: "https://www.ssrn.com/announcement/?id=42",
		URL:      "https://conf.example.org",
		Tier:     "2",
		Deadline: "2026-01-15",
	}}

	e := entry("42", "Renamed Conference")
	e.SSRNLink = "https://elsewhere.example.org"
	merged, _ := Merge(records, []*Entry{e})

	r := merged[0]
	assert.Equal(t, "Original Name", r.Name)
	assert.Equal(t, "https://www.ssrn.com/announcement/?id=42", r.SSRNLink)
	assert.Equal(t, "https://conf.example.org", r.URL)
	assert.Equal(t, "2", r.Tier, "tier belongs to the classifier and is passed through")
}

func TestMergeIDAllocation(t *testing.T) {
	merged, _ := Merge(nil, []*Entry{entry("1", "A"), entry("2", "B")})
	require.Len(t, merged, 2)
	assert.Equal(t, 1, merged[0].ID)
	assert.Equal(t, 2, merged[1].ID)

	// IDs keep increasing past the historical maximum, never reused.
	merged, _ = Merge([]*Record{{ID: 17, SID: "x"}}, []*Entry{entry("3", "C")})
	assert.Equal(t, 18, merged[1].ID)
}

func TestMergeIdempotent(t *testing.T) {
	store := []*Record{{
		ID:       1,
		SID:      "11",
		Name:     "Existing Conference",
		Deadline: DeadlineTBD,
	}}

	e := entry("22", "Fresh Conference")
	e.Dates = "11 Jul 2026"
	e.Location = "London"
	e.Deadline = "2026-03-01"
	update := entry("11", "Existing Conference")
	update.Deadline = "2026-02-25"
	batch := []*Entry{e, update}

	once, _ := Merge(store, batch)
	twice, stats := Merge(once, batch)

	assert.Equal(t, once, twice, "re-applying an identical batch must be a no-op")
	assert.Zero(t, stats.Added)
	assert.Zero(t, stats.DeadlinesUpdated)
	assert.Zero(t, stats.DatesUpdated)
}

func TestMergeDoesNotMutateInput(t *testing.T) {
	store := []*Record{{ID: 1, SID: "11", Deadline: DeadlineTBD, Disc: []string{"fin"}}}
	e := entry("11", "Conf")
	e.Deadline = "2026-02-25"
	e.Category = "Economics"

	_, _ = Merge(store, []*Entry{e})

	assert.Equal(t, DeadlineTBD, store[0].Deadline)
	assert.Equal(t, []string{"fin"}, store[0].Disc)
}

func TestMergeMonotone(t *testing.T) {
	// No strengthen-only field ever regresses across an arbitrary sequence of
	// merges.
	batches := [][]*Entry{
		{entry("1", "Conf")},
		{func() *Entry { e := entry("1", "Conf"); e.Deadline = "2026-05-01"; return e }()},
		{func() *Entry { e := entry("1", "Conf"); e.ConfStart = "2026-07-11"; e.ConfDisplay = "Jul 11"; return e }()},
		{entry("1", "Conf")},
		{func() *Entry { e := entry("1", "Conf"); e.Deadline = "2027-01-01"; e.Location = "Oslo"; return e }()},
	}

	var records []*Record
	var prev *Record
	for _, batch := range batches {
		records, _ = Merge(records, batch)
		r := records[0]
		if prev != nil {
			if prev.Deadline != DeadlineTBD {
				assert.Equal(t, prev.Deadline, r.Deadline)
			}
			if prev.DateConfidence == ConfidenceDay {
				assert.Equal(t, prev.StartDate, r.StartDate)
			}
			assert.Subset(t, r.Disc, prev.Disc)
		}
		prev = r
	}
	assert.Equal(t, "2026-05-01", records[0].Deadline)
	assert.Equal(t, "2026-07-11", records[0].StartDate)
}

func TestDedupe(t *testing.T) {
	a := entry("7", "Shared Conference")
	a.Category = "Finance"
	b := entry("7", "Shared Conference")
	b.Category = "Economics"
	c := entry("8", "Other Conference")

	out := Dedupe([]*Entry{a, b, c})
	assert.Len(t, out, 2)
	assert.Equal(t, "Finance,Economics", out[0].Category)
	assert.Equal(t, "8", out[1].SID)
}

func TestNewSIDs(t *testing.T) {
	records := []*Record{{ID: 1, SID: "1"}}
	batch := []*Entry{entry("1", "Known"), entry("2", "Fresh"), entry("", "No SID")}

	fresh := NewSIDs(records, batch)
	assert.Len(t, fresh, 1)
	assert.Equal(t, "2", fresh[0].SID)
}
