package filter

import "strings"

// denylist marks non-conference announcements: prizes, PhD programs, summer
// schools, job posts, journal calls, and similar listing noise.
var denylist = []string{
	"prize", "award", "ph.d.", "phd in ", "professorship", "assistant professor",
	"finance theory insights", "data grant", "sbur collection",
	"farfe awards", "pre-announcments:", "ecomod school",
	"calling scholars interested", "call for registration",
	"multinational finance journal", "fully funded",
	"research programme", "research program", "monetary research",
	"call for proposals", "call for applications", "call for nominations",
	"call for research projects", "dissertation proposal", "dissertation grant",
	"doctoral internship", "doctoral colloquium",
	"hackathon", "webinar", "student research competition",
	"postdoctoral", "postdoc ", "research associate",
	"memorial prize", "memorial award",
	"graduate programme", "graduate program",
	"advances in econometrics volume", "bayesian macroeconometrics",
	"estimating the impact of", "education policy hackathon",
	"open-bid applied research", "data science summer school",
	"corporate governance summer school", "lse corporate governance summer",
	"call for papers:", "call for papers!",
	"now accepting submissions", "research grants provided by",
	// job postings, journal calls, and edited volumes
	"phd", "doctoral position", "faculty position", "professor of",
	"call for chapters", "special issue", "journal of", "edited book",
	"tenure track", "instructor", "lecturer",
	"fellowship", "scholarship",
}

// exactDenylist rejects an entry only when the word "conference" is absent
// from its name.
var exactDenylist = []string{
	"summer school",
	"call for job market paper",
}

// safelist overrides the denylist: real conferences that happen to contain a
// denylisted phrase ("Winter Finance Workshop for PhD Students") are kept.
var safelist = []string{
	"annual meeting", "annual conference", "midyear meeting",
	"finance conference", "accounting conference", "economics conference",
	"annual congress", "winter finance", "research conference",
	"workshop", "symposium", "forum", "summit",
}

// NonConference reports whether the entry name describes something other than
// a conference (a prize, a PhD program, a job posting, ...). The safelist
// always wins over the denylist.
func NonConference(name string) bool {
	lower := strings.ToLower(name)
	for _, kw := range denylist {
		if strings.Contains(lower, kw) {
			for _, safe := range safelist {
				if strings.Contains(lower, safe) {
					return false
				}
			}
			return true
		}
	}
	for _, kw := range exactDenylist {
		if strings.Contains(lower, kw) && !strings.Contains(lower, "conference") {
			return true
		}
	}
	return false
}

// Keep is the keep/drop decision for a raw listing entry.
func Keep(name string) bool {
	return !NonConference(name)
}
