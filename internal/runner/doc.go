// Package runner orchestrates one scrape pass over the conference store.
//
// A pass runs in one of four mutually exclusive modes. full scrapes every
// source and visits detail pages for new, TBD-deadline, and vague-date
// records; deadlines-only restricts visits to TBD-deadline records; new-only
// visits only newly discovered records, keeping frequent polling cheap;
// list-only reports the diff against the store without visiting or persisting
// anything. Every pass computes the fully merged store in memory before the
// single terminal write.
package runner
