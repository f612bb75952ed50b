// Package conference provides the persistent record type and the merge engine
// that reconciles freshly scraped signals into the tracker across repeated,
// overlapping runs.
//
// Records are keyed by their stable source id (sid). The merge policy is
// "only strengthen, never weaken": a concrete deadline is never replaced, a
// day-confidence start date is never downgraded, locations are set only when
// empty, and discipline tags only accumulate. Merging is a pure fixed-point
// operation, so re-applying an identical batch changes nothing.
package conference
