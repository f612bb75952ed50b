// Package extract recovers structured dates from unstructured announcement text.
//
// The extract package implements two ordered pattern cascades: one for
// submission deadlines and one for the conference's own dates. Patterns are
// evaluated top to bottom, most specific first, and the first match whose year
// falls inside the plausibility window wins. Captured date substrings are
// normalized to ISO form by ParseFlexible, which understands the handful of
// shapes that appear on announcement pages (ISO, slash, "Month DD, YYYY",
// "DD Month YYYY", with optional ordinal suffixes).
//
// All extraction is pure: the caller supplies the as-of date used to resolve
// year-less phrasings such as "deadline is March 3", so results are fully
// deterministic and testable against canned page text.
package extract
