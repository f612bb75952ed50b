// Package filter classifies raw listing entries as conference or
// non-conference announcements.
//
// Announcement feeds mix real calls for papers with prizes, faculty
// positions, summer schools, and similar noise. A denylist of non-conference
// phrases marks an entry for rejection; a safelist of conference phrases
// ("annual meeting", "workshop", "symposium", ...) overrides the denylist and
// always wins. A secondary exact-phrase denylist rejects only when the word
// "conference" is absent from the name. Classification is deterministic and
// case-insensitive.
package filter
