// Package cli wires the scrape passes into a cobra command.
//
// Mode flags select the pass (full by default, or one of --deadlines-only,
// --new-only, --list-only). Settings resolve flag first, then an optional
// viper-backed config file (conference-tracker.yaml) or environment
// variables prefixed CONFERENCE_TRACKER_, then built-in defaults.
package cli
