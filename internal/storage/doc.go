// Package storage provides JSON-file persistence for the conference store.
//
// The store is a flat sequence of records, read fully at pass start and
// rewritten fully at pass end. Saves are atomic: the new contents are written
// to a temporary file in the same directory and renamed over the old one, so
// a crash mid-pass never leaves a partially-written store. A missing or
// corrupt store file is a fatal error at load time, before any mutation
// happens; Init creates an empty store for first runs.
package storage
