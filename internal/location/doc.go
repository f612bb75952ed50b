// Package location maps free-form venue text to a normalized country.
//
// Detection is an ordered lookup, first match wins: explicit country-name
// keyword, then a known-city table, then a US state abbreviation (which
// defaults to USA), then virtual/remote keywords. Anything else resolves to
// the "Unknown" sentinel. The lookup is pure and deterministic.
package location
