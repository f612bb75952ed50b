// Package scraper fetches and parses SSRN professional-announcement pages.
//
// Listing pages for each network (Finance, Accounting, Economics) are parsed
// into raw entries; detail pages are fetched as plain text for the extraction
// cascades. All network access goes through the Fetcher interface, so the
// extraction and merge core can be tested against canned fixtures with no
// dependency on any particular page-rendering mechanism.
package scraper
