package scraper

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mazim-lab/conference-tracker/internal/conference"
	"github.com/mazim-lab/conference-tracker/internal/filter"
)

var announcementID = regexp.MustCompile(`id=(\d+)`)

// ParseListing extracts raw conference entries from a network listing page.
// It walks the conference section headings and their following lists; if no
// section heading matched (page layout drift), it falls back to scanning
// every announcement link on the page. Non-conference items are dropped by
// the entry filter.
func ParseListing(html string, network Network) ([]*conference.Entry, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing listing HTML: %w", err)
	}

	base, err := url.Parse(network.URL())
	if err != nil {
		return nil, fmt.Errorf("parsing network URL: %w", err)
	}

	entries := make([]*conference.Entry, 0)
	doc.Find("h3, h4").Each(func(_ int, heading *goquery.Selection) {
		text := strings.TrimSpace(heading.Text())
		if !isConferenceSection(text) {
			return
		}
		list := heading.Next()
		name := goquery.NodeName(list)
		if name != "ul" && name != "ol" {
			return
		}
		list.Find("li").Each(func(_ int, li *goquery.Selection) {
			if e := parseItem(li, base); e != nil {
				entries = append(entries, e)
			}
		})
	})

	// Fallback: no section heading matched, scan all announcement links.
	if len(entries) == 0 {
		doc.Find(`a[href*="/announcement/?id="]`).Each(func(_ int, link *goquery.Selection) {
			li := link.Closest("li")
			if li.Length() == 0 {
				return
			}
			if e := parseItem(li, base); e != nil {
				entries = append(entries, e)
			}
		})
	}

	kept := make([]*conference.Entry, 0, len(entries))
	for _, e := range entries {
		if !filter.Keep(e.Name) {
			continue
		}
		e.Category = network.Name
		kept = append(kept, e)
	}
	return kept, nil
}

// parseItem extracts one entry from an announcement list item, or nil when
// the item carries no announcement link.
func parseItem(li *goquery.Selection, base *url.URL) *conference.Entry {
	link := li.Find(`a[href*="/announcement/?id="]`).First()
	if link.Length() == 0 {
		return nil
	}
	href, _ := link.Attr("href")

	e := &conference.Entry{
		Name:     strings.TrimSpace(link.Text()),
		SSRNLink: resolveHref(base, href),
	}
	if m := announcementID.FindStringSubmatch(href); m != nil {
		e.SID = m[1]
	}

	li.Find("p").Each(func(_ int, p *goquery.Selection) {
		text := strings.TrimSpace(p.Text())
		switch {
		case strings.HasPrefix(text, "Conference Dates:"):
			e.Dates = strings.TrimSpace(strings.TrimPrefix(text, "Conference Dates:"))
		case strings.HasPrefix(text, "Date:"):
			e.Dates = strings.TrimSpace(strings.TrimPrefix(text, "Date:"))
		case strings.HasPrefix(text, "Location:"):
			e.Location = strings.TrimSpace(strings.TrimPrefix(text, "Location:"))
		case strings.HasPrefix(text, "Posted:"):
			e.Posted = strings.TrimSpace(strings.TrimPrefix(text, "Posted:"))
		}
	})
	return e
}

func resolveHref(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

func isConferenceSection(heading string) bool {
	for _, s := range conferenceSections {
		if strings.Contains(heading, s) {
			return true
		}
	}
	return false
}
