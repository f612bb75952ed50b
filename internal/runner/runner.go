package runner

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/mazim-lab/conference-tracker/internal/conference"
	"github.com/mazim-lab/conference-tracker/internal/extract"
	"github.com/mazim-lab/conference-tracker/internal/logger"
	"github.com/mazim-lab/conference-tracker/internal/scraper"
	"github.com/mazim-lab/conference-tracker/internal/storage"
)

// Mode selects which records receive detail-page visits during a pass.
type Mode string

const (
	ModeFull          Mode = "full"
	ModeDeadlinesOnly Mode = "deadlines-only"
	ModeNewOnly       Mode = "new-only"
	ModeListOnly      Mode = "list-only"
)

// Config carries the tunables of a pass.
type Config struct {
	// AsOf anchors year inference and the plausibility window. It is an
	// explicit input so extraction stays deterministic.
	AsOf time.Time

	// Window is the range of acceptable years for extracted dates. Zero value
	// means derive it from AsOf.
	Window extract.Window

	// DelayMin/DelayMax bound the randomized courtesy delay between detail
	// visits.
	DelayMin time.Duration
	DelayMax time.Duration
}

// Summary reports what a pass did.
type Summary struct {
	Mode           Mode
	Scraped        int
	Visited        int
	Added          int
	DeadlinesFound int
	DatesFound     int
	TotalRecords   int
	DeadlinesSet   int
	TBDRemaining   int
	Tiered         int

	// NewEntries is populated in list-only mode: the scraped entries whose
	// sid is not yet in the store.
	NewEntries []*conference.Entry
}

// Runner executes passes. It is single-threaded: detail visits are the only
// suspension points and the store is written once at the end.
type Runner struct {
	fetcher scraper.Fetcher
	store   *storage.Store
	log     *logger.Logger
	cfg     Config

	sleep func(time.Duration)
	rng   *rand.Rand
}

// New creates a runner. A zero Window in cfg is derived from AsOf.
func New(fetcher scraper.Fetcher, store *storage.Store, log *logger.Logger, cfg Config) *Runner {
	if cfg.AsOf.IsZero() {
		cfg.AsOf = time.Now().UTC()
	}
	if cfg.Window == (extract.Window{}) {
		cfg.Window = extract.WindowAround(cfg.AsOf)
	}
	return &Runner{
		fetcher: fetcher,
		store:   store,
		log:     log,
		cfg:     cfg,
		sleep:   time.Sleep,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run executes one pass in the given mode.
func (r *Runner) Run(ctx context.Context, mode Mode) (*Summary, error) {
	records, err := r.store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading store: %w", err)
	}
	r.log.Info("store loaded", logger.Fields{"records": len(records), "path": r.store.Path(), "mode": string(mode)})

	switch mode {
	case ModeFull:
		return r.runFull(ctx, records)
	case ModeDeadlinesOnly:
		return r.runDeadlinesOnly(ctx, records)
	case ModeNewOnly:
		return r.runNewOnly(ctx, records)
	case ModeListOnly:
		return r.runListOnly(ctx, records)
	default:
		return nil, fmt.Errorf("unknown mode: %q", mode)
	}
}

// scrapeListings fetches and parses every network listing page. Fetch
// failures skip the network, never the pass.
func (r *Runner) scrapeListings(ctx context.Context) []*conference.Entry {
	batch := make([]*conference.Entry, 0)
	for _, network := range scraper.Networks {
		html, err := r.fetcher.ListingHTML(ctx, network.URL())
		if err != nil {
			r.log.Warn("listing fetch failed", logger.Fields{"network": network.Name, "url": network.URL(), "error": err.Error()})
			continue
		}
		entries, err := scraper.ParseListing(html, network)
		if err != nil {
			r.log.Warn("listing parse failed", logger.Fields{"network": network.Name, "error": err.Error()})
			continue
		}
		r.log.Info("listing scraped", logger.Fields{"network": network.Name, "entries": len(entries)})
		batch = append(batch, entries...)
		r.courtesyDelay()
	}
	return conference.Dedupe(batch)
}

// visit fetches one detail page and runs both extraction cascades against its
// text. A failed fetch is logged with the record's name and link and yields
// an empty result.
func (r *Runner) visit(ctx context.Context, name, url string) (deadline, confStart, confDisplay string) {
	text, err := r.fetcher.DetailText(ctx, url)
	if err != nil {
		r.log.Warn("detail fetch failed, skipping", logger.Fields{"name": name, "url": url, "error": err.Error()})
		return "", "", ""
	}
	if d, ok := extract.Deadline(text, r.cfg.AsOf, r.cfg.Window); ok {
		deadline = d
	}
	if s, disp, ok := extract.ConfDate(text, r.cfg.Window); ok {
		confStart, confDisplay = s, disp
	}
	r.courtesyDelay()
	return deadline, confStart, confDisplay
}

func (r *Runner) runFull(ctx context.Context, records []*conference.Record) (*Summary, error) {
	summary := &Summary{Mode: ModeFull}
	batch := r.scrapeListings(ctx)
	summary.Scraped = len(batch)

	bySID := make(map[string]*conference.Entry, len(batch))
	for _, e := range batch {
		bySID[e.SID] = e
	}
	known := knownSIDs(records)

	// Visit plan: every new record, every TBD-deadline record, every record
	// whose start date is missing or below day confidence.
	urls := make(map[string]string)
	var order []string
	add := func(sid, url string) {
		if sid == "" || url == "" {
			return
		}
		if _, ok := urls[sid]; ok {
			return
		}
		urls[sid] = url
		order = append(order, sid)
	}
	for _, e := range batch {
		if !known[e.SID] {
			add(e.SID, e.SSRNLink)
		}
	}
	names := make(map[string]string, len(batch))
	for _, e := range batch {
		names[e.SID] = e.Name
	}
	for _, rec := range records {
		if _, ok := names[rec.SID]; !ok {
			names[rec.SID] = rec.Name
		}
		if rec.Deadline == "" || rec.Deadline == conference.DeadlineTBD {
			add(rec.SID, rec.SSRNLink)
		}
		if rec.StartDate == "" || rec.DateConfidence != conference.ConfidenceDay {
			add(rec.SID, rec.SSRNLink)
		}
	}
	r.log.Info("visit plan", logger.Fields{"pages": len(order)})

	for _, sid := range order {
		name := names[sid]
		deadline, confStart, confDisplay := r.visit(ctx, name, urls[sid])
		summary.Visited++
		if deadline == "" && confStart == "" {
			continue
		}
		e, ok := bySID[sid]
		if !ok {
			// Store-only record: synthesize a detail-only entry.
			e = &conference.Entry{SID: sid, SSRNLink: urls[sid]}
			bySID[sid] = e
			batch = append(batch, e)
		}
		if deadline != "" {
			e.Deadline = deadline
			summary.DeadlinesFound++
			r.log.Info("deadline found", logger.Fields{"name": name, "url": urls[sid], "deadline": deadline})
		}
		if confStart != "" {
			e.ConfStart = confStart
			e.ConfDisplay = confDisplay
			summary.DatesFound++
			r.log.Info("conference date found", logger.Fields{"name": name, "url": urls[sid], "start": confStart, "display": confDisplay})
		}
	}

	return r.mergeAndSave(records, batch, summary)
}

func (r *Runner) runDeadlinesOnly(ctx context.Context, records []*conference.Record) (*Summary, error) {
	summary := &Summary{Mode: ModeDeadlinesOnly}

	batch := make([]*conference.Entry, 0)
	for _, rec := range records {
		if rec.Deadline != "" && rec.Deadline != conference.DeadlineTBD {
			continue
		}
		if rec.SID == "" || rec.SSRNLink == "" {
			continue
		}
		deadline, _, _ := r.visit(ctx, rec.Name, rec.SSRNLink)
		summary.Visited++
		if deadline == "" {
			continue
		}
		summary.DeadlinesFound++
		r.log.Info("deadline found", logger.Fields{"name": rec.Name, "url": rec.SSRNLink, "deadline": deadline})
		batch = append(batch, &conference.Entry{SID: rec.SID, SSRNLink: rec.SSRNLink, Deadline: deadline})
	}

	return r.mergeAndSave(records, batch, summary)
}

func (r *Runner) runNewOnly(ctx context.Context, records []*conference.Record) (*Summary, error) {
	summary := &Summary{Mode: ModeNewOnly}
	batch := r.scrapeListings(ctx)
	summary.Scraped = len(batch)

	fresh := conference.NewSIDs(records, batch)
	if len(fresh) == 0 {
		r.log.Info("no new conferences found, store unchanged", nil)
		fillStoreStats(records, summary)
		return summary, nil
	}

	for _, e := range fresh {
		if e.SSRNLink == "" {
			continue
		}
		deadline, _, _ := r.visit(ctx, e.Name, e.SSRNLink)
		summary.Visited++
		if deadline != "" {
			e.Deadline = deadline
			summary.DeadlinesFound++
			r.log.Info("deadline found", logger.Fields{"name": e.Name, "url": e.SSRNLink, "deadline": deadline})
		}
	}

	return r.mergeAndSave(records, fresh, summary)
}

func (r *Runner) runListOnly(ctx context.Context, records []*conference.Record) (*Summary, error) {
	summary := &Summary{Mode: ModeListOnly}
	batch := r.scrapeListings(ctx)
	summary.Scraped = len(batch)

	summary.NewEntries = conference.NewSIDs(records, batch)
	for _, e := range summary.NewEntries {
		r.log.Info("new conference", logger.Fields{"name": e.Name, "sid": e.SID, "url": e.SSRNLink})
	}
	fillStoreStats(records, summary)
	return summary, nil
}

// mergeAndSave computes the merged store in memory, writes it once, and fills
// in the run-end statistics.
func (r *Runner) mergeAndSave(records []*conference.Record, batch []*conference.Entry, summary *Summary) (*Summary, error) {
	merged, stats := conference.Merge(records, batch)
	summary.Added = stats.Added

	if err := r.store.Save(merged); err != nil {
		return nil, fmt.Errorf("saving store: %w", err)
	}

	fillStoreStats(merged, summary)
	r.log.Info("pass complete", logger.Fields{
		"mode":            string(summary.Mode),
		"added":           summary.Added,
		"deadlines_found": summary.DeadlinesFound,
		"dates_found":     summary.DatesFound,
		"records":         summary.TotalRecords,
		"deadlines_set":   summary.DeadlinesSet,
		"tbd_remaining":   summary.TBDRemaining,
		"tiered":          summary.Tiered,
	})
	return summary, nil
}

func fillStoreStats(records []*conference.Record, summary *Summary) {
	summary.TotalRecords = len(records)
	for _, rec := range records {
		if rec.Deadline != "" && rec.Deadline != conference.DeadlineTBD {
			summary.DeadlinesSet++
		} else {
			summary.TBDRemaining++
		}
		if rec.Tier != "" {
			summary.Tiered++
		}
	}
}

func knownSIDs(records []*conference.Record) map[string]bool {
	known := make(map[string]bool, len(records))
	for _, rec := range records {
		if rec.SID != "" {
			known[rec.SID] = true
		}
	}
	return known
}

// courtesyDelay sleeps a randomized interval between page visits to avoid
// tripping anti-scraping defenses.
func (r *Runner) courtesyDelay() {
	if r.cfg.DelayMax <= 0 {
		return
	}
	min, max := r.cfg.DelayMin, r.cfg.DelayMax
	if min < 0 {
		min = 0
	}
	if max <= min {
		r.sleep(min)
		return
	}
	r.sleep(min + time.Duration(r.rng.Int63n(int64(max-min))))
}
