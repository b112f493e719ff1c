package collector

import (
	"fmt"
	"regexp"
	"time"
)

type Status string

const (
	StatusSuccess Status = "success"
	// partial marks a source whose page list was cut short by run
	// cancellation, it is never produced by ordinary page failures
	StatusPartial Status = "partial"
	StatusError   Status = "error"
)

// Page is one (url, rate-category) pair attempted for a source.
type Page struct {
	URL      string
	Category string
}

// Source is an immutable descriptor of one utility provider, built at
// startup and never mutated afterwards.
type Source struct {
	ID       string
	Province string
	Provider string
	Pages    []Page
	// case-insensitive expressions locating rate regions on the page
	Hints []string
	// ordered price-token patterns
	Patterns []*regexp.Regexp
	// inclusive plausibility bounds, zero values use the extractor
	// defaults
	Min float64
	Max float64
}

// Result is the outcome of one source in one run. Rates only ever
// holds strings that passed the plausibility check: an empty map with
// status success means "page reachable, no rate found", which is
// distinct from status error.
type Result struct {
	Source      string            `json:"source"`
	Province    string            `json:"province"`
	Provider    string            `json:"provider"`
	CollectedAt time.Time         `json:"collection_time"`
	Status      Status            `json:"status"`
	Rates       map[string]string `json:"rates"`
	Extracted   map[string]bool   `json:"extracted"`
	Message     string            `json:"message"`
}

type Summary struct {
	TotalSources          int    `json:"total_sources"`
	SuccessfulCollections int    `json:"successful_collections"`
	RatesCollected        int    `json:"rates_collected"`
	CollectionRate        string `json:"collection_rate"`
	RatesCollectionRate   string `json:"rates_collection_rate"`
}

// Report is the unit persisted to storage, one per run.
type Report struct {
	CollectionStart time.Time `json:"collection_start"`
	CollectionEnd   time.Time `json:"collection_end"`
	DurationSeconds float64   `json:"duration_seconds"`
	Results         []Result  `json:"results"`
	Summary         Summary   `json:"summary"`
}

func summarize(results []Result) Summary {
	total := len(results)
	successful := 0
	withRates := 0
	for _, r := range results {
		if r.Status == StatusSuccess {
			successful++
		}
		if len(r.Rates) > 0 {
			withRates++
		}
	}

	summary := Summary{
		TotalSources:          total,
		SuccessfulCollections: successful,
		RatesCollected:        withRates,
	}
	if total > 0 {
		summary.CollectionRate = fmt.Sprintf("%.1f%%", float64(successful)/float64(total)*100)
		summary.RatesCollectionRate = fmt.Sprintf("%.1f%%", float64(withRates)/float64(total)*100)
	}
	return summary
}
