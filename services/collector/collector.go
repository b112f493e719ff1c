// Package collector runs the targeted rate extraction over a static
// source table and assembles one persisted report per run.
//
// sources are processed strictly sequentially: a page failure is local
// to its category, a source failure is local to its result, and the
// run always produces a complete report even when every source failed.
package collector

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"gridrates/lib/extract"
	"gridrates/lib/fetch"
	"gridrates/lib/telemetry"
	"gridrates/lib/timezone"

	"github.com/PuerkitoBio/goquery"
	"github.com/mazen160/go-random"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = telemetry.Tracer("gridrates.services.collector")

// Store persists a finished report keyed by its start timestamp.
type Store interface {
	SaveReport(ctx context.Context, report *Report) error
}

type Options struct {
	// pause inserted after every source, including the last. zero
	// means a jittered 2-3s, the courtesy throttle the sites get by
	// default.
	Delay time.Duration
}

type Collector struct {
	fetcher fetch.Fetcher
	store   Store
	sources []Source
	opts    Options
}

// New builds a collector over an immutable source list. store may be
// nil, in which case reports are only returned, never persisted.
func New(fetcher fetch.Fetcher, store Store, sources []Source, opts Options) Collector {
	return Collector{
		fetcher: fetcher,
		store:   store,
		sources: sources,
		opts:    opts,
	}
}

// Run processes every source once and returns the complete report.
// It never returns an error: per-source failures are recorded in the
// report and a persistence failure is logged and swallowed.
func (c Collector) Run(ctx context.Context) *Report {
	ctx, span := tracer.Start(ctx, "Run")
	defer span.End()

	start := timezone.Now()
	report := &Report{CollectionStart: start}

	for _, source := range c.sources {
		slog.InfoContext(ctx, "collecting source", "source", source.ID, "provider", source.Provider)

		result := c.collectSource(ctx, source)
		report.Results = append(report.Results, result)

		c.courtesyDelay(ctx)
	}

	report.CollectionEnd = timezone.Now()
	report.DurationSeconds = report.CollectionEnd.Sub(start).Seconds()
	report.Summary = summarize(report.Results)

	span.SetAttributes(
		attribute.Int("total_sources", report.Summary.TotalSources),
		attribute.Int("successful_collections", report.Summary.SuccessfulCollections),
		attribute.Int("rates_collected", report.Summary.RatesCollected),
	)

	if c.store != nil {
		err := c.store.SaveReport(ctx, report)
		if err != nil {
			slog.ErrorContext(ctx, "failed to persist report", "err", err)
			span.RecordError(err)
		}
	}

	return report
}

func (c Collector) collectSource(ctx context.Context, source Source) (result Result) {
	ctx, span := tracer.Start(ctx, "collectSource")
	defer span.End()
	span.SetAttributes(attribute.String("source", source.ID))

	result = Result{
		Source:      source.ID,
		Province:    source.Province,
		Provider:    source.Provider,
		CollectedAt: timezone.Now(),
		Status:      StatusSuccess,
		Rates:       map[string]string{},
		Extracted:   map[string]bool{},
	}

	// a single bad source never aborts the run
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		err := fmt.Errorf("panic: %v", r)
		slog.ErrorContext(ctx, "source processing failed", "source", source.ID, "err", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "source processing failed")

		result.Status = StatusError
		result.Message = err.Error()
	}()

	cfg := extract.Config{
		Hints:    source.Hints,
		Patterns: source.Patterns,
		Min:      source.Min,
		Max:      source.Max,
	}

	for _, page := range source.Pages {
		if ctx.Err() != nil {
			result.Status = StatusPartial
			result.Message = "collection cancelled"
			return result
		}

		rate, ok := c.collectPage(ctx, page, cfg)
		result.Extracted[page.Category] = ok
		if ok {
			result.Rates[page.Category] = rate
			slog.InfoContext(ctx, "rate extracted",
				"source", source.ID,
				"category", page.Category,
				"rate", rate,
			)
		}
	}

	result.Message = fmt.Sprintf("Collected %d rates from %s", len(result.Rates), source.Provider)
	return result
}

// collectPage fetches and scans a single page. every failure mode is
// page local: it reports false and the source moves on.
func (c Collector) collectPage(ctx context.Context, page Page, cfg extract.Config) (string, bool) {
	ctx, span := tracer.Start(ctx, "collectPage")
	defer span.End()
	span.SetAttributes(
		attribute.String("url", page.URL),
		attribute.String("category", page.Category),
	)

	res, err := c.fetcher.Fetch(ctx, page.URL)
	if err != nil {
		slog.WarnContext(ctx, "could not access page", "url", page.URL, "err", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch failed")
		return "", false
	}
	if !res.Ok() {
		slog.WarnContext(ctx, "page returned non-2xx status", "url", page.URL, "status", res.StatusCode)
		span.SetStatus(codes.Error, "non-2xx status")
		return "", false
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body))
	if err != nil {
		slog.WarnContext(ctx, "failed to parse page html", "url", page.URL, "err", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "html parse failed")
		return "", false
	}

	return extract.Rate(doc, cfg)
}

func (c Collector) courtesyDelay(ctx context.Context) {
	delay := c.opts.Delay
	if delay == 0 {
		ms, err := random.IntRange(2000, 3000)
		if err != nil {
			ms = 3000
		}
		delay = time.Duration(ms) * time.Millisecond
	}

	select {
	case <-time.After(delay):
	case <-ctx.Done():
	}
}
