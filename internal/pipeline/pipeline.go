// Package pipeline orchestrates a news request end to end: resolve the
// provider for a selector, fetch, score sentiment, sort, and maintain
// the session cache that serves stale data when a provider goes dark.
package pipeline

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/maheshkv/newspulse/internal/infra"
	"github.com/maheshkv/newspulse/internal/provider"
	"github.com/maheshkv/newspulse/internal/sentiment"
	"github.com/maheshkv/newspulse/pkg/models"
)

// Result is the outcome of a pipeline fetch: scored records plus the
// provenance telling the caller whether they are fresh, served from the
// session cache, or missing entirely.
type Result struct {
	Records    []models.NewsRecord `json:"records"`
	Provenance models.Provenance   `json:"provenance"`
	Provider   string              `json:"provider"`
}

// Unavailable reports whether the result carries no data at all.
func (r Result) Unavailable() bool {
	return r.Provenance == models.ProvenanceUnavailable
}

// Pipeline wires the provider registry, the sentiment scorer, and the
// session cache together.
type Pipeline struct {
	registry *provider.Registry
	cache    *SessionCache
	log      *zap.SugaredLogger
}

// New creates a pipeline. A nil logger is replaced with a no-op one.
func New(registry *provider.Registry, cache *SessionCache, log *zap.SugaredLogger) *Pipeline {
	if log == nil {
		log = infra.NopLogger()
	}
	return &Pipeline{registry: registry, cache: cache, log: log}
}

// Cache exposes the session cache, mainly for status reporting.
func (p *Pipeline) Cache() *SessionCache {
	return p.cache
}

// Registry exposes the provider registry the pipeline resolves through.
func (p *Pipeline) Registry() *provider.Registry {
	return p.registry
}

// Fetch runs the full pipeline for a selector.
//
// On a successful provider fetch the records are scored, sorted newest
// first, and the cache entry for the selector key is replaced. When the
// provider reports no data, the last cached records for the same key
// are served with cached_fallback provenance; with a cold cache the
// result is unavailable. Errors other than the provider's no-data
// signal (unknown provider, invalid selector) are returned as errors.
func (p *Pipeline) Fetch(ctx context.Context, sel models.Selector) (Result, error) {
	if err := sel.Validate(); err != nil {
		return Result{}, err
	}

	prov, err := p.registry.Resolve(sel)
	if err != nil {
		return Result{}, err
	}
	name := prov.Info().Name

	fetchRequests.WithLabelValues(name).Inc()
	start := time.Now()
	records, err := prov.Fetch(ctx, sel)
	fetchDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())

	if err != nil {
		if !errors.Is(err, provider.ErrNoData) {
			return Result{}, err
		}
		fetchErrors.WithLabelValues(name).Inc()
		p.log.Warnw("provider returned no data", "provider", name, "key", sel.Key(), "cause", err)

		if cached, ok := p.cache.Get(sel.Key()); ok {
			cacheFallbacks.WithLabelValues(name).Inc()
			sortNewestFirst(cached)
			return Result{Records: cached, Provenance: models.ProvenanceCachedFallback, Provider: name}, nil
		}
		return Result{Provenance: models.ProvenanceUnavailable, Provider: name}, nil
	}

	scored := sentiment.ScoreAll(records)
	sortNewestFirst(scored)
	p.cache.Put(sel.Key(), scored)

	p.log.Infow("fetched headlines", "provider", name, "key", sel.Key(), "count", len(scored))
	return Result{Records: scored, Provenance: models.ProvenanceFresh, Provider: name}, nil
}

// Prefetch warms the cache for several selectors concurrently. Selector
// failures are logged, not returned; a cold start should not abort on
// one dark provider.
func (p *Pipeline) Prefetch(ctx context.Context, selectors []models.Selector) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for _, sel := range selectors {
		sel := sel
		g.Go(func() error {
			res, err := p.Fetch(ctx, sel)
			if err != nil {
				p.log.Warnw("prefetch failed", "key", sel.Key(), "error", err)
				return nil
			}
			if res.Unavailable() {
				p.log.Warnw("prefetch found no data", "key", sel.Key())
			}
			return nil
		})
	}
	g.Wait()
}

// sortNewestFirst orders records by published date descending. Records
// without a parsed date sort last; ties break on title for stable
// output across refreshes.
func sortNewestFirst(records []models.NewsRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		ti, tj := records[i].PublishedAt, records[j].PublishedAt
		if ti.IsZero() != tj.IsZero() {
			return !ti.IsZero()
		}
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return records[i].Title < records[j].Title
	})
}
