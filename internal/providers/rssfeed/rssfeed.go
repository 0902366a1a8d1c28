// Package rssfeed implements a keyless news provider backed by public
// RSS feeds. Feeds are configured per category; the BBC feeds serve as
// defaults. Because the endpoints are public, requests go through a
// conservative rate limiter.
package rssfeed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"github.com/maheshkv/newspulse/internal/infra"
	"github.com/maheshkv/newspulse/internal/provider"
	"github.com/maheshkv/newspulse/pkg/models"
)

const providerName = "rss"

// Feed is one configured RSS source bound to a category.
type Feed struct {
	Name     string
	URL      string
	Category models.Category
}

// DefaultFeeds lists the BBC feeds used when no feeds are configured.
var DefaultFeeds = []Feed{
	{Name: "BBC News", URL: "http://feeds.bbci.co.uk/news/rss.xml", Category: models.CategoryGeneral},
	{Name: "BBC Business", URL: "http://feeds.bbci.co.uk/news/business/rss.xml", Category: models.CategoryBusiness},
	{Name: "BBC Technology", URL: "http://feeds.bbci.co.uk/news/technology/rss.xml", Category: models.CategoryTechnology},
	{Name: "BBC Entertainment", URL: "http://feeds.bbci.co.uk/news/entertainment_and_arts/rss.xml", Category: models.CategoryEntertainment},
	{Name: "BBC Sport", URL: "http://feeds.bbci.co.uk/sport/rss.xml", Category: models.CategorySports},
	{Name: "BBC Science", URL: "http://feeds.bbci.co.uk/news/science_and_environment/rss.xml", Category: models.CategoryScience},
	{Name: "BBC Health", URL: "http://feeds.bbci.co.uk/news/health/rss.xml", Category: models.CategoryHealth},
}

// Provider implements provider.Provider over a set of RSS feeds.
type Provider struct {
	feeds   []Feed
	limiter *infra.RateLimiter
	parser  *gofeed.Parser
}

// New creates an RSS provider with the default feed set.
func New() *Provider {
	return NewWithFeeds(DefaultFeeds)
}

// NewWithFeeds creates an RSS provider with custom feeds. An empty list
// falls back to the defaults.
func NewWithFeeds(feeds []Feed) *Provider {
	if len(feeds) == 0 {
		feeds = DefaultFeeds
	}
	return &Provider{
		feeds:   feeds,
		limiter: infra.NewRateLimiter(2, time.Second), // conservative: 2 req/s
		parser:  gofeed.NewParser(),
	}
}

// Info returns metadata about this provider. RSS needs no credential.
func (p *Provider) Info() provider.Info {
	return provider.Info{
		Name:        providerName,
		DisplayName: "RSS Feeds",
		Description: "Public RSS headlines by category, no API key required",
		Website:     "https://www.rssboard.org/rss-specification",
	}
}

// Fetch parses every feed configured for the selector's category and
// merges the items. The country is ignored: RSS feeds are global.
// A category with no configured feed, or with only failing feeds,
// collapses into the ErrNoData signal.
func (p *Provider) Fetch(ctx context.Context, sel models.Selector) ([]models.NewsRecord, error) {
	matched := p.feedsFor(sel.Category)
	if len(matched) == 0 {
		return nil, provider.NoData(providerName, fmt.Errorf("no feed configured for category %q", sel.Category))
	}

	var records []models.NewsRecord
	var lastErr error
	for _, feed := range matched {
		items, err := p.fetchFeed(ctx, feed)
		if err != nil {
			// Non-critical: skip failed feeds, remember the last error.
			lastErr = err
			continue
		}
		records = append(records, items...)
	}

	if len(records) == 0 {
		if lastErr == nil {
			lastErr = errors.New("feeds returned no items")
		}
		return nil, provider.NoData(providerName, lastErr)
	}
	return records, nil
}

// Ping parses the first configured feed.
func (p *Provider) Ping(ctx context.Context) error {
	if err := p.limiter.Wait(ctx); err != nil {
		return err
	}
	if _, err := p.parser.ParseURLWithContext(p.feeds[0].URL, ctx); err != nil {
		return fmt.Errorf("rss ping %s: %w", p.feeds[0].Name, err)
	}
	return nil
}

// feedsFor returns the feeds bound to a category.
func (p *Provider) feedsFor(cat models.Category) []Feed {
	var matched []Feed
	for _, f := range p.feeds {
		if f.Category == cat {
			matched = append(matched, f)
		}
	}
	return matched
}

// fetchFeed parses one feed and maps its items to records.
func (p *Provider) fetchFeed(ctx context.Context, src Feed) ([]models.NewsRecord, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	feed, err := p.parser.ParseURLWithContext(src.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse RSS %s: %w", src.Name, err)
	}

	records := make([]models.NewsRecord, 0, len(feed.Items))
	for _, item := range feed.Items {
		title := cleanHTML(item.Title)
		if title == "" {
			continue
		}
		rec := models.NewsRecord{
			Title:        title,
			Source:       src.Name,
			PublishedRaw: item.Published,
		}
		if item.PublishedParsed != nil {
			rec.PublishedAt = item.PublishedParsed.UTC()
		}
		records = append(records, rec)
	}
	return records, nil
}

// cleanHTML strips HTML tags and entities from a string using goquery.
// Feed titles occasionally carry markup.
func cleanHTML(s string) string {
	if s == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<body>" + s + "</body>"))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(doc.Text())
}
