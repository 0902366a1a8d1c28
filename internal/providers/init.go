// Package providers builds the provider registry from configuration and
// registers all concrete news providers.
package providers

import (
	"github.com/maheshkv/newspulse/internal/config"
	"github.com/maheshkv/newspulse/internal/provider"
	"github.com/maheshkv/newspulse/internal/providers/guardian"
	"github.com/maheshkv/newspulse/internal/providers/newsdata"
	"github.com/maheshkv/newspulse/internal/providers/rssfeed"
	"github.com/maheshkv/newspulse/pkg/models"
)

// BuildRegistry creates a registry with all configured providers and the
// country routing: India resolves through the Guardian, the USA through
// NewsData.io. Keyed providers register even without a key so that
// status reporting can name them; their Fetch reports no data.
func BuildRegistry(cfg *config.Config) (*provider.Registry, error) {
	reg := provider.NewRegistry()
	if err := RegisterAllTo(reg, cfg); err != nil {
		return nil, err
	}

	if err := reg.Route(models.CountryIndia, "guardian"); err != nil {
		return nil, err
	}
	if err := reg.Route(models.CountryUSA, "newsdata"); err != nil {
		return nil, err
	}
	return reg, nil
}

// RegisterAllTo registers all available providers to the given registry.
func RegisterAllTo(reg *provider.Registry, cfg *config.Config) error {
	// --- Guardian (requires API key) ---
	g := guardian.NewWithBaseURL(cfg.Providers.Guardian.APIKey, cfg.Providers.Guardian.BaseURL)
	if err := reg.Register(g); err != nil {
		return err
	}

	// --- NewsData.io (requires API key) ---
	nd := newsdata.NewWithBaseURL(cfg.Providers.NewsData.APIKey, cfg.Providers.NewsData.BaseURL)
	if err := reg.Register(nd); err != nil {
		return err
	}

	// --- RSS (free, no API key) ---
	if cfg.Providers.RSS.Enabled {
		rss := rssfeed.NewWithFeeds(configuredFeeds(cfg.Providers.RSS.Feeds))
		if err := reg.Register(rss); err != nil {
			return err
		}
	}

	return nil
}

// configuredFeeds converts config feed entries into provider feeds,
// dropping entries with an unknown category.
func configuredFeeds(entries []config.RSSFeed) []rssfeed.Feed {
	feeds := make([]rssfeed.Feed, 0, len(entries))
	for _, e := range entries {
		cat := models.Category(e.Category)
		if !cat.Valid() {
			continue
		}
		feeds = append(feeds, rssfeed.Feed{Name: e.Name, URL: e.URL, Category: cat})
	}
	return feeds
}
