// Package newsdata implements the NewsData.io news provider. It queries
// by country code and category and maps the response into normalized
// records, falling back to a fixed source name when the upstream omits
// its source identifier.
//
// Docs: https://newsdata.io/documentation
package newsdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/maheshkv/newspulse/internal/infra"
	"github.com/maheshkv/newspulse/internal/provider"
	"github.com/maheshkv/newspulse/pkg/models"
	"github.com/maheshkv/newspulse/pkg/utils"
)

const (
	providerName   = "newsdata"
	defaultSource  = "NewsData.io"
	defaultBaseURL = "https://newsdata.io/api/1"
)

// countryCodes maps selectable countries to NewsData country codes.
var countryCodes = map[models.Country]string{
	models.CountryUSA:   "us",
	models.CountryIndia: "in",
}

// Provider implements provider.Provider for NewsData.io.
type Provider struct {
	apiKey  string
	baseURL string
}

// New creates a NewsData provider against the public endpoint.
func New(apiKey string) *Provider {
	return NewWithBaseURL(apiKey, defaultBaseURL)
}

// NewWithBaseURL creates a NewsData provider against a custom endpoint.
// Tests point this at an httptest server.
func NewWithBaseURL(apiKey, baseURL string) *Provider {
	return &Provider{apiKey: apiKey, baseURL: baseURL}
}

// Info returns metadata about this provider.
func (p *Provider) Info() provider.Info {
	return provider.Info{
		Name:        providerName,
		DisplayName: defaultSource,
		Description: "NewsData.io latest headlines by country and category",
		Website:     "https://newsdata.io",
		Credential: &provider.Credential{
			Name:     "api_key",
			EnvVar:   "NEWSDATA_API_KEY",
			Required: true,
		},
	}
}

// Fetch queries latest headlines for the selector's country and category.
// All failure modes collapse into the ErrNoData signal.
func (p *Provider) Fetch(ctx context.Context, sel models.Selector) ([]models.NewsRecord, error) {
	if p.apiKey == "" {
		return nil, provider.NoData(providerName, errors.New("NEWSDATA_API_KEY not set"))
	}

	body, err := infra.DoGet(ctx, p.newsURL(sel))
	if err != nil {
		return nil, provider.NoData(providerName, err)
	}

	var resp newsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, provider.NoData(providerName, fmt.Errorf("decode response: %w", err))
	}
	if len(resp.Results) == 0 {
		return nil, provider.NoData(providerName, errors.New("empty result set"))
	}

	records := make([]models.NewsRecord, 0, len(resp.Results))
	for _, item := range resp.Results {
		if item.Title == "" {
			continue
		}
		source := strings.TrimSpace(item.SourceID)
		if source == "" {
			source = defaultSource
		}
		published, _ := utils.ParsePublishedAt(item.PubDate)
		records = append(records, models.NewsRecord{
			Title:        item.Title,
			Source:       source,
			PublishedAt:  published,
			PublishedRaw: item.PubDate,
		})
	}
	if len(records) == 0 {
		return nil, provider.NoData(providerName, errors.New("no usable results"))
	}
	return records, nil
}

// Ping verifies connectivity and the configured key.
func (p *Provider) Ping(ctx context.Context) error {
	if p.apiKey == "" {
		return fmt.Errorf("newsdata: NEWSDATA_API_KEY not set")
	}
	sel := models.Selector{Country: models.CountryUSA, Category: models.CategoryGeneral}
	if _, err := infra.DoGet(ctx, p.newsURL(sel)); err != nil {
		return fmt.Errorf("newsdata ping: %w", err)
	}
	return nil
}

// newsURL builds the latest-news URL for a selector.
func (p *Provider) newsURL(sel models.Selector) string {
	code, ok := countryCodes[sel.Country]
	if !ok {
		code = "us"
	}
	q := url.Values{}
	q.Set("country", code)
	q.Set("category", string(sel.Category))
	q.Set("language", "en")
	q.Set("apikey", p.apiKey)
	return fmt.Sprintf("%s/news?%s", p.baseURL, q.Encode())
}
