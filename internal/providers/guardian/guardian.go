// Package guardian implements the Guardian content API news provider.
// It queries by keyword equal to the selected category and maps the
// response into normalized records with a fixed source name.
//
// Docs: https://open-platform.theguardian.com/documentation/
package guardian

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/maheshkv/newspulse/internal/infra"
	"github.com/maheshkv/newspulse/internal/provider"
	"github.com/maheshkv/newspulse/pkg/models"
	"github.com/maheshkv/newspulse/pkg/utils"
)

const (
	providerName   = "guardian"
	displayName    = "The Guardian"
	defaultBaseURL = "https://content.guardianapis.com"
)

// Provider implements provider.Provider for the Guardian content API.
type Provider struct {
	apiKey  string
	baseURL string
}

// New creates a Guardian provider against the public endpoint.
func New(apiKey string) *Provider {
	return NewWithBaseURL(apiKey, defaultBaseURL)
}

// NewWithBaseURL creates a Guardian provider against a custom endpoint.
// Tests point this at an httptest server.
func NewWithBaseURL(apiKey, baseURL string) *Provider {
	return &Provider{apiKey: apiKey, baseURL: baseURL}
}

// Info returns metadata about this provider.
func (p *Provider) Info() provider.Info {
	return provider.Info{
		Name:        providerName,
		DisplayName: displayName,
		Description: "Guardian open platform content search",
		Website:     "https://open-platform.theguardian.com",
		Credential: &provider.Credential{
			Name:     "api_key",
			EnvVar:   "GUARDIAN_API_KEY",
			Required: true,
		},
	}
}

// Fetch searches the Guardian by category keyword. Every failure mode —
// missing key, network, non-2xx, malformed JSON, empty result set —
// collapses into the ErrNoData signal.
func (p *Provider) Fetch(ctx context.Context, sel models.Selector) ([]models.NewsRecord, error) {
	if p.apiKey == "" {
		return nil, provider.NoData(providerName, errors.New("GUARDIAN_API_KEY not set"))
	}

	body, err := infra.DoGet(ctx, p.searchURL(string(sel.Category), 0))
	if err != nil {
		return nil, provider.NoData(providerName, err)
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, provider.NoData(providerName, fmt.Errorf("decode response: %w", err))
	}
	if len(resp.Response.Results) == 0 {
		return nil, provider.NoData(providerName, errors.New("empty result set"))
	}

	records := make([]models.NewsRecord, 0, len(resp.Response.Results))
	for _, item := range resp.Response.Results {
		if item.WebTitle == "" {
			continue
		}
		published, _ := utils.ParsePublishedAt(item.WebPublicationDate)
		records = append(records, models.NewsRecord{
			Title:        item.WebTitle,
			Source:       displayName,
			PublishedAt:  published,
			PublishedRaw: item.WebPublicationDate,
		})
	}
	if len(records) == 0 {
		return nil, provider.NoData(providerName, errors.New("no usable results"))
	}
	return records, nil
}

// Ping verifies connectivity and the configured key with a one-result search.
func (p *Provider) Ping(ctx context.Context) error {
	if p.apiKey == "" {
		return fmt.Errorf("guardian: GUARDIAN_API_KEY not set")
	}
	if _, err := infra.DoGet(ctx, p.searchURL("news", 1)); err != nil {
		return fmt.Errorf("guardian ping: %w", err)
	}
	return nil
}

// searchURL builds the content search URL. pageSize 0 keeps the API default.
func (p *Provider) searchURL(query string, pageSize int) string {
	q := url.Values{}
	q.Set("q", query)
	q.Set("api-key", p.apiKey)
	if pageSize > 0 {
		q.Set("page-size", fmt.Sprint(pageSize))
	}
	return fmt.Sprintf("%s/search?%s", p.baseURL, q.Encode())
}
