// Package provider defines the news source adapter abstraction. Each
// concrete adapter knows how to build a request for one upstream news API
// and how to map that provider's response shape into normalized records.
// A central registry routes a selector to the adapter serving it.
package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/maheshkv/newspulse/pkg/models"
)

// Credential describes the API key an adapter needs, if any.
type Credential struct {
	Name     string `json:"name"`    // e.g., "api_key"
	EnvVar   string `json:"env_var"` // e.g., "GUARDIAN_API_KEY"
	Required bool   `json:"required"`
}

// Info holds metadata about a registered provider.
type Info struct {
	Name        string      `json:"name"`        // e.g., "guardian"
	DisplayName string      `json:"display"`     // e.g., "The Guardian"
	Description string      `json:"description"` // human-readable description
	Website     string      `json:"website"`
	Credential  *Credential `json:"credential,omitempty"`
}

// Provider is the interface every news source adapter implements.
type Provider interface {
	// Info returns metadata about this provider.
	Info() Info

	// Fetch returns normalized records for the selector, or an error
	// wrapping ErrNoData. Any upstream failure — network, non-2xx,
	// malformed JSON, zero results, missing API key — collapses into
	// ErrNoData at this boundary; the cause survives only in the error
	// text. Nothing recoverable propagates past Fetch.
	Fetch(ctx context.Context, sel models.Selector) ([]models.NewsRecord, error)

	// Ping verifies the provider is reachable with the configured
	// credentials.
	Ping(ctx context.Context) error
}

// ErrNoData is the single recoverable failure signal adapters report.
// Callers fall back to cached results when they see it.
var ErrNoData = errors.New("no data available")

// NoData wraps a cause into the collapsed ErrNoData signal.
// errors.Is(err, ErrNoData) holds for the result.
func NoData(provider string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%s: %w", provider, ErrNoData)
	}
	return fmt.Errorf("%s: %w: %v", provider, ErrNoData, cause)
}

// ErrProviderNotFound is returned when a requested provider is not registered.
type ErrProviderNotFound struct {
	Name string
}

func (e *ErrProviderNotFound) Error() string {
	return fmt.Sprintf("provider %q not found", e.Name)
}
