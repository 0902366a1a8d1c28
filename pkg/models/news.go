// Package models defines the shared domain types for NewsPulse:
// headlines, selectors, provenance tags, and sentiment buckets.
package models

import (
	"fmt"
	"time"
)

// Country identifies the news region selected by the user.
// The region determines which upstream provider serves the request.
type Country string

const (
	CountryUSA   Country = "USA"
	CountryIndia Country = "India"
)

// Countries returns all selectable countries in display order.
func Countries() []Country {
	return []Country{CountryUSA, CountryIndia}
}

// Valid reports whether the country is one of the selectable values.
func (c Country) Valid() bool {
	for _, k := range Countries() {
		if c == k {
			return true
		}
	}
	return false
}

// Category is a news category understood by all providers.
type Category string

const (
	CategoryGeneral       Category = "general"
	CategoryBusiness      Category = "business"
	CategoryTechnology    Category = "technology"
	CategoryEntertainment Category = "entertainment"
	CategorySports        Category = "sports"
	CategoryScience       Category = "science"
	CategoryHealth        Category = "health"
)

// Categories returns all selectable categories in display order.
func Categories() []Category {
	return []Category{
		CategoryGeneral,
		CategoryBusiness,
		CategoryTechnology,
		CategoryEntertainment,
		CategorySports,
		CategoryScience,
		CategoryHealth,
	}
}

// Valid reports whether the category is one of the selectable values.
func (c Category) Valid() bool {
	for _, k := range Categories() {
		if c == k {
			return true
		}
	}
	return false
}

// Selector identifies one user selection and therefore one cache key.
// Provider, when set, overrides the country-based provider routing.
type Selector struct {
	Country  Country  `json:"country"`
	Category Category `json:"category"`
	Provider string   `json:"provider,omitempty"`
}

// Key returns the cache key for this selection. Results fetched for the
// same key replace each other wholesale in the session cache.
func (s Selector) Key() string {
	if s.Provider != "" {
		return fmt.Sprintf("%s_%s", s.Provider, s.Category)
	}
	return fmt.Sprintf("%s_%s", s.Country, s.Category)
}

// Validate checks that the selector's country and category are known.
func (s Selector) Validate() error {
	if !s.Country.Valid() {
		return fmt.Errorf("unknown country %q", s.Country)
	}
	if !s.Category.Valid() {
		return fmt.Errorf("unknown category %q", s.Category)
	}
	return nil
}

// NewsRecord is one normalized headline. Records are created by a provider
// adapter, scored once by the sentiment scorer, and immutable thereafter.
type NewsRecord struct {
	Title string `json:"title"`
	// Source is the display name of the originating provider: a fixed
	// literal per adapter, or a provider-supplied identifier with a
	// literal fallback when absent.
	Source string `json:"source"`
	// PublishedAt is normalized to a parsed timestamp at the adapter
	// boundary so ordering never depends on provider string formats.
	// Unparseable dates are left as the zero time and sort last.
	PublishedAt time.Time `json:"publishedAt"`
	// PublishedRaw preserves the provider's original date text for display.
	PublishedRaw string `json:"publishedRaw,omitempty"`
	// Sentiment is nil until the scorer has run; afterwards it holds a
	// polarity in [-1, 1] rounded to 3 decimal places.
	Sentiment *float64 `json:"sentiment,omitempty"`
}

// Scored reports whether the record carries a sentiment value.
func (r NewsRecord) Scored() bool { return r.Sentiment != nil }

// Bucket returns the sentiment bucket for a scored record.
// ok is false when the record has not been scored.
func (r NewsRecord) Bucket() (b SentimentBucket, ok bool) {
	if r.Sentiment == nil {
		return BucketNeutral, false
	}
	return BucketOf(*r.Sentiment), true
}

// SentimentBucket is the qualitative grouping of a polarity score.
type SentimentBucket string

const (
	BucketPositive SentimentBucket = "Positive"
	BucketNeutral  SentimentBucket = "Neutral"
	BucketNegative SentimentBucket = "Negative"
)

// BucketOf maps a polarity score to exactly one bucket.
func BucketOf(score float64) SentimentBucket {
	switch {
	case score > 0:
		return BucketPositive
	case score < 0:
		return BucketNegative
	default:
		return BucketNeutral
	}
}

// Provenance tags where a rendered result set came from.
type Provenance string

const (
	// ProvenanceFresh marks a result fetched from the provider in this pass.
	ProvenanceFresh Provenance = "fresh"
	// ProvenanceCachedFallback marks a previous result served after the
	// provider failed or returned nothing.
	ProvenanceCachedFallback Provenance = "cached_fallback"
	// ProvenanceUnavailable marks a failed fetch with no cached fallback.
	ProvenanceUnavailable Provenance = "unavailable"
)
