package sentiment

import (
	"testing"

	"github.com/maheshkv/newspulse/pkg/models"
)

func TestScorePositiveHeadline(t *testing.T) {
	score := Score("Record high for renewable energy as growth surges past milestone")
	if score <= 0 {
		t.Errorf("expected positive score, got %.4f", score)
	}
	if score > 1 {
		t.Errorf("score out of range: %.4f", score)
	}
}

func TestScoreNegativeHeadline(t *testing.T) {
	score := Score("Market crash deepens crisis as fraud scandal triggers losses")
	if score >= 0 {
		t.Errorf("expected negative score, got %.4f", score)
	}
	if score < -1 {
		t.Errorf("score out of range: %.4f", score)
	}
}

func TestScoreNeutralHeadline(t *testing.T) {
	if score := Score("Committee schedules quarterly meeting for Tuesday"); score != 0 {
		t.Errorf("expected zero score for neutral headline, got %.4f", score)
	}
}

func TestScoreIdempotent(t *testing.T) {
	title := "Team celebrates victory despite injury fears"
	first := Score(title)
	second := Score(title)
	if first != second {
		t.Errorf("scorer not deterministic: %.4f vs %.4f", first, second)
	}
}

func TestScoreRoundedToThreeDecimals(t *testing.T) {
	headlines := []string{
		"Economy shows strong growth but recession fears linger",
		"Hospital praised for breakthrough cure after outbreak warning",
		"Stocks rally while layoffs loom",
	}
	for _, h := range headlines {
		score := Score(h)
		scaled := score * 1000
		if scaled != float64(int64(scaled)) {
			t.Errorf("score %v for %q not rounded to 3 decimals", score, h)
		}
		if score < -1 || score > 1 {
			t.Errorf("score %v for %q out of [-1, 1]", score, h)
		}
	}
}

func TestScoreAllDoesNotMutateInput(t *testing.T) {
	in := []models.NewsRecord{
		{Title: "Stocks rally on growth hopes", Source: "The Guardian"},
		{Title: "Flood disaster kills dozens", Source: "NewsData.io"},
	}

	out := ScoreAll(in)

	if len(out) != len(in) {
		t.Fatalf("got %d records, want %d", len(out), len(in))
	}
	for i, r := range in {
		if r.Scored() {
			t.Errorf("input record %d was mutated", i)
		}
		if !out[i].Scored() {
			t.Errorf("output record %d not scored", i)
		}
	}
	if *out[0].Sentiment <= 0 {
		t.Errorf("expected positive score, got %v", *out[0].Sentiment)
	}
	if *out[1].Sentiment >= 0 {
		t.Errorf("expected negative score, got %v", *out[1].Sentiment)
	}
}

// ── Summary ──

func TestSummarizeBucketTotality(t *testing.T) {
	records := ScoreAll([]models.NewsRecord{
		{Title: "Historic win celebrated across the city"},
		{Title: "Wildfire disaster forces evacuations"},
		{Title: "Council reviews zoning proposal"},
		{Title: "Champions praised after record high season"},
	})

	s := Summarize(records)
	if s.Total() != len(records) {
		t.Errorf("counts sum to %d, want %d", s.Total(), len(records))
	}
	if s.Positive != 2 {
		t.Errorf("positive: got %d, want 2", s.Positive)
	}
	if s.Negative != 1 {
		t.Errorf("negative: got %d, want 1", s.Negative)
	}
	if s.Neutral != 1 {
		t.Errorf("neutral: got %d, want 1", s.Neutral)
	}
}

func TestSummarizeIncludesZeroBuckets(t *testing.T) {
	s := Summarize(ScoreAll([]models.NewsRecord{
		{Title: "Team wins award for breakthrough success"},
	}))

	counts := s.Counts()
	if len(counts) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(counts))
	}
	if counts[0].Bucket != models.BucketPositive || counts[0].Count != 1 {
		t.Errorf("positive bucket: %+v", counts[0])
	}
	if counts[1].Count != 0 || counts[2].Count != 0 {
		t.Errorf("zero buckets missing: %+v", counts)
	}
}

func TestSummarizeSkipsUnscored(t *testing.T) {
	s := Summarize([]models.NewsRecord{{Title: "unscored headline"}})
	if s.Total() != 0 {
		t.Errorf("unscored records counted: %+v", s)
	}
}
