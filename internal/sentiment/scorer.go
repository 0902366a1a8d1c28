// Package sentiment scores headline polarity with a weighted keyword
// lexicon. The scorer is deterministic and fully offline: the same text
// always yields the same rounded score.
package sentiment

import (
	"math"
	"strings"

	"github.com/maheshkv/newspulse/pkg/models"
)

// positive / negative keyword dictionaries (lowercase). Multi-word
// phrases are matched as substrings, same as single words.
var positiveWords = map[string]float64{
	"win": 0.5, "wins": 0.5, "victory": 0.6, "triumph": 0.6,
	"record high": 0.7, "breakthrough": 0.7, "success": 0.6,
	"successful": 0.6, "growth": 0.4, "soar": 0.6, "surge": 0.6,
	"rally": 0.5, "boost": 0.5, "gain": 0.4, "improve": 0.4,
	"improves": 0.4, "recovery": 0.5, "celebrate": 0.6, "award": 0.5,
	"praise": 0.5, "hope": 0.3, "optimism": 0.5, "thrive": 0.6,
	"strong": 0.4, "best": 0.5, "great": 0.4, "good": 0.3,
	"positive": 0.4, "upbeat": 0.5, "milestone": 0.5, "cure": 0.6,
	"approve": 0.4, "approved": 0.4, "launch": 0.2, "expand": 0.3,
}

var negativeWords = map[string]float64{
	"crash": 0.8, "crisis": 0.7, "death": 0.8, "dead": 0.8,
	"dies": 0.8, "killed": 0.9, "kills": 0.9, "war": 0.7,
	"attack": 0.7, "disaster": 0.8, "collapse": 0.7, "fraud": 0.8,
	"scandal": 0.7, "plunge": 0.6, "slump": 0.6, "fears": 0.5,
	"fear": 0.5, "warning": 0.4, "warns": 0.4, "threat": 0.6,
	"loss": 0.4, "losses": 0.4, "decline": 0.4, "cuts": 0.3,
	"layoffs": 0.6, "lawsuit": 0.5, "ban": 0.4, "banned": 0.4,
	"fail": 0.6, "fails": 0.6, "failure": 0.6, "worst": 0.6,
	"bad": 0.3, "negative": 0.4, "outbreak": 0.6, "recession": 0.7,
	"violence": 0.7, "injured": 0.6, "struggle": 0.4, "shortage": 0.4,
}

// Score returns the polarity of a text in [-1.0, 1.0], rounded to 3
// decimal places. Text with no lexicon signal scores exactly 0.
func Score(text string) float64 {
	lower := strings.ToLower(text)

	posScore := 0.0
	negScore := 0.0

	for word, weight := range positiveWords {
		if strings.Contains(lower, word) {
			posScore += weight
		}
	}
	for word, weight := range negativeWords {
		if strings.Contains(lower, word) {
			negScore += weight
		}
	}

	total := posScore + negScore
	if total == 0 {
		return 0
	}

	// Net score normalized to -1..+1.
	return Round3((posScore - negScore) / total)
}

// Round3 rounds a polarity value to 3 decimal places.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// ScoreRecord returns a copy of the record with its title scored.
func ScoreRecord(r models.NewsRecord) models.NewsRecord {
	s := Score(r.Title)
	r.Sentiment = &s
	return r
}

// ScoreAll scores every record's title and returns a new slice.
// The input slice is not modified.
func ScoreAll(records []models.NewsRecord) []models.NewsRecord {
	scored := make([]models.NewsRecord, len(records))
	for i, r := range records {
		scored[i] = ScoreRecord(r)
	}
	return scored
}
