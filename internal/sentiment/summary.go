package sentiment

import "github.com/maheshkv/newspulse/pkg/models"

// Summary holds per-bucket headline counts. Buckets with zero matches
// are always included with 0 so consumers see a stable shape.
type Summary struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// Total returns the number of scored records the summary covers.
func (s Summary) Total() int {
	return s.Positive + s.Neutral + s.Negative
}

// BucketCount pairs a bucket label with its count, for chart rendering.
type BucketCount struct {
	Bucket models.SentimentBucket `json:"bucket"`
	Count  int                    `json:"count"`
}

// Counts returns the buckets in fixed display order.
func (s Summary) Counts() []BucketCount {
	return []BucketCount{
		{Bucket: models.BucketPositive, Count: s.Positive},
		{Bucket: models.BucketNeutral, Count: s.Neutral},
		{Bucket: models.BucketNegative, Count: s.Negative},
	}
}

// Summarize counts scored records per sentiment bucket. Records without
// a sentiment value are ignored; callers score before summarizing.
func Summarize(records []models.NewsRecord) Summary {
	var s Summary
	for _, r := range records {
		bucket, ok := r.Bucket()
		if !ok {
			continue
		}
		switch bucket {
		case models.BucketPositive:
			s.Positive++
		case models.BucketNegative:
			s.Negative++
		default:
			s.Neutral++
		}
	}
	return s
}
