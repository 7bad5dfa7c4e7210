// Package stats derives the display statistics of a place from its reviews.
package stats

import (
	"math"
	"time"

	"safespot/internal/recency"
)

// ListTagLimit is how many tags the place list shows per place.
const ListTagLimit = 3

// NoTagLimit keeps every distinct tag.
const NoTagLimit = 0

// Sample is the part of a review the aggregation looks at.
type Sample struct {
	Rating      int
	SafetyScore int
	CreatedAt   time.Time
	Tags        []string
}

// Summary holds the derived fields of a place.
type Summary struct {
	Rating       float64
	SafetyScore  float64
	TotalReviews int
	Tags         []string
	LastActivity time.Time
	LastUpdated  string
}

type Aggregator struct {
	recency *recency.Formatter
}

func NewAggregator(f *recency.Formatter) *Aggregator {
	return &Aggregator{recency: f}
}

// Summarize computes the statistics of one place. placeUpdatedAt is the
// recency fallback when there are no reviews. tagLimit <= 0 keeps all tags.
func (a *Aggregator) Summarize(placeUpdatedAt time.Time, samples []Sample, tagLimit int) Summary {
	s := Summary{
		TotalReviews: len(samples),
		Tags:         UniqueTags(samples, tagLimit),
		LastActivity: placeUpdatedAt,
	}

	if len(samples) > 0 {
		var ratingSum, safetySum int
		latest := samples[0].CreatedAt
		for _, r := range samples {
			ratingSum += r.Rating
			safetySum += r.SafetyScore
			if r.CreatedAt.After(latest) {
				latest = r.CreatedAt
			}
		}
		n := float64(len(samples))
		s.Rating = RoundTenth(float64(ratingSum) / n)
		s.SafetyScore = RoundTenth(float64(safetySum) / n)
		s.LastActivity = latest
	}

	s.LastUpdated = a.recency.Format(s.LastActivity)
	return s
}

// RoundTenth rounds to one decimal place, halves away from zero (4.25 -> 4.3).
func RoundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// UniqueTags flattens the tags of every sample, drops repeats keeping the first
// occurrence and truncates to limit when limit > 0. Never returns nil.
func UniqueTags(samples []Sample, limit int) []string {
	seen := make(map[string]struct{})
	tags := make([]string, 0)

	for _, s := range samples {
		for _, tag := range s.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
			if limit > 0 && len(tags) == limit {
				return tags
			}
		}
	}
	return tags
}
