package stats

import (
	"testing"
	"time"

	"safespot/internal/recency"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)

func newAggregator() *Aggregator {
	return NewAggregator(recency.NewWithClock(func() time.Time { return now }))
}

func TestSummarizeEmpty(t *testing.T) {
	updated := now.Add(-3 * time.Hour)

	s := newAggregator().Summarize(updated, nil, ListTagLimit)

	assert.Equal(t, 0.0, s.Rating)
	assert.Equal(t, 0.0, s.SafetyScore)
	assert.Equal(t, 0, s.TotalReviews)
	assert.NotNil(t, s.Tags)
	assert.Empty(t, s.Tags)
	assert.Equal(t, updated, s.LastActivity)
	assert.Equal(t, "3 hours ago", s.LastUpdated)
}

func TestSummarizeAverages(t *testing.T) {
	samples := []Sample{
		{Rating: 4, SafetyScore: 5, CreatedAt: now.Add(-48 * time.Hour)},
		{Rating: 5, SafetyScore: 4, CreatedAt: now.Add(-10 * time.Minute)},
	}

	s := newAggregator().Summarize(now.Add(-90*24*time.Hour), samples, ListTagLimit)

	assert.Equal(t, 4.5, s.Rating)
	assert.Equal(t, 4.5, s.SafetyScore)
	assert.Equal(t, 2, s.TotalReviews)
	assert.Equal(t, now.Add(-10*time.Minute), s.LastActivity)
	assert.Equal(t, "10 minutes ago", s.LastUpdated)
}

func TestSummarizeIsOrderIndependent(t *testing.T) {
	samples := []Sample{
		{Rating: 1, SafetyScore: 2, CreatedAt: now.Add(-time.Hour)},
		{Rating: 5, SafetyScore: 5, CreatedAt: now.Add(-5 * time.Hour)},
		{Rating: 3, SafetyScore: 4, CreatedAt: now.Add(-2 * time.Hour)},
	}
	reversed := []Sample{samples[2], samples[1], samples[0]}

	a := newAggregator()
	s1 := a.Summarize(now, samples, NoTagLimit)
	s2 := a.Summarize(now, reversed, NoTagLimit)

	assert.Equal(t, 3.0, s1.Rating)
	assert.Equal(t, 3.7, s1.SafetyScore)
	assert.Equal(t, s1.Rating, s2.Rating)
	assert.Equal(t, s1.SafetyScore, s2.SafetyScore)
	assert.Equal(t, s1.LastActivity, s2.LastActivity)
}

func TestRoundTenthHalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 4.3, RoundTenth(4.25))
	assert.Equal(t, 4.2, RoundTenth(4.24))
	assert.Equal(t, 3.3, RoundTenth(10.0/3.0))
	assert.Equal(t, -4.3, RoundTenth(-4.25))

	// 4,4,5,4 averages to exactly 4.25
	samples := []Sample{{Rating: 4}, {Rating: 4}, {Rating: 5}, {Rating: 4}}
	s := newAggregator().Summarize(now, samples, NoTagLimit)
	assert.Equal(t, 4.3, s.Rating)
}

func TestUniqueTags(t *testing.T) {
	samples := []Sample{
		{Tags: []string{"quiet", "safe"}},
		{Tags: []string{"quiet", "lit"}},
	}

	assert.Equal(t, []string{"quiet", "safe", "lit"}, UniqueTags(samples, ListTagLimit))
	assert.Equal(t, []string{"quiet", "safe", "lit"}, UniqueTags(samples, NoTagLimit))
}

func TestUniqueTagsTruncates(t *testing.T) {
	samples := []Sample{
		{Tags: []string{"well-lit", "busy"}},
		{Tags: []string{"busy", "staffed", "cctv", "solo-friendly"}},
	}

	listed := UniqueTags(samples, ListTagLimit)
	require.Len(t, listed, 3)
	assert.Equal(t, []string{"well-lit", "busy", "staffed"}, listed)

	all := UniqueTags(samples, NoTagLimit)
	assert.Equal(t, []string{"well-lit", "busy", "staffed", "cctv", "solo-friendly"}, all)
}

func TestUniqueTagsIsCaseSensitive(t *testing.T) {
	samples := []Sample{{Tags: []string{"Quiet", "quiet"}}}
	assert.Equal(t, []string{"Quiet", "quiet"}, UniqueTags(samples, NoTagLimit))
}
