package services_test

import (
	"testing"

	"github.com/shaanzeeeee/rate-punk/models"
	"github.com/shaanzeeeee/rate-punk/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestSummarizeReviewsMeans(t *testing.T) {
	reviews := []models.Review{
		{Rating: 10, Upvotes: 3},
		{Rating: 8, Upvotes: -1},
		{Rating: 6, Upvotes: 2},
	}
	stats := services.SummarizeReviews(reviews)
	assert.Equal(t, 8.0, stats.AvgRating)
	assert.Equal(t, 4, stats.TotalUpvotes)
	assert.Equal(t, 3, stats.ReviewCount)
	assert.Nil(t, stats.AvgGreedScore)
	assert.Nil(t, stats.AvgPlaytimeHours)
}

func TestSummarizeReviewsGreedExcludesNils(t *testing.T) {
	reviews := []models.Review{
		{Rating: 5},
		{Rating: 5, GreedScore: intPtr(4)},
		{Rating: 5, GreedScore: intPtr(8)},
	}
	stats := services.SummarizeReviews(reviews)
	require.NotNil(t, stats.AvgGreedScore)
	assert.Equal(t, 6.0, *stats.AvgGreedScore)
}

func TestSummarizeReviewsPlaytime(t *testing.T) {
	reviews := []models.Review{
		{Rating: 5, PlaytimeHours: floatPtr(10)},
		{Rating: 5, PlaytimeHours: floatPtr(30)},
		{Rating: 5},
	}
	stats := services.SummarizeReviews(reviews)
	require.NotNil(t, stats.AvgPlaytimeHours)
	assert.Equal(t, 20.0, *stats.AvgPlaytimeHours)
}

func TestSummarizeReviewsEmpty(t *testing.T) {
	stats := services.SummarizeReviews(nil)
	assert.Equal(t, 0.0, stats.AvgRating)
	assert.Nil(t, stats.AvgGreedScore)
	assert.Nil(t, stats.AvgPlaytimeHours)
	assert.Equal(t, 0, stats.TotalUpvotes)
	assert.Equal(t, 0, stats.ReviewCount)
}

func TestGroupPerformanceBucketsAndOrder(t *testing.T) {
	reports := []models.PerformanceReport{
		{GPU: "RTX 4070", AvgFps: 100},
		{GPU: "RTX 3060", AvgFps: 60},
		{GPU: "RTX 3060", AvgFps: 70},
		{GPU: "RTX 3060", AvgFps: 80},
		{GPU: "RX 7800 XT", AvgFps: 90},
		{GPU: "RX 7800 XT", AvgFps: 110},
	}
	groups := services.GroupPerformance(reports)
	require.Len(t, groups, 3)

	assert.Equal(t, "RTX 3060", groups[0].GPU)
	assert.Equal(t, 3, groups[0].Samples)
	assert.InDelta(t, 70.0, groups[0].AvgFps, 1e-9)

	assert.Equal(t, "RX 7800 XT", groups[1].GPU)
	assert.Equal(t, 2, groups[1].Samples)
	assert.InDelta(t, 100.0, groups[1].AvgFps, 1e-9)

	assert.Equal(t, "RTX 4070", groups[2].GPU)
	assert.Equal(t, 1, groups[2].Samples)
}

func TestGroupPerformanceEmpty(t *testing.T) {
	assert.Empty(t, services.GroupPerformance(nil))
}

func TestAccessibilityBreakdownPercentages(t *testing.T) {
	votes := []models.AccessibilityVote{
		{Subtitles: true, ColorblindMode: true},
		{Subtitles: true},
		{Subtitles: true, ScreenReader: true},
		{Subtitles: false},
	}
	stats := services.AccessibilityBreakdown(votes)
	require.Len(t, stats, 6)

	byKey := map[string]int{}
	for _, s := range stats {
		byKey[s.Key] = s.Percent
	}
	assert.Equal(t, 75, byKey["subtitles"])
	assert.Equal(t, 25, byKey["colorblindMode"])
	assert.Equal(t, 25, byKey["screenReader"])
	assert.Equal(t, 0, byKey["remappableKeys"])
	assert.Equal(t, 0, byKey["difficultyModes"])
	assert.Equal(t, 0, byKey["oneHandedMode"])
}

func TestAccessibilityBreakdownNoVotes(t *testing.T) {
	stats := services.AccessibilityBreakdown(nil)
	require.Len(t, stats, 6)
	for _, s := range stats {
		assert.Equal(t, 0, s.Percent)
	}
	// display order is fixed
	assert.Equal(t, "colorblindMode", stats[0].Key)
	assert.Equal(t, "subtitles", stats[1].Key)
	assert.Equal(t, "remappableKeys", stats[2].Key)
	assert.Equal(t, "difficultyModes", stats[3].Key)
	assert.Equal(t, "screenReader", stats[4].Key)
	assert.Equal(t, "oneHandedMode", stats[5].Key)
}

func TestAccessibilityBreakdownRounding(t *testing.T) {
	votes := []models.AccessibilityVote{
		{Subtitles: true}, {Subtitles: true}, {Subtitles: false},
	}
	stats := services.AccessibilityBreakdown(votes)
	byKey := map[string]int{}
	for _, s := range stats {
		byKey[s.Key] = s.Percent
	}
	// 2/3 rounds to 67
	assert.Equal(t, 67, byKey["subtitles"])
}
