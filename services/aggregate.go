package services

import (
	"math"
	"sort"

	"github.com/shaanzeeeee/rate-punk/models"
)

// ReviewStats is the rating aggregate for one game's or one user's reviews.
// AvgGreedScore and AvgPlaytimeHours are nil when no review carried the field:
// "no monetization data" is not the same as "zero greed".
type ReviewStats struct {
	AvgRating        float64  `json:"avg_rating"`
	AvgGreedScore    *float64 `json:"avg_greed_score"`
	AvgPlaytimeHours *float64 `json:"avg_playtime_hours"`
	TotalUpvotes     int      `json:"total_upvotes"`
	ReviewCount      int      `json:"review_count"`
}

// SummarizeReviews computes unrounded means; display rounding is up to the
// client.
func SummarizeReviews(reviews []models.Review) ReviewStats {
	stats := ReviewStats{ReviewCount: len(reviews)}
	if len(reviews) == 0 {
		return stats
	}

	var ratingSum float64
	var greedSum, playtimeSum float64
	var greedN, playtimeN int
	for _, r := range reviews {
		ratingSum += float64(r.Rating)
		stats.TotalUpvotes += r.Upvotes
		if r.GreedScore != nil {
			greedSum += float64(*r.GreedScore)
			greedN++
		}
		if r.PlaytimeHours != nil {
			playtimeSum += *r.PlaytimeHours
			playtimeN++
		}
	}
	stats.AvgRating = ratingSum / float64(len(reviews))
	if greedN > 0 {
		avg := greedSum / float64(greedN)
		stats.AvgGreedScore = &avg
	}
	if playtimeN > 0 {
		avg := playtimeSum / float64(playtimeN)
		stats.AvgPlaytimeHours = &avg
	}
	return stats
}

// GPUPerformance is one GPU bucket of a game's performance reports.
type GPUPerformance struct {
	GPU     string  `json:"gpu"`
	AvgFps  float64 `json:"avg_fps"`
	Samples int     `json:"samples"`
}

// GroupPerformance buckets reports by exact GPU label and orders buckets by
// sample count descending (ties keep first-seen order). The full grouping is
// returned; consumers truncate for display.
func GroupPerformance(reports []models.PerformanceReport) []GPUPerformance {
	type bucket struct {
		fpsSum float64
		n      int
		order  int
	}
	buckets := make(map[string]*bucket)
	for i, r := range reports {
		b, ok := buckets[r.GPU]
		if !ok {
			b = &bucket{order: i}
			buckets[r.GPU] = b
		}
		b.fpsSum += float64(r.AvgFps)
		b.n++
	}

	out := make([]GPUPerformance, 0, len(buckets))
	orders := make(map[string]int, len(buckets))
	for gpu, b := range buckets {
		out = append(out, GPUPerformance{GPU: gpu, AvgFps: b.fpsSum / float64(b.n), Samples: b.n})
		orders[gpu] = b.order
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Samples != out[j].Samples {
			return out[i].Samples > out[j].Samples
		}
		return orders[out[i].GPU] < orders[out[j].GPU]
	})
	return out
}

// FeatureStat is one accessibility feature with the share of votes
// asserting the game has it.
type FeatureStat struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Percent int    `json:"percent"`
}

type accessibilityFeature struct {
	key   string
	label string
	get   func(models.AccessibilityVote) bool
}

// Fixed display order.
var accessibilityFeatures = []accessibilityFeature{
	{"colorblindMode", "Colorblind Mode", func(v models.AccessibilityVote) bool { return v.ColorblindMode }},
	{"subtitles", "Subtitles", func(v models.AccessibilityVote) bool { return v.Subtitles }},
	{"remappableKeys", "Remappable Keys", func(v models.AccessibilityVote) bool { return v.RemappableKeys }},
	{"difficultyModes", "Difficulty Modes", func(v models.AccessibilityVote) bool { return v.DifficultyModes }},
	{"screenReader", "Screen Reader", func(v models.AccessibilityVote) bool { return v.ScreenReader }},
	{"oneHandedMode", "One-Handed Mode", func(v models.AccessibilityVote) bool { return v.OneHandedMode }},
}

// AccessibilityBreakdown returns, per feature in fixed order, the rounded
// percentage of votes asserting the feature is present. All zero when there
// are no votes.
func AccessibilityBreakdown(votes []models.AccessibilityVote) []FeatureStat {
	out := make([]FeatureStat, len(accessibilityFeatures))
	total := len(votes)
	for i, f := range accessibilityFeatures {
		stat := FeatureStat{Key: f.key, Label: f.label}
		if total > 0 {
			yes := 0
			for _, v := range votes {
				if f.get(v) {
					yes++
				}
			}
			stat.Percent = int(math.Round(float64(yes) / float64(total) * 100))
		}
		out[i] = stat
	}
	return out
}
