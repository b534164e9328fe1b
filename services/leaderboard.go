package services

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/shaanzeeeee/rate-punk/config"
	"github.com/shaanzeeeee/rate-punk/global"
	"github.com/shaanzeeeee/rate-punk/log"
	"github.com/shaanzeeeee/rate-punk/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type LeaderboardEntry struct {
	Rank        int       `json:"rank"`
	UserID      uint      `json:"user_id"`
	Username    string    `json:"username"`
	ReviewCount int       `json:"review_count"`
	AvgRating   float64   `json:"avg_rating"`
	JoinedAt    time.Time `json:"joined_at"`
}

// BuildLeaderboard ranks all users by review count descending. Ties go to the
// earlier join date, then the lower user id, so the ordering is reproducible.
// Ranks are 1-based sequence positions with no skipping. The full ranking is
// returned; callers truncate to their display window.
func BuildLeaderboard(db *gorm.DB) ([]LeaderboardEntry, error) {
	var users []models.Users
	if err := db.Preload("Reviews").Find(&users).Error; err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(users))
	for _, u := range users {
		entries = append(entries, LeaderboardEntry{
			UserID:      u.ID,
			Username:    u.Username,
			ReviewCount: len(u.Reviews),
			AvgRating:   SummarizeReviews(u.Reviews).AvgRating,
			JoinedAt:    u.CreatedAt,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].ReviewCount != entries[j].ReviewCount {
			return entries[i].ReviewCount > entries[j].ReviewCount
		}
		if !entries[i].JoinedAt.Equal(entries[j].JoinedAt) {
			return entries[i].JoinedAt.Before(entries[j].JoinedAt)
		}
		return entries[i].UserID < entries[j].UserID
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

// CachedLeaderboard serves the ranking from a short-lived redis snapshot when
// redis is up, falling back to a direct build. Staleness within the TTL is
// acceptable; the ranking is a read-time aggregate.
func CachedLeaderboard(db *gorm.DB) ([]LeaderboardEntry, error) {
	if global.RedisDB == nil {
		return BuildLeaderboard(db)
	}
	if raw, err := global.RedisDB.Get(config.RedisLeaderboardKey).Bytes(); err == nil {
		var entries []LeaderboardEntry
		if err := json.Unmarshal(raw, &entries); err == nil {
			return entries, nil
		}
		log.L().Warn("leaderboard cache decode failed, rebuilding")
	}
	entries, err := BuildLeaderboard(db)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(entries); err == nil {
		if err := global.RedisDB.Set(config.RedisLeaderboardKey, raw, config.LeaderboardTTL).Err(); err != nil {
			log.L().Warn("leaderboard cache write failed", zap.Error(err))
		}
	}
	return entries, nil
}
