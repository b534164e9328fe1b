package config

import (
	"time"

	"github.com/shaanzeeeee/rate-punk/global"
	"github.com/shaanzeeeee/rate-punk/log"

	"github.com/go-redis/redis"
	"go.uber.org/zap"
)

// Cache keys. %d is the game/user id they are scoped to.
const (
	RedisGameExistsKey  = "game:%d:exists"
	RedisLeaderboardKey = "leaderboard:reviewers"
	RedisSearchKey      = "rawg:search:%s"
	RedisReviewRateKey  = "review:rate:user:%d"
)

const (
	GameExistsTTL  = 30 * time.Minute
	LeaderboardTTL = 2 * time.Minute
	SearchTTL      = time.Hour
	ReviewRateTTL  = 30 * time.Second // min gap between review submissions per user
)

// initRedis is best-effort: the app (and all of services/) runs without redis,
// callers check global.RedisDB for nil.
func initRedis() {
	if AppConfig.Redis.Addr == "" {
		log.L().Warn("redis not configured, caches disabled")
		return
	}
	client := redis.NewClient(&redis.Options{
		Addr:         AppConfig.Redis.Addr,
		DB:           AppConfig.Redis.DB,
		Password:     AppConfig.Redis.Password,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  800 * time.Millisecond,
		WriteTimeout: 800 * time.Millisecond,
		PoolSize:     20,
		MinIdleConns: 5,
	})
	if _, err := client.Ping().Result(); err != nil {
		log.L().Warn("redis unreachable, caches disabled", zap.Error(err))
		return
	}
	global.RedisDB = client
	log.L().Info("redis connected")
}
