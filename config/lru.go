package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/shaanzeeeee/rate-punk/models"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"
)

const userCacheSize = 1024

var (
	// In-process cache of authenticated users, keyed by username. Saves a DB
	// round trip per request on the hot auth path.
	LocalUserCache *lru.Cache[string, models.Users]
	cacheOnce      sync.Once

	// Per-username login limiters.
	LoginAttempts sync.Map
	cleanupOnce   sync.Once
)

func initUserCache(size int) {
	cacheOnce.Do(func() {
		cache, err := lru.New[string, models.Users](size)
		if err != nil {
			panic(err)
		}
		LocalUserCache = cache
	})
}

func ClearUserCache(username string) {
	if LocalUserCache != nil {
		LocalUserCache.Remove(username)
	}
}

// LoginLimiter returns the rate limiter for a username: 1 attempt/sec,
// burst of 5.
func LoginLimiter(username string) *rate.Limiter {
	ensureCleanupRunning()
	v, _ := LoginAttempts.LoadOrStore(username, rate.NewLimiter(rate.Every(time.Second), 5))
	return v.(*rate.Limiter)
}

func ensureCleanupRunning() {
	cleanupOnce.Do(func() { go cleanupOldLimiters() })
}

// Drop limiters that have been idle long enough to refill completely.
func cleanupOldLimiters() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		LoginAttempts.Range(func(key, value interface{}) bool {
			limiter := value.(*rate.Limiter)
			if limiter.Tokens() == float64(limiter.Burst()) {
				LoginAttempts.Delete(key)
			}
			return true
		})
	}
}

// GameExistsCacheKey formats the redis key for a game existence flag.
func GameExistsCacheKey(gameID uint) string {
	return fmt.Sprintf(RedisGameExistsKey, gameID)
}
