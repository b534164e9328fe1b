package controllers_test

import (
	"net/http"
	"testing"

	"github.com/shaanzeeeee/rate-punk/config"
	"github.com/shaanzeeeee/rate-punk/global"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// With the cache layer active, only a successful create arms the per-user
// submission throttle; a rejected submission can be retried immediately.
func TestReviewThrottleArmsOnSuccessOnly(t *testing.T) {
	r := setupServer(t)
	mr := miniredis.RunT(t)
	global.RedisDB = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { global.RedisDB = nil })

	user := registerUser(t, r, "throttled")
	g1 := importGame(t, r, user, "th-1")
	g2 := importGame(t, r, user, "th-2")

	// rejected submission: unknown game
	w := doJSON(t, r, http.MethodPost, "/api/reviews", user, gin.H{
		"game_id": 9999, "content": "ghost", "rating": 5,
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	// the slot is still free
	w = doJSON(t, r, http.MethodPost, "/api/reviews", user, gin.H{
		"game_id": g1, "content": "first", "rating": 8,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// now it is armed
	w = doJSON(t, r, http.MethodPost, "/api/reviews", user, gin.H{
		"game_id": g2, "content": "too soon", "rating": 7,
	})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// after expiry a duplicate is still a conflict, and the conflict
	// does not re-arm the throttle
	mr.FastForward(config.ReviewRateTTL)
	w = doJSON(t, r, http.MethodPost, "/api/reviews", user, gin.H{
		"game_id": g1, "content": "again", "rating": 6,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	w = doJSON(t, r, http.MethodPost, "/api/reviews", user, gin.H{
		"game_id": g2, "content": "second", "rating": 7,
	})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}
