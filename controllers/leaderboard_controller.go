package controllers

import (
	"net/http"

	"github.com/shaanzeeeee/rate-punk/global"
	"github.com/shaanzeeeee/rate-punk/services"

	"github.com/gin-gonic/gin"
)

const leaderboardTopK = 50

// GetLeaderboard handles GET /api/leaderboard: top reviewers by review
// count. The ranker computes the full ordering; only the top window is shown.
func GetLeaderboard(c *gin.Context) {
	entries, err := services.CachedLeaderboard(global.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build leaderboard"})
		return
	}
	if len(entries) > leaderboardTopK {
		entries = entries[:leaderboardTopK]
	}
	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}
