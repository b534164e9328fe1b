package controllers

import (
	"errors"
	"net/http"

	"github.com/shaanzeeeee/rate-punk/config"
	"github.com/shaanzeeeee/rate-punk/global"
	"github.com/shaanzeeeee/rate-punk/models"
	"github.com/shaanzeeeee/rate-punk/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis"
	"gorm.io/gorm"
)

// gameExists checks a game id through the redis existence cache, falling back
// to the database. Works without redis.
func gameExists(gameID uint) (bool, error) {
	var key string
	if global.RedisDB != nil {
		key = config.GameExistsCacheKey(gameID)
		cached, err := global.RedisDB.Get(key).Result()
		if err == nil {
			return cached == "1", nil
		}
		if err != redis.Nil {
			return false, err
		}
	}

	var n int64
	if err := global.DB.Model(&models.Game{}).Where("id = ?", gameID).Count(&n).Error; err != nil {
		return false, err
	}
	if global.RedisDB != nil {
		val := "0"
		if n > 0 {
			val = "1"
		}
		global.RedisDB.Set(key, val, config.GameExistsTTL)
	}
	return n > 0, nil
}

type gameListItem struct {
	models.Game
	Stats services.ReviewStats `json:"stats"`
}

// ListGames handles GET /api/games.
func ListGames(c *gin.Context) {
	var games []models.Game
	if err := global.DB.Preload("Reviews").Order("title ASC").Find(&games).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	out := make([]gameListItem, len(games))
	for i, g := range games {
		out[i] = gameListItem{Game: g, Stats: services.SummarizeReviews(g.Reviews)}
		out[i].Reviews = nil
	}
	c.JSON(http.StatusOK, gin.H{"games": out})
}

type reviewWithUser struct {
	models.Review
	Username string `json:"username"`
}

// GetGame handles GET /api/games/:slug. The game page payload: reviews
// newest first, rating stats, tag cloud, GPU buckets (top 5) and the
// accessibility breakdown.
func GetGame(c *gin.Context) {
	slug := c.Param("slug")

	var game models.Game
	err := global.DB.Where("slug = ?", slug).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Reviews.User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "username")
		}).
		Preload("GameTags", func(db *gorm.DB) *gorm.DB {
			return db.Order("count DESC")
		}).
		Preload("PerformanceReports").
		Preload("AccessibilityVotes").
		First(&game).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	reviews := make([]reviewWithUser, len(game.Reviews))
	for i, r := range game.Reviews {
		username := "unknown"
		if r.User != nil {
			username = r.User.Username
		}
		r.User = nil
		reviews[i] = reviewWithUser{Review: r, Username: username}
	}

	perf := services.GroupPerformance(game.PerformanceReports)
	if len(perf) > 5 {
		perf = perf[:5]
	}

	stats := services.SummarizeReviews(game.Reviews)
	access := services.AccessibilityBreakdown(game.AccessibilityVotes)
	accessVotes := len(game.AccessibilityVotes)

	game.Reviews = nil
	game.PerformanceReports = nil
	game.AccessibilityVotes = nil

	c.JSON(http.StatusOK, gin.H{
		"game":                game,
		"reviews":             reviews,
		"stats":               stats,
		"tags":                game.GameTags,
		"performance":         perf,
		"accessibility":       access,
		"accessibility_votes": accessVotes,
	})
}

type GameImportReq struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Slug        string  `json:"slug" binding:"required,max=191"`
	Description *string `json:"description"`
	CoverURL    *string `json:"cover_url"`
	Genre       *string `json:"genre"`
}

// ImportGame handles POST /api/games/import.
func ImportGame(c *gin.Context) {
	var req GameImportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and slug are required"})
		return
	}

	game, err := services.ImportGame(global.DB, &models.Game{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		CoverURL:    req.CoverURL,
		Genre:       req.Genre,
	})
	switch {
	case errors.Is(err, services.ErrDuplicateSlug):
		c.JSON(http.StatusConflict, gin.H{"error": "Game already exists", "game": game})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to import game"})
	default:
		c.JSON(http.StatusCreated, gin.H{"game": game})
	}
}

// SearchGames handles GET /api/search/games?q= with a proxied RAWG lookup.
func SearchGames(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Search query required"})
		return
	}
	games, count, err := services.SearchCatalog(c.Request.Context(), query)
	if errors.Is(err, services.ErrRawgKeyMissing) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
			"help":  "Get a free key at https://rawg.io/apidocs and set rawg.apikey in config.yml",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch games"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"games": games, "count": count})
}

type TagReq struct {
	GameID uint   `json:"game_id" binding:"required"`
	Tag    string `json:"tag" binding:"required,min=1,max=64"`
}

// ApplyGameTag handles POST /api/tags.
func ApplyGameTag(c *gin.Context) {
	if c.GetUint("user_id") == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	var req TagReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag, err := services.ApplyTag(global.DB, req.GameID, req.Tag)
	switch {
	case errors.Is(err, services.ErrGameNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to apply tag"})
	default:
		c.JSON(http.StatusOK, gin.H{"tag": tag})
	}
}
