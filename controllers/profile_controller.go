package controllers

import (
	"net/http"
	"strconv"

	"github.com/shaanzeeeee/rate-punk/global"
	"github.com/shaanzeeeee/rate-punk/models"
	"github.com/shaanzeeeee/rate-punk/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const profilePageSize = 5

type profileReview struct {
	models.Review
	Game *models.Game `json:"game"`
}

// GetProfile handles GET /api/profile?page=&sort=. Sort keys follow the site
// controls: newest (default), oldest, highest, lowest.
func GetProfile(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	var order string
	switch c.DefaultQuery("sort", "newest") {
	case "oldest":
		order = "created_at ASC"
	case "highest":
		order = "rating DESC"
	case "lowest":
		order = "rating ASC"
	default:
		order = "created_at DESC"
	}

	var user models.Users
	if err := global.DB.Preload("Badges").First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	var allReviews []models.Review
	if err := global.DB.Where("user_id = ?", userID).Find(&allReviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	stats := services.SummarizeReviews(allReviews)
	totalPages := (len(allReviews) + profilePageSize - 1) / profilePageSize

	var reviews []models.Review
	if err := global.DB.Where("user_id = ?", userID).
		Order(order).
		Offset((page-1)*profilePageSize).
		Limit(profilePageSize).
		Preload("Game", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "title", "slug", "cover_url", "genre")
		}).
		Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	out := make([]profileReview, len(reviews))
	for i, r := range reviews {
		game := r.Game
		r.Game = nil
		out[i] = profileReview{Review: r, Game: game}
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":        user.ID,
			"username":  user.Username,
			"email":     user.Email,
			"joined_at": user.CreatedAt,
			"badges":    user.Badges,
		},
		"stats":        stats,
		"reviews":      out,
		"total_pages":  totalPages,
		"current_page": page,
	})
}
