package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/shaanzeeeee/rate-punk/config"
	"github.com/shaanzeeeee/rate-punk/global"
	"github.com/shaanzeeeee/rate-punk/services"

	"github.com/gin-gonic/gin"
)

type ReviewCreateReq struct {
	GameID        uint     `json:"game_id" binding:"required,min=1"`
	Content       string   `json:"content" binding:"required,max=5000"`
	Rating        int      `json:"rating" binding:"required,min=1,max=10"`
	GreedScore    *int     `json:"greed_score" binding:"omitempty,min=1,max=10"`
	PlaytimeHours *float64 `json:"playtime_hours" binding:"omitempty,gt=0"`
	GameVersion   *string  `json:"game_version"`
}

// CreateReview handles POST /api/reviews. One review per (user, game):
// a resubmission is rejected with 409 rather than silently stacking rows.
func CreateReview(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	var req ReviewCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// light per-user submission throttle; the slot is only burned on success,
	// a rejected submission can be retried immediately
	rateKey := fmt.Sprintf(config.RedisReviewRateKey, userID)
	if global.RedisDB != nil {
		if global.RedisDB.Exists(rateKey).Val() > 0 {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "please wait before submitting another review"})
			return
		}
	}

	review, badges, err := services.CreateReview(global.DB, userID, services.ReviewInput{
		GameID:        req.GameID,
		Content:       req.Content,
		Rating:        req.Rating,
		GreedScore:    req.GreedScore,
		PlaytimeHours: req.PlaytimeHours,
		GameVersion:   req.GameVersion,
	})
	switch {
	case errors.Is(err, services.ErrGameNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrDuplicateReview):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create review"})
	default:
		if global.RedisDB != nil {
			global.RedisDB.Set(rateKey, "1", config.ReviewRateTTL)
		}
		resp := gin.H{"review": review}
		if len(badges) > 0 {
			resp["new_badges"] = badges
		}
		c.JSON(http.StatusCreated, resp)
	}
}
