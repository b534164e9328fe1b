package controllers

import (
	"net/http"

	"github.com/shaanzeeeee/rate-punk/global"
	"github.com/shaanzeeeee/rate-punk/models"

	"github.com/gin-gonic/gin"
)

type PerformanceReq struct {
	GameID     uint   `json:"game_id" binding:"required,min=1"`
	GPU        string `json:"gpu" binding:"required,max=64"`
	CPU        string `json:"cpu" binding:"required,max=64"`
	Resolution string `json:"resolution" binding:"omitempty,oneof=720p 1080p 1440p 4K"`
	AvgFps     int    `json:"avg_fps" binding:"required,gt=0"`
	Settings   string `json:"settings" binding:"omitempty,oneof=Low Medium High Ultra"`
}

// CreatePerformanceReport handles POST /api/performance.
func CreatePerformanceReport(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	var req PerformanceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ok, err := gameExists(req.GameID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
		return
	}

	if req.Resolution == "" {
		req.Resolution = "1080p"
	}
	if req.Settings == "" {
		req.Settings = "High"
	}
	report := models.PerformanceReport{
		UserID:     userID,
		GameID:     req.GameID,
		GPU:        req.GPU,
		CPU:        req.CPU,
		Resolution: req.Resolution,
		AvgFps:     req.AvgFps,
		Settings:   req.Settings,
	}
	if err := global.DB.Create(&report).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save report"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"report": report})
}

type AccessibilityReq struct {
	GameID          uint `json:"game_id" binding:"required,min=1"`
	ColorblindMode  bool `json:"colorblind_mode"`
	Subtitles       bool `json:"subtitles"`
	RemappableKeys  bool `json:"remappable_keys"`
	DifficultyModes bool `json:"difficulty_modes"`
	ScreenReader    bool `json:"screen_reader"`
	OneHandedMode   bool `json:"one_handed_mode"`
}

// CreateAccessibilityVote handles POST /api/accessibility.
func CreateAccessibilityVote(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	var req AccessibilityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing game ID"})
		return
	}

	ok, err := gameExists(req.GameID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
		return
	}

	vote := models.AccessibilityVote{
		UserID:          userID,
		GameID:          req.GameID,
		ColorblindMode:  req.ColorblindMode,
		Subtitles:       req.Subtitles,
		RemappableKeys:  req.RemappableKeys,
		DifficultyModes: req.DifficultyModes,
		ScreenReader:    req.ScreenReader,
		OneHandedMode:   req.OneHandedMode,
	}
	if err := global.DB.Create(&vote).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save vote"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"vote": vote})
}
