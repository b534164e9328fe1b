package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/shaanzeeeee/rate-punk/config"
	"github.com/shaanzeeeee/rate-punk/global"
	"github.com/shaanzeeeee/rate-punk/log"
	"github.com/shaanzeeeee/rate-punk/models"
	"github.com/shaanzeeeee/rate-punk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type RegisterReq struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type userResp struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func Register(c *gin.Context) {
	var req RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var n int64
	if err := global.DB.Model(&models.Users{}).Where("email = ?", req.Email).Count(&n).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	if n > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
		return
	}
	if err := global.DB.Model(&models.Users{}).Where("username = ?", req.Username).Count(&n).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	if n > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username already taken"})
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "hashing failed"})
		return
	}
	user := models.Users{Username: req.Username, Email: req.Email, Password: hashed}
	if err := global.DB.Create(&user).Error; err != nil {
		// unique index may still fire under a racing registration
		c.JSON(http.StatusBadRequest, gin.H{"error": "username or email already in use"})
		return
	}

	token, err := utils.GenerateJWT(user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
		return
	}
	utils.SetAuthCookie(c, token, 72*time.Hour)
	log.L().Info("user registered", zap.String("username", user.Username))
	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user":  userResp{ID: user.ID, Username: user.Username, Email: user.Email},
	})
}

type LoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !config.LoginLimiter(req.Username).Allow() {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many login attempts"})
		return
	}

	var user models.Users
	if err := global.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		}
		return
	}
	if !utils.CheckPassword(user.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := utils.GenerateJWT(user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
		return
	}
	utils.SetAuthCookie(c, token, 72*time.Hour)
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  userResp{ID: user.ID, Username: user.Username, Email: user.Email},
	})
}

func Logout(c *gin.Context) {
	utils.ClearAuthCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
