package middlewares

import (
	"net/http"
	"strings"

	"github.com/shaanzeeeee/rate-punk/config"
	"github.com/shaanzeeeee/rate-punk/global"
	"github.com/shaanzeeeee/rate-punk/models"
	"github.com/shaanzeeeee/rate-punk/utils"

	"github.com/gin-gonic/gin"
)

func tokenFromRequest(c *gin.Context) string {
	token := strings.TrimSpace(c.GetHeader("Authorization"))
	if token == "" {
		if ck, err := c.Cookie(utils.CookieName); err == nil {
			token = ck
		}
	}
	return token
}

// resolveUser validates the token and loads the account, via the LRU cache
// when possible. Returns false when the request carries no usable identity.
func resolveUser(c *gin.Context) bool {
	token := tokenFromRequest(c)
	if token == "" {
		return false
	}
	username, err := utils.ParseJWT(token)
	if err != nil {
		return false
	}

	if config.LocalUserCache != nil {
		if u, ok := config.LocalUserCache.Get(username); ok {
			c.Set("user_id", u.ID)
			c.Set("username", u.Username)
			return true
		}
	}

	var u models.Users
	if err := global.DB.Select("id", "username").
		Where("username = ?", username).
		First(&u).Error; err != nil {
		return false
	}
	if config.LocalUserCache != nil {
		config.LocalUserCache.Add(username, u)
	}
	c.Set("user_id", u.ID)
	c.Set("username", u.Username)
	return true
}

// AuthRequired rejects requests without a valid session.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !resolveUser(c) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// AuthOptional resolves the caller when a valid token is present but lets
// anonymous requests through. Used by reads that degrade gracefully, like the
// vote query which answers "no vote" for guests.
func AuthOptional() gin.HandlerFunc {
	return func(c *gin.Context) {
		resolveUser(c)
		c.Next()
	}
}
