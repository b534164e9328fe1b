package utils

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const CookieName = "Authorization"

func SetAuthCookie(c *gin.Context, token string, ttl time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	// secure=false for dev; set true behind https
	c.SetCookie(CookieName, token, int(ttl.Seconds()), "/", "", false, true)
}

func ClearAuthCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
}
