package middlewares

import (
	"time"

	"github.com/shaanzeeeee/rate-punk/config"
	"github.com/shaanzeeeee/rate-punk/log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func GinLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		var errMsg string
		if len(c.Errors) > 0 {
			errMsg = c.Errors.String()
		}
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.Int("response_size", c.Writer.Size()),
			zap.String("version", config.Version),
		}
		if errMsg != "" {
			fields = append(fields, zap.String("error", errMsg))
		}
		log.L().Info("HTTP Request", fields...)
	}
}
