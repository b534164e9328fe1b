package main

import (
	"flag"
	"fmt"

	"github.com/shaanzeeeee/rate-punk/config"
	"github.com/shaanzeeeee/rate-punk/global"
	"github.com/shaanzeeeee/rate-punk/log"
	"github.com/shaanzeeeee/rate-punk/router"
	"github.com/shaanzeeeee/rate-punk/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cleanupReviews := flag.Bool("cleanup-reviews", false, "delete duplicate reviews (keeps the earliest per user/game) and exit")
	flag.Parse()

	if err := log.Init(false); err != nil {
		panic(err)
	}
	defer log.Sync()

	config.InitConfig()
	if config.AppConfig.App.Prod {
		gin.SetMode(gin.ReleaseMode)
	}

	// batch maintenance mode, never run inline with request handling
	if *cleanupReviews {
		deleted, err := services.CleanupDuplicateReviews(global.DB)
		if err != nil {
			log.L().Fatal("cleanup failed", zap.Error(err))
		}
		log.L().Info("cleanup complete", zap.Int64("deleted", deleted))
		return
	}

	r := router.SetupRouter()
	port := config.GetPort()
	fmt.Printf("RatePunk listening on http://localhost%s\n", port)
	if err := r.Run(port); err != nil {
		log.L().Fatal("server exited", zap.Error(err))
	}
}
