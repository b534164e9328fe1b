package router

import (
	"github.com/shaanzeeeee/rate-punk/controllers"
	"github.com/shaanzeeeee/rate-punk/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(middlewares.GinLogger(), middlewares.GinRecovery())

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/logout", controllers.Logout)
	}

	// public reads; vote lookup resolves the caller when a token is present
	public := r.Group("/api", middlewares.AuthOptional())
	{
		public.GET("/games", controllers.ListGames)
		public.GET("/games/:slug", controllers.GetGame)
		public.GET("/leaderboard", controllers.GetLeaderboard)
		public.GET("/reviews/:id/vote", controllers.GetReviewVote)
	}

	// everything that writes needs a session
	api := r.Group("/api", middlewares.AuthRequired())
	{
		api.GET("/profile", controllers.GetProfile)
		api.POST("/reviews", controllers.CreateReview)
		api.POST("/reviews/:id/vote", controllers.CastReviewVote)
		api.POST("/performance", controllers.CreatePerformanceReport)
		api.POST("/accessibility", controllers.CreateAccessibilityVote)
		api.POST("/tags", controllers.ApplyGameTag)
		api.GET("/search/games", controllers.SearchGames)
		api.POST("/games/import", controllers.ImportGame)
	}

	return r
}
