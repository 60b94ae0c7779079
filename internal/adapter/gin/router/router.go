package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"social-network-service/internal/adapter/gin/handler"
	"social-network-service/internal/adapter/gin/middleware"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Users    *handler.UserHandler
	Posts    *handler.PostHandler
	Comments *handler.CommentHandler
	Follows  *handler.FollowHandler
	Likes    *handler.LikeHandler
}

// SetupRouter configures and returns a Gin router with all routes and middleware
func SetupRouter(
	h Handlers,
	tokens middleware.TokenVerifier,
	rateLimit middleware.RateLimiterConfig,
	redisClient *redis.Client,
	uploadDir string,
	log *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.RateLimiter(rateLimit, redisClient, log))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "social-network-service",
		})
	})

	// Generated avatars are served straight from disk.
	router.Static("/uploads", uploadDir)

	api := router.Group("/api")
	{
		api.POST("/register", h.Users.Register)
		api.POST("/login", h.Users.Login)

		authed := api.Group("")
		authed.Use(middleware.Auth(tokens, log))
		{
			authed.GET("/current", h.Users.Current)

			users := authed.Group("/users")
			{
				users.GET("/:id", h.Users.GetByID)
				users.PUT("/:id", h.Users.Update)
			}

			posts := authed.Group("/posts")
			{
				posts.POST("", h.Posts.Create)
				posts.GET("", h.Posts.Feed)
				posts.GET("/:id", h.Posts.GetByID)
				posts.DELETE("/:id", h.Posts.Delete)
			}

			comments := authed.Group("/comments")
			{
				comments.POST("", h.Comments.Create)
				comments.DELETE("/:id", h.Comments.Delete)
			}

			follows := authed.Group("/follows")
			{
				follows.POST("", h.Follows.Create)
				follows.DELETE("/:id", h.Follows.Delete)
			}

			likes := authed.Group("/likes")
			{
				likes.POST("", h.Likes.Create)
				likes.DELETE("/:id", h.Likes.Delete)
			}
		}
	}

	return router
}
