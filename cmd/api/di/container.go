package di

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"social-network-service/cmd/api/infrastructure"
	"social-network-service/internal/adapter/cache"
	"social-network-service/internal/adapter/db/postgres"
	ginhandler "social-network-service/internal/adapter/gin/handler"
	ginrouter "social-network-service/internal/adapter/gin/router"
	"social-network-service/internal/adapter/repository/cached"
	"social-network-service/internal/config"
	"social-network-service/internal/usecase/comment"
	"social-network-service/internal/usecase/follow"
	"social-network-service/internal/usecase/like"
	"social-network-service/internal/usecase/post"
	"social-network-service/internal/usecase/user"
	"social-network-service/pkg/avatar"
	redisclient "social-network-service/pkg/redis"
	"social-network-service/pkg/security"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	DB          *gorm.DB
	RedisClient *redisclient.Client
	Tokens      *security.TokenService
	UserUC      user.Usecase
	PostUC      post.Usecase
	CommentUC   comment.Usecase
	FollowUC    follow.Usecase
	LikeUC      like.Usecase
	Handlers    ginrouter.Handlers
}

// NewContainer creates and initializes all application dependencies
func NewContainer(cfg *config.Config, l *zap.Logger) (*Container, error) {
	// Validate configuration before initializing any dependencies
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Initialize database
	db, err := infrastructure.NewDatabase(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Redis client, nil when disabled
	rdb, err := infrastructure.NewRedisClient(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Redis: %w", err)
	}

	// Initialize repositories
	userRepoPG := postgres.NewUserRepoPG(db, l)
	followRepo := postgres.NewFollowRepoPG(db, l)
	postRepo := postgres.NewPostRepoPG(db, l)
	commentRepo := postgres.NewCommentRepoPG(db, l)
	likeRepo := postgres.NewLikeRepoPG(db, l)

	// Wrap the user repository in a read-through cache when Redis is up
	userRepo := user.Repository(userRepoPG)
	if rdb != nil {
		userCache := cache.NewRedisUserCache(
			rdb.Client,
			time.Duration(cfg.Redis.CacheTTL)*time.Second,
			l,
		)
		userRepo = cached.NewCachedUserRepository(userRepoPG, userCache, l)
	}

	// Security and content primitives
	tokens := security.NewTokenService(
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute,
	)
	hasher := security.NewPasswordHasher(cfg.Auth.BcryptCost)
	avatars := avatar.NewGenerator()
	contentStore, err := avatar.NewFSContentStore(cfg.Storage.UploadDir, cfg.Storage.PublicPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize content store: %w", err)
	}

	// Initialize use cases
	userUC := user.New(userRepo, followRepo, tokens, hasher, avatars, contentStore, l)
	postUC := post.New(postRepo, l)
	commentUC := comment.New(commentRepo, postRepo, l)
	followUC := follow.New(followRepo, userRepo, l)
	likeUC := like.New(likeRepo, postRepo, l)

	// Initialize Gin handlers
	handlers := ginrouter.Handlers{
		Users:    ginhandler.NewUserHandler(userUC, l),
		Posts:    ginhandler.NewPostHandler(postUC, l),
		Comments: ginhandler.NewCommentHandler(commentUC, l),
		Follows:  ginhandler.NewFollowHandler(followUC, l),
		Likes:    ginhandler.NewLikeHandler(likeUC, l),
	}

	return &Container{
		Config:      cfg,
		Logger:      l,
		DB:          db,
		RedisClient: rdb,
		Tokens:      tokens,
		UserUC:      userUC,
		PostUC:      postUC,
		CommentUC:   commentUC,
		FollowUC:    followUC,
		LikeUC:      likeUC,
		Handlers:    handlers,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error

	// Close Redis connection
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	// Close database connection
	if c.DB != nil {
		if err := infrastructure.CloseDatabase(c.DB); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("container close errors: %v", errs)
	}

	return nil
}
