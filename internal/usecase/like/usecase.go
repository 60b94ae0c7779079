package like

import (
	"context"

	"go.uber.org/zap"

	domain "social-network-service/internal/domain/post"
	pkgerrors "social-network-service/pkg/errors"
)

// Repository defines the interface for like data access operations.
type Repository interface {
	Create(ctx context.Context, postID, userID string) (*domain.Like, error)
	Delete(ctx context.Context, postID, userID string) error
	Exists(ctx context.Context, postID, userID string) (bool, error)
}

// PostChecker exposes the post existence lookup used before liking.
type PostChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// LikeUsecase implements the business logic for post likes.
type LikeUsecase struct {
	repo  Repository
	posts PostChecker
	log   *zap.Logger
}

// New creates a new like usecase.
func New(repo Repository, posts PostChecker, log *zap.Logger) *LikeUsecase {
	return &LikeUsecase{repo: repo, posts: posts, log: log}
}

// Like records that the acting user liked the given post. A second like for
// the same pair is rejected; the unique index in the store backs this rule
// under races.
func (uc *LikeUsecase) Like(ctx context.Context, actingID, postID string) (*domain.Like, error) {
	if postID == "" {
		return nil, pkgerrors.NewValidationError("postId", "postId is required")
	}

	exists, err := uc.posts.Exists(ctx, postID)
	if err != nil {
		uc.log.Error("failed to check post existence", zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to check post", err)
	}
	if !exists {
		uc.log.Warn("like target post not found", zap.String("post_id", postID))
		return nil, pkgerrors.NewNotFoundError("post", "post not found")
	}

	liked, err := uc.repo.Exists(ctx, postID, actingID)
	if err != nil {
		uc.log.Error("failed to check like state", zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to check like state", err)
	}
	if liked {
		return nil, pkgerrors.NewAlreadyExistsError("like", "post already liked")
	}

	l, err := uc.repo.Create(ctx, postID, actingID)
	if err != nil {
		uc.log.Error("failed to create like", zap.Error(err))
		return nil, err
	}

	uc.log.Info("like created", zap.String("post_id", postID), zap.String("user_id", actingID))
	return l, nil
}

// Unlike removes the acting user's like from the given post.
func (uc *LikeUsecase) Unlike(ctx context.Context, actingID, postID string) error {
	if postID == "" {
		return pkgerrors.NewValidationError("postId", "postId is required")
	}

	if err := uc.repo.Delete(ctx, postID, actingID); err != nil {
		uc.log.Warn("failed to delete like",
			zap.String("post_id", postID), zap.String("user_id", actingID), zap.Error(err))
		return err
	}

	uc.log.Info("like removed", zap.String("post_id", postID), zap.String("user_id", actingID))
	return nil
}
