package follow

import (
	"context"

	"go.uber.org/zap"

	domain "social-network-service/internal/domain/user"
	pkgerrors "social-network-service/pkg/errors"
)

// Repository defines the interface for follow-edge data access operations.
type Repository interface {
	Create(ctx context.Context, followerID, followingID string) (*domain.FollowEdge, error)
	Delete(ctx context.Context, followerID, followingID string) error
	Exists(ctx context.Context, followerID, followingID string) (bool, error)
}

// UserStore exposes the user lookup needed to verify follow targets exist.
type UserStore interface {
	GetByID(ctx context.Context, id string, withEdges bool) (*domain.User, error)
}

// FollowUsecase implements the business logic for follow relationships.
// Self-follows and duplicate edges are rejected at this layer; the composite
// unique index in the store backs the duplicate rule under races.
type FollowUsecase struct {
	repo  Repository
	users UserStore
	log   *zap.Logger
}

// New creates a new follow usecase.
func New(repo Repository, users UserStore, log *zap.Logger) *FollowUsecase {
	return &FollowUsecase{repo: repo, users: users, log: log}
}

// Follow creates a directed edge from the acting user to the target user.
func (uc *FollowUsecase) Follow(ctx context.Context, actingID, followingID string) (*domain.FollowEdge, error) {
	if followingID == "" {
		return nil, pkgerrors.NewValidationError("followingId", "followingId is required")
	}
	if actingID == followingID {
		uc.log.Warn("self-follow rejected", zap.String("user_id", actingID))
		return nil, pkgerrors.NewValidationError("followingId", "cannot follow yourself")
	}

	if _, err := uc.users.GetByID(ctx, followingID, false); err != nil {
		uc.log.Warn("follow target not found", zap.String("following_id", followingID))
		return nil, err
	}

	exists, err := uc.repo.Exists(ctx, actingID, followingID)
	if err != nil {
		uc.log.Error("failed to check follow edge", zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to check follow state", err)
	}
	if exists {
		return nil, pkgerrors.NewAlreadyExistsError("follow", "already following this user")
	}

	edge, err := uc.repo.Create(ctx, actingID, followingID)
	if err != nil {
		uc.log.Error("failed to create follow edge", zap.Error(err))
		return nil, err
	}

	uc.log.Info("follow created",
		zap.String("follower_id", actingID),
		zap.String("following_id", followingID))
	return edge, nil
}

// Unfollow removes the edge from the acting user to the target user.
func (uc *FollowUsecase) Unfollow(ctx context.Context, actingID, followingID string) error {
	if followingID == "" {
		return pkgerrors.NewValidationError("followingId", "followingId is required")
	}

	if err := uc.repo.Delete(ctx, actingID, followingID); err != nil {
		uc.log.Warn("failed to delete follow edge",
			zap.String("follower_id", actingID),
			zap.String("following_id", followingID),
			zap.Error(err))
		return err
	}

	uc.log.Info("follow removed",
		zap.String("follower_id", actingID),
		zap.String("following_id", followingID))
	return nil
}
