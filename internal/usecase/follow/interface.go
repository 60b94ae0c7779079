package follow

import (
	"context"

	domain "social-network-service/internal/domain/user"
)

// Usecase defines the follow operations exposed to the transport layer.
type Usecase interface {
	Follow(ctx context.Context, actingID, followingID string) (*domain.FollowEdge, error)
	Unfollow(ctx context.Context, actingID, followingID string) error
}
