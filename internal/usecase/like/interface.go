package like

import (
	"context"

	domain "social-network-service/internal/domain/post"
)

// Usecase defines the like operations exposed to the transport layer.
type Usecase interface {
	Like(ctx context.Context, actingID, postID string) (*domain.Like, error)
	Unlike(ctx context.Context, actingID, postID string) error
}
