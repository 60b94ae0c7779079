package comment

import (
	"context"

	domain "social-network-service/internal/domain/post"
)

// Usecase defines the comment operations exposed to the transport layer.
type Usecase interface {
	Create(ctx context.Context, in CreateRequest) (*domain.Comment, error)
	Delete(ctx context.Context, id, actingID string) error
}
