package post

import (
	"context"

	domain "social-network-service/internal/domain/post"
)

// Usecase defines the post operations exposed to the transport layer.
type Usecase interface {
	Create(ctx context.Context, in CreateRequest) (*domain.Post, error)
	Feed(ctx context.Context, actingID string) ([]domain.Post, error)
	GetByID(ctx context.Context, id, actingID string) (*domain.Post, error)
	Delete(ctx context.Context, id, actingID string) error
}
