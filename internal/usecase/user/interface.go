package user

import (
	"context"

	domain "social-network-service/internal/domain/user"
)

// Usecase defines the interface for user business logic operations.
type Usecase interface {
	Register(ctx context.Context, in RegisterRequest) (*domain.User, error)
	Login(ctx context.Context, in LoginRequest) (string, error)
	Current(ctx context.Context, actingID string) (*domain.User, error)
	GetByID(ctx context.Context, id, actingID string) (*domain.User, bool, error)
	Update(ctx context.Context, in UpdateRequest) (*domain.User, error)
}
