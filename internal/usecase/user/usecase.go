package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domain "social-network-service/internal/domain/user"
	pkgerrors "social-network-service/pkg/errors"
)

// Repository defines the interface for user data access operations.
// It abstracts the data layer, allowing the PostgreSQL implementation and
// the cached decorator to be used interchangeably.
type Repository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id string, withEdges bool) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, id string, patch domain.Patch) (*domain.User, error)
}

// RelationshipStore exposes the follow-edge existence lookup used to
// annotate profile reads.
type RelationshipStore interface {
	Exists(ctx context.Context, followerID, followingID string) (bool, error)
}

// TokenIssuer signs identity tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

// PasswordHasher hashes passwords and verifies them against stored hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

// AvatarGenerator renders a deterministic avatar image from a seed string.
type AvatarGenerator interface {
	Generate(seed string) ([]byte, error)
}

// ContentStore persists avatar bytes and returns their public reference.
type ContentStore interface {
	Put(name string, data []byte) (string, error)
	Remove(ref string) error
}

// UserUsecase implements the business logic for identity and profile
// management: registration, login, profile reads and ownership-checked
// partial updates.
type UserUsecase struct {
	repo     Repository
	follows  RelationshipStore
	tokens   TokenIssuer
	hasher   PasswordHasher
	avatars  AvatarGenerator
	content  ContentStore
	log      *zap.Logger
	validate *validator.Validate
	now      func() time.Time
}

// New creates a new instance of UserUsecase with the provided dependencies.
func New(
	repo Repository,
	follows RelationshipStore,
	tokens TokenIssuer,
	hasher PasswordHasher,
	avatars AvatarGenerator,
	content ContentStore,
	log *zap.Logger,
) *UserUsecase {
	return &UserUsecase{
		repo:     repo,
		follows:  follows,
		tokens:   tokens,
		hasher:   hasher,
		avatars:  avatars,
		content:  content,
		log:      log,
		validate: validator.New(),
		now:      time.Now,
	}
}

// formatValidationError converts validator.ValidationErrors into a typed
// validation error with a human-readable message.
func formatValidationError(err error) error {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, e := range validationErrors {
			switch e.Tag() {
			case "required":
				messages = append(messages, fmt.Sprintf("%s is required", e.Field()))
			case "email":
				messages = append(messages, fmt.Sprintf("%s must be a valid email", e.Field()))
			case "min":
				messages = append(messages, fmt.Sprintf("%s must be at least %s characters", e.Field(), e.Param()))
			case "max":
				messages = append(messages, fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param()))
			default:
				messages = append(messages, fmt.Sprintf("%s is invalid", e.Field()))
			}
		}
		return pkgerrors.NewValidationError("", strings.Join(messages, ", "))
	}
	return err
}

// sanitizeFileName keeps avatar file names safe for the content store
func sanitizeFileName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, name)
}

// Register creates a new user account. The avatar is generated and persisted
// before the row insert; a failed insert removes the just-written file so no
// orphaned content is left behind. Email comparison is an exact match by
// policy.
func (uc *UserUsecase) Register(ctx context.Context, in RegisterRequest) (*domain.User, error) {
	uc.log.Info("registering user", zap.String("email", in.Email))

	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("register validation failed", zap.Error(err))
		return nil, formatValidationError(err)
	}

	// Uniqueness pre-check for a friendly error; the DB unique index closes
	// the race between concurrent registrations.
	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		uc.log.Error("failed to check existing email", zap.String("email", in.Email), zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to validate email uniqueness", err)
	}
	if existing != nil {
		uc.log.Warn("email already exists", zap.String("email", in.Email))
		return nil, pkgerrors.NewAlreadyExistsError("user", "user with this email already exists")
	}

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		uc.log.Error("failed to hash password", zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to hash password", err)
	}

	// Seed combines name and creation time so no prior identifier is needed;
	// collisions under identical name and timestamp are accepted.
	now := uc.now()
	seed := fmt.Sprintf("%s%d", in.Name, now.UnixNano())
	img, err := uc.avatars.Generate(seed)
	if err != nil {
		uc.log.Error("failed to generate avatar", zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to generate avatar", err)
	}

	avatarName := fmt.Sprintf("%s_%d.png", sanitizeFileName(in.Name), now.UnixNano())
	avatarRef, err := uc.content.Put(avatarName, img)
	if err != nil {
		uc.log.Error("failed to store avatar", zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to store avatar", err)
	}

	created, err := uc.repo.Create(ctx, &domain.User{
		Email:        in.Email,
		PasswordHash: hash,
		Name:         in.Name,
		AvatarURL:    avatarRef,
	})
	if err != nil {
		// Compensating cleanup: never leave an avatar file without its row
		if rmErr := uc.content.Remove(avatarRef); rmErr != nil {
			uc.log.Warn("failed to remove orphaned avatar", zap.String("ref", avatarRef), zap.Error(rmErr))
		}
		uc.log.Error("failed to create user", zap.Error(err))
		return nil, err
	}

	return created, nil
}

// Login authenticates a user by email and password and issues an identity
// token. Unknown email and wrong password produce the same error so account
// existence cannot be probed.
func (uc *UserUsecase) Login(ctx context.Context, in LoginRequest) (string, error) {
	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("login validation failed", zap.Error(err))
		return "", formatValidationError(err)
	}

	u, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		uc.log.Error("failed to look up user for login", zap.Error(err))
		return "", pkgerrors.NewInternalError("failed to look up user", err)
	}
	if u == nil || !uc.hasher.Compare(u.PasswordHash, in.Password) {
		uc.log.Warn("invalid credentials", zap.String("email", in.Email))
		return "", pkgerrors.ErrInvalidCredentials
	}

	token, err := uc.tokens.Issue(u.ID)
	if err != nil {
		uc.log.Error("failed to issue token", zap.String("id", u.ID), zap.Error(err))
		return "", pkgerrors.NewInternalError("failed to issue token", err)
	}

	return token, nil
}

// Current retrieves the acting user's own profile with follower and
// following edges expanded.
func (uc *UserUsecase) Current(ctx context.Context, actingID string) (*domain.User, error) {
	u, err := uc.repo.GetByID(ctx, actingID, true)
	if err != nil {
		uc.log.Warn("failed to get current user", zap.String("id", actingID), zap.Error(err))
		return nil, err
	}
	return u, nil
}

// GetByID retrieves a user profile with edges expanded, annotated with
// whether the acting user already follows the target.
func (uc *UserUsecase) GetByID(ctx context.Context, id, actingID string) (*domain.User, bool, error) {
	u, err := uc.repo.GetByID(ctx, id, true)
	if err != nil {
		uc.log.Warn("failed to get user", zap.String("id", id), zap.Error(err))
		return nil, false, err
	}

	isFollowing, err := uc.follows.Exists(ctx, actingID, id)
	if err != nil {
		uc.log.Error("failed to check follow state", zap.String("id", id), zap.Error(err))
		return nil, false, pkgerrors.NewInternalError("failed to check follow state", err)
	}

	return u, isFollowing, nil
}

// Update applies a partial profile update after the ownership check: the
// acting identity must equal the target row's identifier. An email change
// re-checks uniqueness against other rows.
func (uc *UserUsecase) Update(ctx context.Context, in UpdateRequest) (*domain.User, error) {
	if in.ID != in.ActingID {
		uc.log.Warn("update ownership check failed",
			zap.String("id", in.ID), zap.String("acting_id", in.ActingID))
		return nil, pkgerrors.ErrPermissionDenied
	}

	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("update validation failed", zap.Error(err))
		return nil, formatValidationError(err)
	}

	if in.Email != nil {
		existing, err := uc.repo.GetByEmail(ctx, *in.Email)
		if err != nil {
			uc.log.Error("failed to check existing email", zap.String("email", *in.Email), zap.Error(err))
			return nil, pkgerrors.NewInternalError("failed to validate email uniqueness", err)
		}
		if existing != nil && existing.ID != in.ID {
			uc.log.Warn("email already exists", zap.String("email", *in.Email), zap.String("existing_id", existing.ID))
			return nil, pkgerrors.NewAlreadyExistsError("user", "user with this email already exists")
		}
	}

	updated, err := uc.repo.Update(ctx, in.ID, domain.Patch{
		Email:       in.Email,
		Name:        in.Name,
		Bio:         in.Bio,
		DateOfBirth: in.DateOfBirth,
		Location:    in.Location,
	})
	if err != nil {
		uc.log.Error("failed to update user", zap.String("id", in.ID), zap.Error(err))
		return nil, err
	}

	return updated, nil
}
