package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	postdomain "social-network-service/internal/domain/post"
	userdomain "social-network-service/internal/domain/user"
	pkgerrors "social-network-service/pkg/errors"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// UserResponse represents the HTTP response for user data.
// The password hash is never part of any response shape.
type UserResponse struct {
	ID          string               `json:"id"`
	Email       string               `json:"email"`
	Name        string               `json:"name"`
	Bio         string               `json:"bio,omitempty"`
	DateOfBirth *time.Time           `json:"dateOfBirth,omitempty"`
	Location    string               `json:"location,omitempty"`
	AvatarURL   string               `json:"avatarUrl,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
	Followers   []FollowEdgeResponse `json:"followers,omitempty"`
	Following   []FollowEdgeResponse `json:"following,omitempty"`
	IsFollowing *bool                `json:"isFollowing,omitempty"`
}

// FollowEdgeResponse represents a follow edge with optional counterpart user
type FollowEdgeResponse struct {
	ID          string        `json:"id"`
	FollowerID  string        `json:"followerId"`
	FollowingID string        `json:"followingId"`
	Follower    *UserResponse `json:"follower,omitempty"`
	Following   *UserResponse `json:"following,omitempty"`
}

// PostResponse represents the HTTP response for post data
type PostResponse struct {
	ID          string            `json:"id"`
	AuthorID    string            `json:"authorId"`
	Content     string            `json:"content"`
	CreatedAt   time.Time         `json:"createdAt"`
	Author      *UserResponse     `json:"author,omitempty"`
	Comments    []CommentResponse `json:"comments,omitempty"`
	Likes       []LikeResponse    `json:"likes,omitempty"`
	LikeCount   int               `json:"likeCount"`
	LikedByUser bool              `json:"likedByUser"`
}

// CommentResponse represents the HTTP response for comment data
type CommentResponse struct {
	ID        string        `json:"id"`
	PostID    string        `json:"postId"`
	UserID    string        `json:"userId"`
	Content   string        `json:"content"`
	CreatedAt time.Time     `json:"createdAt"`
	User      *UserResponse `json:"user,omitempty"`
}

// LikeResponse represents the HTTP response for like data
type LikeResponse struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(u *userdomain.User) *UserResponse {
	if u == nil {
		return nil
	}
	resp := &UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Bio:         u.Bio,
		DateOfBirth: u.DateOfBirth,
		Location:    u.Location,
		AvatarURL:   u.AvatarURL,
		CreatedAt:   u.CreatedAt,
	}
	for _, e := range u.Followers {
		resp.Followers = append(resp.Followers, toFollowEdgeResponse(e))
	}
	for _, e := range u.Following {
		resp.Following = append(resp.Following, toFollowEdgeResponse(e))
	}
	return resp
}

func toFollowEdgeResponse(e userdomain.FollowEdge) FollowEdgeResponse {
	return FollowEdgeResponse{
		ID:          e.ID,
		FollowerID:  e.FollowerID,
		FollowingID: e.FollowingID,
		Follower:    toUserResponse(e.Follower),
		Following:   toUserResponse(e.Following),
	}
}

func toPostResponse(p *postdomain.Post) *PostResponse {
	if p == nil {
		return nil
	}
	resp := &PostResponse{
		ID:          p.ID,
		AuthorID:    p.AuthorID,
		Content:     p.Content,
		CreatedAt:   p.CreatedAt,
		Author:      toUserResponse(p.Author),
		LikeCount:   len(p.Likes),
		LikedByUser: p.LikedByUser,
	}
	for _, c := range p.Comments {
		resp.Comments = append(resp.Comments, toCommentResponse(&c))
	}
	for _, l := range p.Likes {
		resp.Likes = append(resp.Likes, toLikeResponse(&l))
	}
	return resp
}

func toCommentResponse(c *postdomain.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		PostID:    c.PostID,
		UserID:    c.UserID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		User:      toUserResponse(c.User),
	}
}

func toLikeResponse(l *postdomain.Like) LikeResponse {
	return LikeResponse{
		ID:        l.ID,
		PostID:    l.PostID,
		UserID:    l.UserID,
		CreatedAt: l.CreatedAt,
	}
}

// handleError maps usecase errors to HTTP responses using the error
// taxonomy. Everything not explicitly classified is downgraded to a generic
// 500; detail stays in the server logs only.
func handleError(c *gin.Context, log *zap.Logger, err error) {
	var httpErr pkgerrors.HTTPStatuser
	if errors.As(err, &httpErr) {
		message := httpErr.Error()
		if httpErr.HTTPStatus() >= http.StatusInternalServerError {
			log.Error("internal error", zap.Error(err))
			message = "An internal error occurred"
		}
		c.JSON(httpErr.HTTPStatus(), ErrorResponse{
			Error:   httpErr.Code(),
			Message: message,
		})
		return
	}

	log.Error("unclassified error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred",
	})
}
