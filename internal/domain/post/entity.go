package post

import (
	"time"

	"social-network-service/internal/domain/user"
)

// Post is a piece of content authored by a user
type Post struct {
	ID        string
	AuthorID  string
	Content   string
	CreatedAt time.Time

	// Relation expansions, populated only when explicitly requested
	Author   *user.User
	Comments []Comment
	Likes    []Like

	// LikedByUser annotates whether the requesting user has liked this post
	LikedByUser bool
}

// Comment is a user's reply attached to a post
type Comment struct {
	ID        string
	PostID    string
	UserID    string
	Content   string
	CreatedAt time.Time

	User *user.User
}

// Like marks that a user liked a post. At most one like exists per
// (post, user) pair.
type Like struct {
	ID        string
	PostID    string
	UserID    string
	CreatedAt time.Time

	User *user.User
}
