package postgres

import (
	"time"

	postdomain "social-network-service/internal/domain/post"
	userdomain "social-network-service/internal/domain/user"
)

// UserSchema represents the database schema for the users table.
// The unique index on email is the actual guardian of the one-row-per-email
// invariant; lookups before insert only improve error messages.
type UserSchema struct {
	ID           string `gorm:"primaryKey;size:36"`
	Email        string `gorm:"not null;uniqueIndex"`
	PasswordHash string `gorm:"not null"`
	Name         string `gorm:"not null"`
	Bio          string
	DateOfBirth  *time.Time
	Location     string
	AvatarURL    string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Followers []FollowSchema `gorm:"foreignKey:FollowingID"`
	Following []FollowSchema `gorm:"foreignKey:FollowerID"`
}

// TableName specifies the table name for the UserSchema model.
func (UserSchema) TableName() string {
	return "users"
}

// FollowSchema represents a directed follow edge. The composite unique index
// enforces at most one edge per ordered (follower, following) pair.
type FollowSchema struct {
	ID          string `gorm:"primaryKey;size:36"`
	FollowerID  string `gorm:"not null;index;uniqueIndex:idx_follower_following"`
	FollowingID string `gorm:"not null;index;uniqueIndex:idx_follower_following"`
	CreatedAt   time.Time

	Follower  *UserSchema `gorm:"foreignKey:FollowerID"`
	Following *UserSchema `gorm:"foreignKey:FollowingID"`
}

// TableName specifies the table name for the FollowSchema model.
func (FollowSchema) TableName() string {
	return "follows"
}

// PostSchema represents the database schema for the posts table.
type PostSchema struct {
	ID        string `gorm:"primaryKey;size:36"`
	AuthorID  string `gorm:"not null;index"`
	Content   string `gorm:"not null"`
	CreatedAt time.Time

	Author   *UserSchema     `gorm:"foreignKey:AuthorID"`
	Comments []CommentSchema `gorm:"foreignKey:PostID"`
	Likes    []LikeSchema    `gorm:"foreignKey:PostID"`
}

// TableName specifies the table name for the PostSchema model.
func (PostSchema) TableName() string {
	return "posts"
}

// CommentSchema represents the database schema for the comments table.
type CommentSchema struct {
	ID        string `gorm:"primaryKey;size:36"`
	PostID    string `gorm:"not null;index"`
	UserID    string `gorm:"not null;index"`
	Content   string `gorm:"not null"`
	CreatedAt time.Time

	User *UserSchema `gorm:"foreignKey:UserID"`
}

// TableName specifies the table name for the CommentSchema model.
func (CommentSchema) TableName() string {
	return "comments"
}

// LikeSchema represents the database schema for the likes table. The
// composite unique index enforces at most one like per (post, user) pair.
type LikeSchema struct {
	ID        string `gorm:"primaryKey;size:36"`
	PostID    string `gorm:"not null;index;uniqueIndex:idx_post_user"`
	UserID    string `gorm:"not null;index;uniqueIndex:idx_post_user"`
	CreatedAt time.Time

	User *UserSchema `gorm:"foreignKey:UserID"`
}

// TableName specifies the table name for the LikeSchema model.
func (LikeSchema) TableName() string {
	return "likes"
}

// AllSchemas lists every model for migration
func AllSchemas() []any {
	return []any{
		&UserSchema{},
		&FollowSchema{},
		&PostSchema{},
		&CommentSchema{},
		&LikeSchema{},
	}
}

func toDomainUser(m *UserSchema) *userdomain.User {
	u := &userdomain.User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Name:         m.Name,
		Bio:          m.Bio,
		DateOfBirth:  m.DateOfBirth,
		Location:     m.Location,
		AvatarURL:    m.AvatarURL,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	for _, e := range m.Followers {
		u.Followers = append(u.Followers, toDomainFollowEdge(e))
	}
	for _, e := range m.Following {
		u.Following = append(u.Following, toDomainFollowEdge(e))
	}
	return u
}

func toDomainFollowEdge(m FollowSchema) userdomain.FollowEdge {
	e := userdomain.FollowEdge{
		ID:          m.ID,
		FollowerID:  m.FollowerID,
		FollowingID: m.FollowingID,
	}
	if m.Follower != nil {
		e.Follower = toDomainUser(m.Follower)
	}
	if m.Following != nil {
		e.Following = toDomainUser(m.Following)
	}
	return e
}

func toDomainPost(m *PostSchema) *postdomain.Post {
	p := &postdomain.Post{
		ID:        m.ID,
		AuthorID:  m.AuthorID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
	if m.Author != nil {
		p.Author = toDomainUser(m.Author)
	}
	for _, c := range m.Comments {
		p.Comments = append(p.Comments, *toDomainComment(&c))
	}
	for _, l := range m.Likes {
		p.Likes = append(p.Likes, *toDomainLike(&l))
	}
	return p
}

func toDomainComment(m *CommentSchema) *postdomain.Comment {
	c := &postdomain.Comment{
		ID:        m.ID,
		PostID:    m.PostID,
		UserID:    m.UserID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
	if m.User != nil {
		c.User = toDomainUser(m.User)
	}
	return c
}

func toDomainLike(m *LikeSchema) *postdomain.Like {
	l := &postdomain.Like{
		ID:        m.ID,
		PostID:    m.PostID,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
	}
	if m.User != nil {
		l.User = toDomainUser(m.User)
	}
	return l
}
