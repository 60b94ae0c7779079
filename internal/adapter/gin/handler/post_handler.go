package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"social-network-service/internal/adapter/gin/middleware"
	"social-network-service/internal/usecase/post"
)

// PostHandler handles HTTP requests for posts
type PostHandler struct {
	uc  post.Usecase
	log *zap.Logger
}

// NewPostHandler creates a new PostHandler instance
func NewPostHandler(uc post.Usecase, log *zap.Logger) *PostHandler {
	return &PostHandler{
		uc:  uc,
		log: log,
	}
}

// CreatePostRequest represents the HTTP request body for creating a post
type CreatePostRequest struct {
	Content string `json:"content" binding:"required"`
}

// Create handles POST /api/posts
func (h *PostHandler) Create(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid create post request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "content is required",
		})
		return
	}

	created, err := h.uc.Create(c.Request.Context(), post.CreateRequest{
		ActingID: middleware.ActingUser(c),
		Content:  req.Content,
	})
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": toPostResponse(created)})
}

// Feed handles GET /api/posts
func (h *PostHandler) Feed(c *gin.Context) {
	posts, err := h.uc.Feed(c.Request.Context(), middleware.ActingUser(c))
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	out := make([]PostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, *toPostResponse(&posts[i]))
	}
	c.JSON(http.StatusOK, gin.H{"posts": out})
}

// GetByID handles GET /api/posts/:id
func (h *PostHandler) GetByID(c *gin.Context) {
	found, err := h.uc.GetByID(c.Request.Context(), c.Param("id"), middleware.ActingUser(c))
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": toPostResponse(found)})
}

// Delete handles DELETE /api/posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.uc.Delete(c.Request.Context(), id, middleware.ActingUser(c)); err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "post deleted", "id": id})
}
