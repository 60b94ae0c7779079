package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"social-network-service/internal/adapter/gin/middleware"
	"social-network-service/internal/usecase/like"
)

// LikeHandler handles HTTP requests for post likes
type LikeHandler struct {
	uc  like.Usecase
	log *zap.Logger
}

// NewLikeHandler creates a new LikeHandler instance
func NewLikeHandler(uc like.Usecase, log *zap.Logger) *LikeHandler {
	return &LikeHandler{
		uc:  uc,
		log: log,
	}
}

// CreateLikeRequest represents the HTTP request body for liking a post
type CreateLikeRequest struct {
	PostID string `json:"postId" binding:"required"`
}

// Create handles POST /api/likes
func (h *LikeHandler) Create(c *gin.Context) {
	var req CreateLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid like request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "postId is required",
		})
		return
	}

	created, err := h.uc.Like(c.Request.Context(), middleware.ActingUser(c), req.PostID)
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"like": toLikeResponse(created)})
}

// Delete handles DELETE /api/likes/:id where :id is the post.
func (h *LikeHandler) Delete(c *gin.Context) {
	if err := h.uc.Unlike(c.Request.Context(), middleware.ActingUser(c), c.Param("id")); err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "like removed"})
}
