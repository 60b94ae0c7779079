package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"social-network-service/internal/adapter/gin/middleware"
	"social-network-service/internal/usecase/comment"
)

// CommentHandler handles HTTP requests for comments
type CommentHandler struct {
	uc  comment.Usecase
	log *zap.Logger
}

// NewCommentHandler creates a new CommentHandler instance
func NewCommentHandler(uc comment.Usecase, log *zap.Logger) *CommentHandler {
	return &CommentHandler{
		uc:  uc,
		log: log,
	}
}

// CreateCommentRequest represents the HTTP request body for creating a comment
type CreateCommentRequest struct {
	PostID  string `json:"postId" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// Create handles POST /api/comments
func (h *CommentHandler) Create(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid create comment request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "postId and content are required",
		})
		return
	}

	created, err := h.uc.Create(c.Request.Context(), comment.CreateRequest{
		ActingID: middleware.ActingUser(c),
		PostID:   req.PostID,
		Content:  req.Content,
	})
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comment": toCommentResponse(created)})
}

// Delete handles DELETE /api/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.uc.Delete(c.Request.Context(), id, middleware.ActingUser(c)); err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "comment deleted", "id": id})
}
