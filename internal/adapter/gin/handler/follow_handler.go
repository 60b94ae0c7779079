package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"social-network-service/internal/adapter/gin/middleware"
	"social-network-service/internal/usecase/follow"
)

// FollowHandler handles HTTP requests for follow relationships
type FollowHandler struct {
	uc  follow.Usecase
	log *zap.Logger
}

// NewFollowHandler creates a new FollowHandler instance
func NewFollowHandler(uc follow.Usecase, log *zap.Logger) *FollowHandler {
	return &FollowHandler{
		uc:  uc,
		log: log,
	}
}

// CreateFollowRequest represents the HTTP request body for following a user
type CreateFollowRequest struct {
	FollowingID string `json:"followingId" binding:"required"`
}

// Create handles POST /api/follows
func (h *FollowHandler) Create(c *gin.Context) {
	var req CreateFollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid follow request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "followingId is required",
		})
		return
	}

	edge, err := h.uc.Follow(c.Request.Context(), middleware.ActingUser(c), req.FollowingID)
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"follow": toFollowEdgeResponse(*edge)})
}

// Delete handles DELETE /api/follows/:id where :id is the followed user.
func (h *FollowHandler) Delete(c *gin.Context) {
	if err := h.uc.Unfollow(c.Request.Context(), middleware.ActingUser(c), c.Param("id")); err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "unfollowed"})
}
