package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"social-network-service/internal/adapter/gin/middleware"
	"social-network-service/internal/usecase/user"
)

// UserHandler handles HTTP requests for identity and profile operations
type UserHandler struct {
	uc  user.Usecase
	log *zap.Logger
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(uc user.Usecase, log *zap.Logger) *UserHandler {
	return &UserHandler{
		uc:  uc,
		log: log,
	}
}

// RegisterRequest represents the HTTP request body for registration
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

// LoginRequest represents the HTTP request body for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest represents the HTTP request body for a partial profile
// update. Absent fields are left unchanged.
type UpdateUserRequest struct {
	Email       *string    `json:"email" binding:"omitempty"`
	Name        *string    `json:"name" binding:"omitempty"`
	Bio         *string    `json:"bio" binding:"omitempty"`
	DateOfBirth *time.Time `json:"dateOfBirth" binding:"omitempty"`
	Location    *string    `json:"location" binding:"omitempty"`
}

// Register handles POST /api/register
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid register request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "email, password and name are required",
		})
		return
	}

	created, err := h.uc.Register(c.Request.Context(), user.RegisterRequest{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": toUserResponse(created)})
}

// Login handles POST /api/login
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "email and password are required",
		})
		return
	}

	token, err := h.uc.Login(c.Request.Context(), user.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Current handles GET /api/current
func (h *UserHandler) Current(c *gin.Context) {
	actingID := middleware.ActingUser(c)

	u, err := h.uc.Current(c.Request.Context(), actingID)
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(u))
}

// GetByID handles GET /api/users/:id
func (h *UserHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	actingID := middleware.ActingUser(c)

	u, isFollowing, err := h.uc.GetByID(c.Request.Context(), id, actingID)
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	resp := toUserResponse(u)
	resp.IsFollowing = &isFollowing
	c.JSON(http.StatusOK, resp)
}

// Update handles PUT /api/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id := c.Param("id")
	actingID := middleware.ActingUser(c)

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "invalid request body",
		})
		return
	}

	updated, err := h.uc.Update(c.Request.Context(), user.UpdateRequest{
		ID:          id,
		ActingID:    actingID,
		Email:       req.Email,
		Name:        req.Name,
		Bio:         req.Bio,
		DateOfBirth: req.DateOfBirth,
		Location:    req.Location,
	})
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(updated))
}
