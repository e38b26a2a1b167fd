package handlers

import (
	"net/http"

	"referral-api/internal/referral"
	"referral-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// UserHandler handles user endpoints of the referral API
type UserHandler struct {
	service referral.Service
	logger  *logger.Logger
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(service referral.Service, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

// CreateUserRequest is the body of POST /users/
type CreateUserRequest struct {
	TgID     string `json:"tg_id" binding:"required"`
	Username string `json:"username" binding:"required"`
}

// CreateUser creates a user on first call and returns the existing row on
// repeat calls for the same tg_id.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid create user request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	user, err := h.service.CreateOrGetUser(req.TgID, req.Username)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetUser returns a user by Telegram ID
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.service.GetUser(c.Param("tg_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetFriends returns the users referred by the given user
func (h *UserHandler) GetFriends(c *gin.Context) {
	friends, err := h.service.GetFriends(c.Param("tg_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, friends)
}

// GetReferralLink returns the stored referral link for a user
func (h *UserHandler) GetReferralLink(c *gin.Context) {
	link, err := h.service.GetReferralLink(c.Param("tg_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"referral_link": link})
}

// GetTotalPoints returns the summed referral points for a user
func (h *UserHandler) GetTotalPoints(c *gin.Context) {
	total, err := h.service.GetTotalPoints(c.Param("tg_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"total_points": total})
}
