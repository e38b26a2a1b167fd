package handlers

import (
	"net/http"

	"referral-api/internal/referral"
	"referral-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ReferralHandler handles referral endpoints of the referral API
type ReferralHandler struct {
	service referral.Service
	logger  *logger.Logger
}

// NewReferralHandler creates a new ReferralHandler instance
func NewReferralHandler(service referral.Service, logger *logger.Logger) *ReferralHandler {
	return &ReferralHandler{
		service: service,
		logger:  logger,
	}
}

// CreateReferralRequest is the body of POST /referrals/
type CreateReferralRequest struct {
	UserTgID   string `json:"user_tg_id" binding:"required"`
	FriendTgID string `json:"friend_tg_id" binding:"required"`
}

// CreateReferral records a directed referral between two users. A repeat
// of the same ordered pair is rejected with 400.
func (h *ReferralHandler) CreateReferral(c *gin.Context) {
	var req CreateReferralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid create referral request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	created, err := h.service.CreateReferral(req.UserTgID, req.FriendTgID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, created)
}
