package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/nurture-api/internal/service"
)

// MilestoneHandler handles milestone requests.
type MilestoneHandler struct {
	milestoneService *service.MilestoneService
}

func NewMilestoneHandler(milestoneService *service.MilestoneService) *MilestoneHandler {
	return &MilestoneHandler{milestoneService: milestoneService}
}

// CreateMilestoneRequest is the milestone payload.
type CreateMilestoneRequest struct {
	BabyID      string    `json:"baby_id" binding:"required,uuid"`
	Title       string    `json:"title" binding:"required,max=255"`
	Description string    `json:"description" binding:"omitempty"`
	AchievedAt  time.Time `json:"achieved_at" binding:"omitempty"`
}

// Create records a milestone for the authenticated user.
func (h *MilestoneHandler) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req CreateMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "error_type": "validation_error"})
		return
	}

	milestone, err := h.milestoneService.Create(userID, req.BabyID, req.Title, req.Description, req.AchievedAt)
	if err != nil {
		handleResourceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"milestone": milestone})
}

// List returns the caller's milestones.
func (h *MilestoneHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	milestones, err := h.milestoneService.List(userID)
	if err != nil {
		handleResourceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"milestones": milestones})
}
