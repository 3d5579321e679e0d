package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/nurture-api/internal/service"
)

// ScheduleHandler handles care schedule requests.
type ScheduleHandler struct {
	scheduleService *service.ScheduleService
}

func NewScheduleHandler(scheduleService *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// CreateScheduleRequest is the schedule payload.
type CreateScheduleRequest struct {
	BabyID   string    `json:"baby_id" binding:"required,uuid"`
	Title    string    `json:"title" binding:"required,max=255"`
	Activity string    `json:"activity" binding:"omitempty,max=50"`
	StartsAt time.Time `json:"starts_at" binding:"required"`
	EndsAt   time.Time `json:"ends_at" binding:"omitempty"`
	Notes    string    `json:"notes" binding:"omitempty"`
}

// Create adds a schedule entry for the authenticated user.
func (h *ScheduleHandler) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "error_type": "validation_error"})
		return
	}

	schedule, err := h.scheduleService.Create(userID, service.ScheduleInput{
		BabyID:   req.BabyID,
		Title:    req.Title,
		Activity: req.Activity,
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
		Notes:    req.Notes,
	})
	if err != nil {
		handleResourceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"schedule": schedule})
}

// List returns the caller's schedule entries.
func (h *ScheduleHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	schedules, err := h.scheduleService.List(userID)
	if err != nil {
		handleResourceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"schedules": schedules})
}
