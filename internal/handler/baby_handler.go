package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/nurture-api/internal/service"
)

// BabyHandler handles baby profile requests.
type BabyHandler struct {
	babyService *service.BabyService
}

func NewBabyHandler(babyService *service.BabyService) *BabyHandler {
	return &BabyHandler{babyService: babyService}
}

// CreateBabyRequest is the baby profile payload.
type CreateBabyRequest struct {
	Name      string     `json:"name" binding:"required,max=255"`
	Gender    string     `json:"gender" binding:"omitempty,max=20"`
	BirthDate *time.Time `json:"birth_date" binding:"omitempty"`
}

// Create adds a baby profile for the authenticated user.
func (h *BabyHandler) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req CreateBabyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "error_type": "validation_error"})
		return
	}

	baby, err := h.babyService.Create(userID, req.Name, req.Gender, req.BirthDate)
	if err != nil {
		handleResourceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"baby": baby})
}

// Get returns one of the caller's baby profiles.
func (h *BabyHandler) Get(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	babyID := c.GetString("babyID")

	baby, err := h.babyService.Get(userID, babyID)
	if err != nil {
		handleResourceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"baby": baby})
}

// List returns the caller's baby profiles.
func (h *BabyHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	babies, err := h.babyService.List(userID)
	if err != nil {
		handleResourceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"babies": babies})
}
