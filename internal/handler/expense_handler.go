package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/nurture-api/internal/service"
)

// ExpenseHandler handles expense requests.
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// CreateExpenseRequest is the expense payload.
type CreateExpenseRequest struct {
	Title       string    `json:"title" binding:"required,max=255"`
	AmountCents int64     `json:"amount_cents" binding:"required,gt=0"`
	Category    string    `json:"category" binding:"omitempty,max=50"`
	IncurredAt  time.Time `json:"incurred_at" binding:"omitempty"`
}

// Create adds an expense for the authenticated user.
func (h *ExpenseHandler) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "error_type": "validation_error"})
		return
	}

	expense, err := h.expenseService.Create(userID, req.Title, req.Category, req.AmountCents, req.IncurredAt)
	if err != nil {
		handleResourceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// List returns the caller's expenses.
func (h *ExpenseHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	expenses, err := h.expenseService.List(userID)
	if err != nil {
		handleResourceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expenses": expenses})
}
