package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/nurture-api/internal/service"
)

// ContactHandler handles public contact-form submissions.
type ContactHandler struct {
	contactService *service.ContactService
}

func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// ContactRequest is the contact form payload.
type ContactRequest struct {
	Name    string `json:"name" binding:"required,max=255"`
	Email   string `json:"email" binding:"required,email,max=255"`
	Subject string `json:"subject" binding:"omitempty,max=255"`
	Message string `json:"message" binding:"required"`
}

// Submit stores the message and relays it to the support inbox.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "error_type": "validation_error"})
		return
	}

	_, err := h.contactService.Submit(c.Request.Context(), req.Name, req.Email, req.Subject, req.Message)
	if err != nil {
		handleResourceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Thanks for reaching out. We'll get back to you soon."})
}
