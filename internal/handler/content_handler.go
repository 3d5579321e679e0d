package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/nurture-api/internal/service"
)

// ContentHandler serves daily reads and scripture entries.
type ContentHandler struct {
	contentService *service.ContentService
}

func NewContentHandler(contentService *service.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// CreateReadRequest is the daily read payload.
type CreateReadRequest struct {
	Title       string    `json:"title" binding:"required,max=255"`
	Body        string    `json:"body" binding:"required"`
	Author      string    `json:"author" binding:"omitempty,max=255"`
	PublishedOn time.Time `json:"published_on" binding:"omitempty"`
}

// CreateScriptureRequest is the scripture payload.
type CreateScriptureRequest struct {
	Reference string `json:"reference" binding:"required,max=255"`
	Text      string `json:"text" binding:"required"`
	Theme     string `json:"theme" binding:"omitempty,max=100"`
}

func paginationParams(c *gin.Context) (int, int) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// CreateRead publishes a daily reading entry.
func (h *ContentHandler) CreateRead(c *gin.Context) {
	var req CreateReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "error_type": "validation_error"})
		return
	}

	read, err := h.contentService.CreateRead(req.Title, req.Body, req.Author, req.PublishedOn)
	if err != nil {
		handleResourceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"read": read})
}

// ListReads returns reading entries, newest first.
func (h *ContentHandler) ListReads(c *gin.Context) {
	limit, offset := paginationParams(c)

	reads, err := h.contentService.ListReads(limit, offset)
	if err != nil {
		handleResourceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reads": reads})
}

// TodayRead returns the entry published today.
func (h *ContentHandler) TodayRead(c *gin.Context) {
	read, err := h.contentService.TodayRead()
	if err != nil {
		handleResourceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"read": read})
}

// CreateScripture publishes a scripture entry.
func (h *ContentHandler) CreateScripture(c *gin.Context) {
	var req CreateScriptureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "error_type": "validation_error"})
		return
	}

	scripture, err := h.contentService.CreateScripture(req.Reference, req.Text, req.Theme)
	if err != nil {
		handleResourceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"scripture": scripture})
}

// ListScriptures returns scripture entries.
func (h *ContentHandler) ListScriptures(c *gin.Context) {
	limit, offset := paginationParams(c)

	scriptures, err := h.contentService.ListScriptures(limit, offset)
	if err != nil {
		handleResourceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"scriptures": scriptures})
}
