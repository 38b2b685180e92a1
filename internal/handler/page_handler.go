package handler

import (
	"net/http"

	"github.com/say2me/backend/internal/service"
	"github.com/say2me/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PageHandler struct {
	pageService *service.PageService
}

func NewPageHandler(pageService *service.PageService) *PageHandler {
	return &PageHandler{
		pageService: pageService,
	}
}

type CreatePageRequest struct {
	Username string `json:"username"`
}

// CreatePage handles POST /api/pages. The username is optional; an
// empty body means "generate one for me".
func (h *PageHandler) CreatePage(c *gin.Context) {
	var req CreatePageRequest

	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Log.Warn("Page creation request parsing failed",
				zap.Error(err),
			)
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid request body",
				"message": "Request body must be valid JSON",
			})
			return
		}
	}

	user, err := h.pageService.Create(req.Username)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{
			"userId":   user.ID,
			"username": user.Username,
			"url":      "/p/" + user.Username,
		},
		"message": "Page created successfully",
	})
}

// GetPage handles GET /api/pages/:username.
func (h *PageHandler) GetPage(c *gin.Context) {
	username := c.Param("username")

	user, err := h.pageService.GetByUsername(username)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"id":         user.ID,
			"username":   user.Username,
			"created_at": user.CreatedAt,
		},
	})
}
