package handlers

import (
	"github.com/gin-gonic/gin"
)

type NotFoundHandler struct {
	page *PageRenderer
}

func NewNotFoundHandler(page *PageRenderer) *NotFoundHandler {
	return &NotFoundHandler{page: page}
}

// NotFound handles 404 errors for non-existent routes
func (h *NotFoundHandler) NotFound(c *gin.Context) {
	h.page.NotFound(c)
}
