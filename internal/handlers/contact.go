package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pacman-cli/portfolio/internal/middleware"
	"github.com/pacman-cli/portfolio/internal/models"
	"github.com/pacman-cli/portfolio/pkg/logger"
)

type ContactHandler struct {
	contact    ContactSubmitter
	resetAfter time.Duration
}

func NewContactHandler(contact ContactSubmitter, resetAfter time.Duration) *ContactHandler {
	return &ContactHandler{
		contact:    contact,
		resetAfter: resetAfter,
	}
}

// Form returns an empty contact form, used to reset after a result is shown
func (h *ContactHandler) Form(c *gin.Context) {
	c.HTML(http.StatusOK, "contact_form", gin.H{
		"CSRFToken": middleware.GetCSRFToken(c),
	})
}

// Submit relays the form and swaps in the success or error message.
// Every outcome answers 200 since htmx only swaps successful responses.
func (h *ContactHandler) Submit(c *gin.Context) {
	if !middleware.ValidCSRF(c) {
		logger.WithField("ip", c.ClientIP()).Warn("Contact form rejected: invalid CSRF token")
		c.HTML(http.StatusOK, "contact_result", gin.H{
			"Result": models.ContactResult{Status: models.ContactStatusError, ResetAfter: h.resetAfter},
		})
		return
	}

	var form models.ContactForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "contact_result", gin.H{
			"Result": models.ContactResult{Status: models.ContactStatusError, ResetAfter: h.resetAfter},
		})
		return
	}

	result := h.contact.Submit(c.Request.Context(), form)
	c.HTML(http.StatusOK, "contact_result", gin.H{
		"Result": result,
	})
}
