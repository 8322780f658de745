package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pacman-cli/portfolio/internal/services"
)

type ActivityHandler struct {
	activity ActivityLoader
}

func NewActivityHandler(activity ActivityLoader) *ActivityHandler {
	return &ActivityHandler{activity: activity}
}

// GitHubActivity renders the contribution stats and calendar fragment.
// The browser reports its viewport width so narrow screens get fewer months.
func (h *ActivityHandler) GitHubActivity(c *gin.Context) {
	width, err := strconv.Atoi(c.Query("width"))
	if err != nil {
		width = 0
	}

	summary := h.activity.Load(c.Request.Context(), services.ClassifyViewport(width))

	c.HTML(http.StatusOK, "github_activity", gin.H{
		"Activity": summary,
		"Weeks":    services.BuildCalendarWeeks(summary.Days),
	})
}
