package handlers

import (
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pacman-cli/portfolio/internal/middleware"
	"github.com/pacman-cli/portfolio/internal/models"
	"github.com/pacman-cli/portfolio/internal/seo"
	"github.com/pacman-cli/portfolio/pkg/logger"
)

// PageRenderer fills the data every full page layout expects
type PageRenderer struct {
	seo     *seo.Builder
	profile *models.Profile
}

func NewPageRenderer(builder *seo.Builder, profile *models.Profile) *PageRenderer {
	return &PageRenderer{
		seo:     builder,
		profile: profile,
	}
}

// Render executes the named page template with metadata, structured data and
// the shared layout fields merged into data
func (r *PageRenderer) Render(c *gin.Context, status int, name string, opts seo.Options, data gin.H, schemas ...map[string]any) {
	if data == nil {
		data = gin.H{}
	}
	if opts.Path == "" {
		opts.Path = c.Request.URL.Path
	}

	scripts := make([]template.JS, 0, len(schemas))
	for _, schema := range schemas {
		script, err := seo.JSONLD(schema)
		if err != nil {
			logger.WithError(err).WithField("page", name).Warn("Failed to encode structured data")
			continue
		}
		scripts = append(scripts, script)
	}

	data["Meta"] = r.seo.Construct(opts)
	data["JSONLD"] = scripts
	data["Profile"] = r.profile
	data["Path"] = c.Request.URL.Path
	data["Year"] = time.Now().Year()
	data["CSRFToken"] = middleware.GetCSRFToken(c)

	c.HTML(status, name, data)
}

// NotFound renders the 404 page
func (r *PageRenderer) NotFound(c *gin.Context) {
	r.Render(c, http.StatusNotFound, "404", seo.Options{
		Title:   "Page Not Found",
		NoIndex: true,
	}, gin.H{
		"RequestedPath": c.Request.URL.Path,
	})
}
