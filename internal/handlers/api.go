package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/pacman-cli/portfolio/internal/models"
	"github.com/pacman-cli/portfolio/internal/services"
	"github.com/pacman-cli/portfolio/pkg/logger"
)

const (
	unexpectedErrorMessage = "An unexpected error occurred. Please try again later."
	xlsxContentType        = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// APIHandler serves the companion blog, project and contact API
type APIHandler struct {
	blogService           *services.BlogService
	projectEntryService   *services.ProjectEntryService
	contactMessageService *services.ContactMessageService
}

func NewAPIHandler(blogService *services.BlogService, projectEntryService *services.ProjectEntryService,
	contactMessageService *services.ContactMessageService) *APIHandler {
	return &APIHandler{
		blogService:           blogService,
		projectEntryService:   projectEntryService,
		contactMessageService: contactMessageService,
	}
}

// ListBlogs returns every stored post, newest first
func (h *APIHandler) ListBlogs(c *gin.Context) {
	blogs, err := h.blogService.GetAllBlogs()
	if err != nil {
		h.internalError(c, err, "Failed to list blogs")
		return
	}
	c.JSON(http.StatusOK, blogs)
}

// GetBlog returns one post by slug
func (h *APIHandler) GetBlog(c *gin.Context) {
	blog, err := h.blogService.GetBlogBySlug(c.Param("slug"))
	if err != nil {
		h.internalError(c, err, "Failed to get blog")
		return
	}
	if blog == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
		return
	}
	c.JSON(http.StatusOK, blog)
}

// CreateBlog stores a new post
func (h *APIHandler) CreateBlog(c *gin.Context) {
	var blog models.Blog
	if err := c.ShouldBindJSON(&blog); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if blog.Slug == "" {
		blog.Slug = services.SlugFromTitle(blog.Title)
	}
	if blog.Slug != "" {
		existing, err := h.blogService.GetBlogBySlug(blog.Slug)
		if err != nil {
			h.internalError(c, err, "Failed to check blog slug")
			return
		}
		if existing != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "A blog with this slug already exists"})
			return
		}
	}

	if err := h.blogService.CreateBlog(&blog); err != nil {
		if writeValidationError(c, err) {
			return
		}
		h.internalError(c, err, "Failed to create blog")
		return
	}
	c.JSON(http.StatusCreated, blog)
}

// ListProjects returns every stored project listing
func (h *APIHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectEntryService.GetAllProjects()
	if err != nil {
		h.internalError(c, err, "Failed to list projects")
		return
	}
	c.JSON(http.StatusOK, projects)
}

// CreateProject stores a new project listing
func (h *APIHandler) CreateProject(c *gin.Context) {
	var project models.ProjectEntry
	if err := c.ShouldBindJSON(&project); err != nil {
		if writeValidationError(c, err) {
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.projectEntryService.CreateProject(&project); err != nil {
		if writeValidationError(c, err) {
			return
		}
		h.internalError(c, err, "Failed to create project")
		return
	}
	c.JSON(http.StatusCreated, project)
}

// SubmitContact validates a message, notifies the owner and stores it
func (h *APIHandler) SubmitContact(c *gin.Context) {
	var message models.ContactMessage
	if err := c.ShouldBindJSON(&message); err != nil {
		if writeValidationError(c, err) {
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	saved, err := h.contactMessageService.SaveMessage(c.Request.Context(), &message)
	if err != nil {
		h.internalError(c, err, "Failed to handle contact message")
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// ExportContacts downloads every received message as a spreadsheet
func (h *APIHandler) ExportContacts(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.contactMessageService.ExportMessages(&buf); err != nil {
		h.internalError(c, err, "Failed to export contact messages")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="contact-messages.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *APIHandler) internalError(c *gin.Context, err error, msg string) {
	logger.WithError(err).WithField("path", c.Request.URL.Path).Error(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": unexpectedErrorMessage})
}

// writeValidationError answers 400 with per-field details when err is a
// validation failure and reports whether it did
func writeValidationError(c *gin.Context, err error) bool {
	details := make(map[string]string)

	var fieldErrors validator.ValidationErrors
	var modelError *models.ValidationError
	switch {
	case errors.As(err, &fieldErrors):
		for _, fe := range fieldErrors {
			details[jsonFieldName(fe.Field())] = validationMessage(fe)
		}
	case errors.As(err, &modelError):
		details[modelError.Field] = modelError.Message
	default:
		return false
	}

	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "Validation failed",
		"details": details,
	})
	return true
}

func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

func validationMessage(fe validator.FieldError) string {
	name := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", name)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", name, fe.Param())
	}
	return fmt.Sprintf("%s is invalid", name)
}
