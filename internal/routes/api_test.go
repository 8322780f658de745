package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pacman-cli/portfolio/internal/handlers"
	"github.com/pacman-cli/portfolio/internal/models"
	"github.com/pacman-cli/portfolio/internal/repositories"
	"github.com/pacman-cli/portfolio/internal/services"
	"github.com/pacman-cli/portfolio/pkg/database"
	"github.com/pacman-cli/portfolio/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAdminToken = "admin-token"

type stubNotifier struct {
	err  error
	sent []*models.ContactMessage
}

func (s *stubNotifier) SendContactNotification(ctx context.Context, message *models.ContactMessage) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, message)
	return nil
}

type testAPI struct {
	router   *gin.Engine
	notifier *stubNotifier
	messages *services.ContactMessageService
}

func newTestAPI(t *testing.T, adminToken string) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.SetOutput(io.Discard)

	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	notifier := &stubNotifier{}
	messages := services.NewContactMessageService(repositories.NewContactMessageRepository(db), notifier)
	handler := handlers.NewAPIHandler(
		services.NewBlogService(repositories.NewBlogRepository(db)),
		services.NewProjectEntryService(repositories.NewProjectEntryRepository(db)),
		messages,
	)

	return &testAPI{
		router:   API(handler, adminToken),
		notifier: notifier,
		messages: messages,
	}
}

func (a *testAPI) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	switch v := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(v)
	default:
		payload, _ := json.Marshal(v)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

type errorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details"`
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestBlogAPI(t *testing.T) {
	api := newTestAPI(t, testAdminToken)

	w := api.do(http.MethodGet, "/api/v1/blogs", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	t.Run("create requires the admin token", func(t *testing.T) {
		w := api.do(http.MethodPost, "/api/v1/blogs", map[string]string{"title": "Hello"}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = api.do(http.MethodPost, "/api/v1/blogs", map[string]string{"title": "Hello"}, "wrong")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("create derives the slug", func(t *testing.T) {
		w := api.do(http.MethodPost, "/api/v1/blogs", map[string]string{
			"title":   "Hello Go World",
			"excerpt": "Intro",
			"content": "# Hi",
		}, testAdminToken)
		require.Equal(t, http.StatusCreated, w.Code)

		var created models.Blog
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.Equal(t, "hello-go-world", created.Slug)
		assert.NotZero(t, created.ID)
		assert.False(t, created.PublishedAt.IsZero())
	})

	t.Run("get by slug", func(t *testing.T) {
		w := api.do(http.MethodGet, "/api/v1/blogs/hello-go-world", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"title":"Hello Go World"`)

		w = api.do(http.MethodGet, "/api/v1/blogs/missing", nil, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("duplicate slug conflicts", func(t *testing.T) {
		w := api.do(http.MethodPost, "/api/v1/blogs", map[string]string{"title": "Hello Go World"}, testAdminToken)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("title is required", func(t *testing.T) {
		w := api.do(http.MethodPost, "/api/v1/blogs", map[string]string{"excerpt": "no title"}, testAdminToken)
		require.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, "Validation failed", resp.Error)
		assert.Equal(t, "Blog title is required", resp.Details["title"])
	})
}

func TestAdminDisabledWithoutToken(t *testing.T) {
	api := newTestAPI(t, "")

	w := api.do(http.MethodPost, "/api/v1/blogs", map[string]string{"title": "Hello"}, "anything")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.do(http.MethodGet, "/api/v1/blogs", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProjectAPI(t *testing.T) {
	api := newTestAPI(t, testAdminToken)

	w := api.do(http.MethodPost, "/api/v1/projects", map[string]string{"title": "Only Title"}, testAdminToken)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeError(t, w).Details, "description")

	w = api.do(http.MethodPost, "/api/v1/projects", map[string]string{
		"title":       "StayMate",
		"description": "Roommate finder",
		"techStack":   "Go, HTMX",
	}, testAdminToken)
	require.Equal(t, http.StatusCreated, w.Code)

	w = api.do(http.MethodGet, "/api/v1/projects", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var projects []models.ProjectEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &projects))
	require.Len(t, projects, 1)
	assert.Equal(t, "Go, HTMX", projects[0].TechStack)
}

func TestContactAPI(t *testing.T) {
	t.Run("validation details", func(t *testing.T) {
		api := newTestAPI(t, testAdminToken)

		w := api.do(http.MethodPost, "/api/v1/contact", map[string]string{"email": "not-an-email"}, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, "Validation failed", resp.Error)
		assert.Equal(t, "Name is required", resp.Details["name"])
		assert.Equal(t, "Email must be a valid email address", resp.Details["email"])
		assert.Equal(t, "Message is required", resp.Details["message"])
		assert.Empty(t, api.notifier.sent)
	})

	t.Run("malformed body", func(t *testing.T) {
		api := newTestAPI(t, testAdminToken)

		w := api.do(http.MethodPost, "/api/v1/contact", "{", "")
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid request body", decodeError(t, w).Error)
	})

	t.Run("stores after notifying", func(t *testing.T) {
		api := newTestAPI(t, testAdminToken)

		w := api.do(http.MethodPost, "/api/v1/contact", map[string]string{
			"name":    "Ada",
			"email":   "ada@example.com",
			"message": "Hello",
		}, "")
		require.Equal(t, http.StatusCreated, w.Code)
		require.Len(t, api.notifier.sent, 1)

		stored, err := api.messages.GetAll()
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.Equal(t, "Ada", stored[0].Name)
	})

	t.Run("notification failure stores nothing", func(t *testing.T) {
		api := newTestAPI(t, testAdminToken)
		api.notifier.err = errors.New("resend down")

		w := api.do(http.MethodPost, "/api/v1/contact", map[string]string{
			"name":    "Ada",
			"email":   "ada@example.com",
			"message": "Hello",
		}, "")
		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "An unexpected error occurred. Please try again later.", decodeError(t, w).Error)

		stored, err := api.messages.GetAll()
		require.NoError(t, err)
		assert.Empty(t, stored)
	})

	t.Run("export", func(t *testing.T) {
		api := newTestAPI(t, testAdminToken)
		api.do(http.MethodPost, "/api/v1/contact", map[string]string{
			"name":    "Ada",
			"email":   "ada@example.com",
			"message": "Hello",
		}, "")

		w := api.do(http.MethodGet, "/api/v1/contact/export", nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = api.do(http.MethodGet, "/api/v1/contact/export", nil, testAdminToken)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "contact-messages.xlsx")
		assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("PK")))
	})
}
