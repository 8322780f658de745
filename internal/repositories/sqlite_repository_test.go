package repositories

import (
	"database/sql"
	"testing"
	"time"

	"github.com/pacman-cli/portfolio/internal/models"
	"github.com/pacman-cli/portfolio/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestBlogRepository(t *testing.T) {
	repo := NewBlogRepository(openTestDB(t))

	first := &models.Blog{
		Title:       "First Post",
		Slug:        "first-post",
		Excerpt:     "excerpt",
		Content:     "# Hello",
		Tags:        "Go,SQL",
		PublishedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	second := &models.Blog{
		Title:       "Second Post",
		Slug:        "second-post",
		ExternalURL: "https://example.com/post",
		PublishedAt: time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC),
	}

	require.NoError(t, repo.Create(first))
	require.NoError(t, repo.Create(second))
	assert.NotZero(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)

	t.Run("GetAll orders newest first", func(t *testing.T) {
		blogs, err := repo.GetAll()
		require.NoError(t, err)
		require.Len(t, blogs, 2)
		assert.Equal(t, "second-post", blogs[0].Slug)
		assert.Equal(t, "first-post", blogs[1].Slug)
		assert.True(t, first.PublishedAt.Equal(blogs[1].PublishedAt))
	})

	t.Run("GetBySlug", func(t *testing.T) {
		blog, err := repo.GetBySlug("first-post")
		require.NoError(t, err)
		require.NotNil(t, blog)
		assert.Equal(t, "# Hello", blog.Content)
		assert.Equal(t, "Go,SQL", blog.Tags)
	})

	t.Run("GetBySlug missing", func(t *testing.T) {
		blog, err := repo.GetBySlug("nonexistent")
		require.NoError(t, err)
		assert.Nil(t, blog)
	})

	t.Run("ExistsBySlug", func(t *testing.T) {
		exists, err := repo.ExistsBySlug("second-post")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsBySlug("third-post")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("duplicate slug is rejected", func(t *testing.T) {
		err := repo.Create(&models.Blog{Title: "Again", Slug: "first-post", PublishedAt: time.Now()})
		assert.Error(t, err)
	})
}

func TestProjectEntryRepository(t *testing.T) {
	repo := NewProjectEntryRepository(openTestDB(t))

	entry := &models.ProjectEntry{
		Title:       "TakaTrack",
		Description: "Expense tracker",
		TechStack:   "Spring Boot,Next.js",
		GithubURL:   "https://github.com/pacman-cli/takatrack",
	}
	require.NoError(t, repo.Create(entry))
	require.NoError(t, repo.Create(&models.ProjectEntry{Title: "StayMate", Description: "Rentals"}))
	assert.NotZero(t, entry.ID)

	projects, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "TakaTrack", projects[0].Title)
	assert.Equal(t, "Spring Boot,Next.js", projects[0].TechStack)
	assert.Equal(t, "StayMate", projects[1].Title)
}

func TestContactMessageRepository(t *testing.T) {
	repo := NewContactMessageRepository(openTestDB(t))

	messages, err := repo.GetAll()
	require.NoError(t, err)
	assert.Empty(t, messages)

	message := &models.ContactMessage{Name: "Ada", Email: "ada@example.com", Message: "Hello there"}
	require.NoError(t, repo.Create(message))
	assert.NotZero(t, message.ID)
	assert.False(t, message.CreatedAt.IsZero())

	messages, err = repo.GetAll()
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "Ada", messages[0].Name)
	assert.Equal(t, "Hello there", messages[0].Message)
}
