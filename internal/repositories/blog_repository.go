package repositories

import (
	"database/sql"
	"errors"

	"github.com/pacman-cli/portfolio/internal/models"
)

// BlogRepository stores blog posts served by the companion API
type BlogRepository struct {
	db *sql.DB
}

func NewBlogRepository(db *sql.DB) *BlogRepository {
	return &BlogRepository{
		db: db,
	}
}

const blogColumns = `id, title, slug, excerpt, content, tags, category, external_url, image_url, published_at`

// Create inserts a blog post and sets its ID
func (r *BlogRepository) Create(blog *models.Blog) error {
	query := `
		INSERT INTO blogs (title, slug, excerpt, content, tags, category, external_url, image_url, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	result, err := r.db.Exec(query,
		blog.Title,
		blog.Slug,
		blog.Excerpt,
		blog.Content,
		blog.Tags,
		blog.Category,
		blog.ExternalURL,
		blog.ImageURL,
		blog.PublishedAt.UTC(),
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	blog.ID = id
	return nil
}

// GetAll retrieves every blog post, newest first
func (r *BlogRepository) GetAll() ([]*models.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs ORDER BY published_at DESC, id DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blogs []*models.Blog
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, blog)
	}

	return blogs, rows.Err()
}

// GetBySlug retrieves a blog post by slug, returning nil when it does not exist
func (r *BlogRepository) GetBySlug(slug string) (*models.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs WHERE slug = $1`

	blog, err := scanBlog(r.db.QueryRow(query, slug))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return blog, nil
}

// ExistsBySlug reports whether a post with the slug is stored
func (r *BlogRepository) ExistsBySlug(slug string) (bool, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(1) FROM blogs WHERE slug = $1`, slug).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBlog(row rowScanner) (*models.Blog, error) {
	blog := &models.Blog{}
	err := row.Scan(
		&blog.ID,
		&blog.Title,
		&blog.Slug,
		&blog.Excerpt,
		&blog.Content,
		&blog.Tags,
		&blog.Category,
		&blog.ExternalURL,
		&blog.ImageURL,
		&blog.PublishedAt,
	)
	if err != nil {
		return nil, err
	}
	return blog, nil
}
