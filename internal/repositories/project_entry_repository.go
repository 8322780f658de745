package repositories

import (
	"database/sql"

	"github.com/pacman-cli/portfolio/internal/models"
)

type ProjectEntryRepository struct {
	db *sql.DB
}

func NewProjectEntryRepository(db *sql.DB) *ProjectEntryRepository {
	return &ProjectEntryRepository{
		db: db,
	}
}

// Create inserts a project listing and sets its ID
func (r *ProjectEntryRepository) Create(project *models.ProjectEntry) error {
	query := `
		INSERT INTO projects (title, description, tech_stack, github_url, live_demo_url, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	result, err := r.db.Exec(query,
		project.Title,
		project.Description,
		project.TechStack,
		project.GithubURL,
		project.LiveDemoURL,
		project.ImageURL,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	project.ID = id
	return nil
}

// GetAll retrieves every project listing in insertion order
func (r *ProjectEntryRepository) GetAll() ([]*models.ProjectEntry, error) {
	query := `
		SELECT id, title, description, tech_stack, github_url, live_demo_url, image_url
		FROM projects
		ORDER BY id
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*models.ProjectEntry
	for rows.Next() {
		project := &models.ProjectEntry{}
		err := rows.Scan(
			&project.ID,
			&project.Title,
			&project.Description,
			&project.TechStack,
			&project.GithubURL,
			&project.LiveDemoURL,
			&project.ImageURL,
		)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	return projects, rows.Err()
}
