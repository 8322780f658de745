package repositories

import (
	"database/sql"
	"time"

	"github.com/pacman-cli/portfolio/internal/models"
)

type ContactMessageRepository struct {
	db *sql.DB
}

func NewContactMessageRepository(db *sql.DB) *ContactMessageRepository {
	return &ContactMessageRepository{
		db: db,
	}
}

// Create stores a contact message, setting its ID and creation time
func (r *ContactMessageRepository) Create(message *models.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (name, email, message, created_at)
		VALUES ($1, $2, $3, $4)
	`

	message.CreatedAt = time.Now().UTC()

	result, err := r.db.Exec(query,
		message.Name,
		message.Email,
		message.Message,
		message.CreatedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	message.ID = id
	return nil
}

// GetAll retrieves every stored message, newest first
func (r *ContactMessageRepository) GetAll() ([]*models.ContactMessage, error) {
	query := `
		SELECT id, name, email, message, created_at
		FROM contact_messages
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*models.ContactMessage
	for rows.Next() {
		message := &models.ContactMessage{}
		if err := rows.Scan(
			&message.ID,
			&message.Name,
			&message.Email,
			&message.Message,
			&message.CreatedAt,
		); err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}

	return messages, rows.Err()
}
