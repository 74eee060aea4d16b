package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/technoschool/technoschool-api/internal/models"
)

// ContactRepository provides database access for contact submissions.
type ContactRepository struct {
	db *sqlx.DB
}

// NewContactRepository creates a new instance of ContactRepository.
func NewContactRepository(db *sqlx.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create inserts a contact submission and fills in the assigned ID and
// creation timestamp.
func (r *ContactRepository) Create(ctx context.Context, contact *models.Contact) error {
	const query = `INSERT INTO contacts (name, email, phone, course, message) VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	if err := r.db.QueryRowxContext(ctx, query, contact.Name, contact.Email, contact.Phone, contact.Course, contact.Message).
		Scan(&contact.ID, &contact.CreatedAt); err != nil {
		return fmt.Errorf("create contact: %w", err)
	}
	return nil
}

// List returns up to 100 contact submissions, newest first.
func (r *ContactRepository) List(ctx context.Context) ([]models.Contact, error) {
	const query = `SELECT id, name, email, phone, course, message, created_at FROM contacts ORDER BY created_at DESC LIMIT 100`
	var contacts []models.Contact
	if err := r.db.SelectContext(ctx, &contacts, query); err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

// Count returns the total number of contact submissions.
func (r *ContactRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM contacts`
	var count int
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("count contacts: %w", err)
	}
	return count, nil
}
