package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/technoschool/technoschool-api/internal/models"
)

// EnrollmentRepository provides database access for enrollments.
type EnrollmentRepository struct {
	db *sqlx.DB
}

// NewEnrollmentRepository creates a new instance of EnrollmentRepository.
func NewEnrollmentRepository(db *sqlx.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// Create inserts an enrollment and fills in the assigned ID, status, and
// creation timestamp. Status defaults to pending in the schema.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	const query = `INSERT INTO enrollments (name, email, phone, course) VALUES ($1, $2, $3, $4) RETURNING id, status, created_at`
	if err := r.db.QueryRowxContext(ctx, query, enrollment.Name, enrollment.Email, enrollment.Phone, enrollment.Course).
		Scan(&enrollment.ID, &enrollment.Status, &enrollment.CreatedAt); err != nil {
		return fmt.Errorf("create enrollment: %w", err)
	}
	return nil
}

// List returns up to 100 enrollments, newest first.
func (r *EnrollmentRepository) List(ctx context.Context) ([]models.Enrollment, error) {
	const query = `SELECT id, name, email, phone, course, status, created_at FROM enrollments ORDER BY created_at DESC LIMIT 100`
	var enrollments []models.Enrollment
	if err := r.db.SelectContext(ctx, &enrollments, query); err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	return enrollments, nil
}

// Count returns the total number of enrollments.
func (r *EnrollmentRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM enrollments`
	var count int
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("count enrollments: %w", err)
	}
	return count, nil
}
