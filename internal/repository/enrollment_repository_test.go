package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/technoschool/technoschool-api/internal/models"
)

func TestEnrollmentCreate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "status", "created_at"}).AddRow(int64(3), "pending", now)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO enrollments (name, email, phone, course) VALUES ($1, $2, $3, $4) RETURNING id, status, created_at")).
		WithArgs("Ada", "a@x.com", "123", "AI / ML").
		WillReturnRows(rows)

	enrollment := &models.Enrollment{Name: "Ada", Email: "a@x.com", Phone: "123", Course: "AI / ML"}
	err := repo.Create(context.Background(), enrollment)
	require.NoError(t, err)
	assert.Equal(t, int64(3), enrollment.ID)
	assert.Equal(t, models.EnrollmentStatusPending, enrollment.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentList(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "email", "phone", "course", "status", "created_at"}).
		AddRow(int64(2), "B", "b@x.com", "456", "Data Science", "pending", now)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, phone, course, status, created_at FROM enrollments ORDER BY created_at DESC LIMIT 100")).
		WillReturnRows(rows)

	enrollments, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, enrollments, 1)
	assert.Equal(t, "Data Science", enrollments[0].Course)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentCount(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM enrollments")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
