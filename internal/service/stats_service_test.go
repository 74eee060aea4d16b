package service

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appErrors "github.com/technoschool/technoschool-api/pkg/errors"
)

type mockCounter struct {
	count int
	err   error
}

func (m *mockCounter) Count(ctx context.Context) (int, error) {
	return m.count, m.err
}

func TestStatsGet(t *testing.T) {
	svc := NewStatsService(&mockCounter{count: 3}, &mockCounter{count: 2}, &mockCounter{count: 1}, nil, zap.NewNop())

	stats, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Contacts)
	assert.Equal(t, 2, stats.Enrollments)
	assert.Equal(t, 1, stats.Users)
}

func TestStatsGetFailure(t *testing.T) {
	svc := NewStatsService(&mockCounter{count: 3}, &mockCounter{err: sql.ErrConnDone}, &mockCounter{count: 1}, nil, zap.NewNop())

	_, err := svc.Get(context.Background())
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
	assert.Equal(t, "Failed to fetch statistics", appErr.Message)
}
