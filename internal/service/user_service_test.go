package service

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/technoschool/technoschool-api/internal/models"
	appErrors "github.com/technoschool/technoschool-api/pkg/errors"
)

type mockUserRepo struct {
	users     map[int64]*models.User
	nextID    int64
	createErr error
	listErr   error
	deleteErr error
}

func (m *mockUserRepo) List(ctx context.Context) ([]models.User, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var users []models.User
	for _, u := range m.users {
		users = append(users, *u)
	}
	return users, nil
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	for _, u := range m.users {
		if u.Email == user.Email {
			return &pq.Error{Code: "23505"}
		}
	}
	if m.users == nil {
		m.users = make(map[int64]*models.User)
	}
	m.nextID++
	user.ID = m.nextID
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.users[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.users, id)
	return nil
}

func TestUserCreateDefaultsRole(t *testing.T) {
	repo := &mockUserRepo{}
	svc := NewUserService(repo, validator.New(), nil, zap.NewNop())

	user, err := svc.Create(context.Background(), CreateUserRequest{Name: "Ada", Email: "a@x.com"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.Equal(t, int64(1), user.ID)
}

func TestUserCreateMissingRequired(t *testing.T) {
	repo := &mockUserRepo{}
	svc := NewUserService(repo, validator.New(), nil, zap.NewNop())

	_, err := svc.Create(context.Background(), CreateUserRequest{Name: "Ada"})
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, "Name and email are required", appErr.Message)
	assert.Empty(t, repo.users)
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	repo := &mockUserRepo{}
	svc := NewUserService(repo, validator.New(), nil, zap.NewNop())

	_, err := svc.Create(context.Background(), CreateUserRequest{Name: "Ada", Email: "a@x.com"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), CreateUserRequest{Name: "Ada Again", Email: "a@x.com"})
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, "Email already exists", appErr.Message)
}

func TestUserCreateStoreFailure(t *testing.T) {
	repo := &mockUserRepo{createErr: sql.ErrConnDone}
	svc := NewUserService(repo, validator.New(), nil, zap.NewNop())

	_, err := svc.Create(context.Background(), CreateUserRequest{Name: "Ada", Email: "a@x.com"})
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
	assert.Equal(t, "Failed to create user", appErr.Message)
}

func TestUserDelete(t *testing.T) {
	repo := &mockUserRepo{users: map[int64]*models.User{5: {ID: 5, Email: "a@x.com"}}}
	svc := NewUserService(repo, validator.New(), nil, zap.NewNop())

	require.NoError(t, svc.Delete(context.Background(), 5))
	assert.Empty(t, repo.users)
}

func TestUserDeleteMissing(t *testing.T) {
	repo := &mockUserRepo{}
	svc := NewUserService(repo, validator.New(), nil, zap.NewNop())

	err := svc.Delete(context.Background(), 999999)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Equal(t, "User not found", appErr.Message)
}
