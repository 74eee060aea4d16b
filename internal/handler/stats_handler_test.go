package handler

import (
	"context"
	"database/sql"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/technoschool/technoschool-api/internal/service"
)

type counterStub struct {
	count int
	err   error
}

func (s *counterStub) Count(ctx context.Context) (int, error) {
	return s.count, s.err
}

func TestStatsHandlerGet(t *testing.T) {
	svc := service.NewStatsService(&counterStub{count: 12}, &counterStub{count: 7}, &counterStub{count: 3}, nil, zap.NewNop())
	h := NewStatsHandler(svc, nil)

	w := getRequest(t, h.Get, "/api/stats")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"contacts":12,"enrollments":7,"users":3}`, w.Body.String())
}

func TestStatsHandlerGetFailure(t *testing.T) {
	svc := service.NewStatsService(&counterStub{}, &counterStub{err: sql.ErrConnDone}, &counterStub{}, nil, zap.NewNop())
	h := NewStatsHandler(svc, nil)

	w := getRequest(t, h.Get, "/api/stats")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch statistics"}`, w.Body.String())
}

func TestStatsHandlerHealth(t *testing.T) {
	h := NewStatsHandler(nil, nil)

	w := getRequest(t, h.Health, "/api/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","message":"Server is running"}`, w.Body.String())
}
