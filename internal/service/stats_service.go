package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/technoschool/technoschool-api/internal/models"
	appErrors "github.com/technoschool/technoschool-api/pkg/errors"
)

type counter interface {
	Count(ctx context.Context) (int, error)
}

// StatsService aggregates row counts across the three tables.
type StatsService struct {
	contacts    counter
	enrollments counter
	users       counter
	metrics     *MetricsService
	logger      *zap.Logger
}

// NewStatsService creates an instance of StatsService.
func NewStatsService(contacts, enrollments, users counter, metrics *MetricsService, logger *zap.Logger) *StatsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatsService{contacts: contacts, enrollments: enrollments, users: users, metrics: metrics, logger: logger}
}

// Get returns the current counts. Any failing count query fails the whole
// operation.
func (s *StatsService) Get(ctx context.Context) (*models.Stats, error) {
	start := time.Now()
	contacts, err := s.contacts.Count(ctx)
	if err != nil {
		return nil, s.fail(err)
	}
	enrollments, err := s.enrollments.Count(ctx)
	if err != nil {
		return nil, s.fail(err)
	}
	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, s.fail(err)
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("stats_counts", time.Since(start))
	}
	return &models.Stats{Contacts: contacts, Enrollments: enrollments, Users: users}, nil
}

func (s *StatsService) fail(err error) error {
	s.logger.Error("failed to fetch statistics", zap.Error(err))
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to fetch statistics")
}
