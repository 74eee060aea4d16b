package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/technoschool/technoschool-api/internal/models"
	appErrors "github.com/technoschool/technoschool-api/pkg/errors"
)

type enrollmentRepository interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	List(ctx context.Context) ([]models.Enrollment, error)
}

// EnrollRequest describes the enrollment payload. Every field is required.
type EnrollRequest struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required"`
	Phone  string `json:"phone" validate:"required"`
	Course string `json:"course" validate:"required"`
}

// EnrollmentService handles enrollment workflows.
type EnrollmentService struct {
	repo      enrollmentRepository
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewEnrollmentService creates an instance of EnrollmentService.
func NewEnrollmentService(repo enrollmentRepository, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *EnrollmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentService{repo: repo, validator: validate, metrics: metrics, logger: logger}
}

// Enroll validates and persists an enrollment. The store assigns the pending
// status and timestamps.
func (s *EnrollmentService) Enroll(ctx context.Context, req EnrollRequest) (*models.Enrollment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "All fields are required")
	}

	enrollment := &models.Enrollment{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Course: req.Course,
	}
	start := time.Now()
	if err := s.repo.Create(ctx, enrollment); err != nil {
		s.logger.Error("failed to save enrollment", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to save enrollment")
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("enrollments_insert", time.Since(start))
	}
	return enrollment, nil
}

// List returns the most recent enrollments.
func (s *EnrollmentService) List(ctx context.Context) ([]models.Enrollment, error) {
	start := time.Now()
	enrollments, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to fetch enrollments", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to fetch enrollments")
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("enrollments_list", time.Since(start))
	}
	return enrollments, nil
}
