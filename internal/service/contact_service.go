package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/technoschool/technoschool-api/internal/models"
	appErrors "github.com/technoschool/technoschool-api/pkg/errors"
)

type contactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
	List(ctx context.Context) ([]models.Contact, error)
}

// SubmitContactRequest represents the contact-form payload.
type SubmitContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Phone   string `json:"phone"`
	Course  string `json:"course"`
	Message string `json:"message"`
}

// ContactService handles contact submission workflows.
type ContactService struct {
	repo      contactRepository
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewContactService creates an instance of ContactService.
func NewContactService(repo contactRepository, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *ContactService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactService{repo: repo, validator: validate, metrics: metrics, logger: logger}
}

// Submit validates and persists a contact submission. Validation happens
// before any store access.
func (s *ContactService) Submit(ctx context.Context, req SubmitContactRequest) (*models.Contact, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Name and email are required")
	}

	contact := &models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   nullString(req.Phone),
		Course:  nullString(req.Course),
		Message: nullString(req.Message),
	}
	start := time.Now()
	if err := s.repo.Create(ctx, contact); err != nil {
		s.logger.Error("failed to save contact", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to save contact information")
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("contacts_insert", time.Since(start))
	}
	return contact, nil
}

// List returns the most recent contact submissions as their JSON projection.
func (s *ContactService) List(ctx context.Context) ([]models.ContactRow, error) {
	start := time.Now()
	contacts, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to fetch contacts", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to fetch contacts")
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("contacts_list", time.Since(start))
	}
	rows := make([]models.ContactRow, 0, len(contacts))
	for _, c := range contacts {
		rows = append(rows, c.Row())
	}
	return rows, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
