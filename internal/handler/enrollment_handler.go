package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/technoschool/technoschool-api/internal/models"
	"github.com/technoschool/technoschool-api/internal/service"
	appErrors "github.com/technoschool/technoschool-api/pkg/errors"
	"github.com/technoschool/technoschool-api/pkg/response"
)

// EnrollmentHandler handles enrollment endpoints.
type EnrollmentHandler struct {
	service *service.EnrollmentService
}

// NewEnrollmentHandler creates a new enrollment handler.
func NewEnrollmentHandler(svc *service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{service: svc}
}

// Enroll godoc
// @Summary Submit enrollment
// @Description Persist a course enrollment request
// @Tags Enrollments
// @Accept json
// @Produce json
// @Param payload body service.EnrollRequest true "Enrollment payload"
// @Success 200 {object} response.Ack
// @Failure 400 {object} map[string]string
// @Router /api/enroll [post]
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	var req service.EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "All fields are required"))
		return
	}

	enrollment, err := h.service.Enroll(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Acknowledge(c, "Enrollment submitted successfully", enrollment.ID)
}

// List godoc
// @Summary List enrollments
// @Description Up to 100 most recent enrollments
// @Tags Enrollments
// @Produce json
// @Success 200 {array} models.Enrollment
// @Failure 500 {object} map[string]string
// @Router /api/enrollments [get]
func (h *EnrollmentHandler) List(c *gin.Context) {
	enrollments, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if enrollments == nil {
		enrollments = []models.Enrollment{}
	}

	response.OK(c, enrollments)
}
