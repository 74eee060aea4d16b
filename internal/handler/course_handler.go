package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/technoschool/technoschool-api/internal/content"
	appErrors "github.com/technoschool/technoschool-api/pkg/errors"
	"github.com/technoschool/technoschool-api/pkg/export"
	"github.com/technoschool/technoschool-api/pkg/response"
)

// CourseHandler serves the course catalogue and syllabus downloads.
type CourseHandler struct {
	content  *content.Collections
	exporter *export.SyllabusExporter
}

// NewCourseHandler creates a new course handler.
func NewCourseHandler(c *content.Collections, exporter *export.SyllabusExporter) *CourseHandler {
	return &CourseHandler{content: c, exporter: exporter}
}

// List godoc
// @Summary List courses
// @Tags Courses
// @Produce json
// @Success 200 {array} content.Course
// @Router /api/courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	response.OK(c, h.content.Courses)
}

// Get godoc
// @Summary Get course
// @Tags Courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} content.Course
// @Failure 404 {object} map[string]string
// @Router /api/courses/{id} [get]
func (h *CourseHandler) Get(c *gin.Context) {
	course, ok := h.lookup(c)
	if !ok {
		return
	}
	response.OK(c, course)
}

// Syllabus godoc
// @Summary Download course syllabus
// @Tags Courses
// @Produce application/pdf
// @Param id path int true "Course ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string
// @Router /api/courses/{id}/syllabus [get]
func (h *CourseHandler) Syllabus(c *gin.Context) {
	course, ok := h.lookup(c)
	if !ok {
		return
	}

	pdf, err := h.exporter.Render(export.Syllabus{
		Title:       course.Title,
		Duration:    course.Duration,
		Description: course.Description,
		Tools:       course.Tools,
		Outcomes:    course.Outcomes,
	})
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to generate syllabus"))
		return
	}

	filename := strings.ToLower(strings.ReplaceAll(course.Title, " ", "-"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s-syllabus.pdf", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *CourseHandler) lookup(c *gin.Context) (content.Course, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "Course not found"))
		return content.Course{}, false
	}
	course, ok := h.content.CourseByID(id)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "Course not found"))
		return content.Course{}, false
	}
	return course, true
}
