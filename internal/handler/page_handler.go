package handler

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/technoschool/technoschool-api/internal/content"
	"github.com/technoschool/technoschool-api/web"
)

// toolPreviewLimit and outcomePreviewLimit cap what the course cards show;
// the detail fragments always carry the full lists.
const (
	toolPreviewLimit    = 3
	outcomePreviewLimit = 2
)

// CourseView is a Course prepared for the card + detail rendering.
type CourseView struct {
	content.Course
	ToolsPreview    []string
	ToolsOverflow   int
	OutcomesPreview string
}

// PageData is the root template context.
type PageData struct {
	Stats        []content.Stat
	Services     []content.Service
	Courses      []CourseView
	Companies    []string
	Testimonials []content.Testimonial
}

// PageHandler renders the marketing page from the content collections.
type PageHandler struct {
	tmpl   *template.Template
	data   PageData
	logger *zap.Logger
}

// NewPageHandler parses the embedded templates and precomputes the view model.
// The collections are static, so this happens once.
func NewPageHandler(c *content.Collections, logger *zap.Logger) (*PageHandler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	tmpl, err := template.ParseFS(web.Templates, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}

	data := PageData{
		Stats:        c.Stats,
		Services:     c.Services,
		Companies:    c.Companies,
		Testimonials: c.Testimonials,
	}
	for _, course := range c.Courses {
		view := CourseView{Course: course, ToolsPreview: course.Tools}
		if len(course.Tools) > toolPreviewLimit {
			view.ToolsPreview = course.Tools[:toolPreviewLimit]
			view.ToolsOverflow = len(course.Tools) - toolPreviewLimit
		}
		outcomes := course.Outcomes
		if len(outcomes) > outcomePreviewLimit {
			outcomes = outcomes[:outcomePreviewLimit]
		}
		view.OutcomesPreview = strings.Join(outcomes, " • ")
		data.Courses = append(data.Courses, view)
	}

	return &PageHandler{tmpl: tmpl, data: data, logger: logger}, nil
}

// Index serves the rendered page.
func (h *PageHandler) Index(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := h.tmpl.ExecuteTemplate(c.Writer, "index.html.tmpl", h.data); err != nil {
		h.logger.Error("failed to render page", zap.Error(err))
	}
}
