package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/technoschool/technoschool-api/internal/content"
	"github.com/technoschool/technoschool-api/pkg/export"
)

func newCourseHandler(t *testing.T) *CourseHandler {
	t.Helper()
	return NewCourseHandler(content.Load(zap.NewNop()), export.NewSyllabusExporter())
}

func TestCourseHandlerList(t *testing.T) {
	h := newCourseHandler(t)

	w := getRequest(t, h.List, "/api/courses")
	require.Equal(t, http.StatusOK, w.Code)

	var courses []content.Course
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &courses))
	require.Len(t, courses, 6)
	assert.Equal(t, 0, courses[0].ID)
	assert.Equal(t, "Software Development", courses[0].Title)
}

func TestCourseHandlerGet(t *testing.T) {
	h := newCourseHandler(t)

	w := getRequest(t, h.Get, "/api/courses/0", gin.Param{Key: "id", Value: "0"})
	require.Equal(t, http.StatusOK, w.Code)

	var course content.Course
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &course))
	assert.Equal(t, "Software Development", course.Title)
	assert.Equal(t, []string{"Java", "Python", "C++", "Git", "DSA"}, course.Tools)
	assert.Equal(t, []string{"Software Engineer", "Backend Developer", "System Architect"}, course.Outcomes)
}

func TestCourseHandlerGetUnknown(t *testing.T) {
	h := newCourseHandler(t)

	for _, id := range []string{"-1", "6", "abc"} {
		w := getRequest(t, h.Get, "/api/courses/"+id, gin.Param{Key: "id", Value: id})
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Course not found"}`, w.Body.String())
	}
}

func TestCourseHandlerSyllabus(t *testing.T) {
	h := newCourseHandler(t)

	w := getRequest(t, h.Syllabus, "/api/courses/3/syllabus", gin.Param{Key: "id", Value: "3"})
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "data-science-syllabus.pdf")
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
}

func TestCourseHandlerSyllabusUnknown(t *testing.T) {
	h := newCourseHandler(t)

	w := getRequest(t, h.Syllabus, "/api/courses/42/syllabus", gin.Param{Key: "id", Value: "42"})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Course not found"}`, w.Body.String())
}
