package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/technoschool/technoschool-api/internal/content"
)

func renderIndex(t *testing.T) string {
	t.Helper()
	h, err := NewPageHandler(content.Load(zap.NewNop()), zap.NewNop())
	require.NoError(t, err)

	w := getRequest(t, h.Index, "/")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Type"), "text/html")
	return w.Body.String()
}

func TestPageIndexSections(t *testing.T) {
	body := renderIndex(t)

	assert.Contains(t, body, "15,000+")
	assert.Contains(t, body, "Students Trained")
	assert.Contains(t, body, "Placement Assistance")
	assert.Contains(t, body, "Software Development")
	assert.Contains(t, body, "Salesforce")
}

func TestPageIndexCoursePreviews(t *testing.T) {
	body := renderIndex(t)

	// Cards show three tools and a "+N" tag for the rest.
	assert.Contains(t, body, "+2")
	// Outcome previews are truncated and joined.
	assert.Contains(t, body, "Software Engineer • Backend Developer")
	assert.NotContains(t, body, "Software Engineer • Backend Developer • System Architect")
}

func TestPageIndexDetailFragments(t *testing.T) {
	body := renderIndex(t)

	// The hidden detail fragments carry the full lists so the modal
	// never goes back to the network.
	assert.Contains(t, body, `data-course="0"`)
	assert.Contains(t, body, `data-course="5"`)
	assert.Contains(t, body, "Git")
	assert.Contains(t, body, "DSA")
	assert.Contains(t, body, "System Architect")
	assert.Contains(t, body, "/api/courses/0/syllabus")
}

func TestPageIndexTestimonials(t *testing.T) {
	body := renderIndex(t)

	assert.Contains(t, body, "Rahul Sharma")
	assert.Contains(t, body, "Sneha Reddy")
	// Malformed entries are dropped at load time, never rendered.
	assert.NotContains(t, body, "Omkar")
	assert.NotContains(t, body, "xyx fellow")
}
