package content

import "go.uber.org/zap"

// Stat is a headline figure shown in the stats band.
type Stat struct {
	Icon  string `json:"icon"`
	Value string `json:"value"`
	Label string `json:"label"`
}

// Service is an offering rendered as a service card.
type Service struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Course is a training program. Tools and Outcomes carry the full lists;
// card previews truncate them, the detail view shows everything.
type Course struct {
	ID          int      `json:"id"`
	Icon        string   `json:"icon"`
	Title       string   `json:"title"`
	Duration    string   `json:"duration"`
	Tools       []string `json:"tools"`
	Outcomes    []string `json:"outcomes"`
	Description string   `json:"description"`
}

// Testimonial is an alumni quote.
type Testimonial struct {
	Name    string `json:"name"`
	Course  string `json:"course"`
	Company string `json:"company"`
	Role    string `json:"role"`
	Quote   string `json:"quote"`
}

// Collections bundles the static site content.
type Collections struct {
	Stats        []Stat
	Services     []Service
	Courses      []Course
	Companies    []string
	Testimonials []Testimonial
}

// Load assembles the collections and validates the testimonial set. Entries
// with missing fields are data-entry defects: they are skipped with a warning
// rather than rendered half-empty.
func Load(logger *zap.Logger) *Collections {
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Collections{
		Stats:     stats,
		Services:  services,
		Courses:   courses,
		Companies: companies,
	}

	for i, t := range testimonials {
		if t.Name == "" || t.Role == "" || t.Company == "" || t.Quote == "" {
			logger.Warn("skipping malformed testimonial", zap.Int("index", i), zap.String("name", t.Name))
			continue
		}
		c.Testimonials = append(c.Testimonials, t)
	}

	for i := range c.Courses {
		c.Courses[i].ID = i
	}

	return c
}

// CourseByID returns the course at the given index, false when out of range.
func (c *Collections) CourseByID(id int) (Course, bool) {
	if id < 0 || id >= len(c.Courses) {
		return Course{}, false
	}
	return c.Courses[id], true
}
