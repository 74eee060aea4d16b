package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// Syllabus is the flattened course content rendered into the PDF.
type Syllabus struct {
	Title       string
	Duration    string
	Description string
	Tools       []string
	Outcomes    []string
}

// SyllabusExporter renders a course syllabus into a one-page PDF.
type SyllabusExporter struct{}

// NewSyllabusExporter constructs a syllabus exporter.
func NewSyllabusExporter() *SyllabusExporter {
	return &SyllabusExporter{}
}

// Render creates the PDF document for a course.
func (e *SyllabusExporter) Render(s Syllabus) ([]byte, error) {
	if s.Title == "" {
		return nil, fmt.Errorf("syllabus requires a course title")
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 20, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 10, s.Title, "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(0, 7, fmt.Sprintf("Duration: %s", s.Duration), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	pdf.SetTextColor(0, 0, 0)
	pdf.MultiCell(0, 6, s.Description, "", "L", false)
	pdf.Ln(4)

	e.section(pdf, "Tools & Technologies", s.Tools)
	e.section(pdf, "Career Outcomes", s.Outcomes)

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render syllabus: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *SyllabusExporter) section(pdf *gofpdf.Fpdf, title string, items []string) {
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, item := range items {
		pdf.CellFormat(0, 6, fmt.Sprintf("- %s", item), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}
