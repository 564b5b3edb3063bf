// Package pdfreport packages the run artifacts into a single PDF with
// one section per document.
package pdfreport

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

// Documents holds the text artifacts of one run. Blog may be empty, in
// which case its section is omitted.
type Documents struct {
	Query   string
	Outline string
	Report  string
	Blog    string
}

// Builder renders combined PDF reports.
type Builder struct {
	now func() time.Time
}

func NewBuilder() *Builder {
	return &Builder{now: time.Now}
}

// Build renders docs into PDF bytes. Core fonts only cover cp1252, so
// unrepresentable runes are substituted rather than failing the run.
func (b *Builder) Build(docs Documents) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	ts := b.now().Format("2006-01-02 15:04")

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 10, tr("Generated on: "+ts), "", 1, "R", false, 0, "")
		pdf.CellFormat(0, 10, tr("Query: "+docs.Query), "", 1, "L", false, 0, "")
		pdf.Ln(10)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.SetAutoPageBreak(true, 15)

	writeSection(pdf, tr, "SEO Outline", docs.Outline, true)
	writeSection(pdf, tr, "Research Report", docs.Report, false)
	if docs.Blog != "" {
		writeSection(pdf, tr, "Generated Blog Content", docs.Blog, true)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// writeSection starts a page with a centered title and writes body line
// by line. When markdown is set, lines starting with # become bold
// headings sized by their level.
func writeSection(pdf *fpdf.Fpdf, tr func(string) string, title, body string, markdown bool) {
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr(title), "", 1, "C", false, 0, "")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 12)

	for _, line := range strings.Split(body, "\n") {
		if markdown && strings.HasPrefix(strings.TrimSpace(line), "#") {
			level := strings.Count(line, "#")
			text := strings.TrimSpace(strings.Trim(line, "#"))
			pdf.SetFont("Arial", "B", float64(14-level))
			pdf.CellFormat(0, 10, tr(text), "", 1, "L", false, 0, "")
			pdf.SetFont("Arial", "", 12)
			continue
		}
		pdf.MultiCell(0, 10, tr(line), "", "L", false)
	}
}
