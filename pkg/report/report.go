// Package report renders the research report artifact, pairing the deep
// research thinking text with the competitor analysis summary.
package report

import (
	"fmt"
	"time"

	"github.com/seoforge/seoforge/models"
	"github.com/seoforge/seoforge/pkg/assembler"
)

const banner = "=== Research Report ==="

// Generator formats research reports with an injectable clock so output
// is reproducible in tests.
type Generator struct {
	now func() time.Time
}

func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// Generate renders the report. Thinking text and profiles may both be
// empty; the report structure is emitted regardless.
func (g *Generator) Generate(thinking string, profiles []models.PageProfile) string {
	return fmt.Sprintf(`%s

Deep Research Thinking Process:
%s

--- Competitor Content Analysis Summary ---
%s

Generated on: %s
`, banner, thinking, assembler.ProfileSummaries(profiles), g.now().Format("2006-01-02 15:04:05"))
}
