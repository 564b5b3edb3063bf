// Package artifacts handles on-disk storage of run outputs. Each run
// gets its own directory under the results base dir, named by run ID.
package artifacts

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	DefaultBaseDir = "seoforge-results"

	OutlineFile = "seo_outline.txt"
	ReportFile  = "research_report.txt"
	BlogFile    = "generated_blog.md"
	PDFFile     = "seo_report.pdf"
)

// Store writes run artifacts under baseDir/<runID>/.
type Store struct {
	baseDir string
}

// NewStore creates the base directory if needed.
func NewStore(baseDir string) (*Store, error) {
	if baseDir == "" {
		baseDir = DefaultBaseDir
	}
	if err := os.MkdirAll(baseDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create results directory: %w", err)
	}
	return &Store{baseDir: baseDir}, nil
}

// RunDir returns the directory for a run, creating it if needed.
func (s *Store) RunDir(runID string) (string, error) {
	dir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("failed to create run directory: %w", err)
	}
	return dir, nil
}

// Write stores one artifact for a run and returns its path.
func (s *Store) Write(runID, name string, data []byte) (string, error) {
	dir, err := s.RunDir(runID)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0640); err != nil {
		return "", fmt.Errorf("failed to write artifact %s: %w", name, err)
	}
	return path, nil
}

// WriteOutline stores the outline document.
func (s *Store) WriteOutline(runID, doc string) (string, error) {
	return s.Write(runID, OutlineFile, []byte(doc))
}

// WriteReport stores the research report.
func (s *Store) WriteReport(runID, doc string) (string, error) {
	return s.Write(runID, ReportFile, []byte(doc))
}

// WriteBlog stores the generated article.
func (s *Store) WriteBlog(runID, doc string) (string, error) {
	return s.Write(runID, BlogFile, []byte(doc))
}

// WritePDF stores the combined PDF.
func (s *Store) WritePDF(runID string, data []byte) (string, error) {
	return s.Write(runID, PDFFile, data)
}
