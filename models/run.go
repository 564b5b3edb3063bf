package models

import "time"

// Run records one pipeline invocation for the local run index.
type Run struct {
	ID                string
	Query             string
	Intent            string
	SecondaryKeywords string
	CreatedAt         time.Time
	OrganicResults    int
	CompetitorPages   int
	CitationPages     int
	OutlinePath       string
	ReportPath        string
	BlogPath          string
	PDFPath           string
	Status            string
}

// PageFetch records the outcome of one scrape within a run.
type PageFetch struct {
	RunID     string
	URL       string
	Kind      string // "competitor" or "citation"
	OK        bool
	Error     string
	WordCount int
}
