package db

import (
	"database/sql"
	"fmt"

	"github.com/seoforge/seoforge/models"
)

// Run status values.
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// InsertRun records a new pipeline run in the index.
func (db *DB) InsertRun(run models.Run) error {
	_, err := db.Exec(`
		INSERT INTO runs (run_id, query, intent, secondary_keywords, status, organic_results, competitor_pages, citation_pages)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Query, run.Intent, run.SecondaryKeywords,
		StatusRunning, run.OrganicResults, run.CompetitorPages, run.CitationPages)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}
	return nil
}

// UpdateRunCounts sets the per-stage counts once fetching is done.
func (db *DB) UpdateRunCounts(runID string, organic, competitors, citations int) error {
	_, err := db.Exec(`
		UPDATE runs SET organic_results = ?, competitor_pages = ?, citation_pages = ?
		WHERE run_id = ?`,
		organic, competitors, citations, runID)
	if err != nil {
		return fmt.Errorf("failed to update run counts: %w", err)
	}
	return nil
}

// UpdateRunArtifacts records artifact paths and the final status.
func (db *DB) UpdateRunArtifacts(runID, outlinePath, reportPath, blogPath, pdfPath, status string) error {
	res, err := db.Exec(`
		UPDATE runs SET outline_path = ?, report_path = ?, blog_path = ?, pdf_path = ?, status = ?
		WHERE run_id = ?`,
		outlinePath, reportPath, blogPath, pdfPath, status, runID)
	if err != nil {
		return fmt.Errorf("failed to update run artifacts: %w", err)
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return fmt.Errorf("run %s not found", runID)
	}
	return nil
}

// RecordPageFetch stores one scrape outcome.
func (db *DB) RecordPageFetch(fetch models.PageFetch) error {
	_, err := db.Exec(`
		INSERT INTO page_fetches (run_id, url, kind, ok, error, word_count)
		VALUES (?, ?, ?, ?, ?, ?)`,
		fetch.RunID, fetch.URL, fetch.Kind, fetch.OK, fetch.Error, fetch.WordCount)
	if err != nil {
		return fmt.Errorf("failed to record page fetch: %w", err)
	}
	return nil
}

// GetRun fetches one run by ID.
func (db *DB) GetRun(runID string) (*models.Run, error) {
	row := db.QueryRow(`
		SELECT run_id, query, intent, COALESCE(secondary_keywords, ''), created_at, status,
		       organic_results, competitor_pages, citation_pages,
		       COALESCE(outline_path, ''), COALESCE(report_path, ''), COALESCE(blog_path, ''), COALESCE(pdf_path, '')
		FROM runs WHERE run_id = ?`, runID)

	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %s not found", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return run, nil
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(limit int) ([]models.Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.Query(`
		SELECT run_id, query, intent, COALESCE(secondary_keywords, ''), created_at, status,
		       organic_results, competitor_pages, citation_pages,
		       COALESCE(outline_path, ''), COALESCE(report_path, ''), COALESCE(blog_path, ''), COALESCE(pdf_path, '')
		FROM runs ORDER BY created_at DESC, run_id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []models.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}

// ListPageFetches returns the fetch outcomes for a run in insert order.
func (db *DB) ListPageFetches(runID string) ([]models.PageFetch, error) {
	rows, err := db.Query(`
		SELECT run_id, url, kind, ok, COALESCE(error, ''), word_count
		FROM page_fetches WHERE run_id = ? ORDER BY fetch_id`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to list page fetches: %w", err)
	}
	defer rows.Close()

	var fetches []models.PageFetch
	for rows.Next() {
		var f models.PageFetch
		if err := rows.Scan(&f.RunID, &f.URL, &f.Kind, &f.OK, &f.Error, &f.WordCount); err != nil {
			return nil, fmt.Errorf("failed to scan page fetch: %w", err)
		}
		fetches = append(fetches, f)
	}
	return fetches, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*models.Run, error) {
	var run models.Run
	err := row.Scan(&run.ID, &run.Query, &run.Intent, &run.SecondaryKeywords,
		&run.CreatedAt, &run.Status,
		&run.OrganicResults, &run.CompetitorPages, &run.CitationPages,
		&run.OutlinePath, &run.ReportPath, &run.BlogPath, &run.PDFPath)
	if err != nil {
		return nil, err
	}
	return &run, nil
}
