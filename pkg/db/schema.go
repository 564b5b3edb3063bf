package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Runs table: one row per pipeline execution
CREATE TABLE IF NOT EXISTS runs (
    run_id TEXT PRIMARY KEY,
    query TEXT NOT NULL,
    intent TEXT NOT NULL,
    secondary_keywords TEXT,          -- comma-joined
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    status TEXT NOT NULL DEFAULT 'running',  -- running, completed, failed

    -- Pipeline stage counts
    organic_results INTEGER DEFAULT 0,
    competitor_pages INTEGER DEFAULT 0,
    citation_pages INTEGER DEFAULT 0,

    -- Artifact paths, filled in as stages complete
    outline_path TEXT,
    report_path TEXT,
    blog_path TEXT,
    pdf_path TEXT
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
CREATE INDEX IF NOT EXISTS idx_runs_query ON runs(query);

-- Page fetches: outcome of every scrape attempted during a run
CREATE TABLE IF NOT EXISTS page_fetches (
    fetch_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id TEXT NOT NULL,
    url TEXT NOT NULL,
    kind TEXT NOT NULL,               -- competitor, citation
    ok BOOLEAN NOT NULL DEFAULT 0,
    error TEXT,
    word_count INTEGER DEFAULT 0,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_page_fetches_run ON page_fetches(run_id);
`
