package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Documents table: one row per input document, identified by filename
CREATE TABLE IF NOT EXISTS documents (
    document_id INTEGER PRIMARY KEY AUTOINCREMENT,
    filename TEXT NOT NULL UNIQUE,
    pages INTEGER NOT NULL DEFAULT 0,
    avg_font_size REAL,
    primary_font TEXT,
    language TEXT,
    language_confidence REAL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_documents_language ON documents(language);

-- Runs table: every extraction attempt tracked, success or failure
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    document_id INTEGER NOT NULL,
    started_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    processing_time_ms INTEGER,
    status TEXT NOT NULL,            -- success, failed
    error_type TEXT,
    extraction_depth TEXT,            -- full, shallow

    -- Outline statistics
    heading_count INTEGER DEFAULT 0,
    h1_count INTEGER DEFAULT 0,
    h2_count INTEGER DEFAULT 0,
    h3_count INTEGER DEFAULT 0,
    average_confidence REAL,
    quality_score REAL,

    FOREIGN KEY (document_id) REFERENCES documents(document_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_runs_document ON runs(document_id);
CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at DESC);
CREATE INDEX IF NOT EXISTS idx_runs_status ON runs(status);
CREATE INDEX IF NOT EXISTS idx_runs_quality ON runs(quality_score);

-- Run headings: the outline produced by a run, in reading order
CREATE TABLE IF NOT EXISTS run_headings (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    position INTEGER NOT NULL,        -- 0-based reading order
    level INTEGER NOT NULL,           -- 1..3
    title TEXT NOT NULL,
    page INTEGER NOT NULL,
    confidence REAL NOT NULL,
    font_size REAL,
    font_family TEXT,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE,
    UNIQUE(run_id, position)
);

CREATE INDEX IF NOT EXISTS idx_run_headings_run ON run_headings(run_id);
CREATE INDEX IF NOT EXISTS idx_run_headings_level ON run_headings(level);
`
