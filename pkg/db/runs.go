package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

func millisToDuration(ms int64) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// GetRun fetches a single run joined with its document.
func (db *DB) GetRun(runID int64) (*RunRecord, error) {
	var rec RunRecord
	var processingMS int64
	var errorType, depth sql.NullString
	err := db.QueryRow(`
		SELECT r.run_id, r.document_id, d.filename, r.started_at, r.processing_time_ms,
			r.status, r.error_type, r.extraction_depth,
			r.heading_count, r.h1_count, r.h2_count, r.h3_count,
			r.average_confidence, r.quality_score
		FROM runs r
		JOIN documents d ON d.document_id = r.document_id
		WHERE r.run_id = ?
	`, runID).Scan(&rec.RunID, &rec.DocumentID, &rec.Filename, &rec.StartedAt, &processingMS,
		&rec.Status, &errorType, &depth,
		&rec.HeadingCount, &rec.H1Count, &rec.H2Count, &rec.H3Count,
		&rec.AverageConfidence, &rec.QualityScore)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run %d not found", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	rec.ProcessingTime = millisToDuration(processingMS)
	rec.ErrorType = errorType.String
	rec.ExtractionDepth = depth.String
	return &rec, nil
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.Query(`
		SELECT r.run_id, r.document_id, d.filename, r.started_at, r.processing_time_ms,
			r.status, r.error_type, r.extraction_depth,
			r.heading_count, r.h1_count, r.h2_count, r.h3_count,
			r.average_confidence, r.quality_score
		FROM runs r
		JOIN documents d ON d.document_id = r.document_id
		ORDER BY r.started_at DESC, r.run_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var rec RunRecord
		var processingMS int64
		var errorType, depth sql.NullString
		if err := rows.Scan(&rec.RunID, &rec.DocumentID, &rec.Filename, &rec.StartedAt, &processingMS,
			&rec.Status, &errorType, &depth,
			&rec.HeadingCount, &rec.H1Count, &rec.H2Count, &rec.H3Count,
			&rec.AverageConfidence, &rec.QualityScore); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		rec.ProcessingTime = millisToDuration(processingMS)
		rec.ErrorType = errorType.String
		rec.ExtractionDepth = depth.String
		runs = append(runs, rec)
	}
	return runs, rows.Err()
}

// Stats aggregates extraction history across all runs.
type Stats struct {
	Documents       int
	Runs            int
	Succeeded       int
	Failed          int
	TotalHeadings   int
	AvgQualityScore float64
	AvgConfidence   float64
	AvgProcessingMS float64
	RunsByDepth     map[string]int
	DocsByLanguage  map[string]int
	FailuresByType  map[string]int
}

// GetStats computes aggregate statistics over the stored history.
func (db *DB) GetStats() (*Stats, error) {
	stats := &Stats{
		RunsByDepth:    make(map[string]int),
		DocsByLanguage: make(map[string]int),
		FailuresByType: make(map[string]int),
	}

	if err := db.QueryRow("SELECT COUNT(*) FROM documents").Scan(&stats.Documents); err != nil {
		return nil, fmt.Errorf("failed to count documents: %w", err)
	}

	err := db.QueryRow(`
		SELECT COUNT(*),
			COALESCE(SUM(CASE WHEN status = 'success' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'failed' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(heading_count), 0),
			COALESCE(AVG(CASE WHEN status = 'success' THEN quality_score END), 0),
			COALESCE(AVG(CASE WHEN status = 'success' THEN average_confidence END), 0),
			COALESCE(AVG(processing_time_ms), 0)
		FROM runs
	`).Scan(&stats.Runs, &stats.Succeeded, &stats.Failed, &stats.TotalHeadings,
		&stats.AvgQualityScore, &stats.AvgConfidence, &stats.AvgProcessingMS)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate runs: %w", err)
	}

	if err := db.countGroups("SELECT extraction_depth, COUNT(*) FROM runs WHERE extraction_depth != '' GROUP BY extraction_depth", stats.RunsByDepth); err != nil {
		return nil, err
	}
	if err := db.countGroups("SELECT language, COUNT(*) FROM documents WHERE language != '' GROUP BY language", stats.DocsByLanguage); err != nil {
		return nil, err
	}
	if err := db.countGroups("SELECT error_type, COUNT(*) FROM runs WHERE status = 'failed' AND error_type != '' GROUP BY error_type", stats.FailuresByType); err != nil {
		return nil, err
	}

	return stats, nil
}

func (db *DB) countGroups(query string, dest map[string]int) error {
	rows, err := db.Query(query)
	if err != nil {
		return fmt.Errorf("failed to query groups: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var count int
		if err := rows.Scan(&key, &count); err != nil {
			return fmt.Errorf("failed to scan group: %w", err)
		}
		dest[key] = count
	}
	return rows.Err()
}
