package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dtnitsch/pdf-outline-extractor/models"
)

// InsertDocument inserts a document row, returning the document_id. If a
// document with the same filename already exists, its metadata is refreshed
// and the existing id returned.
func (db *DB) InsertDocument(doc *models.Document) (int64, error) {
	var existingID int64
	err := db.QueryRow("SELECT document_id FROM documents WHERE filename = ?", doc.Filename).Scan(&existingID)
	if err == nil {
		_, err = db.Exec(`
			UPDATE documents
			SET pages = ?, avg_font_size = ?, primary_font = ?, language = ?,
				language_confidence = ?, updated_at = CURRENT_TIMESTAMP
			WHERE document_id = ?
		`, doc.PageCount, doc.AvgFontSize, doc.PrimaryFont, doc.Language, doc.LanguageConfidence, existingID)
		if err != nil {
			return 0, fmt.Errorf("failed to update document: %w", err)
		}
		return existingID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to check existing document: %w", err)
	}

	result, err := db.Exec(`
		INSERT INTO documents (filename, pages, avg_font_size, primary_font, language, language_confidence)
		VALUES (?, ?, ?, ?, ?, ?)
	`, doc.Filename, doc.PageCount, doc.AvgFontSize, doc.PrimaryFont, doc.Language, doc.LanguageConfidence)
	if err != nil {
		return 0, fmt.Errorf("failed to insert document: %w", err)
	}

	docID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get document ID: %w", err)
	}
	return docID, nil
}

// RunRecord is one extraction attempt as stored in the runs table.
type RunRecord struct {
	RunID             int64
	DocumentID        int64
	Filename          string
	StartedAt         time.Time
	ProcessingTime    time.Duration
	Status            string // "success" or "failed"
	ErrorType         string
	ExtractionDepth   string
	HeadingCount      int
	H1Count           int
	H2Count           int
	H3Count           int
	AverageConfidence float64
	QualityScore      float64
}

// RecordRun inserts a run row and returns the run_id.
func (db *DB) RecordRun(rec RunRecord) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO runs (document_id, processing_time_ms, status, error_type, extraction_depth,
			heading_count, h1_count, h2_count, h3_count, average_confidence, quality_score)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.DocumentID, rec.ProcessingTime.Milliseconds(), rec.Status, rec.ErrorType, rec.ExtractionDepth,
		rec.HeadingCount, rec.H1Count, rec.H2Count, rec.H3Count, rec.AverageConfidence, rec.QualityScore)
	if err != nil {
		return 0, fmt.Errorf("failed to record run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}
	return runID, nil
}

// InsertRunHeadings stores a run's outline in reading order inside one
// transaction.
func (db *DB) InsertRunHeadings(runID int64, headings []models.Heading) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
		INSERT INTO run_headings (run_id, position, level, title, page, confidence, font_size, font_family)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare heading insert: %w", err)
	}
	defer stmt.Close()

	for i, h := range headings {
		if _, err := stmt.Exec(runID, i, h.Level, h.Text, h.Page, h.Confidence, h.Font.Size, h.Font.Family); err != nil {
			return fmt.Errorf("failed to insert heading %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit headings: %w", err)
	}
	return nil
}

// RunHeadings returns a run's outline in reading order.
func (db *DB) RunHeadings(runID int64) ([]models.Heading, error) {
	rows, err := db.Query(`
		SELECT level, title, page, confidence, font_size, font_family
		FROM run_headings WHERE run_id = ? ORDER BY position
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query run headings: %w", err)
	}
	defer rows.Close()

	var headings []models.Heading
	for rows.Next() {
		var h models.Heading
		var fontSize sql.NullFloat64
		var fontFamily sql.NullString
		if err := rows.Scan(&h.Level, &h.Text, &h.Page, &h.Confidence, &fontSize, &fontFamily); err != nil {
			return nil, fmt.Errorf("failed to scan heading: %w", err)
		}
		h.Font.Size = fontSize.Float64
		h.Font.Family = fontFamily.String
		headings = append(headings, h)
	}
	return headings, rows.Err()
}
