package manifest

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/dtnitsch/pdf-outline-extractor/models"
	"github.com/dtnitsch/pdf-outline-extractor/pkg/storage"
)

// ExtractResult represents the outcome of extracting one document's outline.
// This is passed in from the extract command to avoid circular dependencies.
type ExtractResult struct {
	Filename       string
	OutlinePath    string
	DiagnosticPath string
	Document       *models.Document
	Outline        *models.Outline
	ContentHash    string
	Error          error
	ErrorType      string
}

// GenerateSummary creates a summary manifest file with aggregated results.
// It accepts all extract results, the output directory, and a storage
// instance. Returns the path to the generated manifest file and any error.
func GenerateSummary(results []ExtractResult, outputDir string, s *storage.Storage) (string, error) {
	manifest := SummaryManifest{
		GeneratedAt:    time.Now().Format(time.RFC3339),
		TotalDocuments: len(results),
	}

	// Process each result
	for _, result := range results {
		summary := DocumentSummary{
			Filename: result.Filename,
		}

		if result.Error != nil {
			// Error case
			manifest.Failed++
			summary.Status = "error"
			summary.ErrorType = result.ErrorType
			summary.ErrorMessage = result.Error.Error()
		} else {
			// Success case
			manifest.Successful++
			summary.Status = "success"
			summary.OutlinePath = result.OutlinePath
			summary.DiagnosticPath = result.DiagnosticPath
			summary.ContentHash = result.ContentHash

			if result.Document != nil {
				summary.Pages = result.Document.PageCount
			}
			if result.Outline != nil {
				summary.HeadingCount = len(result.Outline.Headings)
				summary.QualityScore = result.Outline.QualityScore
				summary.ProcessingMS = result.Outline.ProcessingTime.Milliseconds()
			}

			// Get file stats (size) using the storage layer
			if result.OutlinePath != "" {
				stats, err := s.GetFileStats(result.OutlinePath)
				if err == nil {
					summary.SizeBytes = stats.SizeBytes
				}
			}
		}

		manifest.Results = append(manifest.Results, summary)
	}

	// Save manifest to file
	manifestPath := filepath.Join(outputDir, fmt.Sprintf("summary-%s.json", time.Now().Format("2006-01-02")))
	if err := s.SaveJSON(manifestPath, manifest); err != nil {
		return "", fmt.Errorf("error saving manifest: %w", err)
	}

	return manifestPath, nil
}
