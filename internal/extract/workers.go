package extract

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dtnitsch/pdf-outline-extractor/internal/common"
	"github.com/dtnitsch/pdf-outline-extractor/models"
	"github.com/dtnitsch/pdf-outline-extractor/pkg/db"
	"github.com/dtnitsch/pdf-outline-extractor/pkg/docsource"
	"github.com/dtnitsch/pdf-outline-extractor/pkg/fetcher"
	"github.com/dtnitsch/pdf-outline-extractor/pkg/langdetect"
	"github.com/dtnitsch/pdf-outline-extractor/pkg/outline"
	"github.com/dtnitsch/pdf-outline-extractor/pkg/storage"
)

func run(logger *slog.Logger, config *models.ExtractConfig, detector *outline.Detector, languages *langdetect.Detector, store *storage.Storage, database *db.DB) ([]Result, error) {
	logger.Info("Starting concurrent extract phase", "document_count", len(config.Inputs), "workers", config.WorkerCount, "output_dir", config.OutputDir)

	f := fetcher.NewFetcher()
	var wg sync.WaitGroup
	jobs := make(chan Job, len(config.Inputs))
	results := make(chan Result, len(config.Inputs))

	workerCount := config.WorkerCount
	if workerCount <= 0 {
		workerCount = 4
	}

	for w := 1; w <= workerCount; w++ {
		wg.Add(1)
		go worker(w, logger, config, detector, languages, f, store, database, &wg, jobs, results)
	}

	for _, path := range config.Inputs {
		jobs <- Job{Path: path}
	}
	close(jobs)

	wg.Wait()
	close(results)
	logger.Info("All extract workers finished")

	allResults := make([]Result, 0, len(config.Inputs))
	var runErr error
	for result := range results {
		allResults = append(allResults, result)
		if result.Error != nil {
			runErr = fmt.Errorf("one or more documents failed")
		}
	}

	return allResults, runErr
}

func worker(id int, logger *slog.Logger, config *models.ExtractConfig, detector *outline.Detector, languages *langdetect.Detector, f *fetcher.Fetcher, store *storage.Storage, database *db.DB, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result) {
	defer wg.Done()
	for job := range jobs {
		logger.Info("Worker started job", "worker_id", id, "path", job.Path)

		result := Result{Path: job.Path, Filename: filepath.Base(job.Path)}

		doc, err := loadDocument(f, job.Path)
		if err != nil {
			logger.Error("Error loading document", "worker_id", id, "path", job.Path, "error", err)
			result.Error = err
			result.ErrorType = loadErrorType(job.Path)
			recordFailure(logger, database, result)
			results <- result
			continue
		}
		result.Filename = doc.Filename
		result.Document = doc

		result.Depth = langdetect.DepthFull
		if languages != nil && config.Settings.DetectLanguage {
			result.Depth = languages.DetectDocument(doc)
			logger.Info("Detected document language", "worker_id", id, "path", job.Path,
				"language", doc.Language, "confidence", doc.LanguageConfidence, "depth", result.Depth)
		}

		out := outline.Extract(detector, doc)
		result.Outline = out
		logger.Info("Extracted outline", "worker_id", id, "path", job.Path,
			"headings", len(out.Headings), "quality_score", out.QualityScore,
			"processing_ms", out.ProcessingTime.Milliseconds())

		if err := writeResults(config.OutputDir, store, &result); err != nil {
			logger.Error("Error writing results", "worker_id", id, "path", job.Path, "error", err)
			result.Error = err
			result.ErrorType = "write_error"
			recordFailure(logger, database, result)
			results <- result
			continue
		}

		recordSuccess(logger, database, result)
		results <- result
		logger.Info("Worker finished processing", "worker_id", id, "path", job.Path)
	}
}

// outputBase generates a filesystem-friendly base name for output files.
// URL inputs collapse host and path into one hyphenated token.
func outputBase(filename string) string {
	if u, err := url.Parse(filename); err == nil && u.Host != "" {
		host := strings.ReplaceAll(u.Host, ".", "_")
		path := strings.Trim(u.Path, "/")
		path = strings.ReplaceAll(path, "/", "-")
		path = strings.ReplaceAll(path, ".", "_")
		if path != "" {
			return host + "-" + path
		}
		return host
	}
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}

func loadErrorType(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return "fetch_error"
	}
	return "invalid_document"
}

// loadDocument reads one input. URLs are fetched and converted through the
// HTML adapter, .html files are converted locally, and everything else is
// treated as a font-annotated JSON document.
func loadDocument(f *fetcher.Fetcher, path string) (*models.Document, error) {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		html, err := f.GetHtmlBytes(path)
		if err != nil {
			return nil, err
		}
		return docsource.ConvertHTML(path, string(html))
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".html" || ext == ".htm" {
		return docsource.LoadHTML(path)
	}
	return docsource.Load(path)
}

// writeResults saves the minimal outline projection and the full diagnostic
// result next to each other in the output directory.
func writeResults(outputDir string, store *storage.Storage, result *Result) error {
	base := outputBase(result.Filename)

	outlineData, err := json.MarshalIndent(models.NewOutlineOutput(result.Document, result.Outline), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal outline: %w", err)
	}
	outlinePath := filepath.Join(outputDir, base+".outline.json")
	if err := store.SaveFile(outlinePath, outlineData); err != nil {
		return fmt.Errorf("failed to save outline: %w", err)
	}
	result.OutlinePath = outlinePath
	result.ContentHash = common.ContentHash(outlineData)

	diagnostic := models.NewExtractionResult(result.Document, result.Outline)
	diagnosticPath := filepath.Join(outputDir, base+".result.json")
	if err := store.SaveJSON(diagnosticPath, diagnostic); err != nil {
		return fmt.Errorf("failed to save diagnostic result: %w", err)
	}
	result.DiagnosticPath = diagnosticPath

	return nil
}

func recordSuccess(logger *slog.Logger, database *db.DB, result Result) {
	if database == nil {
		return
	}

	docID, err := database.InsertDocument(result.Document)
	if err != nil {
		logger.Warn("Failed to insert document to DB", "filename", result.Filename, "error", err)
		return
	}

	runID, err := database.RecordRun(db.RunRecord{
		DocumentID:        docID,
		ProcessingTime:    result.Outline.ProcessingTime,
		Status:            "success",
		ExtractionDepth:   result.Depth,
		HeadingCount:      len(result.Outline.Headings),
		H1Count:           result.Outline.CountAtLevel(1),
		H2Count:           result.Outline.CountAtLevel(2),
		H3Count:           result.Outline.CountAtLevel(3),
		AverageConfidence: result.Outline.AverageConfidence,
		QualityScore:      result.Outline.QualityScore,
	})
	if err != nil {
		logger.Warn("Failed to record run to DB", "filename", result.Filename, "error", err)
		return
	}

	if err := database.InsertRunHeadings(runID, result.Outline.Headings); err != nil {
		logger.Warn("Failed to insert run headings to DB", "filename", result.Filename, "error", err)
	}
}

func recordFailure(logger *slog.Logger, database *db.DB, result Result) {
	if database == nil || result.Document == nil {
		return
	}

	docID, err := database.InsertDocument(result.Document)
	if err != nil {
		logger.Warn("Failed to insert document to DB", "filename", result.Filename, "error", err)
		return
	}

	if _, err := database.RecordRun(db.RunRecord{
		DocumentID: docID,
		Status:     "failed",
		ErrorType:  result.ErrorType,
	}); err != nil {
		logger.Warn("Failed to record failed run to DB", "filename", result.Filename, "error", err)
	}
}
