package manifest

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dtnitsch/pdf-outline-extractor/models"
	"github.com/dtnitsch/pdf-outline-extractor/pkg/storage"
)

func TestGenerateSummary(t *testing.T) {
	dir := t.TempDir()
	store := &storage.Storage{}

	outlinePath := filepath.Join(dir, "report.outline.json")
	if err := store.SaveFile(outlinePath, []byte(`{"title":"report.json","outline":[]}`)); err != nil {
		t.Fatalf("failed to seed outline file: %v", err)
	}

	results := []ExtractResult{
		{
			Filename:    "report.json",
			OutlinePath: outlinePath,
			ContentHash: "abc123",
			Document:    &models.Document{Filename: "report.json", PageCount: 12},
			Outline: &models.Outline{
				Headings:       []models.Heading{{Text: "Introduction", Level: 1, Page: 1}},
				QualityScore:   0.88,
				ProcessingTime: 150 * time.Millisecond,
			},
		},
		{
			Filename:  "broken.json",
			Error:     errors.New("unexpected end of JSON input"),
			ErrorType: "invalid_document",
		},
	}

	manifestPath, err := GenerateSummary(results, dir, store)
	if err != nil {
		t.Fatalf("GenerateSummary() error = %v", err)
	}

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		t.Fatalf("failed to read manifest: %v", err)
	}

	var summary SummaryManifest
	if err := json.Unmarshal(data, &summary); err != nil {
		t.Fatalf("manifest is not valid JSON: %v", err)
	}

	if summary.TotalDocuments != 2 || summary.Successful != 1 || summary.Failed != 1 {
		t.Errorf("totals = %d/%d/%d, want 2/1/1",
			summary.TotalDocuments, summary.Successful, summary.Failed)
	}
	if len(summary.Results) != 2 {
		t.Fatalf("manifest has %d results, want 2", len(summary.Results))
	}

	ok := summary.Results[0]
	if ok.Status != "success" || ok.Pages != 12 || ok.HeadingCount != 1 {
		t.Errorf("success entry = %+v", ok)
	}
	if ok.QualityScore != 0.88 || ok.ContentHash != "abc123" {
		t.Errorf("success entry quality/hash = %v/%q", ok.QualityScore, ok.ContentHash)
	}
	if ok.SizeBytes == 0 {
		t.Error("success entry should carry the outline file size")
	}

	failed := summary.Results[1]
	if failed.Status != "error" || failed.ErrorType != "invalid_document" {
		t.Errorf("failed entry = %+v", failed)
	}
	if failed.ErrorMessage == "" {
		t.Error("failed entry should carry the error message")
	}
}
