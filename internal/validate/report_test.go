package validate

import (
	"math"
	"strings"
	"testing"

	"github.com/dtnitsch/pdf-outline-extractor/models"
)

func sampleResult() *models.ExtractionResult {
	return &models.ExtractionResult{
		Document: models.ResultDocument{
			Filename:       "report.json",
			Pages:          10,
			ProcessingTime: 1.2,
		},
		Outline: []models.ResultHeading{
			{Level: 1, Title: "Introduction", Page: 1, Confidence: 0.95},
			{Level: 2, Title: "Background", Page: 2, Confidence: 0.80},
			{Level: 3, Title: "Prior Work", Page: 3, Confidence: 0.70},
		},
		Statistics: models.ResultStatistics{
			TotalHeadings: 3,
			H1Count:       1,
			H2Count:       1,
			H3Count:       1,
		},
	}
}

func TestBuildReport_Valid(t *testing.T) {
	report := BuildReport("report.result.json", sampleResult())

	if !report.Valid {
		t.Errorf("BuildReport() valid = false, errors = %v", report.Errors)
	}
	if len(report.Errors) != 0 {
		t.Errorf("BuildReport() errors = %v, want none", report.Errors)
	}
	// confidence 24.5 + hierarchy 25 + coverage 3/10*20 + distribution 15
	// + performance 10 = 80.5
	if math.Abs(report.QualityScore-0.805) > 1e-9 {
		t.Errorf("BuildReport() quality = %v, want 0.805", report.QualityScore)
	}
	if report.Statistics.OutlineLength != 3 {
		t.Errorf("statistics outline length = %d, want 3", report.Statistics.OutlineLength)
	}
	if report.Statistics.MinConfidence != 0.70 || report.Statistics.MaxConfidence != 0.95 {
		t.Errorf("confidence range = %v-%v, want 0.70-0.95",
			report.Statistics.MinConfidence, report.Statistics.MaxConfidence)
	}
}

func TestBuildReport_HierarchyViolation(t *testing.T) {
	result := sampleResult()
	// H3 directly after H1 is both a jump and an orphan
	result.Outline = []models.ResultHeading{
		{Level: 1, Title: "Introduction", Page: 1, Confidence: 0.9},
		{Level: 3, Title: "Details", Page: 2, Confidence: 0.8},
	}
	result.Statistics = models.ResultStatistics{TotalHeadings: 2, H1Count: 1, H3Count: 1}

	report := BuildReport("report.result.json", result)

	if report.Valid {
		t.Error("BuildReport() valid = true for broken hierarchy")
	}
	if len(report.Errors) != 2 {
		t.Errorf("BuildReport() errors = %v, want level jump and orphan H3", report.Errors)
	}
}

func TestBuildReport_StatisticsMismatch(t *testing.T) {
	result := sampleResult()
	result.Statistics.TotalHeadings = 7

	report := BuildReport("report.result.json", result)

	if report.Valid {
		t.Error("BuildReport() valid = true despite statistics mismatch")
	}
	found := false
	for _, e := range report.Errors {
		if strings.Contains(e, "statistics mismatch") {
			found = true
		}
	}
	if !found {
		t.Errorf("BuildReport() errors = %v, want statistics mismatch", report.Errors)
	}
}

func TestBuildReport_EmptyOutline(t *testing.T) {
	result := sampleResult()
	result.Outline = nil
	result.Statistics = models.ResultStatistics{}

	report := BuildReport("empty.result.json", result)

	if report.QualityScore != 0 {
		t.Errorf("empty outline quality = %v, want 0", report.QualityScore)
	}
	if len(report.Warnings) == 0 {
		t.Error("empty outline should warn about missing headings")
	}
	// Structurally an empty outline is still valid
	if !report.Valid {
		t.Errorf("empty outline valid = false, errors = %v", report.Errors)
	}
}

func TestBuildReport_Warnings(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.ExtractionResult)
		wantSub string
	}{
		{
			name: "slow processing",
			mutate: func(r *models.ExtractionResult) {
				r.Document.ProcessingTime = 12.0 // 1.2s per page over 10 pages
			},
			wantSub: "slow processing",
		},
		{
			name: "low confidence majority",
			mutate: func(r *models.ExtractionResult) {
				for i := range r.Outline {
					r.Outline[i].Confidence = 0.41
				}
			},
			wantSub: "low confidence",
		},
		{
			name: "no H1 headings",
			mutate: func(r *models.ExtractionResult) {
				r.Statistics.H1Count = 0
			},
			wantSub: "no H1 headings",
		},
		{
			name: "H2 over-detection",
			mutate: func(r *models.ExtractionResult) {
				r.Statistics.H1Count = 1
				r.Statistics.H2Count = 15
			},
			wantSub: "H2 to H1 ratio",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := sampleResult()
			tt.mutate(result)
			report := BuildReport("report.result.json", result)

			found := false
			for _, w := range report.Warnings {
				if strings.Contains(w, tt.wantSub) {
					found = true
				}
			}
			if !found {
				t.Errorf("warnings = %v, want one containing %q", report.Warnings, tt.wantSub)
			}
			// Every warning path suggests a remediation
			if len(report.Suggestions) == 0 {
				t.Error("warnings present but no suggestions")
			}
		})
	}
}
