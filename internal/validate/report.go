package validate

import (
	"fmt"
	"math"
	"time"

	"github.com/dtnitsch/pdf-outline-extractor/models"
	"github.com/dtnitsch/pdf-outline-extractor/pkg/outline"
)

// Report is the validation outcome for one persisted diagnostics file.
type Report struct {
	File         string     `json:"file"`
	Valid        bool       `json:"valid"`
	QualityScore float64    `json:"quality_score"`
	Errors       []string   `json:"errors"`
	Warnings     []string   `json:"warnings"`
	Suggestions  []string   `json:"suggestions"`
	Statistics   Statistics `json:"statistics"`
}

// Statistics is the derived summary section of a report.
type Statistics struct {
	OutlineLength     int     `json:"outline_length"`
	H1Count           int     `json:"h1_count"`
	H2Count           int     `json:"h2_count"`
	H3Count           int     `json:"h3_count"`
	AvgConfidence     float64 `json:"avg_confidence"`
	MinConfidence     float64 `json:"min_confidence"`
	MaxConfidence     float64 `json:"max_confidence"`
	TotalPages        int     `json:"total_pages"`
	PagesWithHeadings int     `json:"pages_with_headings"`
}

// BuildReport re-derives quality and checks a persisted extraction result
// for structural and content defects.
func BuildReport(file string, result *models.ExtractionResult) Report {
	report := Report{
		File:        file,
		Errors:      []string{},
		Warnings:    []string{},
		Suggestions: []string{},
	}

	refs := outline.ResultRefs(result)
	processingTime := time.Duration(result.Document.ProcessingTime * float64(time.Second))

	report.QualityScore = outline.QualityScore(outline.QualityInput{
		Headings:       refs,
		TotalPages:     result.Document.Pages,
		ProcessingTime: processingTime,
	})

	for _, v := range outline.ValidateHierarchy(refs) {
		report.Errors = append(report.Errors, v.Message)
	}

	checkContent(&report, result, refs)
	report.Statistics = buildStatistics(result, refs)
	report.Valid = len(report.Errors) == 0

	return report
}

func checkContent(report *Report, result *models.ExtractionResult, refs []outline.HeadingRef) {
	doc := result.Document

	// Processing speed
	if doc.Pages > 0 {
		perPage := doc.ProcessingTime / float64(doc.Pages)
		if perPage > 0.5 {
			report.Warnings = append(report.Warnings, fmt.Sprintf("slow processing: %.2fs per page", perPage))
			if perPage > 1.0 {
				report.Suggestions = append(report.Suggestions, "consider optimizing the processing pipeline for better performance")
			}
		}
	}

	if len(refs) == 0 {
		report.Warnings = append(report.Warnings, "no headings detected in document")
		report.Suggestions = append(report.Suggestions, "check if the document contains headings or adjust detection parameters")
	} else {
		lowConfidence := 0
		for _, h := range refs {
			if h.Confidence < 0.5 {
				lowConfidence++
			}
		}
		if float64(lowConfidence) > float64(len(refs))*0.5 {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("many headings have low confidence (%d/%d)", lowConfidence, len(refs)))
			report.Suggestions = append(report.Suggestions,
				"consider adjusting detection thresholds or reviewing document quality")
		}

		if doc.Pages > 0 {
			pages := make(map[int]struct{}, len(refs))
			for _, h := range refs {
				pages[h.Page] = struct{}{}
			}
			coverage := float64(len(pages)) / float64(doc.Pages)
			if coverage < 0.1 {
				report.Warnings = append(report.Warnings,
					fmt.Sprintf("low page coverage: headings found on only %.1f%% of pages", coverage*100))
				report.Suggestions = append(report.Suggestions,
					"review heading detection parameters or document structure")
			}
		}
	}

	stats := result.Statistics
	if stats.TotalHeadings != len(refs) {
		report.Errors = append(report.Errors,
			fmt.Sprintf("statistics mismatch: total_headings (%d) != outline length (%d)", stats.TotalHeadings, len(refs)))
	}

	if stats.H1Count == 0 && stats.TotalHeadings > 0 {
		report.Warnings = append(report.Warnings, "no H1 headings found - document structure may be unclear")
		report.Suggestions = append(report.Suggestions, "review font size thresholds or heading detection logic")
	}
	if stats.H2Count > stats.H1Count*10 {
		report.Warnings = append(report.Warnings, "very high H2 to H1 ratio - possible over-detection")
		report.Suggestions = append(report.Suggestions, "consider increasing confidence thresholds for H2 headings")
	}
}

func buildStatistics(result *models.ExtractionResult, refs []outline.HeadingRef) Statistics {
	stats := Statistics{
		OutlineLength: len(refs),
		TotalPages:    result.Document.Pages,
		AvgConfidence: outline.AverageConfidence(refs),
	}

	if len(refs) == 0 {
		return stats
	}

	pages := make(map[int]struct{}, len(refs))
	min, max := math.Inf(1), math.Inf(-1)
	for _, h := range refs {
		pages[h.Page] = struct{}{}
		min = math.Min(min, h.Confidence)
		max = math.Max(max, h.Confidence)
		switch h.Level {
		case 1:
			stats.H1Count++
		case 2:
			stats.H2Count++
		case 3:
			stats.H3Count++
		}
	}
	stats.PagesWithHeadings = len(pages)
	stats.MinConfidence = min
	stats.MaxConfidence = max

	return stats
}
