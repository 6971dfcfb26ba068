package outline

import (
	"time"

	"github.com/dtnitsch/pdf-outline-extractor/models"
)

// BuildOutline assembles the final outline value from the deduplicated,
// ordered heading sequence: the average confidence and the composite quality
// score over the given page count and elapsed processing time.
func BuildOutline(headings []models.Heading, pageCount int, elapsed time.Duration) *models.Outline {
	refs := headingRefs(headings)

	return &models.Outline{
		Headings:          headings,
		AverageConfidence: AverageConfidence(refs),
		QualityScore: QualityScore(QualityInput{
			Headings:       refs,
			TotalPages:     pageCount,
			ProcessingTime: elapsed,
		}),
		ProcessingTime: elapsed,
	}
}

// Extract runs detection and assembly in one call, timing the run for the
// performance term of the quality score.
func Extract(detector *Detector, doc *models.Document) *models.Outline {
	start := time.Now()
	headings := detector.Detect(doc)
	return BuildOutline(headings, doc.PageCount, time.Since(start))
}

// headingRefs projects headings into the minimal view the quality formula
// consumes.
func headingRefs(headings []models.Heading) []HeadingRef {
	refs := make([]HeadingRef, len(headings))
	for i, h := range headings {
		refs[i] = HeadingRef{
			Level:      h.Level,
			Title:      h.Text,
			Page:       h.Page,
			Confidence: h.Confidence,
		}
	}
	return refs
}

// ResultRefs projects the persisted diagnostics form into the quality
// formula's view, for consumers re-deriving quality from stored output.
func ResultRefs(result *models.ExtractionResult) []HeadingRef {
	refs := make([]HeadingRef, len(result.Outline))
	for i, h := range result.Outline {
		refs[i] = HeadingRef{
			Level:      h.Level,
			Title:      h.Title,
			Page:       h.Page,
			Confidence: h.Confidence,
		}
	}
	return refs
}
