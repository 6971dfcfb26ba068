package models

import (
	"fmt"
	"strings"
	"time"
)

// Heading is a detected document heading. Derived per run, never persisted
// in this form; only reduced projections are serialized.
type Heading struct {
	Text       string   `json:"text" yaml:"text"`
	Level      int      `json:"level" yaml:"level"` // 1..3
	Page       int      `json:"page" yaml:"page"`
	Confidence float64  `json:"confidence" yaml:"confidence"`
	Font       FontInfo `json:"font_info" yaml:"font_info"`
	X          float64  `json:"x" yaml:"x"`
	Y          float64  `json:"y" yaml:"y"`
}

// NormalizedText returns the trimmed, lower-cased heading text used for
// deduplication.
func (h Heading) NormalizedText() string {
	return strings.ToLower(strings.TrimSpace(h.Text))
}

// Outline is the final structured result for one document: deduplicated
// headings in reading order plus the document-level quality assessment.
type Outline struct {
	Headings          []Heading     `json:"headings" yaml:"headings"`
	AverageConfidence float64       `json:"average_confidence" yaml:"average_confidence"`
	QualityScore      float64       `json:"quality_score" yaml:"quality_score"`
	ProcessingTime    time.Duration `json:"processing_time" yaml:"processing_time"`
}

// CountAtLevel returns how many headings sit at the given level.
func (o *Outline) CountAtLevel(level int) int {
	n := 0
	for _, h := range o.Headings {
		if h.Level == level {
			n++
		}
	}
	return n
}

// OutlineEntry is the minimal external projection of a heading. Confidence
// and font details are deliberately omitted; callers needing them must be
// handed the Outline value itself.
type OutlineEntry struct {
	Level string `json:"level"` // "H1" | "H2" | "H3"
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// OutlineOutput is the per-document outline JSON written for downstream
// consumers.
type OutlineOutput struct {
	Title   string         `json:"title"`
	Outline []OutlineEntry `json:"outline"`
}

// NewOutlineOutput builds the minimal serialized projection of an outline.
func NewOutlineOutput(doc *Document, outline *Outline) OutlineOutput {
	out := OutlineOutput{
		Title:   doc.Filename,
		Outline: make([]OutlineEntry, 0, len(outline.Headings)),
	}
	for _, h := range outline.Headings {
		out.Outline = append(out.Outline, OutlineEntry{
			Level: fmt.Sprintf("H%d", h.Level),
			Text:  h.Text,
			Page:  h.Page,
		})
	}
	return out
}

// ResultFont is the font subset carried in the diagnostics result form.
type ResultFont struct {
	Size   float64 `json:"size"`
	Family string  `json:"family"`
	Color  string  `json:"color,omitempty"`
}

// ResultHeading is one heading in the diagnostics result form.
type ResultHeading struct {
	Level      int        `json:"level"`
	Title      string     `json:"title"`
	Page       int        `json:"page"`
	Confidence float64    `json:"confidence"`
	Font       ResultFont `json:"font_info"`
}

// ResultDocument identifies the processed document in the diagnostics form.
type ResultDocument struct {
	Filename       string  `json:"filename"`
	Pages          int     `json:"pages"`
	ProcessedAt    string  `json:"processed_at"`
	ProcessingTime float64 `json:"processing_time"` // seconds
}

// ResultStatistics summarizes the outline in the diagnostics form.
type ResultStatistics struct {
	TotalHeadings     int     `json:"total_headings"`
	H1Count           int     `json:"h1_count"`
	H2Count           int     `json:"h2_count"`
	H3Count           int     `json:"h3_count"`
	AverageConfidence float64 `json:"average_confidence"`
	QualityScore      float64 `json:"quality_score"`
	PagesWithHeadings int     `json:"pages_with_headings"`
}

// ExtractionResult is the full diagnostics JSON form consumed by the
// validate command. It carries everything the minimal projection drops.
type ExtractionResult struct {
	Document   ResultDocument   `json:"document"`
	Outline    []ResultHeading  `json:"outline"`
	Statistics ResultStatistics `json:"statistics"`
}

// NewExtractionResult builds the diagnostics form from a document and its
// outline.
func NewExtractionResult(doc *Document, outline *Outline) ExtractionResult {
	res := ExtractionResult{
		Document: ResultDocument{
			Filename:       doc.Filename,
			Pages:          doc.PageCount,
			ProcessedAt:    time.Now().UTC().Format(time.RFC3339),
			ProcessingTime: outline.ProcessingTime.Seconds(),
		},
		Outline: make([]ResultHeading, 0, len(outline.Headings)),
	}

	pages := make(map[int]struct{})
	for _, h := range outline.Headings {
		pages[h.Page] = struct{}{}
		res.Outline = append(res.Outline, ResultHeading{
			Level:      h.Level,
			Title:      h.Text,
			Page:       h.Page,
			Confidence: h.Confidence,
			Font: ResultFont{
				Size:   h.Font.Size,
				Family: h.Font.Family,
				Color:  h.Font.Color,
			},
		})
	}

	res.Statistics = ResultStatistics{
		TotalHeadings:     len(outline.Headings),
		H1Count:           outline.CountAtLevel(1),
		H2Count:           outline.CountAtLevel(2),
		H3Count:           outline.CountAtLevel(3),
		AverageConfidence: outline.AverageConfidence,
		QualityScore:      outline.QualityScore,
		PagesWithHeadings: len(pages),
	}
	return res
}
