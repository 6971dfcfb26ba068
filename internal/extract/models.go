package extract

import (
	"github.com/dtnitsch/pdf-outline-extractor/models"
)

type Job struct {
	Path string
}

// Result holds the outcome of a processed job.
type Result struct {
	Path           string
	Filename       string
	OutlinePath    string
	DiagnosticPath string
	Document       *models.Document
	Outline        *models.Outline
	Depth          string
	ContentHash    string
	Error          error
	ErrorType      string
}

// ResultOutput is the structured output for a single document.
type ResultOutput struct {
	Filename     string  `json:"filename"`
	OutlinePath  string  `json:"outline_path,omitempty"`
	Status       string  `json:"status"`
	Error        string  `json:"error,omitempty"`
	ErrorType    string  `json:"error_type,omitempty"`
	Headings     int     `json:"headings,omitempty"`
	QualityScore float64 `json:"quality_score,omitempty"`
}

// FinalOutput is the structured output for the entire run.
type FinalOutput struct {
	Status  string         `json:"status"`
	Results []ResultOutput `json:"results"`
	Stats   Stats          `json:"stats"`
}

// Stats provides summary statistics for the run.
type Stats struct {
	TotalDocuments   int     `json:"total_documents"`
	Successful       int     `json:"successful"`
	Failed           int     `json:"failed"`
	TotalHeadings    int     `json:"total_headings"`
	AvgQualityScore  float64 `json:"avg_quality_score"`
	TotalTimeSeconds float64 `json:"total_time_seconds"`
}

func buildResultOutput(r Result) ResultOutput {
	out := ResultOutput{
		Filename: r.Filename,
	}
	if out.Filename == "" {
		out.Filename = r.Path
	}
	if r.Error != nil {
		out.Status = "failed"
		out.Error = r.Error.Error()
		out.ErrorType = r.ErrorType
		return out
	}
	out.Status = "success"
	out.OutlinePath = r.OutlinePath
	if r.Outline != nil {
		out.Headings = len(r.Outline.Headings)
		out.QualityScore = r.Outline.QualityScore
	}
	return out
}
