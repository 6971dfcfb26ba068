package manifest

// SummaryManifest represents the structure of the batch summary JSON file.
// It provides a lightweight overview of all processed documents, their
// status, and extraction quality without requiring readers to open the
// full per-document result files.
type SummaryManifest struct {
	GeneratedAt    string            `json:"generated_at"`
	TotalDocuments int               `json:"total_documents"`
	Successful     int               `json:"successful"`
	Failed         int               `json:"failed"`
	Results        []DocumentSummary `json:"results"`
}

// DocumentSummary represents summary information for a single document.
// Includes status, output paths, heading counts, and the quality score.
type DocumentSummary struct {
	Filename       string  `json:"filename"`
	OutlinePath    string  `json:"outline_path,omitempty"`
	DiagnosticPath string  `json:"diagnostic_path,omitempty"`
	Status         string  `json:"status"` // "success" or "error"
	ErrorType      string  `json:"error_type,omitempty"`
	ErrorMessage   string  `json:"error_message,omitempty"`
	ContentHash    string  `json:"content_hash,omitempty"`
	SizeBytes      int64   `json:"size_bytes,omitempty"`
	Pages          int     `json:"pages,omitempty"`
	HeadingCount   int     `json:"heading_count,omitempty"`
	QualityScore   float64 `json:"quality_score,omitempty"`
	ProcessingMS   int64   `json:"processing_ms,omitempty"`
}
