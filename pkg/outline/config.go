// Package outline turns a font-annotated, positioned document model into a
// structured outline of up to three heading levels, each with a confidence
// score, plus a document-level quality assessment.
package outline

import "regexp"

// Weights are the fixed multipliers for the four scoring heuristics.
// They sum to 1.0.
type Weights struct {
	Size      float64
	Style     float64
	Position  float64
	Numbering float64
}

// NumberingPattern pairs a compiled prefix pattern with the score it awards.
// Patterns are tried in order; the first match wins.
type NumberingPattern struct {
	Pattern *regexp.Regexp
	Score   float64
}

// Config configures the heading detector. The keyword set and numbering
// patterns are explicit here rather than package globals so tests and
// unusual document classes can substitute their own tables.
type Config struct {
	// MaxHeadingLength is the maximum trimmed character length for a
	// candidate block.
	MaxHeadingLength int

	// MinConfidence is the minimum composite score for a candidate to be
	// retained.
	MinConfidence float64

	Weights Weights

	// KeywordBonus is the flat bonus added to the weighted composite when
	// the text contains any heading keyword.
	KeywordBonus float64

	// Keywords is the heading keyword set, matched as lower-case substrings.
	Keywords []string

	// NumberingPatterns score leading numbering prefixes, first match wins.
	NumberingPatterns []NumberingPattern
}

// DefaultKeywords is the stock heading keyword set.
func DefaultKeywords() []string {
	return []string{
		"introduction", "conclusion", "abstract", "summary", "background",
		"methodology", "results", "discussion", "references", "appendix",
		"chapter", "section",
	}
}

// DefaultNumberingPatterns returns the stock numbering patterns in match
// order: decimal numbering, single-letter prefixes, roman numerals, and
// chapter/section labels.
func DefaultNumberingPatterns() []NumberingPattern {
	return []NumberingPattern{
		{regexp.MustCompile(`^\d+\.\d*`), 0.8},
		{regexp.MustCompile(`^[A-Z]\.`), 0.7},
		{regexp.MustCompile(`^(?i)[IVXLC]+\.`), 0.7},
		{regexp.MustCompile(`^(?i)(Chapter|Section)\s+\d+`), 0.9},
	}
}

// DefaultConfig returns the stock detector configuration.
func DefaultConfig() Config {
	return Config{
		MaxHeadingLength: 150,
		MinConfidence:    0.4,
		Weights: Weights{
			Size:      0.5,
			Style:     0.3,
			Position:  0.1,
			Numbering: 0.1,
		},
		KeywordBonus:      0.1,
		Keywords:          DefaultKeywords(),
		NumberingPatterns: DefaultNumberingPatterns(),
	}
}

// Detector runs the candidate filter, multi-factor scorer, level classifier,
// and post-processor over a document. Detectors are read-only after
// construction and safe for concurrent use across documents.
type Detector struct {
	config Config
}

// NewDetector creates a detector with the default configuration.
func NewDetector() *Detector {
	return &Detector{config: DefaultConfig()}
}

// NewDetectorWithConfig creates a detector with a custom configuration.
func NewDetectorWithConfig(config Config) *Detector {
	if config.MaxHeadingLength <= 0 {
		config.MaxHeadingLength = 150
	}
	if len(config.NumberingPatterns) == 0 {
		config.NumberingPatterns = DefaultNumberingPatterns()
	}
	return &Detector{config: config}
}

// Config returns the detector's configuration.
func (d *Detector) Config() Config {
	return d.config
}
