// Package langdetect identifies the dominant language of a document's text
// blocks. The result tunes the extraction depth recorded with a run and is
// stored as document metadata; it never changes the scoring heuristics.
package langdetect

import (
	"strings"

	"github.com/dtnitsch/pdf-outline-extractor/models"
	"github.com/pemistahl/lingua-go"
)

// Extraction depths derived from the detected language.
const (
	DepthFull    = "full"    // Latin-script languages the keyword tables cover well
	DepthShallow = "shallow" // everything else: size/position signals only carry
)

// sampleBlockLimit caps how many blocks feed the detector; the opening of a
// document is enough to identify its language.
const sampleBlockLimit = 200

// Detector wraps a lingua language detector. Building one loads language
// models, so construct it once and share it across workers; detection is
// safe for concurrent use.
type Detector struct {
	detector lingua.LanguageDetector
}

// New creates a detector over the languages the pipeline distinguishes.
func New() *Detector {
	languages := []lingua.Language{
		lingua.English,
		lingua.French,
		lingua.German,
		lingua.Spanish,
		lingua.Italian,
		lingua.Portuguese,
		lingua.Dutch,
		lingua.Russian,
		lingua.Arabic,
		lingua.Chinese,
		lingua.Japanese,
		lingua.Korean,
		lingua.Hindi,
	}
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			Build(),
	}
}

// Detect returns the ISO 639-1 code and confidence for the given text, or
// ok=false when the text carries no usable signal.
func (d *Detector) Detect(text string) (code string, confidence float64, ok bool) {
	if strings.TrimSpace(text) == "" {
		return "", 0, false
	}

	lang, exists := d.detector.DetectLanguageOf(text)
	if !exists {
		return "", 0, false
	}

	conf := d.detector.ComputeLanguageConfidence(text, lang)
	return strings.ToLower(lang.IsoCode639_1().String()), conf, true
}

// DetectDocument samples the document's text blocks and records the result
// on the document. Returns the extraction depth the run should use.
func (d *Detector) DetectDocument(doc *models.Document) string {
	var sb strings.Builder
	for i, b := range doc.TextBlocks {
		if i >= sampleBlockLimit {
			break
		}
		sb.WriteString(b.Text)
		sb.WriteString("\n")
	}

	code, conf, ok := d.Detect(sb.String())
	if !ok {
		return DepthFull
	}

	doc.Language = code
	doc.LanguageConfidence = conf
	return DepthForLanguage(code)
}

// latinScript lists the detected languages written in Latin script; the
// default keyword and numbering tables are tuned for these.
var latinScript = map[string]struct{}{
	"en": {}, "fr": {}, "de": {}, "es": {}, "it": {}, "pt": {}, "nl": {},
}

// DepthForLanguage maps an ISO 639-1 code to an extraction depth.
func DepthForLanguage(code string) string {
	if _, ok := latinScript[code]; ok {
		return DepthFull
	}
	return DepthShallow
}
