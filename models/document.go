// Package models defines the data structures shared across the outline
// extraction pipeline: the input document model supplied by an upstream
// extractor, and the outline produced from it.
package models

import (
	"strings"
	"time"
)

// Font style flag bits, matching the convention used by the upstream
// PDF extractor. A zero Flags value means the extractor did not populate
// style flags for this font.
const (
	FontFlagSuperscript = 1 << 0
	FontFlagItalic      = 1 << 1
	FontFlagSerifed     = 1 << 2
	FontFlagMonospaced  = 1 << 3
	FontFlagBold        = 1 << 4
)

// FontInfo describes the font of a single text block. Immutable once
// extracted.
type FontInfo struct {
	Family string  `json:"family" yaml:"family"`
	Size   float64 `json:"size" yaml:"size"`
	Flags  int     `json:"flags" yaml:"flags"`
	Color  string  `json:"color" yaml:"color"` // hex, e.g. "#1a1a1a"
}

// Bold reports whether the font is bold. The flags bitmask is authoritative
// when the extractor populated it; otherwise we fall back to matching weight
// keywords in the family name.
func (f FontInfo) Bold() bool {
	if f.Flags != 0 {
		return f.Flags&FontFlagBold != 0
	}
	return containsWeightKeyword(f.Family)
}

// TextBlock is a positioned run of text with uniform font attributes, the
// atomic unit the pipeline reasons about. Pages are numbered from 1.
// Coordinates are in the document's native units with the origin at the
// top-left of the page.
type TextBlock struct {
	Text   string   `json:"text" yaml:"text"`
	Page   int      `json:"page" yaml:"page"`
	X      float64  `json:"x" yaml:"x"`
	Y      float64  `json:"y" yaml:"y"`
	Width  float64  `json:"width" yaml:"width"`
	Height float64  `json:"height" yaml:"height"`
	Font   FontInfo `json:"font_info" yaml:"font_info"`
}

// PageDimensions is the (width, height) of a single page in points.
type PageDimensions struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Document is a complete parsed document: the ordered text blocks in reading
// order plus the document-wide font statistics the scorer depends on. The
// pipeline treats it as read-only.
type Document struct {
	Filename    string    `json:"filename" yaml:"filename"`
	PageCount   int       `json:"page_count" yaml:"page_count"`
	ProcessedAt time.Time `json:"processed_at,omitempty" yaml:"processed_at,omitempty"`

	TextBlocks []TextBlock `json:"text_blocks" yaml:"text_blocks"`

	// Font statistics, computed over all blocks with a positive size.
	// AvgFontSize falls back to 12.0 when no such block exists.
	AvgFontSize    float64 `json:"avg_font_size" yaml:"avg_font_size"`
	MedianFontSize float64 `json:"median_font_size,omitempty" yaml:"median_font_size,omitempty"`
	FontSizeStd    float64 `json:"font_size_std,omitempty" yaml:"font_size_std,omitempty"`
	PrimaryFont    string  `json:"primary_font" yaml:"primary_font"`

	// PageDimensions is indexed by page number - 1.
	PageDimensions []PageDimensions `json:"page_dimensions" yaml:"page_dimensions"`

	// Language enrichment, filled in by the language detector when enabled.
	Language           string  `json:"language,omitempty" yaml:"language,omitempty"`
	LanguageConfidence float64 `json:"language_confidence,omitempty" yaml:"language_confidence,omitempty"`
}

// EffectiveAvgFontSize returns the document average font size, defaulting to
// 12.0 when the statistic is unset.
func (d *Document) EffectiveAvgFontSize() float64 {
	if d.AvgFontSize > 0 {
		return d.AvgFontSize
	}
	return 12.0
}

var weightKeywords = []string{"bold", "black", "heavy"}

func containsWeightKeyword(family string) bool {
	lower := strings.ToLower(family)
	for _, kw := range weightKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
