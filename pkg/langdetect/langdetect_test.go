package langdetect

import (
	"testing"

	"github.com/dtnitsch/pdf-outline-extractor/models"
)

func TestDetect_English(t *testing.T) {
	d := New()
	code, conf, ok := d.Detect("The quick brown fox jumps over the lazy dog while the committee reviews the annual budget report.")
	if !ok {
		t.Fatal("Detect() ok = false for clear English text")
	}
	if code != "en" {
		t.Errorf("Detect() code = %q, want en", code)
	}
	if conf <= 0 || conf > 1 {
		t.Errorf("Detect() confidence = %v, want in (0,1]", conf)
	}
}

func TestDetect_EmptyText(t *testing.T) {
	if _, _, ok := New().Detect("   \n\t"); ok {
		t.Error("Detect() ok = true for whitespace-only text")
	}
}

func TestDetectDocument_RecordsLanguage(t *testing.T) {
	doc := &models.Document{
		TextBlocks: []models.TextBlock{
			{Text: "Introduction to the methodology used throughout this report."},
			{Text: "The results section summarizes the findings of the study."},
		},
	}

	depth := New().DetectDocument(doc)
	if doc.Language != "en" {
		t.Errorf("doc.Language = %q, want en", doc.Language)
	}
	if doc.LanguageConfidence <= 0 {
		t.Errorf("doc.LanguageConfidence = %v, want positive", doc.LanguageConfidence)
	}
	if depth != DepthFull {
		t.Errorf("depth = %q, want %q for English", depth, DepthFull)
	}
}

func TestDepthForLanguage(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"en", DepthFull},
		{"de", DepthFull},
		{"ru", DepthShallow},
		{"ja", DepthShallow},
		{"", DepthShallow},
	}
	for _, tt := range tests {
		if got := DepthForLanguage(tt.code); got != tt.want {
			t.Errorf("DepthForLanguage(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
