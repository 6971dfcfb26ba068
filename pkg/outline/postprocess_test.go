package outline

import (
	"testing"

	"github.com/dtnitsch/pdf-outline-extractor/models"
)

func heading(text string, level, page int, y float64) models.Heading {
	return models.Heading{Text: text, Level: level, Page: page, Y: y, Confidence: 0.8}
}

func TestPostProcess_ReadingOrder(t *testing.T) {
	got := NewDetector().PostProcess([]models.Heading{
		heading("C", 2, 3, 100),
		heading("A", 1, 1, 700),
		heading("B", 2, 1, 720),
		heading("D", 1, 2, 50),
	})

	want := []string{"A", "B", "D", "C"}
	if len(got) != len(want) {
		t.Fatalf("PostProcess() kept %d headings, want %d", len(got), len(want))
	}
	for i, h := range got {
		if h.Text != want[i] {
			t.Errorf("heading[%d] = %q, want %q", i, h.Text, want[i])
		}
	}
	for i := 1; i < len(got); i++ {
		prev, cur := got[i-1], got[i]
		if cur.Page < prev.Page || (cur.Page == prev.Page && cur.Y < prev.Y) {
			t.Errorf("output not in (page, y) order at index %d", i)
		}
	}
}

func TestPostProcess_DeduplicatesNormalizedText(t *testing.T) {
	got := NewDetector().PostProcess([]models.Heading{
		heading("References", 2, 9, 100),
		heading("References", 1, 3, 200),
		heading("  references  ", 3, 5, 300),
		heading("Introduction", 1, 1, 100),
	})

	if len(got) != 2 {
		t.Fatalf("PostProcess() kept %d headings, want 2", len(got))
	}
	if got[0].Text != "Introduction" {
		t.Errorf("first heading = %q, want Introduction", got[0].Text)
	}
	// First occurrence in reading order wins: the page-3 References.
	if got[1].Page != 3 {
		t.Errorf("kept References from page %d, want page 3", got[1].Page)
	}

	seen := make(map[string]bool)
	for _, h := range got {
		key := h.NormalizedText()
		if seen[key] {
			t.Errorf("duplicate normalized text %q in output", key)
		}
		seen[key] = true
	}
}

func TestPostProcess_Empty(t *testing.T) {
	if got := NewDetector().PostProcess(nil); len(got) != 0 {
		t.Errorf("PostProcess(nil) = %d headings, want 0", len(got))
	}
}

func TestDetect_EmptyDocument(t *testing.T) {
	doc := &models.Document{
		Filename:       "empty.pdf",
		PageCount:      0,
		AvgFontSize:    0,
		PageDimensions: nil,
	}
	if got := NewDetector().Detect(doc); len(got) != 0 {
		t.Errorf("Detect() on empty document = %d headings, want 0", len(got))
	}
}

func TestDetect_EndToEnd(t *testing.T) {
	doc := testDocument(
		block("Body text that is not a heading at all", 12),
		models.TextBlock{Text: "1. Introduction", Page: 1, X: 206, Y: 60, Width: 200,
			Font: models.FontInfo{Family: "Helvetica-Bold", Size: 24}},
		models.TextBlock{Text: "1.1 Background", Page: 1, X: 50, Y: 140, Width: 180,
			Font: models.FontInfo{Family: "Helvetica-Bold", Size: 18}},
	)

	got := NewDetector().Detect(doc)
	if len(got) != 2 {
		t.Fatalf("Detect() = %d headings, want 2", len(got))
	}
	if got[0].Text != "1. Introduction" || got[0].Level != 1 {
		t.Errorf("first heading = %q level %d, want 1. Introduction level 1", got[0].Text, got[0].Level)
	}
	if got[1].Text != "1.1 Background" || got[1].Level != 2 {
		t.Errorf("second heading = %q level %d, want 1.1 Background level 2", got[1].Text, got[1].Level)
	}
}
