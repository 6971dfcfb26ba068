package outline

import (
	"testing"

	"github.com/dtnitsch/pdf-outline-extractor/models"
)

func candidate(text string, size float64, score float64) Candidate {
	return Candidate{
		Block: models.TextBlock{
			Text: text,
			Page: 1,
			Font: models.FontInfo{Family: "Times-Roman", Size: size},
		},
		Score: score,
	}
}

func TestClassifyLevels_AssignsBySizeCluster(t *testing.T) {
	headings := NewDetector().ClassifyLevels([]Candidate{
		candidate("Sub Topic", 14, 0.5),
		candidate("Title", 24, 0.9),
		candidate("Section", 18, 0.7),
		candidate("Another Section", 18, 0.6),
	})

	wantLevels := map[string]int{
		"Title":           1,
		"Section":         2,
		"Another Section": 2,
		"Sub Topic":       3,
	}
	if len(headings) != 4 {
		t.Fatalf("ClassifyLevels() produced %d headings, want 4", len(headings))
	}
	for _, h := range headings {
		if h.Level != wantLevels[h.Text] {
			t.Errorf("heading %q level = %d, want %d", h.Text, h.Level, wantLevels[h.Text])
		}
	}
}

func TestClassifyLevels_DiscardsBeyondTopThreeClusters(t *testing.T) {
	headings := NewDetector().ClassifyLevels([]Candidate{
		candidate("H1", 24, 0.9),
		candidate("H2", 18, 0.8),
		candidate("H3", 14, 0.7),
		candidate("too small", 13, 0.6),
		candidate("smaller still", 12.5, 0.5),
	})

	if len(headings) != 3 {
		t.Fatalf("ClassifyLevels() kept %d headings, want 3", len(headings))
	}
	levels := make(map[int]bool)
	sizes := make(map[float64]bool)
	for _, h := range headings {
		levels[h.Level] = true
		sizes[roundSize(h.Font.Size)] = true
		if h.Text == "too small" || h.Text == "smaller still" {
			t.Errorf("candidate %q outside top three clusters was not discarded", h.Text)
		}
	}
	if len(levels) > 3 || len(sizes) > 3 {
		t.Errorf("got %d levels over %d size clusters, want at most 3 each", len(levels), len(sizes))
	}
}

func TestClassifyLevels_RoundedSizesCluster(t *testing.T) {
	// 18.04 and 18.01 round to the same cluster; 17.95 rounds below it.
	headings := NewDetector().ClassifyLevels([]Candidate{
		candidate("A", 18.04, 0.9),
		candidate("B", 18.01, 0.8),
		candidate("C", 17.95, 0.7),
	})

	byText := make(map[string]int, len(headings))
	for _, h := range headings {
		byText[h.Text] = h.Level
	}
	if byText["A"] != 1 || byText["B"] != 1 {
		t.Errorf("near-identical sizes split clusters: A=%d B=%d, want both 1", byText["A"], byText["B"])
	}
	if byText["C"] != 2 {
		t.Errorf("heading C level = %d, want 2", byText["C"])
	}
}

func TestRoundSize_DecimalTies(t *testing.T) {
	// Sizes written as x.x5 sit just below the binary tie, so they round
	// down; just above it, they round up.
	tests := []struct{ in, want float64 }{
		{17.95, 17.9},
		{18.05, 18.1},
		{18.04, 18.0},
		{12.0, 12.0},
	}
	for _, tt := range tests {
		if got := roundSize(tt.in); got != tt.want {
			t.Errorf("roundSize(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestClassifyLevels_ConfidenceCarriedThrough(t *testing.T) {
	headings := NewDetector().ClassifyLevels([]Candidate{candidate("Title", 24, 0.83)})
	if len(headings) != 1 {
		t.Fatalf("ClassifyLevels() produced %d headings, want 1", len(headings))
	}
	if headings[0].Confidence != 0.83 {
		t.Errorf("confidence = %v, want the composite score 0.83 unchanged", headings[0].Confidence)
	}
}

func TestClassifyLevels_FewerClustersFewerLevels(t *testing.T) {
	headings := NewDetector().ClassifyLevels([]Candidate{
		candidate("One", 20, 0.8),
		candidate("Two", 16, 0.7),
	})
	for _, h := range headings {
		if h.Level > 2 {
			t.Errorf("heading %q level = %d with only two clusters", h.Text, h.Level)
		}
	}

	if got := NewDetector().ClassifyLevels(nil); len(got) != 0 {
		t.Errorf("ClassifyLevels(nil) = %d headings, want 0", len(got))
	}
}
