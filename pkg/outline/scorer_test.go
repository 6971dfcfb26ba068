package outline

import (
	"math"
	"testing"

	"github.com/dtnitsch/pdf-outline-extractor/models"
)

func TestScoreCandidates_WorkedExample(t *testing.T) {
	// Size ratio 2.0, bold different family, horizontally centered,
	// "1." numbering, "introduction" keyword: weighted composite 0.98,
	// keyword bonus clamps to 1.0.
	blk := models.TextBlock{
		Text:  "1. Introduction",
		Page:  1,
		X:     206,
		Y:     80,
		Width: 200,
		Font:  models.FontInfo{Family: "Helvetica-Bold", Size: 24},
	}
	doc := testDocument(blk)

	scored := NewDetector().ScoreCandidates([]models.TextBlock{blk}, doc)
	if len(scored) != 1 {
		t.Fatalf("ScoreCandidates() retained %d candidates, want 1", len(scored))
	}
	if scored[0].Score != 1.0 {
		t.Errorf("composite score = %v, want 1.0", scored[0].Score)
	}
}

func TestFontSizeScore_Bands(t *testing.T) {
	tests := []struct {
		size float64
		want float64
	}{
		{24, 1.0},   // ratio 2.0
		{19.3, 1.0}, // ratio just above 1.6
		{18, 0.8},   // ratio 1.5
		{16, 0.6},   // ratio 1.33
		{13, 0.4},   // ratio 1.08
		{12, 0.1},   // ratio exactly 1.0
		{6, 0.1},
	}

	d := NewDetector()
	doc := testDocument()
	for _, tt := range tests {
		got := d.fontSizeScore(block("x", tt.size), doc)
		if got != tt.want {
			t.Errorf("fontSizeScore(size=%v) = %v, want %v", tt.size, got, tt.want)
		}
	}
}

func TestFontStyleScore(t *testing.T) {
	tests := []struct {
		name string
		font models.FontInfo
		want float64
	}{
		{
			name: "bold name and different family",
			font: models.FontInfo{Family: "Arial-Bold", Size: 14},
			want: 1.0,
		},
		{
			name: "primary family, regular weight",
			font: models.FontInfo{Family: "Times-Roman", Size: 14},
			want: 0,
		},
		{
			name: "different family only",
			font: models.FontInfo{Family: "Georgia", Size: 14},
			want: 0.3,
		},
		{
			name: "bold flag set, family name gives no hint",
			font: models.FontInfo{Family: "F1", Size: 14, Flags: models.FontFlagBold},
			want: 1.0,
		},
		{
			name: "flags populated without bold bit overrides bold-looking name",
			font: models.FontInfo{Family: "Heavy-Display", Size: 14, Flags: models.FontFlagSerifed},
			want: 0.3,
		},
	}

	d := NewDetector()
	doc := testDocument()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blk := models.TextBlock{Text: "x", Page: 1, Font: tt.font}
			got := d.fontStyleScore(blk, doc)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("fontStyleScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPositionScore(t *testing.T) {
	tests := []struct {
		name string
		x, w float64
		want float64
	}{
		{"centered", 206, 200, 1.0},
		{"left margin", 20, 100, 0.5},
		{"right side", 450, 100, 0},
	}

	d := NewDetector()
	doc := testDocument()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blk := models.TextBlock{Text: "x", Page: 1, X: tt.x, Width: tt.w}
			got := d.positionScore(blk, doc)
			if got != tt.want {
				t.Errorf("positionScore(x=%v,w=%v) = %v, want %v", tt.x, tt.w, got, tt.want)
			}
		})
	}
}

func TestPositionScore_PageWithoutDimensions(t *testing.T) {
	d := NewDetector()
	doc := testDocument()

	for _, page := range []int{0, len(doc.PageDimensions) + 1} {
		blk := models.TextBlock{Text: "x", Page: page, X: 206, Width: 200}
		if got := d.positionScore(blk, doc); got != 0 {
			t.Errorf("positionScore(page=%d) = %v, want 0", page, got)
		}
	}
}

func TestNumberingScore(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{"1.2 Methods", 0.8},
		{"3. Results", 0.8},
		{"A. First Appendix", 0.7},
		{"IV. Analysis", 0.7},
		{"iv. analysis", 0.7},
		{"Chapter 7", 0.9},
		{"section 12 overview", 0.9},
		{"Plain Heading", 0},
	}

	d := NewDetector()
	for _, tt := range tests {
		blk := models.TextBlock{Text: tt.text}
		if got := d.numberingScore(blk); got != tt.want {
			t.Errorf("numberingScore(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestScoreCandidates_AlwaysInRange(t *testing.T) {
	// Extreme inputs must never push the composite outside [0,1].
	blocks := []models.TextBlock{
		{Text: "Chapter 1 Introduction Summary References", Page: 1, X: 206, Width: 200,
			Font: models.FontInfo{Family: "Ultra-Black-Heavy-Bold", Size: 500}},
		{Text: "x", Page: 1, X: 500, Width: 10,
			Font: models.FontInfo{Family: "Times-Roman", Size: 12}},
	}
	doc := testDocument(blocks...)

	d := NewDetectorWithConfig(Config{MinConfidence: 0, Weights: DefaultConfig().Weights,
		KeywordBonus: 0.1, Keywords: DefaultKeywords(), MaxHeadingLength: 150})
	for _, c := range d.ScoreCandidates(blocks, doc) {
		if c.Score < 0 || c.Score > 1 {
			t.Errorf("composite score %v for %q outside [0,1]", c.Score, c.Block.Text)
		}
	}
}

func TestScoreCandidates_ThresholdAndOrder(t *testing.T) {
	high := block("Chapter 1", 24)
	mid := block("Background", 16)
	low := block("plain text", 12)
	doc := testDocument(high, mid, low)

	scored := NewDetector().ScoreCandidates([]models.TextBlock{high, mid, low}, doc)
	if len(scored) < 2 {
		t.Fatalf("ScoreCandidates() retained %d, want at least 2", len(scored))
	}
	for i := 1; i < len(scored); i++ {
		if scored[i].Score > scored[i-1].Score {
			t.Errorf("scores not descending: %v then %v", scored[i-1].Score, scored[i].Score)
		}
	}
	for _, c := range scored {
		if c.Score < 0.4 {
			t.Errorf("candidate %q below threshold retained (score %v)", c.Block.Text, c.Score)
		}
	}
}

func TestScoreCandidates_CustomKeywordTable(t *testing.T) {
	blk := block("Zusammenfassung", 13)
	doc := testDocument(blk)

	cfg := DefaultConfig()
	cfg.MinConfidence = 0
	base := NewDetectorWithConfig(cfg).ScoreCandidates([]models.TextBlock{blk}, doc)

	cfg.Keywords = []string{"zusammenfassung"}
	boosted := NewDetectorWithConfig(cfg).ScoreCandidates([]models.TextBlock{blk}, doc)

	if len(base) != 1 || len(boosted) != 1 {
		t.Fatalf("expected one candidate from each run")
	}
	diff := boosted[0].Score - base[0].Score
	if math.Abs(diff-0.1) > 1e-9 {
		t.Errorf("keyword bonus with substituted table = %v, want 0.1", diff)
	}
}
