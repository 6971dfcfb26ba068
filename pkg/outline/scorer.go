package outline

import (
	"sort"
	"strings"

	"github.com/dtnitsch/pdf-outline-extractor/models"
)

// Candidate is a text block that survived the filter, paired with its
// composite confidence score.
type Candidate struct {
	Block models.TextBlock
	Score float64
}

// ScoreCandidates assigns each candidate a composite confidence in [0,1]
// from the weighted size, style, position, and numbering heuristics plus the
// flat keyword bonus. Candidates below the minimum confidence are dropped;
// the rest are returned sorted descending by score, ties keeping their
// filter-stage order.
func (d *Detector) ScoreCandidates(candidates []models.TextBlock, doc *models.Document) []Candidate {
	w := d.config.Weights
	var scored []Candidate

	for _, block := range candidates {
		score := d.fontSizeScore(block, doc)*w.Size +
			d.fontStyleScore(block, doc)*w.Style +
			d.positionScore(block, doc)*w.Position +
			d.numberingScore(block)*w.Numbering

		if d.hasHeadingKeyword(block.Text) {
			score += d.config.KeywordBonus
		}
		score = clamp01(score)

		if score >= d.config.MinConfidence {
			scored = append(scored, Candidate{Block: block, Score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// fontSizeScore banded by the ratio of block size to the document average.
func (d *Detector) fontSizeScore(block models.TextBlock, doc *models.Document) float64 {
	ratio := block.Font.Size / doc.EffectiveAvgFontSize()
	switch {
	case ratio > 1.6:
		return 1.0
	case ratio > 1.4:
		return 0.8
	case ratio > 1.2:
		return 0.6
	case ratio > 1.0:
		return 0.4
	default:
		return 0.1
	}
}

// fontStyleScore is additive: bold weight and deviation from the primary
// font family each contribute, clamped to 1.0.
func (d *Detector) fontStyleScore(block models.TextBlock, doc *models.Document) float64 {
	score := 0.0
	if block.Font.Bold() {
		score += 0.7
	}
	if block.Font.Family != doc.PrimaryFont {
		score += 0.3
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// positionScore rewards horizontally centered blocks, then blocks hugging
// the left margin. Blocks on pages without recorded dimensions score 0.
func (d *Detector) positionScore(block models.TextBlock, doc *models.Document) float64 {
	if block.Page < 1 || block.Page > len(doc.PageDimensions) {
		return 0
	}
	pageWidth := doc.PageDimensions[block.Page-1].Width
	centerDiff := (block.X + block.Width/2) - pageWidth/2
	if centerDiff < 0 {
		centerDiff = -centerDiff
	}
	if centerDiff < pageWidth*0.1 {
		return 1.0
	}
	if block.X < pageWidth*0.1 {
		return 0.5
	}
	return 0
}

func (d *Detector) numberingScore(block models.TextBlock) float64 {
	text := strings.TrimSpace(block.Text)
	for _, np := range d.config.NumberingPatterns {
		if np.Pattern.MatchString(text) {
			return np.Score
		}
	}
	return 0
}

func (d *Detector) hasHeadingKeyword(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range d.config.Keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
