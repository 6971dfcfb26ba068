package outline

import (
	"strings"
	"unicode/utf8"

	"github.com/dtnitsch/pdf-outline-extractor/models"
)

// sentenceEndings are the terminal marks that disqualify long blocks. Short
// numbered or punctuated fragments survive the check.
const sentenceEndings = ".!?;:"

// FilterCandidates drops blocks that cannot plausibly be headings: empty
// text, text longer than the configured maximum, font size below the
// document average, or long text ending in a sentence-terminal mark.
// Surviving blocks keep their original document order.
func (d *Detector) FilterCandidates(doc *models.Document) []models.TextBlock {
	var candidates []models.TextBlock
	avgSize := doc.EffectiveAvgFontSize()

	for _, block := range doc.TextBlocks {
		text := strings.TrimSpace(block.Text)
		if text == "" {
			continue
		}
		if utf8.RuneCountInString(text) > d.config.MaxHeadingLength {
			continue
		}
		if block.Font.Size < avgSize {
			continue
		}
		if endsWithSentenceMark(text) && utf8.RuneCountInString(text) > 20 {
			continue
		}
		candidates = append(candidates, block)
	}
	return candidates
}

func endsWithSentenceMark(text string) bool {
	last, _ := utf8.DecodeLastRuneInString(text)
	return strings.ContainsRune(sentenceEndings, last)
}
