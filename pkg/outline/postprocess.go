package outline

import (
	"sort"

	"github.com/dtnitsch/pdf-outline-extractor/models"
)

// PostProcess orders headings by reading position (page, then vertical
// position) and deduplicates by normalized text, keeping the first
// occurrence. Later duplicates are dropped regardless of level or page,
// which also removes repeated running headers.
func (d *Detector) PostProcess(headings []models.Heading) []models.Heading {
	if len(headings) == 0 {
		return nil
	}

	sorted := make([]models.Heading, len(headings))
	copy(sorted, headings)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Page != sorted[j].Page {
			return sorted[i].Page < sorted[j].Page
		}
		return sorted[i].Y < sorted[j].Y
	})

	seen := make(map[string]struct{}, len(sorted))
	unique := make([]models.Heading, 0, len(sorted))
	for _, h := range sorted {
		key := h.NormalizedText()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, h)
	}
	return unique
}

// Detect runs the full pipeline over a document: filter, score, classify,
// post-process. The result is the deduplicated heading sequence in reading
// order.
func (d *Detector) Detect(doc *models.Document) []models.Heading {
	candidates := d.FilterCandidates(doc)
	scored := d.ScoreCandidates(candidates, doc)
	headings := d.ClassifyLevels(scored)
	return d.PostProcess(headings)
}
