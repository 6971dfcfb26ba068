package outline

import (
	"sort"
	"strconv"

	"github.com/dtnitsch/pdf-outline-extractor/models"
)

// maxLevels is the number of heading levels emitted. Size clusters beyond
// the top three are discarded entirely, not demoted.
const maxLevels = 3

// ClassifyLevels clusters scored candidates by font size rounded to one
// decimal place and assigns H1 to the largest cluster, H2 and H3 to the
// next two. Each retained candidate becomes a heading carrying its
// composite score as confidence; scores are not recomputed here.
func (d *Detector) ClassifyLevels(candidates []Candidate) []models.Heading {
	if len(candidates) == 0 {
		return nil
	}

	// Explicit ordered mapping from rounded size to members, built once and
	// iterated in descending key order.
	groups := make(map[float64][]Candidate)
	for _, c := range candidates {
		key := roundSize(c.Block.Font.Size)
		groups[key] = append(groups[key], c)
	}

	sizes := make([]float64, 0, len(groups))
	for size := range groups {
		sizes = append(sizes, size)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sizes)))

	if len(sizes) > maxLevels {
		sizes = sizes[:maxLevels]
	}

	var headings []models.Heading
	for i, size := range sizes {
		level := i + 1
		for _, c := range groups[size] {
			headings = append(headings, models.Heading{
				Text:       c.Block.Text,
				Level:      level,
				Page:       c.Block.Page,
				Confidence: c.Score,
				Font:       c.Block.Font,
				X:          c.Block.X,
				Y:          c.Block.Y,
			})
		}
	}
	return headings
}

// roundSize rounds a font size to one decimal place so near-identical sizes
// cluster together. Rounding goes through the decimal formatter so the key
// reflects the size's decimal value: 17.95 (stored just below the tie)
// lands in the 17.9 cluster, not 18.0 as multiply-round-divide would give.
func roundSize(size float64) float64 {
	key, _ := strconv.ParseFloat(strconv.FormatFloat(size, 'f', 1, 64), 64)
	return key
}
