// Package docsource loads pre-extracted document models and enforces the
// input contract the outline pipeline depends on. The heavy lifting of
// pulling text, fonts, and positions out of a PDF byte stream happens
// upstream; this package consumes the finished data model.
package docsource

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/dtnitsch/pdf-outline-extractor/models"
)

// Load reads a document JSON file, finalizes its statistics, and validates
// the input contract.
func Load(path string) (*models.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	defer f.Close()

	return Parse(f, filepath.Base(path))
}

// Parse decodes a document model from r. The filename is recorded on the
// document when the payload does not carry one.
func Parse(r io.Reader, filename string) (*models.Document, error) {
	var doc models.Document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode document %s: %w", filename, err)
	}
	if doc.Filename == "" {
		doc.Filename = filename
	}

	FinalizeStats(&doc)
	if err := Validate(&doc); err != nil {
		return nil, fmt.Errorf("document %s: %w", filename, err)
	}
	return &doc, nil
}

// FinalizeStats fills in the document-wide statistics an upstream extractor
// may have left unset: page count from the dimensions array, average,
// median, and standard deviation of positive font sizes (average falling
// back to 12.0 when no positive size exists), and the most frequent font
// family as the primary font.
func FinalizeStats(doc *models.Document) {
	if doc.PageCount == 0 {
		doc.PageCount = len(doc.PageDimensions)
	}

	var sizes []float64
	familyCounts := make(map[string]int)
	for _, b := range doc.TextBlocks {
		if b.Font.Size > 0 {
			sizes = append(sizes, b.Font.Size)
		}
		familyCounts[b.Font.Family]++
	}

	if doc.AvgFontSize == 0 {
		doc.AvgFontSize = mean(sizes)
		if doc.AvgFontSize == 0 {
			doc.AvgFontSize = 12.0
		}
	}
	if doc.MedianFontSize == 0 {
		doc.MedianFontSize = median(sizes)
	}
	if doc.FontSizeStd == 0 {
		doc.FontSizeStd = stddev(sizes)
	}

	if doc.PrimaryFont == "" {
		best := 0
		for family, count := range familyCounts {
			if count > best || (count == best && family < doc.PrimaryFont) {
				best = count
				doc.PrimaryFont = family
			}
		}
		if doc.PrimaryFont == "" {
			doc.PrimaryFont = "Unknown"
		}
	}
}

// Validate fails fast on input-contract defects: block pages outside the
// page-dimensions array, non-finite or negative font sizes, and non-positive
// page dimensions. These are upstream extractor bugs, not conditions the
// pipeline should paper over with degraded scores. An empty block list is a
// valid document.
func Validate(doc *models.Document) error {
	for i, dims := range doc.PageDimensions {
		if dims.Width <= 0 || dims.Height <= 0 {
			return fmt.Errorf("page %d has non-positive dimensions %gx%g", i+1, dims.Width, dims.Height)
		}
	}

	for i, b := range doc.TextBlocks {
		if b.Page < 1 || b.Page > len(doc.PageDimensions) {
			return fmt.Errorf("block %d references page %d outside 1..%d", i, b.Page, len(doc.PageDimensions))
		}
		if math.IsNaN(b.Font.Size) || math.IsInf(b.Font.Size, 0) || b.Font.Size < 0 {
			return fmt.Errorf("block %d has invalid font size %v", i, b.Font.Size)
		}
	}

	if math.IsNaN(doc.AvgFontSize) || math.IsInf(doc.AvgFontSize, 0) || doc.AvgFontSize < 0 {
		return fmt.Errorf("invalid average font size %v", doc.AvgFontSize)
	}
	return nil
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func median(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

func stddev(vals []float64) float64 {
	if len(vals) < 2 {
		return 0
	}
	m := mean(vals)
	sum := 0.0
	for _, v := range vals {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(vals)))
}
