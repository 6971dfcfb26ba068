package docsource

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/pdf-outline-extractor/models"
	readability "github.com/go-shiori/go-readability"
)

// Synthetic page and font metrics for HTML input. The pipeline reasons in
// page coordinates, so HTML content is laid out onto letter-sized pages
// with tag-ranked font sizes.
const (
	htmlPageWidth  = 612.0
	htmlPageHeight = 792.0
	htmlMarginX    = 72.0
	htmlLineStep   = 24.0
)

var htmlTagFonts = map[string]models.FontInfo{
	"h1": {Family: "Helvetica-Bold", Size: 24, Flags: models.FontFlagBold},
	"h2": {Family: "Helvetica-Bold", Size: 18, Flags: models.FontFlagBold},
	"h3": {Family: "Helvetica-Bold", Size: 14, Flags: models.FontFlagBold},
	"h4": {Family: "Helvetica", Size: 13},
	"p":  {Family: "Times-Roman", Size: 12},
	"li": {Family: "Times-Roman", Size: 12},
}

// LoadHTML reads an HTML file from disk and converts it to a document.
func LoadHTML(path string) (*models.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read html document %s: %w", path, err)
	}
	doc, err := ConvertHTML(filepath.Base(path), string(data))
	if err != nil {
		return nil, err
	}
	doc.Filename = filepath.Base(path)
	return doc, nil
}

// ConvertHTML maps a readability-distilled HTML page onto the document
// model: headings and paragraphs become text blocks with synthetic font
// metrics so the same pipeline can outline HTML exports. rawURL is used by
// the readability parser to resolve relative references; a file name works.
func ConvertHTML(rawURL, html string) (*models.Document, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid source URL: %w", err)
	}

	content := html
	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(html), parsedURL)
	if err == nil && strings.TrimSpace(article.Content) != "" {
		content = article.Content
	}

	sel, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc := blocksFromSelection(sel)
	doc.Filename = rawURL

	FinalizeStats(doc)
	if err := Validate(doc); err != nil {
		return nil, fmt.Errorf("html document %s: %w", rawURL, err)
	}
	return doc, nil
}

// blocksFromSelection walks the content-bearing elements in document order
// and lays them onto synthetic pages.
func blocksFromSelection(sel *goquery.Document) *models.Document {
	doc := &models.Document{}

	page := 1
	y := htmlMarginX
	sel.Find("h1,h2,h3,h4,p,li").Each(func(_ int, s *goquery.Selection) {
		text := normalizeText(s.Text())
		if text == "" {
			return
		}
		tag := goquery.NodeName(s)
		font, ok := htmlTagFonts[tag]
		if !ok {
			return
		}

		if y+htmlLineStep > htmlPageHeight-htmlMarginX {
			page++
			y = htmlMarginX
		}

		doc.TextBlocks = append(doc.TextBlocks, models.TextBlock{
			Text:   text,
			Page:   page,
			X:      htmlMarginX,
			Y:      y,
			Width:  htmlPageWidth - 2*htmlMarginX,
			Height: font.Size * 1.2,
			Font:   font,
		})
		y += htmlLineStep
	})

	doc.PageDimensions = make([]models.PageDimensions, page)
	for i := range doc.PageDimensions {
		doc.PageDimensions[i] = models.PageDimensions{Width: htmlPageWidth, Height: htmlPageHeight}
	}
	doc.PageCount = page
	return doc
}

// normalizeText collapses runs of whitespace, including newlines inside an
// element, into single spaces.
func normalizeText(input string) string {
	return strings.Join(strings.Fields(input), " ")
}
