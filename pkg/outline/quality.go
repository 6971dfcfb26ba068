package outline

import (
	"fmt"
	"time"
)

// Violation kinds reported by the hierarchy validator.
const (
	ViolationLevelJump = "level_jump"
	ViolationOrphanH2  = "orphan_h2"
	ViolationOrphanH3  = "orphan_h3"
)

// Violation is one hierarchy defect in a heading sequence.
type Violation struct {
	Index   int    // 0-based position in the heading sequence
	Kind    string
	Message string
}

// HeadingRef is the minimal view of a heading the quality formula needs.
// Both the live pipeline and the validate command (working from persisted
// JSON) can produce it, so one implementation of the formula serves both.
type HeadingRef struct {
	Level      int
	Title      string
	Page       int
	Confidence float64
}

// QualityInput carries everything the quality formula depends on.
type QualityInput struct {
	Headings       []HeadingRef
	TotalPages     int
	ProcessingTime time.Duration
}

// ValidateHierarchy walks the heading sequence and records a violation for
// every level jump and every orphaned H2/H3. Violations are counted, not
// deduplicated; repeated orphans each count separately.
func ValidateHierarchy(headings []HeadingRef) []Violation {
	var violations []Violation

	prevLevel := 0
	h1Seen := false
	h2Seen := false

	for i, h := range headings {
		switch h.Level {
		case 1:
			h1Seen = true
		case 2:
			h2Seen = true
		}

		if h.Level > prevLevel+1 {
			violations = append(violations, Violation{
				Index: i,
				Kind:  ViolationLevelJump,
				Message: fmt.Sprintf("heading %d: level jump from %d to %d - %q",
					i+1, prevLevel, h.Level, truncate(h.Title, 50)),
			})
		}

		if h.Level == 2 && !h1Seen {
			violations = append(violations, Violation{
				Index:   i,
				Kind:    ViolationOrphanH2,
				Message: fmt.Sprintf("heading %d: H2 without preceding H1 - %q", i+1, truncate(h.Title, 50)),
			})
		} else if h.Level == 3 && !h2Seen {
			violations = append(violations, Violation{
				Index:   i,
				Kind:    ViolationOrphanH3,
				Message: fmt.Sprintf("heading %d: H3 without preceding H2 - %q", i+1, truncate(h.Title, 50)),
			})
		}

		prevLevel = h.Level
	}
	return violations
}

// AverageConfidence returns the arithmetic mean of heading confidences,
// 0 for an empty sequence.
func AverageConfidence(headings []HeadingRef) float64 {
	if len(headings) == 0 {
		return 0
	}
	sum := 0.0
	for _, h := range headings {
		sum += h.Confidence
	}
	return sum / float64(len(headings))
}

// QualityScore computes the composite document quality in [0,1]:
// confidence 30 points, hierarchy 25, page coverage 20, level distribution
// 15, processing performance 10, summed and divided by 100. An empty
// heading sequence scores 0. This is the single source of truth for the
// formula; the validate command re-derives quality through this same
// function to rule out drift.
func QualityScore(in QualityInput) float64 {
	if len(in.Headings) == 0 {
		return 0
	}

	score := AverageConfidence(in.Headings) * 30

	hierarchy := 25.0 - float64(len(ValidateHierarchy(in.Headings)))*5
	if hierarchy < 0 {
		hierarchy = 0
	}
	score += hierarchy

	if in.TotalPages > 0 {
		pages := make(map[int]struct{}, len(in.Headings))
		for _, h := range in.Headings {
			pages[h.Page] = struct{}{}
		}
		score += float64(len(pages)) / float64(in.TotalPages) * 20
	}

	var h1, h2 int
	for _, h := range in.Headings {
		switch h.Level {
		case 1:
			h1++
		case 2:
			h2++
		}
	}
	if h1 > 0 {
		score += 5
	}
	if h2 > 0 {
		score += 5
	}
	if h1 > 0 && float64(h2)/float64(h1) <= 5 {
		score += 5
	}

	switch {
	case in.ProcessingTime <= 10*time.Second:
		score += 10
	case in.ProcessingTime <= 20*time.Second:
		score += 5
	}

	return clamp01(score / 100)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
