package validate

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/dtnitsch/pdf-outline-extractor/models"
	"github.com/dtnitsch/pdf-outline-extractor/pkg/storage"
	"github.com/urfave/cli/v2"
)

func ValidateAction(c *cli.Context) error {
	files := c.Args().Slice()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "Error: No result files provided")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, `  outliner validate outlines/report.result.json`)
		fmt.Fprintln(os.Stderr, `  outliner validate --json outlines/*.result.json`)
		os.Exit(1)
	}

	jsonOutput := c.Bool("json")
	quiet := c.Bool("quiet")
	store := &storage.Storage{}

	var reports []Report
	anyInvalid := false

	for _, file := range files {
		result, err := loadResult(store, file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			anyInvalid = true
			continue
		}

		report := BuildReport(file, result)
		reports = append(reports, report)
		if !report.Valid {
			anyInvalid = true
		}

		switch {
		case jsonOutput:
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(report); err != nil {
				return fmt.Errorf("failed to encode report: %w", err)
			}
		case quiet:
			printQuietReport(report)
		default:
			printReport(report)
		}
	}

	if len(reports) > 1 && !jsonOutput {
		printSummary(reports)
	}

	if anyInvalid {
		os.Exit(1)
	}
	return nil
}

func loadResult(store *storage.Storage, path string) (*models.ExtractionResult, error) {
	if !store.HasFile(path) {
		return nil, fmt.Errorf("file not found: %s", path)
	}
	data, err := store.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var result models.ExtractionResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &result, nil
}

func printReport(r Report) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("VALIDATION REPORT: %s\n", r.File)
	fmt.Println(strings.Repeat("=", 60))

	status := "VALID"
	if !r.Valid {
		status = "INVALID"
	}
	fmt.Printf("Status:        %s\n", status)
	fmt.Printf("Quality Score: %.1f%%\n", r.QualityScore*100)

	if len(r.Errors) > 0 {
		fmt.Printf("\nErrors (%d):\n", len(r.Errors))
		for i, e := range r.Errors {
			fmt.Printf("  %d. %s\n", i+1, e)
		}
	}
	if len(r.Warnings) > 0 {
		fmt.Printf("\nWarnings (%d):\n", len(r.Warnings))
		for i, w := range r.Warnings {
			fmt.Printf("  %d. %s\n", i+1, w)
		}
	}
	if len(r.Suggestions) > 0 {
		fmt.Printf("\nSuggestions (%d):\n", len(r.Suggestions))
		for i, s := range r.Suggestions {
			fmt.Printf("  %d. %s\n", i+1, s)
		}
	}

	stats := r.Statistics
	fmt.Println("\nStatistics:")
	fmt.Printf("  Outline Length:     %d\n", stats.OutlineLength)
	fmt.Printf("  Level Distribution: H1=%d, H2=%d, H3=%d\n", stats.H1Count, stats.H2Count, stats.H3Count)
	if stats.OutlineLength > 0 {
		fmt.Printf("  Confidence:         avg=%.3f, range=%.3f-%.3f\n",
			stats.AvgConfidence, stats.MinConfidence, stats.MaxConfidence)
	}
	if stats.TotalPages > 0 {
		coverage := float64(stats.PagesWithHeadings) / float64(stats.TotalPages)
		fmt.Printf("  Page Coverage:      %d/%d (%.1f%%)\n",
			stats.PagesWithHeadings, stats.TotalPages, coverage*100)
	}
}

func printQuietReport(r Report) {
	if len(r.Errors) == 0 && len(r.Warnings) == 0 {
		return
	}
	fmt.Printf("\n%s:\n", r.File)
	for _, e := range r.Errors {
		fmt.Printf("  ERROR: %s\n", e)
	}
	for _, w := range r.Warnings {
		fmt.Printf("  WARNING: %s\n", w)
	}
}

func printSummary(reports []Report) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("SUMMARY")
	fmt.Println(strings.Repeat("=", 60))

	validCount := 0
	var qualitySum float64
	for _, r := range reports {
		if r.Valid {
			validCount++
		}
		qualitySum += r.QualityScore
	}

	fmt.Printf("Files Processed:       %d\n", len(reports))
	fmt.Printf("Valid Files:           %d/%d\n", validCount, len(reports))
	fmt.Printf("Average Quality Score: %.1f%%\n", qualitySum/float64(len(reports))*100)
}
