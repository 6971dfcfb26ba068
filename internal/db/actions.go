package db

import (
	"fmt"
	"sort"
	"strings"

	dbpkg "github.com/dtnitsch/pdf-outline-extractor/pkg/db"
	"github.com/urfave/cli/v2"
)

func RunsAction(c *cli.Context) error {
	database, err := dbpkg.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	limit := c.Int("limit")
	runs, err := database.ListRuns(limit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs found")
		return nil
	}

	// Print table header
	fmt.Printf("%-6s %-20s %-30s %-8s %-9s %-8s %-8s %-10s\n",
		"ID", "Started", "Document", "Status", "Headings", "AvgConf", "Quality", "Time")
	fmt.Println(strings.Repeat("-", 110))

	// Print each run
	for _, r := range runs {
		fmt.Printf("%-6d %-20s %-30s %-8s %-9d %-8.3f %-8.3f %-10s\n",
			r.RunID,
			r.StartedAt.Format("2006-01-02 15:04:05"),
			truncateName(r.Filename, 30),
			r.Status,
			r.HeadingCount,
			r.AverageConfidence,
			r.QualityScore,
			r.ProcessingTime,
		)
	}

	fmt.Printf("\nTotal: %d runs\n", len(runs))
	fmt.Printf("\nTip: Use 'outliner db run <id>' to see the stored outline\n")

	return nil
}

// RunAction shows details for a specific run
func RunAction(c *cli.Context) error {
	database, err := dbpkg.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runID, err := GetRunIDOrLatest(c, database)
	if err != nil {
		return err
	}

	run, err := database.GetRun(runID)
	if err != nil {
		return fmt.Errorf("failed to get run: %w", err)
	}

	headings, err := database.RunHeadings(runID)
	if err != nil {
		return fmt.Errorf("failed to get run headings: %w", err)
	}

	// Print run details
	fmt.Printf("Run %d\n", run.RunID)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Started:     %s\n", run.StartedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Document:    %s\n", run.Filename)
	fmt.Printf("Status:      %s\n", run.Status)
	if run.Status == "failed" {
		fmt.Printf("Error Type:  %s\n", run.ErrorType)
		return nil
	}
	fmt.Printf("Depth:       %s\n", run.ExtractionDepth)
	fmt.Printf("Headings:    %d total (H1=%d, H2=%d, H3=%d)\n",
		run.HeadingCount, run.H1Count, run.H2Count, run.H3Count)
	fmt.Printf("Confidence:  %.3f avg\n", run.AverageConfidence)
	fmt.Printf("Quality:     %.3f\n", run.QualityScore)
	fmt.Printf("Time:        %s\n", run.ProcessingTime)

	// Print stored outline
	if len(headings) > 0 {
		fmt.Printf("\nOutline (%d):\n", len(headings))
		fmt.Println(strings.Repeat("-", 60))
		for _, h := range headings {
			indent := strings.Repeat("  ", h.Level-1)
			fmt.Printf("%sH%d %s (p%d, %.2f)\n", indent, h.Level, h.Text, h.Page, h.Confidence)
		}
	}

	return nil
}

// StatsAction prints aggregate statistics across all stored runs
func StatsAction(c *cli.Context) error {
	database, err := dbpkg.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	stats, err := database.GetStats()
	if err != nil {
		return fmt.Errorf("failed to get stats: %w", err)
	}

	if stats.Runs == 0 {
		fmt.Println("No runs recorded yet")
		fmt.Println("\nTip: Run 'outliner extract <files>' first")
		return nil
	}

	fmt.Println("Extraction Statistics")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Documents:        %d\n", stats.Documents)
	fmt.Printf("Runs:             %d total (%d success, %d failed)\n",
		stats.Runs, stats.Succeeded, stats.Failed)
	fmt.Printf("Total Headings:   %d\n", stats.TotalHeadings)
	fmt.Printf("Avg Quality:      %.3f\n", stats.AvgQualityScore)
	fmt.Printf("Avg Confidence:   %.3f\n", stats.AvgConfidence)
	fmt.Printf("Avg Time:         %.0fms\n", stats.AvgProcessingMS)

	printGroup("Runs by Depth", stats.RunsByDepth)
	printGroup("Documents by Language", stats.DocsByLanguage)
	printGroup("Failures by Type", stats.FailuresByType)

	return nil
}

func printGroup(title string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Printf("\n%s:\n", title)
	for _, k := range keys {
		fmt.Printf("  %-20s %d\n", k, counts[k])
	}
}

func truncateName(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}
