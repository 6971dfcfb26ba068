package extract

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/dtnitsch/pdf-outline-extractor/internal/common"
	"github.com/dtnitsch/pdf-outline-extractor/models"
	"github.com/dtnitsch/pdf-outline-extractor/pkg/db"
	"github.com/dtnitsch/pdf-outline-extractor/pkg/langdetect"
	"github.com/dtnitsch/pdf-outline-extractor/pkg/manifest"
	"github.com/dtnitsch/pdf-outline-extractor/pkg/outline"
	"github.com/dtnitsch/pdf-outline-extractor/pkg/storage"
	"github.com/urfave/cli/v2"
)

func ExtractAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	startTime := time.Now()

	settings, err := models.LoadSettings(c.String("config"))
	if err != nil {
		logger.Error("failed to load settings", "error", err, "path", c.String("config"))
		os.Exit(2)
	}

	// CLI flags override file settings
	if c.IsSet("workers") {
		settings.WorkerCount = c.Int("workers")
	}
	if c.IsSet("output-dir") {
		settings.OutputDir = c.String("output-dir")
	}
	if c.IsSet("min-confidence") {
		settings.MinHeadingConfidence = c.Float64("min-confidence")
	}
	if c.IsSet("max-length") {
		settings.MaxHeadingLength = c.Int("max-length")
	}
	if c.Bool("no-language") {
		settings.DetectLanguage = false
	}

	collected, err := collectInputs(c)
	if err != nil {
		logger.Error("failed to collect inputs", "error", err)
		os.Exit(2)
	}

	// Validate paths before processing (fail fast)
	inputs, invalid := common.ValidateInputs(collected)
	if len(invalid) > 0 {
		fmt.Fprintf(os.Stderr, "Error: %d input path(s) are not supported:\n", len(invalid))
		for _, badPath := range invalid {
			fmt.Fprintf(os.Stderr, "  - %s\n", badPath)
		}
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Supported inputs: .json (font-annotated blocks), .html/.htm")
		os.Exit(1)
	}

	if len(inputs) == 0 {
		fmt.Fprintln(os.Stderr, "Error: No input documents provided")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, `  outliner extract report.json chapter2.json`)
		fmt.Fprintln(os.Stderr, `  outliner extract --input-dir ./documents      # All .json and .html files`)
		fmt.Fprintln(os.Stderr, `  outliner extract https://example.com/spec     # Fetch and outline a web page`)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Need help? Run: outliner extract --help")
		os.Exit(1)
	}

	// Open database for run history
	database, err := db.Open(c.String("db"))
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(2)
	}
	defer database.Close()

	config := &models.ExtractConfig{
		Inputs:      inputs,
		WorkerCount: settings.WorkerCount,
		OutputDir:   settings.OutputDir,
		Settings:    settings,
	}

	detector := outline.NewDetectorWithConfig(detectorConfig(settings))

	var languages *langdetect.Detector
	if settings.DetectLanguage {
		languages = langdetect.New()
	}

	store := &storage.Storage{}
	allResults, runErr := run(logger, config, detector, languages, store, database)

	sort.Slice(allResults, func(i, j int) bool {
		return allResults[i].Path < allResults[j].Path
	})

	manifestPath, err := manifest.GenerateSummary(manifestResults(allResults), settings.OutputDir, store)
	if err != nil {
		logger.Warn("Failed to write summary manifest", "error", err)
	} else {
		logger.Info("Summary manifest written", "path", manifestPath)
	}

	finalOutput := buildFinalOutput(allResults, time.Since(startTime))
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(finalOutput); err != nil {
		logger.Error("failed to encode final output", "error", err)
		os.Exit(2)
	}

	if runErr != nil {
		os.Exit(1)
	}
	return nil
}

// collectInputs gathers document paths from positional args and --input-dir.
func collectInputs(c *cli.Context) ([]string, error) {
	inputs := append([]string{}, c.Args().Slice()...)

	if dir := c.String("input-dir"); dir != "" {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to read input directory: %w", err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			switch strings.ToLower(filepath.Ext(entry.Name())) {
			case ".json", ".html", ".htm":
				inputs = append(inputs, filepath.Join(dir, entry.Name()))
			}
		}
	}

	return inputs, nil
}

// detectorConfig maps file settings onto the detector configuration.
func detectorConfig(settings models.Settings) outline.Config {
	config := outline.DefaultConfig()
	if settings.MaxHeadingLength > 0 {
		config.MaxHeadingLength = settings.MaxHeadingLength
	}
	if settings.MinHeadingConfidence > 0 {
		config.MinConfidence = settings.MinHeadingConfidence
	}
	if len(settings.HeadingKeywords) > 0 {
		config.Keywords = settings.HeadingKeywords
	}
	return config
}

func manifestResults(results []Result) []manifest.ExtractResult {
	converted := make([]manifest.ExtractResult, 0, len(results))
	for _, r := range results {
		converted = append(converted, manifest.ExtractResult{
			Filename:       r.Filename,
			OutlinePath:    r.OutlinePath,
			DiagnosticPath: r.DiagnosticPath,
			Document:       r.Document,
			Outline:        r.Outline,
			ContentHash:    r.ContentHash,
			Error:          r.Error,
			ErrorType:      r.ErrorType,
		})
	}
	return converted
}

func buildFinalOutput(results []Result, elapsed time.Duration) FinalOutput {
	output := FinalOutput{
		Status:  "success",
		Results: make([]ResultOutput, 0, len(results)),
		Stats: Stats{
			TotalDocuments:   len(results),
			TotalTimeSeconds: elapsed.Seconds(),
		},
	}

	var qualitySum float64
	for _, r := range results {
		output.Results = append(output.Results, buildResultOutput(r))
		if r.Error != nil {
			output.Stats.Failed++
			output.Status = "partial_failure"
			continue
		}
		output.Stats.Successful++
		if r.Outline != nil {
			output.Stats.TotalHeadings += len(r.Outline.Headings)
			qualitySum += r.Outline.QualityScore
		}
	}
	if output.Stats.Successful > 0 {
		output.Stats.AvgQualityScore = qualitySum / float64(output.Stats.Successful)
	}
	if output.Stats.Successful == 0 && output.Stats.Failed > 0 {
		output.Status = "failure"
	}

	return output
}
