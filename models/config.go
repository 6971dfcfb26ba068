package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds the load-time configuration for the extraction pipeline.
// Values come from an optional YAML file merged with CLI flags.
type Settings struct {
	// MaxHeadingLength is the maximum character length for a text block to
	// be considered a heading candidate.
	MaxHeadingLength int `yaml:"max_heading_length"`

	// MinHeadingConfidence is the minimum composite score (0.0 to 1.0) for
	// a candidate to be classified as a heading.
	MinHeadingConfidence float64 `yaml:"min_heading_confidence"`

	// WorkerCount is the number of concurrent document workers.
	WorkerCount int `yaml:"workers"`

	// OutputDir is where per-document results and the summary manifest land.
	OutputDir string `yaml:"output_dir"`

	// DetectLanguage enables lingua-based language detection on block text.
	DetectLanguage bool `yaml:"detect_language"`

	// HeadingKeywords overrides the default heading keyword set when
	// non-empty. Tests and unusual document classes substitute their own.
	HeadingKeywords []string `yaml:"heading_keywords,omitempty"`
}

// DefaultSettings returns the stock configuration.
func DefaultSettings() Settings {
	return Settings{
		MaxHeadingLength:     150,
		MinHeadingConfidence: 0.4,
		WorkerCount:          4,
		OutputDir:            "outlines",
		DetectLanguage:       true,
	}
}

// LoadSettings reads settings from a YAML file, filling unset fields with
// defaults. A missing file is not an error; defaults are returned.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if settings.MaxHeadingLength <= 0 {
		settings.MaxHeadingLength = 150
	}
	if settings.MinHeadingConfidence <= 0 {
		settings.MinHeadingConfidence = 0.4
	}
	if settings.WorkerCount <= 0 {
		settings.WorkerCount = 4
	}
	if settings.OutputDir == "" {
		settings.OutputDir = "outlines"
	}
	return settings, nil
}

// ExtractConfig holds runtime configuration for one extract invocation.
// All values come from CLI flags and the settings file.
type ExtractConfig struct {
	Inputs      []string
	WorkerCount int
	OutputDir   string
	Settings    Settings
}
