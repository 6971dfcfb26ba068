package main

import (
	"fmt"
	"os"

	dbcmd "github.com/dtnitsch/pdf-outline-extractor/internal/db"
	"github.com/dtnitsch/pdf-outline-extractor/internal/extract"
	"github.com/dtnitsch/pdf-outline-extractor/internal/validate"
	"github.com/dtnitsch/pdf-outline-extractor/pkg/help"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "outliner",
		Usage: "Extract H1/H2/H3 outlines from font-annotated documents",
		Commands: []*cli.Command{
			{
				Name:      "extract",
				Usage:     "Extract outlines from document files",
				ArgsUsage: "[files...]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "config",
						Value: "outliner.yaml",
						Usage: "Path to the settings file",
					},
					&cli.StringFlag{
						Name:  "input-dir",
						Usage: "Directory to scan for .json and .html documents",
					},
					&cli.StringFlag{
						Name:  "output-dir",
						Usage: "Directory for outlines, diagnostics, and the summary manifest",
					},
					&cli.StringFlag{
						Name:  "db",
						Usage: "Path to the run history database (default: next to the binary)",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of concurrent document workers",
					},
					&cli.Float64Flag{
						Name:  "min-confidence",
						Usage: "Minimum composite score for a heading",
					},
					&cli.IntFlag{
						Name:  "max-length",
						Usage: "Maximum heading candidate length in characters",
					},
					&cli.BoolFlag{
						Name:  "no-language",
						Usage: "Skip document language detection",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "Only log errors",
					},
				},
				Action: extract.ExtractAction,
			},
			{
				Name:      "validate",
				Usage:     "Validate persisted extraction results and re-derive quality",
				ArgsUsage: "[result files...]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output reports as JSON",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "Only show errors and warnings",
					},
				},
				Action: validate.ValidateAction,
			},
			{
				Name:  "db",
				Usage: "Inspect stored extraction history",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "db",
						Usage: "Path to the run history database (default: next to the binary)",
					},
				},
				Subcommands: []*cli.Command{
					{
						Name:  "runs",
						Usage: "List recent extraction runs",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "db"},
							&cli.IntFlag{
								Name:  "limit",
								Value: 20,
								Usage: "Maximum number of runs to show",
							},
						},
						Action: dbcmd.RunsAction,
					},
					{
						Name:      "run",
						Usage:     "Show one run and its stored outline (defaults to latest)",
						ArgsUsage: "[run id]",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "db"},
						},
						Action: dbcmd.RunAction,
					},
					{
						Name:  "stats",
						Usage: "Aggregate statistics across all runs",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "db"},
						},
						Action: dbcmd.StatsAction,
					},
				},
			},
			{
				Name:  "coldstart",
				Usage: "Print a machine-readable quick start reference",
				Action: func(c *cli.Context) error {
					fmt.Print(help.ColdstartYAML)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
