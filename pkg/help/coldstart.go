package help

const ColdstartYAML = `# outliner Quick Start

input_formats:
  json: "Font-annotated text blocks with page dimensions (default)"
  html: "Readability-distilled pages mapped onto synthetic letter pages"

commands:
  basic_extract: |
    outliner extract report.json

  batch_extract: |
    outliner extract --input-dir ./documents --workers 8

  tuned_extract: |
    outliner extract --min-confidence 0.5 --max-length 120 report.json

  validate_results: |
    outliner validate outlines/report.result.json

  validate_json: |
    outliner validate --json outlines/report.result.json

  list_runs: |
    outliner db runs

  run_details: |
    outliner db run 5

  aggregate_stats: |
    outliner db stats

  multi_stage: |
    # Step 1: Extract a batch of documents
    outliner extract --input-dir ./documents

    # Step 2: List runs and get the latest ID
    outliner db runs

    # Step 3: Inspect the stored outline
    outliner db run <run_id>

    # Step 4: Re-validate persisted diagnostics
    outliner validate outlines/*.result.json

key_files:
  - "outliner.yaml (settings: workers, thresholds, output dir)"
  - "outlines/<name>.outline.json (minimal title/outline projection)"
  - "outlines/<name>.result.json (full diagnostics with confidences)"
  - "outlines/summary-YYYY-MM-DD.json (batch manifest)"

run_history:
  - "Runs tracked in SQLite database (outliner.db)"
  - "Auto-incrementing run IDs (1, 2, 3...)"
  - "Documents deduplicated by filename"
  - "Use 'outliner db runs' to list recent runs"
  - "Use 'outliner db run <id>' for the stored outline"
  - "Use 'outliner db stats' for aggregate quality"

db_commands:
  runs: "List recent runs with quality and timing"
  run_id: "Show one run and its stored outline"
  stats: "Aggregate stats (quality, confidence, languages, failures)"

quality_score:
  - "Composite in [0,1]: confidence 30, hierarchy 25, coverage 20, distribution 15, performance 10"
  - "Hierarchy violations (level jumps, orphaned H2/H3) cost 5 points each"
  - "validate re-derives the score from persisted JSON with the same formula"

error_behavior:
  - "Unreadable or malformed documents: recorded as failed runs, batch continues"
  - "Exit codes: 0=success, 1=partial failure, 2=complete failure"
`
