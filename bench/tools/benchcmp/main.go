// Command benchcmp compares two benchjson summaries and exits non-zero when a
// benchmark regressed significantly.
//
// Usage: benchcmp <base_json_file> <current_json_file>
package main

import (
	"encoding/json"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/theflywheel/chash/bench/tools/benchfmt"
)

func loadSummary(path string) (benchfmt.BenchSummary, error) {
	var s benchfmt.BenchSummary

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return s, nil
}

func main() {
	if len(os.Args) != 3 {
		log.Fatal("Usage: benchcmp <base_json_file> <current_json_file>")
	}

	base, err := loadSummary(os.Args[1])
	if err != nil {
		log.WithError(err).Fatal("Error loading base results")
	}
	current, err := loadSummary(os.Args[2])
	if err != nil {
		log.WithError(err).Fatal("Error loading current results")
	}

	summary := benchfmt.Compare(base, current)
	benchfmt.Print(os.Stdout, summary)

	outputPath := "benchmark-comparison.json"
	jsonData, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		log.WithError(err).Fatal("Error creating comparison JSON")
	}
	if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
		log.WithError(err).Fatal("Error writing comparison file")
	}
	log.WithField("output", outputPath).Info("Comparison JSON written")

	if summary.RegressionBenchmarks > 0 {
		log.Errorf("%d significant performance regressions detected", summary.RegressionBenchmarks)
		os.Exit(1)
	}
}
