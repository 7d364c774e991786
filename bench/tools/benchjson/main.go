// Command benchjson converts `go test -bench -v` output into a JSON summary.
//
// Usage: benchjson <benchmark_output_file> [commit_id] [branch_name]
package main

import (
	"encoding/json"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/theflywheel/chash/bench/tools/benchfmt"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: benchjson <benchmark_output_file> [commit_id] [branch_name]")
	}

	inputFile := os.Args[1]
	commitID := "unknown"
	branch := "unknown"
	if len(os.Args) >= 3 {
		commitID = os.Args[2]
	}
	if len(os.Args) >= 4 {
		branch = os.Args[3]
	}

	data, err := os.ReadFile(inputFile)
	if err != nil {
		log.WithError(err).Fatal("Error reading benchmark output")
	}

	results, goVersion, systemInfo := benchfmt.Parse(string(data))
	if len(results) == 0 {
		log.WithField("file", inputFile).Warn("No benchmark results found")
	}

	summary := benchfmt.BenchSummary{
		Timestamp:  time.Now().Format(time.RFC3339),
		CommitID:   commitID,
		Branch:     branch,
		GoVersion:  goVersion,
		SystemInfo: systemInfo,
		Results:    results,
	}

	jsonData, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		log.WithError(err).Fatal("Error converting to JSON")
	}

	outputPath := strings.TrimSuffix(inputFile, ".txt") + ".json"
	if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
		log.WithError(err).Fatal("Error writing JSON file")
	}

	log.WithFields(log.Fields{
		"results": len(results),
		"output":  outputPath,
	}).Info("JSON benchmark results written")
}
