// Package benchfmt parses `go test -bench` output for the chash benchmarks
// into JSON summaries and compares two summaries for regressions.
package benchfmt

import (
	"regexp"
	"strconv"
	"strings"
)

// BenchResult represents a test or benchmark result with multiple metrics.
type BenchResult struct {
	Name     string             `json:"name"`
	Category string             `json:"category,omitempty"` // "standard", "scale" or "uuid"
	Metrics  map[string]float64 `json:"metrics"`
}

// BenchSummary represents all benchmark results of one run.
type BenchSummary struct {
	Timestamp  string        `json:"timestamp"`
	CommitID   string        `json:"commit_id"`
	Branch     string        `json:"branch"`
	GoVersion  string        `json:"go_version"`
	SystemInfo string        `json:"system_info,omitempty"`
	Results    []BenchResult `json:"results"`
}

var (
	benchLineRegex = regexp.MustCompile(`^Benchmark(\S+?)(?:-\d+)?\s+(\d+)\s+(\d+\.?\d*)\s+ns/op(?:\s+(\d+)\s+B/op)?(?:\s+(\d+)\s+allocs/op)?`)
	rateLineRegex  = regexp.MustCompile(`Time to (\w+) (?:all )?\d+ .*?\(([\d,.]+) \w+/sec\)`)
	bytesLineRegex = regexp.MustCompile(`Average bytes per key-value pair: ([\d,.]+) bytes`)
	systemRegex    = regexp.MustCompile(`^(?:goos|goarch|cpu): .+`)
	goVersionRegex = regexp.MustCompile(`go\d+\.\d+(?:\.\d+)?`)
)

// scaleBenchmarks are the single-shot benchmarks that report their own rates.
var scaleBenchmarks = map[string]string{
	"TenThousandKeys": "scale",
	"MillionKeys":     "scale",
	"UUIDKeys":        "uuid",
}

// Category classifies a benchmark by its top-level name.
func Category(name string) string {
	top, _, _ := strings.Cut(name, "/")
	if c, ok := scaleBenchmarks[top]; ok {
		return c
	}
	return "standard"
}

// Parse extracts benchmark results from raw `go test -bench -v` output. Log
// lines that follow a benchmark result line are attributed to it.
func Parse(content string) (results []BenchResult, goVersion, systemInfo string) {
	var sys []string
	current := -1

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)

		if systemRegex.MatchString(trimmed) {
			sys = append(sys, trimmed)
			continue
		}
		if goVersion == "" {
			goVersion = goVersionRegex.FindString(trimmed)
		}

		if m := benchLineRegex.FindStringSubmatch(trimmed); m != nil {
			results = append(results, benchResult(m))
			current = len(results) - 1
			continue
		}
		if current < 0 {
			continue
		}

		if m := rateLineRegex.FindStringSubmatch(trimmed); m != nil {
			if v, ok := parseNumber(m[2]); ok {
				results[current].Metrics[rateMetric(m[1])] = v
			}
			continue
		}
		if m := bytesLineRegex.FindStringSubmatch(trimmed); m != nil {
			if v, ok := parseNumber(m[1]); ok {
				results[current].Metrics["bytes_per_key"] = v
			}
		}
	}

	return results, goVersion, strings.Join(sys, " ")
}

func benchResult(m []string) BenchResult {
	name := m[1]
	ops, _ := strconv.Atoi(m[2])
	nsPerOp, _ := strconv.ParseFloat(m[3], 64)

	metrics := map[string]float64{
		"operations": float64(ops),
		"ns_per_op":  nsPerOp,
	}

	category := Category(name)
	// scale benchmarks report their own rates
	if category == "standard" && nsPerOp > 0 {
		metrics["ops_per_sec"] = 1_000_000_000 / nsPerOp
	}
	if m[4] != "" {
		bytesPerOp, _ := strconv.Atoi(m[4])
		metrics["bytes_per_op"] = float64(bytesPerOp)
	}
	if m[5] != "" {
		allocsPerOp, _ := strconv.Atoi(m[5])
		metrics["allocs_per_op"] = float64(allocsPerOp)
	}

	return BenchResult{Name: name, Category: category, Metrics: metrics}
}

// rateMetric names the metric for a "Time to <verb> ..." log line.
func rateMetric(verb string) string {
	switch verb {
	case "insert":
		return "insertion_rate"
	case "perform":
		return "random_lookup_rate"
	case "verify":
		return "verification_rate"
	case "retrieve":
		return "retrieval_rate"
	case "validate":
		return "validation_rate"
	case "remove":
		return "removal_rate"
	}
	return strings.ToLower(verb) + "_rate"
}

func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	return v, err == nil
}
