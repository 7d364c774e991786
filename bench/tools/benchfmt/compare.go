package benchfmt

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
)

// SignificanceThreshold is the percent change at which a metric difference
// counts as significant.
const SignificanceThreshold = 5.0

// MetricComparison represents a comparison between two metric values
type MetricComparison struct {
	Name          string  `json:"name"`
	BaseValue     float64 `json:"base_value"`
	CurrentValue  float64 `json:"current_value"`
	PercentChange float64 `json:"percent_change"`
	IsRegression  bool    `json:"is_regression"`
	IsImprovement bool    `json:"is_improvement"`
	IsSignificant bool    `json:"is_significant"`
}

// BenchmarkComparison represents a comparison between benchmark results
type BenchmarkComparison struct {
	Name              string             `json:"name"`
	Category          string             `json:"category"`
	MetricComparisons []MetricComparison `json:"metric_comparisons"`
	OverallAssessment string             `json:"overall_assessment"`
	HasRegressions    bool               `json:"has_regressions"`
	Score             float64            `json:"score"`
}

// ComparisonSummary represents the overall benchmark comparison result
type ComparisonSummary struct {
	BaseCommit           string                `json:"base_commit"`
	CurrentCommit        string                `json:"current_commit"`
	TotalBenchmarks      int                   `json:"total_benchmarks"`
	ImprovedBenchmarks   int                   `json:"improved_benchmarks"`
	RegressionBenchmarks int                   `json:"regression_benchmarks"`
	BenchmarkComparisons []BenchmarkComparison `json:"benchmark_comparisons"`
}

// Compare matches current results to base results by name. Benchmarks that
// only exist on one side are skipped. Comparisons are sorted worst first.
func Compare(base, current BenchSummary) ComparisonSummary {
	baseResults := make(map[string]BenchResult, len(base.Results))
	for _, r := range base.Results {
		baseResults[r.Name] = r
	}

	summary := ComparisonSummary{
		BaseCommit:    base.CommitID,
		CurrentCommit: current.CommitID,
	}

	for _, cur := range current.Results {
		b, found := baseResults[cur.Name]
		if !found {
			continue
		}

		comp := compareResult(b, cur)
		switch comp.OverallAssessment {
		case "REGRESSION":
			summary.RegressionBenchmarks++
		case "IMPROVEMENT":
			summary.ImprovedBenchmarks++
		}
		summary.BenchmarkComparisons = append(summary.BenchmarkComparisons, comp)
	}

	sort.SliceStable(summary.BenchmarkComparisons, func(i, j int) bool {
		ci, cj := summary.BenchmarkComparisons[i], summary.BenchmarkComparisons[j]
		if ci.HasRegressions != cj.HasRegressions {
			return ci.HasRegressions
		}
		return ci.Score < cj.Score
	})
	summary.TotalBenchmarks = len(summary.BenchmarkComparisons)

	return summary
}

func compareResult(base, cur BenchResult) BenchmarkComparison {
	comp := BenchmarkComparison{
		Name:              cur.Name,
		Category:          cur.Category,
		MetricComparisons: []MetricComparison{},
	}

	names := make([]string, 0, len(cur.Metrics))
	for name := range cur.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	score := 0.0
	for _, name := range names {
		baseValue, found := base.Metrics[name]
		if !found {
			continue
		}
		currentValue := cur.Metrics[name]

		mc := MetricComparison{
			Name:         name,
			BaseValue:    baseValue,
			CurrentValue: currentValue,
		}
		if baseValue != 0 {
			mc.PercentChange = (currentValue - baseValue) / baseValue * 100
		}

		if HigherIsBetter(name) {
			mc.IsRegression = mc.PercentChange < 0
			mc.IsImprovement = mc.PercentChange > 0
		} else {
			mc.IsRegression = mc.PercentChange > 0
			mc.IsImprovement = mc.PercentChange < 0
		}
		mc.IsSignificant = math.Abs(mc.PercentChange) >= SignificanceThreshold

		if mc.IsRegression && mc.IsSignificant {
			comp.HasRegressions = true
		}
		if mc.IsImprovement {
			score += math.Abs(mc.PercentChange)
		} else if mc.IsRegression {
			score -= math.Abs(mc.PercentChange)
		}

		comp.MetricComparisons = append(comp.MetricComparisons, mc)
	}

	if n := len(comp.MetricComparisons); n > 0 {
		comp.Score = score / float64(n)
	}

	switch {
	case comp.HasRegressions:
		comp.OverallAssessment = "REGRESSION"
	case comp.Score > 0:
		comp.OverallAssessment = "IMPROVEMENT"
	default:
		comp.OverallAssessment = "NEUTRAL"
	}
	return comp
}

// HigherIsBetter reports whether an increase in the metric is an improvement.
// Rates and throughput go up when things get better; times, sizes, chain
// lengths and allocation counts go down.
func HigherIsBetter(metric string) bool {
	if metric == "operations" || metric == "used_buckets" {
		return true
	}
	return strings.HasSuffix(metric, "_rate") || strings.HasSuffix(metric, "_per_sec")
}

// Print writes a human-readable report of s to w.
func Print(w io.Writer, s ComparisonSummary) {
	fmt.Fprintf(w, "Benchmark Comparison: %s vs %s\n\n", truncate(s.BaseCommit, 8), truncate(s.CurrentCommit, 8))
	fmt.Fprintf(w, "Summary:\n")
	fmt.Fprintf(w, "- Total benchmarks compared: %d\n", s.TotalBenchmarks)
	fmt.Fprintf(w, "- Improvements: %d\n", s.ImprovedBenchmarks)
	fmt.Fprintf(w, "- Regressions: %d\n\n", s.RegressionBenchmarks)

	if s.TotalBenchmarks == 0 {
		fmt.Fprintln(w, "No matching benchmarks found for comparison")
		return
	}

	fmt.Fprintln(w, "Benchmark Details (sorted by impact):")
	fmt.Fprintln(w, "======================================")

	for _, comp := range s.BenchmarkComparisons {
		fmt.Fprintf(w, "\n%s %s (%s):\n", comp.OverallAssessment, comp.Name, comp.Category)

		metrics := append([]MetricComparison(nil), comp.MetricComparisons...)
		sort.SliceStable(metrics, func(i, j int) bool {
			return math.Abs(metrics[i].PercentChange) > math.Abs(metrics[j].PercentChange)
		})

		for _, m := range metrics {
			if m.PercentChange == 0 {
				continue
			}

			marker := " "
			if m.IsRegression && m.IsSignificant {
				marker = "-"
			} else if m.IsImprovement && m.IsSignificant {
				marker = "+"
			}

			fmt.Fprintf(w, "  %s %-24s: %+8.2f%% (%s -> %s)\n",
				marker, m.Name, m.PercentChange,
				humanize.CommafWithDigits(m.BaseValue, 2),
				humanize.CommafWithDigits(m.CurrentValue, 2))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
