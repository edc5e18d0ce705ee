// Package report renders the coverage report markdown posted to pull requests.
package report

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/ericfisherdev/covercomment/internal/domain/model"
)

// Title is the heading text embedded in every generated report. The comment
// locator matches on this exact string, so it must never change without a
// migration plan for comments already posted.
const Title = "Go Test Coverage Report"

// DefaultReportPath is the detailed report file read when the caller does not
// supply a path.
const DefaultReportPath = "coverage_report.md"

// Format renders the full comment body for the given coverage summary.
// The file at reportPath is embedded verbatim inside the collapsible section;
// if it cannot be read the section is left empty and a warning is logged, the
// run never fails on a missing report file.
func Format(sum model.CoverageSummary, reportPath string) string {
	detail := readReportFile(reportPath)

	// The badge URL places the coverage string in a path segment, so a literal
	// "%" must be encoded or shields.io truncates the label.
	badgeCoverage := strings.ReplaceAll(sum.Coverage, "%", "%25")

	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s %s\n\n", sum.Emoji, Title)
	fmt.Fprintf(&sb, "**Total Coverage:** `%s` (%s)\n\n", sum.Coverage, sum.Status)
	fmt.Fprintf(&sb, "![Coverage](https://img.shields.io/badge/coverage-%s-%s)\n\n", badgeCoverage, sum.BadgeColor)
	sb.WriteString("<details>\n")
	sb.WriteString("<summary>📊 Detailed Coverage Report (click to expand)</summary>\n\n")
	sb.WriteString(detail)
	sb.WriteString("\n\n</details>\n\n")
	sb.WriteString("### Coverage Guidelines\n")
	sb.WriteString("- 🟢 >= 80%: Excellent\n")
	sb.WriteString("- 🟡 >= 60%: Good\n")
	sb.WriteString("- 🟠 >= 40%: Fair\n")
	sb.WriteString("- 🔴 < 40%: Needs improvement\n\n")
	sb.WriteString("---\n")
	sb.WriteString("*This is an automated coverage report. The coverage requirement is advisory and does not block PR merging.*\n")
	return sb.String()
}

func readReportFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("coverage report file not readable, embedding empty report", "path", path, "error", err)
		return ""
	}
	return string(data)
}
