// Package report renders validation results as markdown or JSON and writes
// them to the report file and the CI step summary.
package report

import (
	"fmt"
	"strings"

	"github.com/githubnext/boomi-validate/pkg/constants"
	"github.com/githubnext/boomi-validate/pkg/logger"
	"github.com/githubnext/boomi-validate/pkg/validator"
)

var markdownLog = logger.New("report:markdown")

// RenderMarkdown renders results in input order. The document always ends
// with exactly one newline.
func RenderMarkdown(results []validator.ValidationResult) string {
	markdownLog.Printf("Rendering markdown report: files=%d", len(results))

	var b strings.Builder
	b.WriteString(constants.ReportTitle + "\n\n")
	fmt.Fprintf(&b, "**Summary:** %d/%d file(s) passed.\n\n", validator.CountPassed(results), len(results))

	for _, r := range results {
		fmt.Fprintf(&b, "### %s: `%s`\n", status(r.Passed), r.Path)
		for _, m := range r.Messages {
			b.WriteString("- " + m + "\n")
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), " \t\r\n") + "\n"
}

// RenderNoFiles renders the report for a run without input files.
func RenderNoFiles() string {
	return constants.ReportTitle + "\n\n❌ No XML files provided.\n"
}

func status(passed bool) string {
	if passed {
		return "✅ PASS"
	}
	return "❌ FAIL"
}
