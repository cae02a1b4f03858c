package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/githubnext/boomi-validate/pkg/console"
	"github.com/githubnext/boomi-validate/pkg/rules"
	"github.com/githubnext/boomi-validate/pkg/validator"
)

// FormatCommandError formats an error returned by a command for stderr.
func FormatCommandError(err error) string {
	if err == nil {
		return ""
	}
	return console.FormatErrorMessage(err.Error())
}

// PrintCommandError prints an error to stderr with console formatting
func PrintCommandError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, FormatCommandError(err))
}

// printOutcome prints a one-line verdict to w.
func printOutcome(w io.Writer, results []validator.ValidationResult, reportPath string) {
	passed := validator.CountPassed(results)
	msg := fmt.Sprintf("%d/%d file(s) passed, report written to %s", passed, len(results), reportPath)
	if passed == len(results) {
		fmt.Fprintln(w, console.FormatSuccessMessage(msg))
		return
	}
	fmt.Fprintln(w, console.FormatErrorMessage(msg))
}

// renderResultsTable summarizes per-rule status for --verbose output.
func renderResultsTable(results []validator.ValidationResult) string {
	config := console.TableConfig{
		Title:   "Validation results",
		Headers: []string{"File", "Error path", "Blocklist", "Status"},
	}
	for _, r := range results {
		config.Rows = append(config.Rows, []string{
			r.Path,
			ruleStatus(r, rules.RuleErrorHandling),
			ruleStatus(r, rules.RuleBlockedComponents),
			passFail(r.Passed),
		})
	}
	return console.RenderTable(config)
}

// ruleStatus returns "-" for files that never reached rule evaluation.
func ruleStatus(r validator.ValidationResult, rule string) string {
	for _, res := range r.Rules {
		if res.Rule == rule {
			return passFail(res.Passed)
		}
	}
	return "-"
}

func passFail(passed bool) string {
	if passed {
		return "PASS"
	}
	return "FAIL"
}
