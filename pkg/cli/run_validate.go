package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/githubnext/boomi-validate/pkg/config"
	"github.com/githubnext/boomi-validate/pkg/console"
	"github.com/githubnext/boomi-validate/pkg/constants"
	"github.com/githubnext/boomi-validate/pkg/logger"
	"github.com/githubnext/boomi-validate/pkg/report"
	"github.com/githubnext/boomi-validate/pkg/timeutil"
	"github.com/githubnext/boomi-validate/pkg/validator"
)

var runLog = logger.New("cli:run_validate")

// RunOptions holds the per-invocation inputs of RunValidate.
type RunOptions struct {
	Files      []string
	JSONOutput bool
	Verbose    bool
	Stdout     io.Writer
	Stderr     io.Writer
}

func (o *RunOptions) defaults() {
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
}

// RunValidate validates opts.Files in order, writes the markdown report and
// step summary, prints the report, and returns the process exit code.
// An error is returned only when the report file cannot be written.
func RunValidate(cfg config.Config, opts RunOptions) (int, error) {
	opts.defaults()

	if len(opts.Files) == 0 {
		runLog.Print("No input files")
		md := report.RenderNoFiles()
		if err := report.WriteReport(cfg.Output, md); err != nil {
			return constants.ExitFailed, err
		}
		fmt.Fprintln(opts.Stderr, console.FormatErrorMessage(
			fmt.Sprintf("Usage: %s validate <file1.xml> [file2.xml ...]", constants.CLIName)))
		fmt.Fprintln(opts.Stdout, md)
		report.AppendStepSummary(cfg.SummaryEnv, md)
		return constants.ExitNoFiles, nil
	}

	start := time.Now()
	v := validator.New(cfg.ValidatorOptions())
	results := v.ValidateFiles(opts.Files)
	runLog.Printf("Validated %d file(s) in %s", len(results), timeutil.FormatDuration(time.Since(start)))
	md := report.RenderMarkdown(results)

	if err := report.WriteReport(cfg.Output, md); err != nil {
		return constants.ExitFailed, err
	}

	if opts.JSONOutput {
		out, err := report.RenderJSON(results)
		if err != nil {
			return constants.ExitFailed, err
		}
		fmt.Fprint(opts.Stdout, out)
	} else {
		fmt.Fprintln(opts.Stdout, md)
	}

	if report.AppendStepSummary(cfg.SummaryEnv, md) {
		console.LogVerbose(opts.Stderr, opts.Verbose, "Appended report to $"+cfg.SummaryEnv)
	}

	if opts.Verbose {
		fmt.Fprint(opts.Stderr, renderResultsTable(results))
	}
	printOutcome(opts.Stderr, results, cfg.Output)

	if !validator.AllPassed(results) {
		return constants.ExitFailed, nil
	}
	return constants.ExitPassed, nil
}
