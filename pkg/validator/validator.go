// Package validator runs the policy rules against process definition files
// and produces one ValidationResult per file.
package validator

import (
	"errors"
	"io/fs"

	"github.com/githubnext/boomi-validate/pkg/boomixml"
	"github.com/githubnext/boomi-validate/pkg/logger"
	"github.com/githubnext/boomi-validate/pkg/rules"
)

var validatorLog = logger.New("validator:validator")

// Options configures a Validator.
type Options struct {
	Blocklist       rules.Blocklist
	Parse           boomixml.Options
	MaxReportedHits int
}

// Validator checks files against the rule set. It holds no per-file state.
type Validator struct {
	opts Options
}

// New creates a Validator.
func New(opts Options) *Validator {
	return &Validator{opts: opts}
}

// ValidationResult is the verdict for one input file.
type ValidationResult struct {
	Path     string         `json:"path"`
	Passed   bool           `json:"passed"`
	Messages []string       `json:"messages"`
	Rules    []rules.Result `json:"rules,omitempty"`
}

func failed(path, message string) ValidationResult {
	return ValidationResult{Path: path, Passed: false, Messages: []string{message}}
}

// ValidateFile parses path and applies every rule. Problems with the file
// itself are reported as a failed result rather than an error.
func (v *Validator) ValidateFile(path string) ValidationResult {
	validatorLog.Printf("Validating file: %s", path)

	root, err := boomixml.ParseFile(path, v.opts.Parse)
	if err != nil {
		validatorLog.Printf("Failed to load %s: %v", path, err)
		return failed(path, describeLoadError(err))
	}
	return v.ValidateDocument(path, root)
}

// ValidateDocument applies every rule to an already parsed document.
// Messages are ordered rule 1 then rule 2.
func (v *Validator) ValidateDocument(path string, root *boomixml.Element) ValidationResult {
	errorHandling := rules.CheckErrorHandling(root)
	blocked := rules.CheckBlockedComponents(root, v.opts.Blocklist, v.opts.MaxReportedHits)

	result := ValidationResult{
		Path:     path,
		Passed:   errorHandling.Passed && blocked.Passed,
		Messages: []string{errorHandling.Message, blocked.Message},
		Rules:    []rules.Result{errorHandling, blocked},
	}
	validatorLog.Printf("Validated %s: passed=%v", path, result.Passed)
	return result
}

// ValidateFiles validates paths in order.
func (v *Validator) ValidateFiles(paths []string) []ValidationResult {
	results := make([]ValidationResult, 0, len(paths))
	for _, path := range paths {
		results = append(results, v.ValidateFile(path))
	}
	return results
}

func describeLoadError(err error) string {
	if errors.Is(err, fs.ErrNotExist) {
		return "❌ File not found."
	}

	var pe *boomixml.ParseError
	if errors.As(err, &pe) {
		if pe.IsSyntax() {
			return "❌ XML parse error: " + pe.Err.Error()
		}
		return "❌ Unable to read file: " + pe.Err.Error()
	}
	return "❌ XML parse error: " + err.Error()
}

// CountPassed returns how many results passed.
func CountPassed(results []ValidationResult) int {
	n := 0
	for _, r := range results {
		if r.Passed {
			n++
		}
	}
	return n
}

// AllPassed reports whether every result passed. It is true for no results.
func AllPassed(results []ValidationResult) bool {
	return CountPassed(results) == len(results)
}
