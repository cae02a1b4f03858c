// Package rules implements the organizational policy checks applied to
// every process definition.
//
// Each check takes the parsed element tree and returns a Result carrying a
// pass/fail verdict and the one-line message shown in the report. Checks
// look at every element of the document regardless of its tag or position.
package rules

import (
	"strings"

	"github.com/githubnext/boomi-validate/pkg/boomixml"
	"github.com/githubnext/boomi-validate/pkg/constants"
)

// Rule identifiers, also used as keys in JSON output.
const (
	RuleErrorHandling     = "error-handling"
	RuleBlockedComponents = "blocked-components"
)

// Result is the outcome of one rule on one document.
type Result struct {
	Rule    string `json:"rule"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// ShapeLabel returns the display label of a shape: userlabel when it is
// present and non-blank, otherwise label, trimmed. Shapes without either
// attribute have an empty label.
func ShapeLabel(el *boomixml.Element) string {
	if v, ok := el.Attr(constants.AttrUserLabel); ok {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	v, _ := el.Attr(constants.AttrLabel)
	return strings.TrimSpace(v)
}

// displayLabel substitutes a placeholder for blank labels.
func displayLabel(label string) string {
	if label == "" {
		return constants.NoLabelPlaceholder
	}
	return label
}
