package report

import (
	"encoding/json"
	"fmt"

	"github.com/githubnext/boomi-validate/pkg/validator"
)

// Summary aggregates pass/fail counts.
type Summary struct {
	Total  int `json:"total"`
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

// Document is the JSON form of a report.
type Document struct {
	Summary Summary                      `json:"summary"`
	Results []validator.ValidationResult `json:"results"`
}

// NewDocument builds the JSON document for results.
func NewDocument(results []validator.ValidationResult) Document {
	passed := validator.CountPassed(results)
	if results == nil {
		results = []validator.ValidationResult{}
	}
	return Document{
		Summary: Summary{Total: len(results), Passed: passed, Failed: len(results) - passed},
		Results: results,
	}
}

// RenderJSON renders results as indented JSON terminated by a newline.
func RenderJSON(results []validator.ValidationResult) (string, error) {
	data, err := json.MarshalIndent(NewDocument(results), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}
	return string(data) + "\n", nil
}
