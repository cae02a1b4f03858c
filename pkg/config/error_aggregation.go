package config

import (
	"fmt"
	"strings"
)

// ErrorCollector gathers every configuration problem so that users can fix
// them in one pass.
type ErrorCollector struct {
	errors []error
}

// NewErrorCollector creates a new error collector
func NewErrorCollector() *ErrorCollector {
	return &ErrorCollector{}
}

// Add records err. A nil err is ignored.
func (c *ErrorCollector) Add(err error) {
	if err == nil {
		return
	}
	configLog.Printf("Collected configuration error: %v", err)
	c.errors = append(c.errors, err)
}

// HasErrors returns true if any errors have been collected
func (c *ErrorCollector) HasErrors() bool {
	return len(c.errors) > 0
}

// Count returns the number of errors collected
func (c *ErrorCollector) Count() int {
	return len(c.errors)
}

// FormattedError returns a single error listing every collected problem
// under a "Found N <category> errors:" header. The individual errors remain
// reachable through errors.Is and errors.As.
func (c *ErrorCollector) FormattedError(category string) error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d %s errors:", len(c.errors), category)
	for _, err := range c.errors {
		sb.WriteString("\n  • ")
		sb.WriteString(err.Error())
	}
	return &aggregatedError{msg: sb.String(), errs: c.errors}
}

type aggregatedError struct {
	msg  string
	errs []error
}

func (e *aggregatedError) Error() string   { return e.msg }
func (e *aggregatedError) Unwrap() []error { return e.errs }
