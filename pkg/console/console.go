// Package console formats diagnostics written to stderr. Styling is applied
// only when stderr is a terminal; otherwise messages are plain text with
// their leading symbol, which keeps CI logs readable.
package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/githubnext/boomi-validate/pkg/styles"
	"github.com/githubnext/boomi-validate/pkg/tty"
)

// isTTY is swapped in tests.
var isTTY = tty.IsStderrTerminal

func applyStyle(style lipgloss.Style, text string) string {
	if !isTTY() {
		return text
	}
	return style.Render(text)
}

// FormatSuccessMessage formats a success message with a check mark.
func FormatSuccessMessage(message string) string {
	return applyStyle(styles.Success, "✓ ") + message
}

// FormatInfoMessage formats an informational message.
func FormatInfoMessage(message string) string {
	return applyStyle(styles.Info, "ℹ ") + message
}

// FormatWarningMessage formats a warning message.
func FormatWarningMessage(message string) string {
	return applyStyle(styles.Warning, "⚠ ") + message
}

// FormatErrorMessage formats an error message.
func FormatErrorMessage(message string) string {
	return applyStyle(styles.Error, "✗ ") + message
}

// FormatVerboseMessage formats a low-emphasis message shown with --verbose.
func FormatVerboseMessage(message string) string {
	return applyStyle(styles.Verbose, "🔍 "+message)
}

// LogVerbose prints message to w when verbose is set.
func LogVerbose(w io.Writer, verbose bool, message string) {
	if verbose {
		fmt.Fprintln(w, FormatVerboseMessage(message))
	}
}
