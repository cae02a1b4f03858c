//go:build !integration

package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withTTY(t *testing.T, value bool) {
	t.Helper()
	orig := isTTY
	isTTY = func() bool { return value }
	t.Cleanup(func() { isTTY = orig })
}

func TestFormatMessages_PlainWithoutTTY(t *testing.T) {
	withTTY(t, false)

	tests := []struct {
		name     string
		format   func(string) string
		expected string
	}{
		{name: "success", format: FormatSuccessMessage, expected: "✓ all files passed"},
		{name: "info", format: FormatInfoMessage, expected: "ℹ all files passed"},
		{name: "warning", format: FormatWarningMessage, expected: "⚠ all files passed"},
		{name: "error", format: FormatErrorMessage, expected: "✗ all files passed"},
		{name: "verbose", format: FormatVerboseMessage, expected: "🔍 all files passed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format("all files passed"))
		})
	}
}

func TestFormatMessages_KeepMessageWithTTY(t *testing.T) {
	withTTY(t, true)

	out := FormatErrorMessage("XML parse error")
	assert.True(t, strings.HasSuffix(out, "XML parse error"), "message text should never be styled away, got %q", out)
	assert.Contains(t, out, "✗")
}

func TestRenderTable(t *testing.T) {
	withTTY(t, false)

	out := RenderTable(TableConfig{
		Title:   "Validation",
		Headers: []string{"File", "Status"},
		Rows: [][]string{
			{"process.xml", "PASS"},
			{"broken.xml", "FAIL"},
		},
	})

	assert.True(t, strings.HasPrefix(out, "Validation\n"), "title should be the first line")
	for _, cell := range []string{"File", "Status", "process.xml", "PASS", "broken.xml", "FAIL"} {
		assert.Contains(t, out, cell)
	}
	assert.Less(t, strings.Index(out, "process.xml"), strings.Index(out, "broken.xml"), "rows should keep their order")
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Empty(t, RenderTable(TableConfig{}))
}

func TestLogVerbose(t *testing.T) {
	withTTY(t, false)

	var buf bytes.Buffer
	LogVerbose(&buf, false, "hidden")
	assert.Empty(t, buf.String(), "nothing is written without verbose")

	LogVerbose(&buf, true, "appended summary")
	assert.Equal(t, "🔍 appended summary\n", buf.String())
}
