//go:build !integration

package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/githubnext/boomi-validate/pkg/config"
	"github.com/githubnext/boomi-validate/pkg/constants"
	"github.com/githubnext/boomi-validate/pkg/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	passingXML = `<process><shape shapetype="returndocuments" userlabel="Error Path"/></process>`
	failingXML = `<process><shape shapetype="returndocuments" label="Success"/></process>`
	blockedXML = `<process>
  <shape shapetype="returndocuments" userlabel="Handle Error"/>
  <shape componentId="ab12cd34-5678-90ef-ghij-klmnopqrstuv" userlabel="Legacy Connector"/>
</process>`
)

const testSummaryEnv = "BOOMI_VALIDATE_TEST_SUMMARY"

func writeXML(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// testConfig returns the defaults with the report and step summary
// redirected into dir.
func testConfig(t *testing.T, dir string) (config.Config, string) {
	t.Helper()
	summary := filepath.Join(dir, "summary.md")
	t.Setenv(testSummaryEnv, summary)

	cfg := config.Default()
	cfg.Output = filepath.Join(dir, constants.DefaultReportFile)
	cfg.SummaryEnv = testSummaryEnv
	return cfg, summary
}

func runForTest(t *testing.T, cfg config.Config, opts RunOptions) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	opts.Stdout = &stdout
	opts.Stderr = &stderr
	code, err := RunValidate(cfg, opts)
	require.NoError(t, err, "RunValidate should not fail")
	return code, stdout.String(), stderr.String()
}

func TestRunValidate_AllPass(t *testing.T) {
	dir := t.TempDir()
	cfg, summary := testConfig(t, dir)
	file := writeXML(t, dir, "good.xml", passingXML)

	code, stdout, stderr := runForTest(t, cfg, RunOptions{Files: []string{file}})

	assert.Equal(t, constants.ExitPassed, code, "all-pass run should exit 0")
	assert.Contains(t, stdout, "**Summary:** 1/1 file(s) passed.")
	assert.Contains(t, stderr, "1/1 file(s) passed")

	written, err := os.ReadFile(cfg.Output)
	require.NoError(t, err, "report file should be written")
	assert.Equal(t, stdout, string(written)+"\n", "stdout should be the report followed by a newline")

	appended, err := os.ReadFile(summary)
	require.NoError(t, err, "step summary should be written")
	assert.Equal(t, string(written)+"\n", string(appended))
}

func TestRunValidate_MixedResults(t *testing.T) {
	dir := t.TempDir()
	cfg, _ := testConfig(t, dir)
	files := []string{
		writeXML(t, dir, "good.xml", passingXML),
		writeXML(t, dir, "bad.xml", failingXML),
		filepath.Join(dir, "missing.xml"),
	}

	code, stdout, _ := runForTest(t, cfg, RunOptions{Files: files})

	assert.Equal(t, constants.ExitFailed, code, "any failure should exit 1")
	assert.Contains(t, stdout, "**Summary:** 1/3 file(s) passed.")
	assert.Contains(t, stdout, "❌ File not found.")
	assert.Less(t, bytes.Index([]byte(stdout), []byte("good.xml")), bytes.Index([]byte(stdout), []byte("bad.xml")),
		"results should be reported in input order")
}

func TestRunValidate_NoFiles(t *testing.T) {
	dir := t.TempDir()
	cfg, summary := testConfig(t, dir)

	code, stdout, stderr := runForTest(t, cfg, RunOptions{})

	assert.Equal(t, constants.ExitNoFiles, code, "no input should exit 2")
	assert.Equal(t, report.RenderNoFiles()+"\n", stdout)
	assert.Contains(t, stderr, "Usage: "+constants.CLIName+" validate")

	written, err := os.ReadFile(cfg.Output)
	require.NoError(t, err, "report file should be written even without input")
	assert.Equal(t, report.RenderNoFiles(), string(written))

	appended, err := os.ReadFile(summary)
	require.NoError(t, err)
	assert.Equal(t, report.RenderNoFiles()+"\n", string(appended))
}

func TestRunValidate_SummaryUnset(t *testing.T) {
	dir := t.TempDir()
	cfg, summary := testConfig(t, dir)
	t.Setenv(testSummaryEnv, "")
	file := writeXML(t, dir, "good.xml", passingXML)

	code, _, _ := runForTest(t, cfg, RunOptions{Files: []string{file}})

	assert.Equal(t, constants.ExitPassed, code)
	assert.NoFileExists(t, summary, "no summary should be written when the variable is empty")
}

func TestRunValidate_JSONOutput(t *testing.T) {
	dir := t.TempDir()
	cfg, _ := testConfig(t, dir)
	files := []string{
		writeXML(t, dir, "good.xml", passingXML),
		writeXML(t, dir, "blocked.xml", blockedXML),
	}

	code, stdout, _ := runForTest(t, cfg, RunOptions{Files: files, JSONOutput: true})

	assert.Equal(t, constants.ExitFailed, code)

	var doc report.Document
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc), "stdout should be a JSON document")
	assert.Equal(t, report.Summary{Total: 2, Passed: 1, Failed: 1}, doc.Summary)
	require.Len(t, doc.Results, 2)
	assert.Equal(t, files[1], doc.Results[1].Path)
	assert.Contains(t, doc.Results[1].Messages[1], `ab12cd34-5678-90ef-ghij-klmnopqrstuv ("Legacy Connector")`)

	written, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	assert.Contains(t, string(written), constants.ReportTitle, "markdown report is written in JSON mode too")
}

func TestRunValidate_VerboseTable(t *testing.T) {
	dir := t.TempDir()
	cfg, _ := testConfig(t, dir)
	files := []string{
		writeXML(t, dir, "good.xml", passingXML),
		writeXML(t, dir, "broken.xml", "<process><shape>"),
	}

	_, _, stderr := runForTest(t, cfg, RunOptions{Files: files, Verbose: true})

	assert.Contains(t, stderr, "Validation results")
	assert.Contains(t, stderr, "Error path")
	assert.Contains(t, stderr, "PASS")
	assert.Contains(t, stderr, "FAIL")
	assert.Contains(t, stderr, "-", "unparsed files have no rule status")
}

func TestRunValidate_VerboseNotesGoToInjectedStderr(t *testing.T) {
	dir := t.TempDir()
	cfg, _ := testConfig(t, dir)
	file := writeXML(t, dir, "good.xml", passingXML)

	_, _, stderr := runForTest(t, cfg, RunOptions{Files: []string{file}, Verbose: true})

	assert.Contains(t, stderr, "Appended report to $"+testSummaryEnv)
}

func TestRunValidate_Recover(t *testing.T) {
	dir := t.TempDir()
	cfg, _ := testConfig(t, dir)
	file := writeXML(t, dir, "sloppy.xml", `<process><shape shapetype="returndocuments" userlabel="Error"/>`)

	code, stdout, _ := runForTest(t, cfg, RunOptions{Files: []string{file}})
	assert.Equal(t, constants.ExitFailed, code, "strict mode rejects a truncated document")
	assert.Contains(t, stdout, "❌ XML parse error:")

	cfg.Recover = true
	code, _, _ = runForTest(t, cfg, RunOptions{Files: []string{file}})
	assert.Equal(t, constants.ExitPassed, code, "recover mode keeps the partial tree")
}

func TestRunValidate_ReportWriteFailure(t *testing.T) {
	dir := t.TempDir()
	cfg, _ := testConfig(t, dir)
	blocker := writeXML(t, dir, "not-a-dir", "")
	cfg.Output = filepath.Join(blocker, "report.md")
	file := writeXML(t, dir, "good.xml", passingXML)

	var stdout, stderr bytes.Buffer
	code, err := RunValidate(cfg, RunOptions{Files: []string{file}, Stdout: &stdout, Stderr: &stderr})

	require.Error(t, err, "an unwritable report path should be fatal")
	assert.Equal(t, constants.ExitFailed, code)
	assert.Empty(t, stdout.String(), "nothing should be printed before the report is saved")
}
