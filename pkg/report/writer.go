package report

import (
	"github.com/githubnext/boomi-validate/pkg/envutil"
	"github.com/githubnext/boomi-validate/pkg/fileutil"
	"github.com/githubnext/boomi-validate/pkg/logger"
)

var summaryLog = logger.NewSlogLogger("report:summary")

// WriteReport overwrites path with the markdown report.
func WriteReport(path, markdown string) error {
	return fileutil.WriteFile(path, []byte(markdown))
}

// AppendStepSummary appends the markdown to the file named by envVar, if
// set. It is best effort: failures are logged and reported as false, never
// returned.
func AppendStepSummary(envVar, markdown string) bool {
	path, ok := envutil.LookupPath(envVar)
	if !ok {
		summaryLog.Debug("step summary not configured", "env", envVar)
		return false
	}

	if err := fileutil.AppendFile(path, []byte(markdown+"\n")); err != nil {
		summaryLog.Warn("failed to append step summary", "env", envVar, "path", path, "error", err)
		return false
	}
	summaryLog.Info("appended step summary", "path", path)
	return true
}
